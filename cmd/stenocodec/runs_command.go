package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"stenocodec/internal/runstore"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	var limitFlag int
	var statusFlag string

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Browse the encode and decode run ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			var statusFilter []runstore.Status
			if statusFlag != "" {
				parsed, ok := runstore.ParseStatus(statusFlag)
				if !ok {
					return fmt.Errorf("unknown status %q (valid: running, completed, failed)", statusFlag)
				}
				statusFilter = append(statusFilter, parsed)
			}

			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.List(cmd.Context(), limitFlag, statusFilter...)
			if err != nil {
				return err
			}

			colorize := shouldColorize(cmd.OutOrStdout())
			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.ID,
					string(run.Kind),
					run.Scheme,
					strconv.Itoa(run.Records),
					strconv.Itoa(run.Tokens),
					strconv.Itoa(run.DroppedTokens + run.ReplacedTokens),
					renderRunStatus(run.Status, colorize),
					run.StartedAt.Local().Format("2006-01-02 15:04:05"),
				})
			}

			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(out, "No runs recorded")
				return nil
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Kind", "Scheme", "Records", "Tokens", "Degraded", "Status", "Started"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limitFlag, "limit", "n", 20, "Maximum number of runs to list (0 lists all)")
	cmd.Flags().StringVar(&statusFlag, "status", "", "Only show runs with this status")

	cmd.AddCommand(newRunsShowCommand(ctx))
	return cmd
}

func newRunsShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one run in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			run, err := store.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, runView(run))
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintf(out, "Run:      %s\n", run.ID)
			fmt.Fprintf(out, "Kind:     %s\n", run.Kind)
			fmt.Fprintf(out, "Scheme:   %s\n", run.Scheme)
			fmt.Fprintf(out, "Status:   %s\n", renderRunStatus(run.Status, colorize))
			fmt.Fprintf(out, "Input:    %s\n", run.InputPath)
			if run.OutputPath != "" {
				fmt.Fprintf(out, "Output:   %s\n", run.OutputPath)
			}
			fmt.Fprintf(out, "Records:  %d\n", run.Records)
			fmt.Fprintf(out, "Tokens:   %d\n", run.Tokens)
			if run.DroppedTokens > 0 || run.ReplacedTokens > 0 {
				fmt.Fprintf(out, "Degraded: %d dropped, %d replaced\n", run.DroppedTokens, run.ReplacedTokens)
			}
			if run.ErrorMessage != "" {
				fmt.Fprintf(out, "Error:    %s\n", run.ErrorMessage)
			}
			fmt.Fprintf(out, "Started:  %s\n", run.StartedAt.Local().Format(time.RFC3339))
			fmt.Fprintf(out, "Duration: %s\n", run.Duration().Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit run details as JSON")
	return cmd
}

type runDetails struct {
	ID             string     `json:"id"`
	Kind           string     `json:"kind"`
	Scheme         string     `json:"scheme"`
	InputPath      string     `json:"input_path"`
	OutputPath     string     `json:"output_path,omitempty"`
	Records        int        `json:"records"`
	Tokens         int        `json:"tokens"`
	DroppedTokens  int        `json:"dropped_tokens"`
	ReplacedTokens int        `json:"replaced_tokens"`
	Status         string     `json:"status"`
	ErrorMessage   string     `json:"error_message,omitempty"`
	StartedAt      time.Time  `json:"started_at"`
	FinishedAt     *time.Time `json:"finished_at,omitempty"`
}

func runView(run *runstore.Run) runDetails {
	return runDetails{
		ID:             run.ID,
		Kind:           string(run.Kind),
		Scheme:         run.Scheme,
		InputPath:      run.InputPath,
		OutputPath:     run.OutputPath,
		Records:        run.Records,
		Tokens:         run.Tokens,
		DroppedTokens:  run.DroppedTokens,
		ReplacedTokens: run.ReplacedTokens,
		Status:         string(run.Status),
		ErrorMessage:   run.ErrorMessage,
		StartedAt:      run.StartedAt,
		FinishedAt:     run.FinishedAt,
	}
}
