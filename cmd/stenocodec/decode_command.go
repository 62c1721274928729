package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"stenocodec/internal/codec"
	"stenocodec/internal/dataset"
	"stenocodec/internal/logging"
	"stenocodec/internal/runstore"
)

func newDecodeCommand(ctx *commandContext) *cobra.Command {
	var schemeFlag string
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "decode <predictions.jsonl>",
		Short: "Decode predicted label sequences back into transcript text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			scheme, err := ctx.buildScheme(schemeFlag)
			if err != nil {
				return err
			}

			inputPath := args[0]
			predictions, err := dataset.ReadPredictions(inputPath)
			if err != nil {
				return err
			}

			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			cctx := cmd.Context()
			run, err := store.Begin(cctx, runstore.KindDecode, string(scheme.Tag()), inputPath)
			if err != nil {
				return err
			}

			logger := logging.WithContext(
				logging.WithScheme(logging.WithRunID(cctx, run.ID), string(scheme.Tag())),
				ctx.ensureLogger(),
			)
			logger.Info("decode started", logging.Int("predictions", len(predictions)))

			entries := make([]dataset.DecodedEntry, 0, len(predictions))
			tokens := 0
			var total codec.Diagnostics
			for _, pred := range predictions {
				text, diag := scheme.Decode(codec.Label(pred.Tokens))
				tokens += len(pred.Tokens)
				total.Add(diag)
				if !diag.Clean() {
					logger.Debug("prediction degraded",
						logging.String(logging.FieldRecordID, pred.ID),
						logging.Int("dropped", diag.Dropped),
						logging.Int("replaced", diag.Replaced))
				}
				entries = append(entries, dataset.DecodedEntry{
					ID:       pred.ID,
					Text:     text,
					Dropped:  diag.Dropped,
					Replaced: diag.Replaced,
				})
			}

			outputPath := outputFlag
			if outputPath == "" {
				outputPath = filepath.Join(cfg.Paths.OutDir, fmt.Sprintf("decoded-%s.jsonl", scheme.Tag()))
			}
			if err := dataset.WriteDecoded(outputPath, entries); err != nil {
				_ = store.Fail(cctx, run.ID, err.Error())
				return err
			}

			run.OutputPath = outputPath
			run.Records = len(predictions)
			run.Tokens = tokens
			run.DroppedTokens = total.Dropped
			run.ReplacedTokens = total.Replaced
			if err := store.Finish(cctx, run); err != nil {
				return err
			}
			logger.Info("decode completed",
				logging.Int("dropped", total.Dropped),
				logging.Int("replaced", total.Replaced),
				logging.String("output", outputPath))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Decoded %d predictions with scheme %s\n", len(predictions), scheme.Tag())
			if total.Clean() {
				fmt.Fprintln(out, "All label sequences decoded cleanly")
			} else {
				fmt.Fprintf(out, "Degradation: %d tokens dropped, %d replaced\n", total.Dropped, total.Replaced)
			}
			fmt.Fprintf(out, "Transcripts written to %s\n", outputPath)
			fmt.Fprintf(out, "Run %s\n", run.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&schemeFlag, "scheme", "s", "", "Encoding scheme (direct, word-level, compositional, positional)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Destination for the decoded transcript file")
	return cmd
}
