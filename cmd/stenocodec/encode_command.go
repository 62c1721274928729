package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"stenocodec/internal/dataset"
	"stenocodec/internal/logging"
	"stenocodec/internal/runstore"
)

func newEncodeCommand(ctx *commandContext) *cobra.Command {
	var schemeFlag string
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "encode <records.jsonl>",
		Short: "Encode transcription records into label sequences",
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
			records, err := dataset.ReadRecords(inputPath)
			if err != nil {
				return err
			}

			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			cctx := cmd.Context()
			run, err := store.Begin(cctx, runstore.KindEncode, string(scheme.Tag()), inputPath)
			if err != nil {
				return err
			}

			logger := logging.WithContext(
				logging.WithScheme(logging.WithRunID(cctx, run.ID), string(scheme.Tag())),
				ctx.ensureLogger(),
			)
			logger.Info("encode started", logging.Int("records", len(records)))

			entries := make([]dataset.LabelEntry, 0, len(records))
			tokens := 0
			for _, rec := range records {
				label, err := scheme.Encode(rec)
				if err != nil {
					_ = store.Fail(cctx, run.ID, err.Error())
					logger.Error("encode failed", logging.Error(err))
					return err
				}
				tokens += len(label)
				entries = append(entries, dataset.LabelEntry{ID: rec.ID, Tokens: label})
			}

			outputPath := outputFlag
			if outputPath == "" {
				outputPath = filepath.Join(cfg.Paths.OutDir, fmt.Sprintf("labels-%s.jsonl", scheme.Tag()))
			}
			if err := dataset.WriteLabels(outputPath, scheme.Tag(), entries); err != nil {
				_ = store.Fail(cctx, run.ID, err.Error())
				return err
			}

			run.OutputPath = outputPath
			run.Records = len(records)
			run.Tokens = tokens
			if err := store.Finish(cctx, run); err != nil {
				return err
			}
			logger.Info("encode completed",
				logging.Int("tokens", tokens),
				logging.String("output", outputPath))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Encoded %d records (%d tokens) with scheme %s\n", len(records), tokens, scheme.Tag())
			fmt.Fprintf(out, "Labels written to %s\n", outputPath)
			fmt.Fprintf(out, "Run %s\n", run.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&schemeFlag, "scheme", "s", "", "Encoding scheme (direct, word-level, compositional, positional)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Destination for the label file")
	return cmd
}
