package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stenocodec/internal/codec"
)

func newSchemesCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "schemes",
		Short: "List the available encoding schemes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			alpha, err := ctx.loadAlphabet()
			if err != nil {
				return err
			}

			if jsonOutput {
				type schemeInfo struct {
					Tag         string `json:"tag"`
					Description string `json:"description"`
					Default     bool   `json:"default"`
				}
				infos := make([]schemeInfo, 0, len(codec.Tags()))
				for _, tag := range codec.Tags() {
					infos = append(infos, schemeInfo{
						Tag:         string(tag),
						Description: tag.Description(),
						Default:     string(tag) == cfg.Codec.Scheme,
					})
				}
				return writeJSON(cmd, infos)
			}

			rows := make([][]string, 0, len(codec.Tags()))
			for _, tag := range codec.Tags() {
				marker := ""
				if string(tag) == cfg.Codec.Scheme {
					marker = "default"
				}
				rows = append(rows, []string{string(tag), tag.Description(), marker})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Scheme", "Description", ""},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))
			fmt.Fprintf(out, "Alphabet: %d units, boundary %q\n", alpha.Size(), alpha.Boundary())
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit scheme list as JSON")
	return cmd
}
