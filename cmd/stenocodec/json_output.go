package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// writeJSON renders the machine-readable views behind `schemes --json` and
// `runs show --json` as indented JSON on the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
