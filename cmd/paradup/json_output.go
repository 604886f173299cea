package main

import (
	"github.com/spf13/cobra"

	"paradup/internal/dupdetect"
	"paradup/internal/report"
)

// writeJSON encodes the report as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, r dupdetect.Report) error {
	return report.Encode(cmd.OutOrStdout(), r)
}
