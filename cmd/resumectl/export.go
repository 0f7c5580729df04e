package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-dashboard/internal/analysis"
	"resume-dashboard/internal/analyzer"
	"resume-dashboard/internal/reports"
)

var exportCmd = &cobra.Command{
	Use:   "export <analysis.json>",
	Short: "Export a saved analysis as a PDF report",
	Long:  "Export reads an analysis written by 'resumectl analyze --out' and asks the analysis API to render it as a PDF.",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var exportOutFile string

func init() {
	exportCmd.Flags().StringVarP(&exportOutFile, "out", "o", "", "Output PDF path (defaults to the dated report name)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read analysis: %w", err)
	}
	result, err := analysis.Decode(raw)
	if err != nil {
		return fmt.Errorf("invalid analysis file: %w", err)
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	report, err := reports.NewService(client, nil, false).Export(cmd.Context(), &result)
	if err != nil {
		return errors.New(analyzer.UserMessage(err, analyzer.MsgExportFailed))
	}

	out := exportOutFile
	if out == "" {
		out = report.FileName
	}
	if err := os.WriteFile(out, report.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s (%d bytes)\n", out, len(report.Data))
	return nil
}
