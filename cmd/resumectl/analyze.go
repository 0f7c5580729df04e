package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"resume-dashboard/internal/analysis"
	"resume-dashboard/internal/analyzer"
	"resume-dashboard/internal/extract"
	"resume-dashboard/internal/shared/telemetry"
	"resume-dashboard/internal/uploads"
)

// analysisClient is the subset of the analysis API the commands use.
type analysisClient interface {
	Analyze(ctx context.Context, sub analyzer.Submission, progress analyzer.ProgressFunc) (analysis.Result, error)
	Export(ctx context.Context, result analysis.Result) ([]byte, error)
	Health(ctx context.Context) error
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume.pdf|resume.docx>",
	Short: "Analyze a resume against a job description",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

var (
	analyzeJobFile string
	analyzeJobText string
	analyzeOutFile string
	analyzeJSON    bool
	analyzeInspect bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job-file", "j", "", "Path to a job description text file")
	analyzeCmd.Flags().StringVar(&analyzeJobText, "job", "", "Job description text")
	analyzeCmd.Flags().StringVarP(&analyzeOutFile, "out", "o", "", "Write the raw analysis JSON to this file")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the derived summary as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeInspect, "inspect", true, "Check locally that text can be extracted before uploading")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	jobDescription, err := readJobDescription(analyzeJobFile, analyzeJobText)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	result, err := analyzeFile(cmd.Context(), client, filepath.Base(args[0]), data, jobDescription, analyzeInspect, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if analyzeOutFile != "" {
		raw, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		if err := os.WriteFile(analyzeOutFile, raw, 0o644); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}

	s := summarize(filepath.Base(args[0]), result)
	if analyzeJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}
	return s.write(cmd.OutOrStdout())
}

// analyzeFile validates the upload and sends it, printing upload progress to progressOut.
func analyzeFile(ctx context.Context, client analysisClient, name string, data []byte, jobDescription string, inspect bool, progressOut io.Writer) (analysis.Result, error) {
	upload, err := uploads.Validate(uploads.Upload{FileName: name, Data: data, JobDescription: jobDescription})
	if err != nil {
		var invalid *uploads.ValidationError
		if errors.As(err, &invalid) {
			return analysis.Result{}, errors.New(invalid.Message)
		}
		return analysis.Result{}, err
	}
	if inspect {
		if _, err := extract.Inspect(ctx, upload.Data, upload.ContentType, upload.FileName); err != nil {
			if errors.Is(err, extract.ErrNoText) {
				return analysis.Result{}, errors.New(extract.MsgNoText)
			}
			return analysis.Result{}, err
		}
	}

	last := -1
	progress := func(pct int) {
		if pct/25 != last/25 {
			last = pct
			fmt.Fprintf(progressOut, "uploading... %d%%\n", pct)
		}
	}
	result, err := client.Analyze(ctx, analyzer.Submission{
		FileName:       upload.FileName,
		ContentType:    upload.ContentType,
		Data:           upload.Data,
		JobDescription: upload.JobDescription,
	}, progress)
	if err != nil {
		telemetry.Debug("resumectl.analyze_failed", map[string]any{"err": err})
		return analysis.Result{}, errors.New(analyzer.UserMessage(err, analyzer.MsgAnalyzeFailed))
	}
	return result, nil
}

func readJobDescription(path, text string) (string, error) {
	if path != "" && text != "" {
		return "", errors.New("use either --job or --job-file, not both")
	}
	if path == "" {
		return text, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job description: %w", err)
	}
	return string(raw), nil
}
