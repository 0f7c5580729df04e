// Command resumectl submits resumes to the analysis API from the terminal and
// prints the same derived dashboard figures the web UI shows.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"resume-dashboard/internal/bootstrap"
	"resume-dashboard/internal/shared/config"
	"resume-dashboard/internal/shared/telemetry"
)

var rootCmd = &cobra.Command{
	Use:           "resumectl",
	Short:         "Resume analysis from the command line",
	Long:          "resumectl validates a resume, sends it with a job description to the analysis API, and prints the result or exports a PDF report.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		telemetry.Configure(logLevel)
	},
}

var (
	apiURL   string
	apiKey   string
	timeout  time.Duration
	logLevel string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Analysis API base URL (overrides ANALYSIS_API_URL)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Analysis API key (overrides ANALYSIS_API_KEY)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Request timeout (overrides ANALYSIS_API_TIMEOUT)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "Log level: debug, info, warn, error")
}

func loadConfig() config.Config {
	cfg := config.Load()
	if apiURL != "" {
		cfg.AnalysisAPIURL = apiURL
	}
	if apiKey != "" {
		cfg.AnalysisAPIKey = apiKey
	}
	if timeout > 0 {
		cfg.AnalysisAPITimeout = timeout
	}
	return cfg
}

func newClient() (analysisClient, error) {
	return bootstrap.BuildAnalyzer(loadConfig())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
