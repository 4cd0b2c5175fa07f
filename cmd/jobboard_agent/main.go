// Package main provides the job-board CLI: auth, job browsing, the
// application wizard, interviews, recommendations, and employer tooling.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobboard_agent",
	Short: "Job board command-line client",
	Long:  "jobboard_agent is a typed client for the job-board REST API: browse and post jobs, apply through the multi-page wizard, and track applications, interviews, and recommendations.",
}

var (
	flagConfig      string
	flagBaseURL     string
	flagEnvironment string
	flagSessionFile string
	flagVerbose     bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "Backend base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagEnvironment, "env", "", "Environment: development or production")
	rootCmd.PersistentFlags().StringVar(&flagSessionFile, "session-file", "", "Path to session file (default: user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
