// Package main implements feedback-cli, a headless front end for the feedback analyzer.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	version    = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "feedback-cli",
	Short: "Analyse student feedback CSV files",
	Long: `feedback-cli extracts keywords, themes and repeated quotes from every
column of a student feedback CSV and can export the results as a PDF report.`,
	Version:      version,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml (default: ./config.yaml)")
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newConfigCmd())
}
