package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"yashubustudio/feedbackanalyzer/analyzer"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the analyzer configuration file",
	}
	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to --config (default ./config.yaml)",
		Long: `Write the effective configuration, defaults plus FEEDBACK_* environment
overrides, to the config file.

Examples:
  feedback-cli config init
  FEEDBACK_CLUSTER_K=4 feedback-cli --config course.yaml config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := configPath
			if path == "" {
				path = "config.yaml"
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("stat %s: %w", path, err)
			}
			cfg, err := analyzer.LoadConfig(path)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := analyzer.SaveConfig(path, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", labelStyle.Render("Wrote"), path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cmd.AddCommand(initCmd)
	return cmd
}
