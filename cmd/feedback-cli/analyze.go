package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"yashubustudio/feedbackanalyzer/analyzer"
	"yashubustudio/feedbackanalyzer/internal/logging"
)

var (
	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("45"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

type analyzeOptions struct {
	export       bool
	output       string
	wordCloudDir string
}

func newAnalyzeCmd() *cobra.Command {
	var opts analyzeOptions
	cmd := &cobra.Command{
		Use:   "analyze FILE",
		Short: "Analyse every column of a feedback CSV",
		Long: `Analyse every column of a feedback CSV.

Examples:
  # Print keywords, themes and quotes per column
  feedback-cli analyze feedback.csv

  # Also write the PDF report
  feedback-cli analyze feedback.csv --export --output report.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args[0], opts)
		},
	}
	cmd.Flags().BoolVar(&opts.export, "export", false, "write the PDF report after analysis")
	cmd.Flags().StringVar(&opts.output, "output", "", "PDF report path (default from config)")
	cmd.Flags().StringVar(&opts.wordCloudDir, "wordcloud-dir", "", "directory for word-cloud images (default from config)")
	return cmd
}

func runAnalyze(cmd *cobra.Command, path string, opts analyzeOptions) error {
	cfg, err := analyzer.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if dir := strings.TrimSpace(opts.wordCloudDir); dir != "" {
		cfg.WordCloud.Dir = dir
	}

	logger, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	tbl, err := analyzer.ReadTableFile(path)
	if err != nil {
		return err
	}

	svc := analyzer.NewService(cfg, logger)
	a, err := svc.AnalyzeTable(cmd.Context(), tbl, path, nil)
	if err != nil {
		return fmt.Errorf("analyze %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	renderAnalysis(out, a, cfg.Report.Samples)

	if !opts.export {
		return nil
	}
	res, err := svc.ExportReport(a, strings.TrimSpace(opts.output))
	if err != nil {
		logger.Error("export failed", zap.Error(err))
		return err
	}
	fmt.Fprintf(out, "\n%s %s (%d pages)\n", labelStyle.Render("Report:"), res.Path, res.Pages)
	return nil
}

// renderAnalysis prints one block per analysed column followed by the overall summary.
func renderAnalysis(w io.Writer, a *analyzer.Analysis, samples int) {
	for _, rec := range a.Records {
		fmt.Fprintln(w, headingStyle.Render("Analysis for "+rec.Column))
		kw := "(none)"
		if len(rec.Keywords) > 0 {
			kw = strings.Join(rec.Keywords, ", ")
		}
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Keywords:"), kw)
		for _, th := range rec.Themes {
			fmt.Fprintln(w, labelStyle.Render(th.Label+":"))
			items := th.Items
			if len(items) > samples {
				items = items[:samples]
			}
			for _, item := range items {
				fmt.Fprintf(w, "  - %s\n", item)
			}
		}
		fmt.Fprintln(w, labelStyle.Render("Top Quotes:"))
		for _, q := range rec.Quotes {
			fmt.Fprintf(w, "  - %q %s\n", q.Text, dimStyle.Render(fmt.Sprintf("(%d mentions)", q.Count)))
		}
		if rec.WordCloud != "" {
			fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Word cloud:"), rec.WordCloud)
		}
	}
	fmt.Fprintln(w, headingStyle.Render("Overall Summary"))
	fmt.Fprintln(w, a.Summary)
}
