package app

import (
	"fmt"

	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/data/binding"

	"yashubustudio/feedbackanalyzer/analyzer"
	"yashubustudio/feedbackanalyzer/internal/logging"
)

const (
	fyneAppID     = "studio.yashubu.feedbackanalyzer"
	logPanelLines = 200
)

// Run loads configuration, wires logging into the log panel and starts the desktop UI.
func Run(configPath string) error {
	cfg, err := analyzer.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logBind := binding.NewString()
	sink := logging.NewPanelSink(logPanelLines, func(text string) { _ = logBind.Set(text) })
	logger, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}, sink)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	svc := analyzer.NewService(cfg, logger)
	a := fyneapp.NewWithID(fyneAppID)
	u := buildUI(a, svc, logger, logBind)
	u.w.ShowAndRun()
	return nil
}
