package analyzer

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const summaryPrefix = "Overall, students highlighted issues around: "

// ExportResult describes a written report.
type ExportResult struct {
	Path  string
	Pages int
}

// ProgressFunc is called after each column is analysed.
type ProgressFunc func(done, total int, column string)

// Service runs the per-column pipeline and exports reports.
type Service struct {
	cfgMu sync.RWMutex
	cfg   Config

	logger *zap.Logger
}

// NewService constructs a service with the given configuration.
func NewService(cfg Config, logger *zap.Logger) *Service {
	cfg.ApplyDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{cfg: cfg, logger: logger}
}

// Config returns a copy of the current configuration.
func (s *Service) Config() Config {
	s.cfgMu.RLock()
	defer s.cfgMu.RUnlock()
	return s.cfg
}

// UpdateConfig replaces the configuration.
func (s *Service) UpdateConfig(cfg Config) {
	cfg.ApplyDefaults()
	s.cfgMu.Lock()
	s.cfg = cfg
	s.cfgMu.Unlock()
}

// AnalyzeColumn runs keyword extraction, clustering, quote tally and word-cloud
// rendering over one column's texts.
func (s *Service) AnalyzeColumn(column string, texts []string) (ColumnRecord, error) {
	cfg := s.Config()
	rec := ColumnRecord{
		Column:   column,
		Keywords: extractKeywords(texts, cfg.Keywords.TopN, cfg.Keywords.MaxFeatures),
		Themes:   ClusterFeedback(texts, cfg.ClusterOptions()),
		Quotes:   ExtractQuotes(texts, cfg.Quotes.TopN),
	}
	path, err := GenerateWordCloud(texts, WordCloudPath(cfg.WordCloud.Dir, column), cfg.WordCloudOptions())
	if err != nil {
		return rec, fmt.Errorf("wordcloud for %q: %w", column, err)
	}
	rec.WordCloud = path
	return rec, nil
}

// AnalyzeTable analyses every column that has at least one value, in column
// order, and builds the overall summary. It stops between columns when ctx is done.
func (s *Service) AnalyzeTable(ctx context.Context, t *Table, source string, progress ProgressFunc) (*Analysis, error) {
	runID := uuid.NewString()
	log := s.logger.With(zap.String("run_id", runID), zap.String("source", source))
	start := time.Now()
	columns := t.Columns()
	log.Info("analysis started", zap.Int("columns", len(columns)), zap.Int("rows", t.Len()))

	a := &Analysis{RunID: runID, Source: source}
	for i, col := range columns {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		texts := t.ColumnTexts(i)
		if len(texts) == 0 {
			log.Debug("skipping empty column", zap.String("column", col))
			if progress != nil {
				progress(i+1, len(columns), col)
			}
			continue
		}
		rec, err := s.AnalyzeColumn(col, texts)
		if err != nil {
			return nil, err
		}
		log.Info("column analysed",
			zap.String("column", col),
			zap.Int("texts", len(texts)),
			zap.Int("keywords", len(rec.Keywords)),
			zap.Int("themes", len(rec.Themes)),
			zap.String("wordcloud", rec.WordCloud))
		a.Records = append(a.Records, rec)
		if progress != nil {
			progress(i+1, len(columns), col)
		}
	}
	a.Summary = OverallSummary(a.Records)
	log.Info("analysis finished", zap.Int("records", len(a.Records)), zap.Duration("elapsed", time.Since(start)))
	return a, nil
}

// OverallSummary unions the keywords of all records into one sentence.
// Keywords are deduplicated through a set, so their order is unspecified.
func OverallSummary(records []ColumnRecord) string {
	set := make(map[string]struct{})
	for _, rec := range records {
		for _, kw := range rec.Keywords {
			set[kw] = struct{}{}
		}
	}
	words := make([]string, 0, len(set))
	for kw := range set {
		words = append(words, kw)
	}
	return summaryPrefix + strings.Join(words, ", ")
}

// ExportReport writes the analysis as a PDF. An empty path uses the configured
// report path.
func (s *Service) ExportReport(a *Analysis, path string) (ExportResult, error) {
	cfg := s.Config()
	if path == "" {
		path = cfg.Report.Path
	}
	report := ComposeReport(a.Records, a.Summary, cfg.Report.Samples)
	pages, err := report.WritePDF(path)
	if err != nil {
		return ExportResult{}, err
	}
	s.logger.Info("report exported",
		zap.String("run_id", a.RunID),
		zap.String("path", path),
		zap.Int("sections", report.SectionCount()),
		zap.Int("pages", pages))
	return ExportResult{Path: path, Pages: pages}, nil
}
