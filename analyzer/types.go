package analyzer

// GeneralTheme is the label used when there are too few texts to cluster.
const GeneralTheme = "General"

// Theme groups feedback strings judged similar by the clusterer.
type Theme struct {
	Label string   `json:"label"`
	Items []string `json:"items"`
}

// Quote is a verbatim feedback string with its exact-match frequency.
type Quote struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// ColumnRecord holds the analysis results for a single feedback column.
type ColumnRecord struct {
	Column    string   `json:"column"`
	Keywords  []string `json:"keywords"`
	Themes    []Theme  `json:"themes"`
	Quotes    []Quote  `json:"quotes"`
	WordCloud string   `json:"wordcloud,omitempty"`
}

// Analysis is the result of a single run over an uploaded table.
type Analysis struct {
	RunID   string         `json:"runId"`
	Source  string         `json:"source,omitempty"`
	Records []ColumnRecord `json:"records"`
	Summary string         `json:"summary"`
}

// KeywordConfig controls the keyword extractor.
type KeywordConfig struct {
	TopN        int `koanf:"top_n"`
	MaxFeatures int `koanf:"max_features"`
}

// ClusterConfig controls the theme clusterer.
type ClusterConfig struct {
	K        int   `koanf:"k"`
	Seed     int64 `koanf:"seed"`
	Restarts int   `koanf:"restarts"`
	MaxIter  int   `koanf:"max_iter"`
}

// QuoteConfig controls the quote tally.
type QuoteConfig struct {
	TopN int `koanf:"top_n"`
}

// WordCloudConfig controls word-cloud rendering.
type WordCloudConfig struct {
	Dir      string `koanf:"dir"`
	Width    int    `koanf:"width"`
	Height   int    `koanf:"height"`
	MaxWords int    `koanf:"max_words"`
}

// ReportConfig controls PDF export.
type ReportConfig struct {
	Path    string `koanf:"path"`
	Samples int    `koanf:"samples"`
}

// LogConfig controls the application logger.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Config aggregates runtime settings persisted to config.yaml.
type Config struct {
	Keywords  KeywordConfig   `koanf:"keywords"`
	Cluster   ClusterConfig   `koanf:"cluster"`
	Quotes    QuoteConfig     `koanf:"quotes"`
	WordCloud WordCloudConfig `koanf:"wordcloud"`
	Report    ReportConfig    `koanf:"report"`
	Log       LogConfig       `koanf:"log"`
}

// ApplyDefaults populates zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Keywords.TopN <= 0 {
		c.Keywords.TopN = 10
	}
	if c.Keywords.MaxFeatures <= 0 {
		c.Keywords.MaxFeatures = 1000
	}
	if c.Cluster.K <= 0 {
		c.Cluster.K = 3
	}
	if c.Cluster.Seed == 0 {
		c.Cluster.Seed = 42
	}
	if c.Cluster.Restarts <= 0 {
		c.Cluster.Restarts = 10
	}
	if c.Cluster.MaxIter <= 0 {
		c.Cluster.MaxIter = 300
	}
	if c.Quotes.TopN <= 0 {
		c.Quotes.TopN = 5
	}
	if c.WordCloud.Dir == "" {
		c.WordCloud.Dir = "."
	}
	if c.WordCloud.Width <= 0 {
		c.WordCloud.Width = 800
	}
	if c.WordCloud.Height <= 0 {
		c.WordCloud.Height = 400
	}
	if c.WordCloud.MaxWords <= 0 {
		c.WordCloud.MaxWords = 200
	}
	if c.Report.Path == "" {
		c.Report.Path = "feedback_report.pdf"
	}
	if c.Report.Samples <= 0 {
		c.Report.Samples = 3
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
}

// DefaultConfig returns a configuration with every default applied.
func DefaultConfig() Config {
	var cfg Config
	cfg.ApplyDefaults()
	return cfg
}

// ClusterOptions converts the cluster config into clusterer options.
func (c Config) ClusterOptions() ClusterOptions {
	return ClusterOptions{
		K:        c.Cluster.K,
		Seed:     c.Cluster.Seed,
		Restarts: c.Cluster.Restarts,
		MaxIter:  c.Cluster.MaxIter,
	}
}

// WordCloudOptions converts the word-cloud config into renderer options.
func (c Config) WordCloudOptions() WordCloudOptions {
	return WordCloudOptions{
		Width:    c.WordCloud.Width,
		Height:   c.WordCloud.Height,
		MaxWords: c.WordCloud.MaxWords,
		Seed:     c.Cluster.Seed,
	}
}
