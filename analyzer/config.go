package analyzer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	defaultConfigFile = "config.yaml"
	envPrefix         = "FEEDBACK_"
)

// LoadConfig loads configuration from the given path or the default config.yaml,
// then applies FEEDBACK_* environment overrides.
//
// A missing file is not an error; defaults are used instead. Environment variables
// map to keys by splitting on the first underscore after the prefix:
//
//	FEEDBACK_REPORT_PATH    -> report.path
//	FEEDBACK_CLUSTER_K      -> cluster.k
//	FEEDBACK_WORDCLOUD_MAX_WORDS -> wordcloud.max_words
func LoadConfig(path string) (Config, error) {
	if path == "" {
		path = defaultConfigFile
	}
	k := koanf.New(".")
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
			return cfg, fmt.Errorf("decode config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return cfg, fmt.Errorf("load env: %w", err)
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

func envKey(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	parts := strings.SplitN(lower, "_", 2)
	if len(parts) == 1 {
		return lower
	}
	return parts[0] + "." + parts[1]
}

// SaveConfig persists configuration to disk as YAML.
func SaveConfig(path string, cfg Config) error {
	if path == "" {
		path = defaultConfigFile
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	cfg.ApplyDefaults()
	k := koanf.New(".")
	if err := k.Load(structProvider{cfg: cfg}, nil); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	data, err := k.Marshal(yaml.Parser())
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename config: %w", err)
	}
	return nil
}

// structProvider exposes a Config as a nested map keyed by koanf tags.
type structProvider struct {
	cfg Config
}

func (p structProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("structProvider does not support ReadBytes")
}

func (p structProvider) Read() (map[string]interface{}, error) {
	c := p.cfg
	return map[string]interface{}{
		"keywords": map[string]interface{}{
			"top_n":        c.Keywords.TopN,
			"max_features": c.Keywords.MaxFeatures,
		},
		"cluster": map[string]interface{}{
			"k":        c.Cluster.K,
			"seed":     c.Cluster.Seed,
			"restarts": c.Cluster.Restarts,
			"max_iter": c.Cluster.MaxIter,
		},
		"quotes": map[string]interface{}{
			"top_n": c.Quotes.TopN,
		},
		"wordcloud": map[string]interface{}{
			"dir":       c.WordCloud.Dir,
			"width":     c.WordCloud.Width,
			"height":    c.WordCloud.Height,
			"max_words": c.WordCloud.MaxWords,
		},
		"report": map[string]interface{}{
			"path":    c.Report.Path,
			"samples": c.Report.Samples,
		},
		"log": map[string]interface{}{
			"level":  c.Log.Level,
			"format": c.Log.Format,
		},
	}, nil
}
