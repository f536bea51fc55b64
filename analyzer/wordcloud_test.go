package analyzer

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateWordCloudSkipsEmptyInput(t *testing.T) {
	dir := t.TempDir()
	for name, texts := range map[string][]string{
		"nil":            nil,
		"blanks":         {"", "  ", "\n"},
		"only stopwords": {"the and", "of"},
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".png")
			got, err := GenerateWordCloud(texts, path, WordCloudOptions{})
			require.NoError(t, err)
			assert.Empty(t, got)
			assert.NoFileExists(t, path)
		})
	}
}

func TestGenerateWordCloudWritesImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cloud", "wordcloud_q1.png")
	texts := []string{"Great class!", "Great class!", "Needs more examples", "labs were long"}

	got, err := GenerateWordCloud(texts, path, WordCloudOptions{Width: 400, Height: 200})
	require.NoError(t, err)
	assert.Equal(t, path, got)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 400, cfg.Width)
	assert.Equal(t, 200, cfg.Height)
}

func TestGenerateWordCloudOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wc.png")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	_, err := GenerateWordCloud([]string{"fresh content"}, path, WordCloudOptions{})
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = png.Decode(f)
	assert.NoError(t, err)
}

func TestWordCloudPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "wordcloud_Q1.png"), WordCloudPath("out", "Q1"))
	assert.Equal(t, filepath.Join("out", "wordcloud_a_b.png"), WordCloudPath("out", "a/b"))
}
