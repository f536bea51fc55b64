package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yashubustudio/feedbackanalyzer/analyzer"
)

func TestRenderAnalysis(t *testing.T) {
	a := &analyzer.Analysis{
		Records: []analyzer.ColumnRecord{{
			Column:   "comment",
			Keywords: []string{"pace", "slides"},
			Themes: []analyzer.Theme{
				{Label: "Theme 1", Items: []string{"a", "b", "c", "d"}},
			},
			Quotes: []analyzer.Quote{{Text: "too fast", Count: 2}},
		}},
		Summary: "Overall, students highlighted issues around: pace",
	}

	var buf bytes.Buffer
	renderAnalysis(&buf, a, 3)
	out := buf.String()

	assert.Contains(t, out, "Analysis for comment")
	assert.Contains(t, out, "pace, slides")
	assert.Contains(t, out, "  - c\n")
	assert.NotContains(t, out, "  - d\n")
	assert.Contains(t, out, `"too fast"`)
	assert.Contains(t, out, "(2 mentions)")
	assert.Contains(t, out, "Overall, students highlighted issues around: pace")
}

func TestAnalyzeCommand(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "feedback.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("comment\ngreat lectures\nslides too fast\ngreat lectures\nmore examples please\n"), 0o644))
	pdfPath := filepath.Join(dir, "out.pdf")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{
		"--config", filepath.Join(dir, "missing.yaml"),
		"analyze", csvPath,
		"--wordcloud-dir", dir,
		"--export", "--output", pdfPath,
	})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, buf.String(), "Analysis for comment")
	assert.Contains(t, buf.String(), "Report:")
	assert.FileExists(t, pdfPath)
	assert.FileExists(t, filepath.Join(dir, "wordcloud_comment.png"))
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv("FEEDBACK_CLUSTER_K", "4")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"--config", path, "config", "init"})
	require.NoError(t, rootCmd.Execute())
	assert.FileExists(t, path)

	cfg, err := analyzer.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Cluster.K)

	rootCmd.SetArgs([]string{"--config", path, "config", "init"})
	assert.Error(t, rootCmd.Execute())
}
