package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords(t *testing.T, dir string) []ColumnRecord {
	t.Helper()
	wc, err := GenerateWordCloud([]string{"Great class!", "Needs more examples"}, filepath.Join(dir, "wordcloud_Q1.png"), WordCloudOptions{})
	require.NoError(t, err)
	return []ColumnRecord{
		{
			Column:   "Q1",
			Keywords: []string{"great", "class"},
			Themes: []Theme{
				{Label: "Theme 1", Items: []string{"Great class!", "Great class!", "Great class!", "Great class!"}},
				{Label: "Theme 2", Items: []string{"Needs more examples"}},
			},
			Quotes:    []Quote{{Text: "Great class!", Count: 4}},
			WordCloud: wc,
		},
		{
			Column:    "Q2 – café",
			Keywords:  []string{"labs"},
			Themes:    []Theme{{Label: GeneralTheme, Items: []string{"labs"}}},
			Quotes:    []Quote{{Text: "labs", Count: 1}},
			WordCloud: filepath.Join(dir, "missing.png"),
		},
	}
}

func TestComposeReport(t *testing.T) {
	records := sampleRecords(t, t.TempDir())
	r := ComposeReport(records, "Overall, students highlighted issues around: great", 3)

	require.Len(t, r.Sections, 2)
	assert.Equal(t, 3, r.SectionCount())
	assert.Equal(t, "Question: Q1", r.Sections[0].Heading)
	assert.Equal(t, "great, class", r.Sections[0].Keywords)
	assert.Len(t, r.Sections[0].Themes[0].Items, 3)
	assert.Len(t, records[0].Themes[0].Items, 4, "records must not be modified")
}

func TestReportWritePDF(t *testing.T) {
	dir := t.TempDir()
	records := sampleRecords(t, dir)
	path := filepath.Join(dir, "feedback_report.pdf")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	pages, err := ComposeReport(records, "summary text", 3).WritePDF(path)
	require.NoError(t, err)
	assert.Equal(t, len(records)+1, pages)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestReportWritePDFNoColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	pages, err := ComposeReport(nil, "nothing", 3).WritePDF(path)
	require.NoError(t, err)
	assert.Equal(t, 1, pages)
	assert.FileExists(t, path)
}
