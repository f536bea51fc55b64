package app

import (
	"fmt"
	"strings"

	"yashubustudio/feedbackanalyzer/analyzer"
)

const previewRows = 5

func truncateText(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "…"
}

func formatKeywords(keywords []string) string {
	if len(keywords) == 0 {
		return "Keywords: (none)"
	}
	return "Keywords: " + strings.Join(keywords, ", ")
}

// formatTheme renders a theme label followed by up to samples bullet lines.
func formatTheme(th analyzer.Theme, samples int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:", th.Label)
	items := th.Items
	if len(items) > samples {
		items = items[:samples]
	}
	for _, item := range items {
		fmt.Fprintf(&b, "\n  - %s", truncateText(item, 200))
	}
	return b.String()
}

func formatQuotes(quotes []analyzer.Quote) string {
	var b strings.Builder
	b.WriteString("Top Quotes:")
	for _, q := range quotes {
		fmt.Fprintf(&b, "\n  - \"%s\" (%d mentions)", truncateText(q.Text, 200), q.Count)
	}
	return b.String()
}
