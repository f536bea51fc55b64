package analyzer

import (
	"sort"
	"strings"
)

// ExtractQuotes counts exact repeats of the trimmed, non-blank texts and returns
// the n most frequent. Ties keep the order in which texts were first seen.
func ExtractQuotes(texts []string, n int) []Quote {
	counts := make(map[string]int)
	order := make([]string, 0, len(texts))
	for _, t := range texts {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := counts[t]; !ok {
			order = append(order, t)
		}
		counts[t]++
	}
	quotes := make([]Quote, len(order))
	for i, t := range order {
		quotes[i] = Quote{Text: t, Count: counts[t]}
	}
	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].Count > quotes[j].Count
	})
	if n >= 0 && len(quotes) > n {
		quotes = quotes[:n]
	}
	return quotes
}
