package analyzer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText performs Unicode normalization and trims whitespace.
func NormalizeText(text string) string {
	normed := norm.NFKC.String(text)
	normed = strings.TrimSpace(normed)
	// Drop control characters except newlines and tabs.
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, normed)
}

// isBlank reports whether s holds no visible text.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// nonBlank returns the entries of texts that hold visible text, in order.
func nonBlank(texts []string) []string {
	out := make([]string, 0, len(texts))
	for _, t := range texts {
		if !isBlank(t) {
			out = append(out, t)
		}
	}
	return out
}
