package analyzer

import (
	"regexp"
	"strings"
)

// A token is a maximal run of two or more word characters.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}\p{M}_]{2,}`)

// Tokenize lowercases text and splits it into word tokens. Stopwords are kept.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(NormalizeText(text)), -1)
}

// contentTokens tokenizes text and drops English stopwords.
func contentTokens(text string) []string {
	tokens := Tokenize(text)
	out := tokens[:0]
	for _, tok := range tokens {
		if !IsStopWord(tok) {
			out = append(out, tok)
		}
	}
	return out
}
