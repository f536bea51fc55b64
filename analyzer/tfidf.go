package analyzer

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Vectorizer builds a TF-IDF vector space over a document collection.
// Terms are content tokens; idf is smoothed and every row is l2-normalized.
type Vectorizer struct {
	// MaxFeatures keeps only the most frequent terms when positive.
	MaxFeatures int

	vocab []string
	index map[string]int
	idf   []float64
}

// NewVectorizer constructs a vectorizer. maxFeatures <= 0 keeps every term.
func NewVectorizer(maxFeatures int) *Vectorizer {
	return &Vectorizer{MaxFeatures: maxFeatures}
}

// Vocabulary returns the fitted terms in column order.
func (v *Vectorizer) Vocabulary() []string {
	out := make([]string, len(v.vocab))
	copy(out, v.vocab)
	return out
}

// FitTransform learns the vocabulary from docs and returns one row per document.
// An empty vocabulary yields zero-length rows.
func (v *Vectorizer) FitTransform(docs []string) [][]float64 {
	tokenized := make([][]string, len(docs))
	termFreq := make(map[string]int)
	docFreq := make(map[string]int)
	for i, doc := range docs {
		tokens := contentTokens(doc)
		tokenized[i] = tokens
		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			termFreq[tok]++
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			docFreq[tok]++
		}
	}

	terms := make([]string, 0, len(termFreq))
	for term := range termFreq {
		terms = append(terms, term)
	}
	if v.MaxFeatures > 0 && len(terms) > v.MaxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			if termFreq[terms[i]] == termFreq[terms[j]] {
				return terms[i] < terms[j]
			}
			return termFreq[terms[i]] > termFreq[terms[j]]
		})
		terms = terms[:v.MaxFeatures]
	}
	sort.Strings(terms)

	v.vocab = terms
	v.index = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	n := float64(len(docs))
	for i, term := range terms {
		v.index[term] = i
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	rows := make([][]float64, len(docs))
	for i, tokens := range tokenized {
		row := make([]float64, len(terms))
		for _, tok := range tokens {
			if col, ok := v.index[tok]; ok {
				row[col]++
			}
		}
		floats.Mul(row, v.idf)
		if norm := floats.Norm(row, 2); norm > 0 {
			floats.Scale(1/norm, row)
		}
		rows[i] = row
	}
	return rows
}
