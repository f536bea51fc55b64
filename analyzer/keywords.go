package analyzer

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// ExtractKeywords returns the n terms with the highest TF-IDF weight summed
// across all texts. Blank texts are ignored; no usable text yields an empty slice.
func ExtractKeywords(texts []string, n int) []string {
	return extractKeywords(texts, n, 1000)
}

func extractKeywords(texts []string, n, maxFeatures int) []string {
	docs := nonBlank(texts)
	if len(docs) == 0 || n <= 0 {
		return []string{}
	}
	vec := NewVectorizer(maxFeatures)
	rows := vec.FitTransform(docs)
	vocab := vec.Vocabulary()
	if len(vocab) == 0 {
		return []string{}
	}
	weights := make([]float64, len(vocab))
	for _, row := range rows {
		floats.Add(weights, row)
	}
	order := make([]int, len(vocab))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return weights[order[i]] > weights[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}
	out := make([]string, len(order))
	for i, idx := range order {
		out[i] = vocab[idx]
	}
	return out
}
