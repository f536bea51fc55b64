package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractQuotes(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		n     int
		want  []Quote
	}{
		{
			name:  "counts duplicates",
			texts: []string{"a", "a", "b"},
			n:     5,
			want:  []Quote{{Text: "a", Count: 2}, {Text: "b", Count: 1}},
		},
		{
			name:  "trims and drops blanks",
			texts: []string{"  Great class! ", "", "   ", "Great class!", "Needs more examples"},
			n:     5,
			want:  []Quote{{Text: "Great class!", Count: 2}, {Text: "Needs more examples", Count: 1}},
		},
		{
			name:  "ties keep first occurrence",
			texts: []string{"z", "y", "x", "y", "z"},
			n:     5,
			want:  []Quote{{Text: "z", Count: 2}, {Text: "y", Count: 2}, {Text: "x", Count: 1}},
		},
		{
			name:  "limits to n",
			texts: []string{"a", "b", "c", "c"},
			n:     2,
			want:  []Quote{{Text: "c", Count: 2}, {Text: "a", Count: 1}},
		},
		{
			name:  "empty input",
			texts: nil,
			n:     5,
			want:  []Quote{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractQuotes(tt.texts, tt.n)
			assert.Equal(t, tt.want, got)
			for _, q := range got {
				assert.Positive(t, q.Count)
				assert.NotEmpty(t, q.Text)
			}
		})
	}
}
