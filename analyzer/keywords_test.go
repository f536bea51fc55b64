package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		n     int
		want  []string
	}{
		{name: "nil input", texts: nil, n: 10, want: []string{}},
		{name: "only blanks", texts: []string{"", "   ", "\t"}, n: 10, want: []string{}},
		{name: "only stopwords", texts: []string{"the and", "of it"}, n: 10, want: []string{}},
		{name: "zero n", texts: []string{"great class"}, n: 0, want: []string{}},
		{
			name:  "single document ties break alphabetically",
			texts: []string{"zebra apple mango"},
			n:     2,
			want:  []string{"apple", "mango"},
		},
		{
			name:  "repeated term ranks first",
			texts: []string{"labs labs labs", "labs lectures", "homework"},
			n:     1,
			want:  []string{"labs"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractKeywords(tt.texts, tt.n))
		})
	}
}

func TestExtractKeywordsFeedbackColumn(t *testing.T) {
	got := ExtractKeywords([]string{"Great class!", "Great class!", "Needs more examples"}, 10)
	require.NotEmpty(t, got)
	assert.ElementsMatch(t, []string{"great", "class", "needs", "examples"}, got)
	assert.NotContains(t, got, "more")
}

func TestExtractKeywordsLimitsResult(t *testing.T) {
	got := ExtractKeywords([]string{"alpha beta gamma delta epsilon zeta eta theta iota kappa lambda"}, 10)
	assert.Len(t, got, 10)
}

func TestTokenizeAndStopWords(t *testing.T) {
	assert.Equal(t, []string{"great", "class", "it", "was"}, Tokenize("Great class! It was a"))
	assert.True(t, IsStopWord("the"))
	assert.True(t, IsStopWord("a"))
	assert.False(t, IsStopWord("class"))
	assert.Equal(t, []string{"great", "class"}, contentTokens("Great class! It was a"))
}
