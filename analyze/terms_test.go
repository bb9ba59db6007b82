package analyze_test

import (
	"testing"

	"github.com/fwojciec/seogap"
	"github.com/fwojciec/seogap/analyze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemanticTerms(t *testing.T) {
	t.Parallel()

	t.Run("counts tokens across competitors", func(t *testing.T) {
		t.Parallel()

		texts := []string{
			"invisalign invisalign whitening",
			"invisalign veneers",
		}

		terms := analyze.SemanticTerms(texts, 10)
		require.NotEmpty(t, terms)
		assert.Equal(t, seogap.TermCount{Term: "invisalign", Count: 3}, terms[0])
	})

	t.Run("ties break alphabetically", func(t *testing.T) {
		t.Parallel()

		terms := analyze.SemanticTerms([]string{"zebra apple"}, 10)
		require.Len(t, terms, 2)
		assert.Equal(t, "apple", terms[0].Term)
		assert.Equal(t, "zebra", terms[1].Term)
	})

	t.Run("respects topN", func(t *testing.T) {
		t.Parallel()

		terms := analyze.SemanticTerms([]string{"alpha beta gamma delta"}, 2)
		assert.Len(t, terms, 2)
	})

	t.Run("zero topN falls back to default", func(t *testing.T) {
		t.Parallel()

		terms := analyze.SemanticTerms([]string{"alpha beta"}, 0)
		assert.Len(t, terms, 2)
	})

	t.Run("stopwords are excluded", func(t *testing.T) {
		t.Parallel()

		terms := analyze.SemanticTerms([]string{"the best dentist in the area"}, 10)
		for _, term := range terms {
			assert.NotEqual(t, "the", term.Term)
		}
	})

	t.Run("no competitor text yields empty list", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, analyze.SemanticTerms(nil, 10))
	})
}
