package analyze

import (
	"sort"

	"github.com/fwojciec/seogap"
)

// DefaultTopTerms is the default size of the semantic term list.
const DefaultTopTerms = 60

// SemanticTerms returns the topN most frequent tokens across the
// competitor texts. Stopwords and short tokens are already excluded by
// tokenization; what remains approximates the vocabulary competitors
// emphasize, surfacing terms the target page may be missing.
// Ties break alphabetically so output is deterministic.
func SemanticTerms(texts []string, topN int) []seogap.TermCount {
	if topN <= 0 {
		topN = DefaultTopTerms
	}

	counts := make(map[string]int)
	for _, text := range texts {
		for _, token := range seogap.Tokenize(text) {
			counts[token]++
		}
	}

	terms := make([]seogap.TermCount, 0, len(counts))
	for term, count := range counts {
		terms = append(terms, seogap.TermCount{Term: term, Count: count})
	}

	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Count != terms[j].Count {
			return terms[i].Count > terms[j].Count
		}
		return terms[i].Term < terms[j].Term
	})

	if len(terms) > topN {
		terms = terms[:topN]
	}
	return terms
}
