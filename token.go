package seogap

import (
	"regexp"
	"strings"
)

// stopwords are excluded from tokenization. The list is intentionally
// small: it only needs to keep function words out of density and term
// frequency comparisons, not serve as a full linguistic stoplist.
var stopwords = map[string]struct{}{}

func init() {
	const words = `a an the and or but if then else when while for to of in on at by with from as is are was were be been being
this that these those it its you your we our they their i me my he she them his her
can could should would may might will just`
	for _, w := range strings.Fields(words) {
		stopwords[w] = struct{}{}
	}
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonTokenRe   = regexp.MustCompile(`[^a-z0-9\s\-]`)
)

// CleanText collapses runs of whitespace to single spaces and trims.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// NormalizeText is CleanText plus lowercasing. It is the canonical form
// used for heading matching and keyword comparison.
func NormalizeText(s string) string {
	return strings.ToLower(CleanText(s))
}

// Tokenize splits text into comparison tokens: lowercased, stripped of
// characters outside [a-z0-9 -], with stopwords and tokens shorter than
// three characters removed. Word counts and keyword density are both
// defined over this token stream.
func Tokenize(text string) []string {
	text = NormalizeText(text)
	text = nonTokenRe.ReplaceAllString(text, " ")

	var tokens []string
	for _, t := range strings.Fields(text) {
		if len(t) <= 2 {
			continue
		}
		if _, ok := stopwords[t]; ok {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}

// TokenSetRatio returns a similarity score in [0,100] between the token
// sets of two strings, in the spirit of fuzzy token-set matching: the
// size of the intersection relative to the smaller set. Headings like
// "Meet our Dentists" and "Meet the Dentists" score high after
// normalization even though they differ verbatim.
func TokenSetRatio(a, b string) int {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	smaller := setA
	larger := setB
	if len(setB) < len(setA) {
		smaller, larger = setB, setA
	}

	var common int
	for t := range smaller {
		if _, ok := larger[t]; ok {
			common++
		}
	}
	return common * 100 / len(smaller)
}

// FuzzyEquivalent reports whether two headings are close enough to be
// treated as the same section title. The threshold of 88 catches phrasing
// variants while keeping genuinely different headings apart.
func FuzzyEquivalent(a, b string) bool {
	return TokenSetRatio(a, b) >= 88
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range strings.Fields(NormalizeText(s)) {
		set[t] = struct{}{}
	}
	return set
}
