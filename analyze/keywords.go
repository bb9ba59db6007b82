package analyze

import (
	"strings"

	"github.com/fwojciec/seogap"
)

// keywordHintRatio is the fraction of the competitor average density below
// which a keyword is flagged as underused on the target page.
const keywordHintRatio = 0.7

// underuseHint is the advice attached to underused keywords.
const underuseHint = "Increase usage in relevant sections (not stuffing)"

// Density holds a keyword's occurrence count and density percentage for
// one page.
type Density struct {
	Count int
	Pct   float64
}

// KeywordDensity computes per-keyword phrase density over the page text.
// Keywords are normalized before counting, so casing and extra whitespace
// in the input don't matter. Multi-word keywords are counted as phrases in
// the token-joined text, which tolerates punctuation and stopwords between
// occurrences having been stripped. Density is occurrences divided by the
// total token count, as a percentage.
func KeywordDensity(text string, keywords []string) map[string]Density {
	tokens := seogap.Tokenize(text)
	total := len(tokens)
	if total == 0 {
		total = 1
	}
	joined := strings.Join(tokens, " ")

	out := make(map[string]Density, len(keywords))
	for _, kw := range keywords {
		k := seogap.NormalizeText(kw)
		if k == "" {
			continue
		}
		count := strings.Count(joined, k)
		out[kw] = Density{
			Count: count,
			Pct:   seogap.Round4(float64(count) / float64(total) * 100),
		}
	}
	return out
}

// CompareKeywords builds the keyword table: target count and density per
// keyword against the competitor averages, with an underuse hint when the
// target density falls below 70% of the competitor average.
func CompareKeywords(targetText string, competitorTexts []string, keywords []string) []seogap.KeywordStat {
	if len(keywords) == 0 {
		return nil
	}

	targetDensity := KeywordDensity(targetText, keywords)

	competitorDensities := make([]map[string]Density, 0, len(competitorTexts))
	for _, text := range competitorTexts {
		competitorDensities = append(competitorDensities, KeywordDensity(text, keywords))
	}

	n := float64(len(competitorDensities))
	if n == 0 {
		n = 1
	}

	stats := make([]seogap.KeywordStat, 0, len(keywords))
	for _, kw := range keywords {
		var countSum, pctSum float64
		for _, d := range competitorDensities {
			countSum += float64(d[kw].Count)
			pctSum += d[kw].Pct
		}
		avgCount := seogap.Round2(countSum / n)
		avgPct := seogap.Round4(pctSum / n)

		stat := seogap.KeywordStat{
			Keyword:            kw,
			Count:              targetDensity[kw].Count,
			Density:            targetDensity[kw].Pct,
			CompetitorAvgCount: avgCount,
			CompetitorAvgDens:  avgPct,
		}
		if stat.Density < avgPct*keywordHintRatio {
			stat.Hint = underuseHint
		}
		stats = append(stats, stat)
	}
	return stats
}
