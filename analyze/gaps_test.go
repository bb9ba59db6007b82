package analyze_test

import (
	"testing"

	"github.com/fwojciec/seogap"
	"github.com/fwojciec/seogap/analyze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findGap(gaps []seogap.Gap, gapType seogap.GapType, detail string) *seogap.Gap {
	for i := range gaps {
		if gaps[i].Type == gapType && gaps[i].Detail == detail {
			return &gaps[i]
		}
	}
	return nil
}

func TestIdentifyGaps_Structural(t *testing.T) {
	t.Parallel()

	t.Run("flags common bucket missing from target", func(t *testing.T) {
		t.Parallel()

		target := seogap.PageSummary{BucketCounts: map[string]int{"services": 1}}
		avg := seogap.Averages{BucketCounts: map[string]float64{
			"services":     1.5,
			"testimonials": 1.0,
		}}

		gaps := analyze.IdentifyGaps(target, avg)

		gap := findGap(gaps, seogap.GapStructural, "Missing section bucket: testimonials")
		require.NotNil(t, gap)
		assert.Equal(t, seogap.ConfidenceHigh, gap.Confidence)
		assert.Equal(t, 1.0, gap.CompetitorAvg)
		assert.Equal(t, 0.0, gap.Yours)
		assert.Contains(t, gap.Action, "Reviews/Testimonials")

		// services is present on the target, so no gap
		assert.Nil(t, findGap(gaps, seogap.GapStructural, "Missing section bucket: services"))
	})

	t.Run("uncommon buckets don't trigger", func(t *testing.T) {
		t.Parallel()

		target := seogap.PageSummary{BucketCounts: map[string]int{}}
		avg := seogap.Averages{BucketCounts: map[string]float64{"pricing": 0.5}}

		assert.Empty(t, analyze.IdentifyGaps(target, avg))
	})

	t.Run("other bucket never triggers", func(t *testing.T) {
		t.Parallel()

		target := seogap.PageSummary{BucketCounts: map[string]int{}}
		avg := seogap.Averages{BucketCounts: map[string]float64{seogap.BucketOther: 5.0}}

		assert.Empty(t, analyze.IdentifyGaps(target, avg))
	})

	t.Run("ordering is deterministic", func(t *testing.T) {
		t.Parallel()

		target := seogap.PageSummary{BucketCounts: map[string]int{}}
		avg := seogap.Averages{BucketCounts: map[string]float64{
			"services":     1.0,
			"contact":      1.0,
			"testimonials": 1.0,
		}}

		gaps := analyze.IdentifyGaps(target, avg)
		require.Len(t, gaps, 3)
		assert.Equal(t, "Missing section bucket: contact", gaps[0].Detail)
		assert.Equal(t, "Missing section bucket: services", gaps[1].Detail)
		assert.Equal(t, "Missing section bucket: testimonials", gaps[2].Detail)
	})
}

func TestIdentifyGaps_Technical(t *testing.T) {
	t.Parallel()

	t.Run("flags schema most competitors carry", func(t *testing.T) {
		t.Parallel()

		target := seogap.PageSummary{}
		avg := seogap.Averages{FAQSchemaShare: 0.75, OrgSchemaShare: 0.5}

		gaps := analyze.IdentifyGaps(target, avg)

		gap := findGap(gaps, seogap.GapTechnical, "Missing FAQ schema")
		require.NotNil(t, gap)
		assert.Equal(t, seogap.ConfidenceHigh, gap.Confidence)
		assert.Equal(t, 0.75, gap.CompetitorAvg)

		// Only half the competitors carry Organization schema
		assert.Nil(t, findGap(gaps, seogap.GapTechnical, "Missing Organization schema"))
	})

	t.Run("present schema doesn't trigger", func(t *testing.T) {
		t.Parallel()

		target := seogap.PageSummary{HasLocalBusinessSchema: true}
		avg := seogap.Averages{LocalBusinessSchemaShare: 1.0}

		assert.Empty(t, analyze.IdentifyGaps(target, avg))
	})
}

func TestIdentifyGaps_Depth(t *testing.T) {
	t.Parallel()

	t.Run("flags metrics well below average", func(t *testing.T) {
		t.Parallel()

		target := seogap.PageSummary{WordCount: 500, InternalLinkCount: 10, FAQCount: 4}
		avg := seogap.Averages{WordCount: 1000, InternalLinkCount: 12, FAQCount: 5}

		gaps := analyze.IdentifyGaps(target, avg)

		wordGap := findGap(gaps, seogap.GapDepth, "Below competitor average: Content depth (word count)")
		require.NotNil(t, wordGap)
		assert.Equal(t, seogap.ConfidenceMedium, wordGap.Confidence)
		assert.Equal(t, 1000.0, wordGap.CompetitorAvg)
		assert.Equal(t, 500.0, wordGap.Yours)

		// 10 >= 12*0.65 and 4 >= 5*0.65: no link or FAQ gap
		assert.Nil(t, findGap(gaps, seogap.GapDepth, "Below competitor average: Internal links"))
		assert.Nil(t, findGap(gaps, seogap.GapDepth, "Below competitor average: FAQ coverage"))
	})

	t.Run("zero competitor average doesn't trigger", func(t *testing.T) {
		t.Parallel()

		target := seogap.PageSummary{}
		avg := seogap.Averages{}

		assert.Empty(t, analyze.IdentifyGaps(target, avg))
	})
}

func TestIdentifyGaps_NoGaps(t *testing.T) {
	t.Parallel()

	target := seogap.PageSummary{
		WordCount:    1200,
		FAQCount:     6,
		HasFAQSchema: true,
		BucketCounts: map[string]int{"services": 1, "faq": 1},
	}
	avg := seogap.Averages{
		WordCount:      1000,
		FAQCount:       5,
		FAQSchemaShare: 1.0,
		BucketCounts:   map[string]float64{"services": 1.0, "faq": 1.0},
	}

	assert.Empty(t, analyze.IdentifyGaps(target, avg))
}
