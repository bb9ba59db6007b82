package analyze

import (
	"fmt"
	"sort"

	"github.com/fwojciec/seogap"
)

// Rule thresholds. Structural gaps require the bucket to be near-universal
// among competitors; technical gaps require a solid majority; depth gaps
// trigger when the target falls well below the average rather than at it.
const (
	structuralAvgThreshold = 0.8
	technicalShareFloor    = 0.6
	depthShortfallRatio    = 0.65
)

// IdentifyGaps runs the structural, technical, and depth rules against a
// target summary and the competitor averages. The returned slice is empty
// when no rule fires.
func IdentifyGaps(target seogap.PageSummary, avg seogap.Averages) []seogap.Gap {
	var gaps []seogap.Gap
	gaps = append(gaps, structuralGaps(target, avg)...)
	gaps = append(gaps, technicalGaps(target, avg)...)
	gaps = append(gaps, depthGaps(target, avg)...)
	return gaps
}

// structuralGaps flags section buckets that competitors commonly carry
// (average count >= 0.8 per page) and the target lacks entirely. The
// catch-all "other" bucket never counts as a gap.
func structuralGaps(target seogap.PageSummary, avg seogap.Averages) []seogap.Gap {
	// Sort bucket names for deterministic report ordering.
	buckets := make([]string, 0, len(avg.BucketCounts))
	for bucket := range avg.BucketCounts {
		buckets = append(buckets, bucket)
	}
	sort.Strings(buckets)

	var gaps []seogap.Gap
	for _, bucket := range buckets {
		avgCount := avg.BucketCounts[bucket]
		if bucket == seogap.BucketOther || avgCount < structuralAvgThreshold {
			continue
		}
		if target.BucketCounts[bucket] > 0 {
			continue
		}
		gaps = append(gaps, seogap.Gap{
			Type:          seogap.GapStructural,
			Detail:        fmt.Sprintf("Missing section bucket: %s", bucket),
			Why:           "Competitors commonly include this section; it often improves relevance, trust, or conversions.",
			Action:        bucketAction(bucket),
			CompetitorAvg: avgCount,
			Yours:         0,
			Confidence:    seogap.ConfidenceHigh,
		})
	}
	return gaps
}

// technicalGaps flags schema signals present on at least 60% of
// competitors but absent from the target.
func technicalGaps(target seogap.PageSummary, avg seogap.Averages) []seogap.Gap {
	checks := []struct {
		label string
		share float64
		has   bool
	}{
		{"FAQ schema", avg.FAQSchemaShare, target.HasFAQSchema},
		{"Organization schema", avg.OrgSchemaShare, target.HasOrgSchema},
		{"LocalBusiness/Service schema", avg.LocalBusinessSchemaShare, target.HasLocalBusinessSchema},
	}

	var gaps []seogap.Gap
	for _, c := range checks {
		if c.share < technicalShareFloor || c.has {
			continue
		}
		gaps = append(gaps, seogap.Gap{
			Type:          seogap.GapTechnical,
			Detail:        fmt.Sprintf("Missing %s", c.label),
			Why:           "If most competitors implement it, adding it can strengthen entity signals and eligibility for rich results (where applicable).",
			Action:        fmt.Sprintf("Add %s in JSON-LD (validate with Schema.org validator).", c.label),
			CompetitorAvg: c.share,
			Yours:         0,
			Confidence:    seogap.ConfidenceHigh,
		})
	}
	return gaps
}

// depthGaps flags count metrics where the target sits below 65% of the
// competitor average.
func depthGaps(target seogap.PageSummary, avg seogap.Averages) []seogap.Gap {
	checks := []struct {
		label  string
		action string
		yours  int
		avg    float64
	}{
		{
			label:  "Content depth (word count)",
			action: "Expand content with niche-relevant explanations, processes, and location intent.",
			yours:  target.WordCount,
			avg:    avg.WordCount,
		},
		{
			label:  "Internal links",
			action: "Add relevant internal links to supporting service pages, location pages, and proof pages (reviews/case studies).",
			yours:  target.InternalLinkCount,
			avg:    avg.InternalLinkCount,
		},
		{
			label:  "FAQ coverage",
			action: "Add 4-8 FAQs matching high-intent queries (pricing, timeline, emergency, insurance, service areas).",
			yours:  target.FAQCount,
			avg:    avg.FAQCount,
		},
	}

	var gaps []seogap.Gap
	for _, c := range checks {
		if c.avg <= 0 || float64(c.yours) >= c.avg*depthShortfallRatio {
			continue
		}
		gaps = append(gaps, seogap.Gap{
			Type:          seogap.GapDepth,
			Detail:        fmt.Sprintf("Below competitor average: %s", c.label),
			Why:           "Competitors provide more supporting content; this often correlates with better topical coverage and rankings.",
			Action:        c.action,
			CompetitorAvg: c.avg,
			Yours:         float64(c.yours),
			Confidence:    seogap.ConfidenceMedium,
		})
	}
	return gaps
}

// bucketActions are the recommended fixes per structural bucket.
var bucketActions = map[string]string{
	"about_team":    "Add an About/Team section. Include credentials, experience, approach, and photos. Use niche + location terms naturally.",
	"testimonials":  "Add Reviews/Testimonials. Include short snippets, star ratings (without review schema abuse), and outcomes.",
	"services":      "Add a Services/What We Offer section with clear sub-services and internal links to dedicated pages.",
	"faq":           "Add an FAQ section and expand accordions. Target long-tail questions users search before booking.",
	"pricing":       "Add Pricing/Fees guidance (even ranges) + what affects price. Users and Google love clarity.",
	"why_choose_us": "Add Why Choose Us with 5-7 differentiators tied to outcomes, trust, and process.",
	"contact":       "Improve conversion block: clear CTA, phone, booking link, service area coverage, opening hours (if relevant).",
}

func bucketAction(bucket string) string {
	if action, ok := bucketActions[bucket]; ok {
		return action
	}
	return "Add/Improve this section based on competitor patterns and search intent."
}
