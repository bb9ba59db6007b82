package seogap

import "math"

// PageSummary is the comparable structural digest of a page. Gap rules
// operate on summaries rather than full pages.
type PageSummary struct {
	URL             string `json:"url"`
	Title           string `json:"title"`
	MetaDescription string `json:"metaDescription"`
	Canonical       string `json:"canonical"`

	H1Count int `json:"h1Count"`
	H2Count int `json:"h2Count"`
	H3Count int `json:"h3Count"`

	// BucketCounts maps section bucket to the number of sections assigned
	// to it. The "other" bucket is included but never drives a gap.
	BucketCounts map[string]int `json:"bucketCounts"`

	WordCount         int `json:"wordCount"`
	InternalLinkCount int `json:"internalLinkCount"`
	ImageAltCount     int `json:"imageAltCount"`
	FAQCount          int `json:"faqCount"`

	HasFAQSchema           bool `json:"hasFaqSchema"`
	HasOrgSchema           bool `json:"hasOrgSchema"`
	HasLocalBusinessSchema bool `json:"hasLocalBusinessSchema"`
}

// Summarize digests a normalized page into its comparable summary.
// The page must have been through taxonomy normalization for bucket
// counts to be meaningful.
func Summarize(page *Page) PageSummary {
	buckets := make(map[string]int)
	for _, s := range page.Sections {
		bucket := s.Bucket
		if bucket == "" {
			bucket = BucketOther
		}
		buckets[bucket]++
	}

	return PageSummary{
		URL:             page.URL,
		Title:           page.Meta.Title,
		MetaDescription: page.Meta.Description,
		Canonical:       page.Meta.Canonical,

		H1Count: len(page.Headings[1]),
		H2Count: len(page.Headings[2]),
		H3Count: len(page.Headings[3]),

		BucketCounts: buckets,

		WordCount:         page.WordCount,
		InternalLinkCount: len(page.InternalLinks),
		ImageAltCount:     len(page.AltTexts),
		FAQCount:          len(page.FAQs),

		HasFAQSchema:           schemasHaveType(page.Schemas, "FAQPage"),
		HasOrgSchema:           schemasHaveType(page.Schemas, "Organization"),
		HasLocalBusinessSchema: schemasHaveAnyType(page.Schemas, LocalBusinessTypes),
	}
}

// Averages holds per-metric means across a competitor set. Boolean schema
// signals become shares in [0,1] (the fraction of competitors carrying
// the signal).
type Averages struct {
	H1Count           float64 `json:"h1Count"`
	H2Count           float64 `json:"h2Count"`
	H3Count           float64 `json:"h3Count"`
	WordCount         float64 `json:"wordCount"`
	InternalLinkCount float64 `json:"internalLinkCount"`
	ImageAltCount     float64 `json:"imageAltCount"`
	FAQCount          float64 `json:"faqCount"`

	FAQSchemaShare           float64 `json:"faqSchemaShare"`
	OrgSchemaShare           float64 `json:"orgSchemaShare"`
	LocalBusinessSchemaShare float64 `json:"localBusinessSchemaShare"`

	// BucketCounts maps bucket to its mean section count per competitor.
	BucketCounts map[string]float64 `json:"bucketCounts"`
}

// Average computes per-metric means across competitor summaries.
// An empty input yields the zero value.
func Average(summaries []PageSummary) Averages {
	if len(summaries) == 0 {
		return Averages{}
	}

	n := float64(len(summaries))
	var avg Averages

	for _, s := range summaries {
		avg.H1Count += float64(s.H1Count)
		avg.H2Count += float64(s.H2Count)
		avg.H3Count += float64(s.H3Count)
		avg.WordCount += float64(s.WordCount)
		avg.InternalLinkCount += float64(s.InternalLinkCount)
		avg.ImageAltCount += float64(s.ImageAltCount)
		avg.FAQCount += float64(s.FAQCount)

		if s.HasFAQSchema {
			avg.FAQSchemaShare++
		}
		if s.HasOrgSchema {
			avg.OrgSchemaShare++
		}
		if s.HasLocalBusinessSchema {
			avg.LocalBusinessSchemaShare++
		}
	}

	avg.H1Count = Round2(avg.H1Count / n)
	avg.H2Count = Round2(avg.H2Count / n)
	avg.H3Count = Round2(avg.H3Count / n)
	avg.WordCount = Round2(avg.WordCount / n)
	avg.InternalLinkCount = Round2(avg.InternalLinkCount / n)
	avg.ImageAltCount = Round2(avg.ImageAltCount / n)
	avg.FAQCount = Round2(avg.FAQCount / n)
	avg.FAQSchemaShare = Round2(avg.FAQSchemaShare / n)
	avg.OrgSchemaShare = Round2(avg.OrgSchemaShare / n)
	avg.LocalBusinessSchemaShare = Round2(avg.LocalBusinessSchemaShare / n)

	totals := make(map[string]float64)
	for _, s := range summaries {
		for bucket, count := range s.BucketCounts {
			totals[bucket] += float64(count)
		}
	}
	avg.BucketCounts = make(map[string]float64, len(totals))
	for bucket, total := range totals {
		avg.BucketCounts[bucket] = Round2(total / n)
	}

	return avg
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round4 rounds to four decimal places. Used for density percentages,
// which are typically well below 1%.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
