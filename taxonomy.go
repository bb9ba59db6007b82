package seogap

import "regexp"

// BucketOther is the bucket assigned to headings that match no taxonomy rule.
const BucketOther = "other"

// BucketRule maps a set of heading patterns to a named section bucket.
// Patterns are matched against normalized (lowercased, whitespace-collapsed)
// heading text.
type BucketRule struct {
	Bucket   string
	Patterns []*regexp.Regexp
}

// Taxonomy classifies section headings into comparable buckets.
// Rules are evaluated in order; the first matching pattern wins.
type Taxonomy struct {
	Rules []BucketRule
}

// RuleDef is an uncompiled taxonomy rule.
type RuleDef struct {
	Bucket   string
	Patterns []string
}

// NewTaxonomy compiles rule definitions into a taxonomy, preserving rule
// order. Returns EINVALID if any pattern fails to compile.
func NewTaxonomy(rules []RuleDef) (*Taxonomy, error) {
	t := &Taxonomy{}
	for _, r := range rules {
		compiled := make([]*regexp.Regexp, 0, len(r.Patterns))
		for _, p := range r.Patterns {
			re, err := regexp.Compile(p)
			if err != nil {
				return nil, Errorf(EINVALID, "invalid pattern %q for bucket %q: %v", p, r.Bucket, err)
			}
			compiled = append(compiled, re)
		}
		t.Rules = append(t.Rules, BucketRule{Bucket: r.Bucket, Patterns: compiled})
	}
	return t, nil
}

// Bucket returns the bucket for a heading, or BucketOther when no rule matches.
func (t *Taxonomy) Bucket(heading string) string {
	h := NormalizeText(heading)
	for _, rule := range t.Rules {
		for _, re := range rule.Patterns {
			if re.MatchString(h) {
				return rule.Bucket
			}
		}
	}
	return BucketOther
}

// Buckets returns the bucket names in rule order, excluding BucketOther.
func (t *Taxonomy) Buckets() []string {
	names := make([]string, 0, len(t.Rules))
	for _, rule := range t.Rules {
		names = append(names, rule.Bucket)
	}
	return names
}

// NormalizePage assigns a bucket to every section of the page.
// It mutates the page in place and returns it for chaining.
func (t *Taxonomy) NormalizePage(page *Page) *Page {
	for i := range page.Sections {
		page.Sections[i].Bucket = t.Bucket(page.Sections[i].Heading)
	}
	return page
}

// DefaultTaxonomy returns the built-in section taxonomy covering the
// buckets local-service pages commonly share. Niche-specific synonyms
// can be layered on via a custom taxonomy file.
func DefaultTaxonomy() *Taxonomy {
	mustRule := func(bucket string, patterns ...string) BucketRule {
		compiled := make([]*regexp.Regexp, 0, len(patterns))
		for _, p := range patterns {
			compiled = append(compiled, regexp.MustCompile(p))
		}
		return BucketRule{Bucket: bucket, Patterns: compiled}
	}

	return &Taxonomy{Rules: []BucketRule{
		mustRule("about_team",
			`meet (the|our) (doctor|dentist|dentists|team)`,
			`about (the )?team`,
			`our team`,
			`who we are`),
		mustRule("testimonials",
			`testimonials`,
			`reviews`,
			`patient stories`,
			`client stories`,
			`what (clients|patients) say`),
		mustRule("services",
			`services`,
			`what we offer`,
			`treatments`,
			`solutions`,
			`service areas?`),
		mustRule("faq",
			`faq`,
			`frequently asked`,
			`questions`),
		mustRule("pricing",
			`pricing`,
			`fees`,
			`cost`,
			`plans`),
		mustRule("why_choose_us",
			`why choose us`,
			`why us`,
			`our difference`,
			`what makes us`),
		mustRule("contact",
			`contact`,
			`book (now|online)`,
			`get in touch`,
			`request (a )?quote`),
	}}
}
