package seogap

// GapType classifies a detected gap.
type GapType string

// Gap type constants.
const (
	GapStructural GapType = "structural"
	GapTechnical  GapType = "technical"
	GapDepth      GapType = "depth"
)

// Confidence expresses how reliable a gap rule is.
type Confidence string

// Confidence constants. Structural and technical rules are high
// confidence (set membership), depth rules are medium (threshold-based).
const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
)

// Gap is a single actionable finding from the rule engine.
type Gap struct {
	Type          GapType    `json:"type"`
	Detail        string     `json:"detail"`
	Why           string     `json:"why"`
	Action        string     `json:"action"`
	CompetitorAvg float64    `json:"competitorAvg"`
	Yours         float64    `json:"yours"`
	Confidence    Confidence `json:"confidence"`
}

// KeywordStat compares a keyword's usage on the target page against the
// competitor average. Density values are percentages of the token count.
type KeywordStat struct {
	Keyword            string  `json:"keyword"`
	Count              int     `json:"count"`
	Density            float64 `json:"density"`
	CompetitorAvgCount float64 `json:"competitorAvgCount"`
	CompetitorAvgDens  float64 `json:"competitorAvgDensity"`

	// Hint is non-empty when the target density falls below 70% of the
	// competitor average, suggesting the keyword is underused.
	Hint string `json:"hint,omitempty"`
}

// TermCount is a token and its frequency across competitor text.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// Warning records a URL that could not be analyzed. Competitor fetch
// failures are warnings, not errors: the run continues with the rest.
type Warning struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// Report is the complete outcome of one analysis run.
type Report struct {
	Target      PageSummary   `json:"target"`
	Competitors []PageSummary `json:"competitors"`
	Averages    Averages      `json:"averages"`
	Gaps        []Gap         `json:"gaps"`
	Keywords    []KeywordStat `json:"keywords,omitempty"`
	Terms       []TermCount   `json:"terms"`
	Warnings    []Warning     `json:"warnings,omitempty"`
}
