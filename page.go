package seogap

import "context"

// Meta holds the head-level metadata of a fetched page.
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Canonical   string `json:"canonical"`
}

// Section represents a heading-delimited content block.
// Level is the heading level (1-3), Text is the body captured until the
// next heading, and Bucket is the normalized section category assigned
// by taxonomy matching ("other" when nothing matches).
type Section struct {
	Level   int    `json:"level"`
	Heading string `json:"heading"`
	Text    string `json:"text"`
	Bucket  string `json:"bucket"`
}

// FAQ is a question/answer pair detected in page markup.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Link is an internal link with its anchor text.
type Link struct {
	URL    string `json:"url"`
	Anchor string `json:"anchor"`
}

// Page represents the extracted, comparable form of a fetched web page.
type Page struct {
	URL string `json:"url"`

	Meta Meta `json:"meta"`

	// Headings maps heading level (1-6) to heading texts in document order.
	Headings map[int][]string `json:"headings"`

	// Sections are heading-delimited content blocks (h1-h3 only).
	Sections []Section `json:"sections"`

	// FAQs are question/answer pairs detected in the DOM.
	FAQs []FAQ `json:"faqs"`

	// Schemas holds parsed JSON-LD blocks. Blocks that fail to parse are
	// kept as map[string]any{"_raw": text} so their presence still counts.
	Schemas []any `json:"schemas"`

	// InternalLinks are links resolving to the same host as the page URL.
	InternalLinks []Link `json:"internalLinks"`

	// AltTexts are non-empty img alt attributes.
	AltTexts []string `json:"altTexts"`

	// Text is the visible page text with noise elements removed.
	Text string `json:"text"`

	// WordCount is the token count of Text (see Tokenize).
	WordCount int `json:"wordCount"`
}

// Fetcher retrieves HTML from URLs.
// Implementations may use plain HTTP or browser automation to handle
// JavaScript-rendered content.
type Fetcher interface {
	// Fetch retrieves the HTML document at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// Extractor turns raw HTML into a comparable Page.
// Section buckets are left unassigned; taxonomy matching happens in a
// separate normalization step so custom taxonomies can be applied.
type Extractor interface {
	// Extract parses html fetched from pageURL. pageURL is needed to
	// resolve relative links and classify them as internal.
	Extract(pageURL, html string) (*Page, error)
}
