// Package goquery provides a goquery-based implementation of
// seogap.Extractor. It turns raw HTML into the comparable Page structure:
// metadata, headings, heading-delimited sections, JSON-LD blocks,
// internal links, image alt texts, FAQ pairs, and visible text.
package goquery

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/seogap"
	"golang.org/x/net/html"
)

// Extraction caps. Pages with hundreds of sections or FAQ blocks are
// almost always template noise; capping keeps comparisons meaningful.
const (
	maxSections      = 80
	maxFAQCandidates = 5
	maxFAQs          = 30
)

// Ensure Extractor implements seogap.Extractor at compile time.
var _ seogap.Extractor = (*Extractor)(nil)

// Extractor extracts comparable page structure from HTML using goquery.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses html fetched from pageURL and returns the extracted page.
// Returns EINVALID if the HTML cannot be parsed or yields no visible text.
func (e *Extractor) Extract(pageURL, rawHTML string) (*seogap.Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, seogap.Errorf(seogap.EINVALID, "failed to parse HTML: %v", err)
	}

	// JSON-LD lives in script tags, so it must be read before noise removal.
	schemas := extractSchemas(doc)
	removeNoise(doc)

	page := &seogap.Page{
		URL:           pageURL,
		Meta:          extractMeta(doc),
		Headings:      extractHeadings(doc),
		Sections:      extractSections(doc),
		FAQs:          extractFAQs(doc),
		Schemas:       schemas,
		InternalLinks: extractInternalLinks(doc, pageURL),
		AltTexts:      extractAltTexts(doc),
	}

	page.Text = documentText(doc)
	if page.Text == "" {
		return nil, seogap.Errorf(seogap.EINVALID, "no visible text extracted from %s", pageURL)
	}
	page.WordCount = len(seogap.Tokenize(page.Text))

	return page, nil
}

// removeNoise strips elements that carry no visible content plus elements
// hidden via inline styles.
func removeNoise(doc *goquery.Document) {
	doc.Find("script, style, noscript, svg, canvas").Remove()
	doc.Find("[style]").Each(func(_ int, sel *goquery.Selection) {
		style := strings.ToLower(sel.AttrOr("style", ""))
		if strings.Contains(style, "display:none") || strings.Contains(style, "visibility:hidden") {
			sel.Remove()
		}
	})
}

// extractMeta pulls title, meta description, and canonical URL.
func extractMeta(doc *goquery.Document) seogap.Meta {
	meta := seogap.Meta{
		Title: seogap.CleanText(doc.Find("title").First().Text()),
	}

	doc.Find("meta[name]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if !strings.EqualFold(sel.AttrOr("name", ""), "description") {
			return true
		}
		if content := sel.AttrOr("content", ""); content != "" {
			meta.Description = seogap.CleanText(content)
			return false
		}
		return true
	})

	doc.Find("link[rel]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if !strings.Contains(strings.ToLower(sel.AttrOr("rel", "")), "canonical") {
			return true
		}
		if href := sel.AttrOr("href", ""); href != "" {
			meta.Canonical = seogap.CleanText(href)
			return false
		}
		return true
	})

	return meta
}

// extractHeadings collects h1-h6 texts by level in document order.
func extractHeadings(doc *goquery.Document) map[int][]string {
	headings := make(map[int][]string, 6)
	selectors := []string{"h1", "h2", "h3", "h4", "h5", "h6"}
	for i, selector := range selectors {
		level := i + 1
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			if t := seogap.CleanText(selectionText(sel)); t != "" {
				headings[level] = append(headings[level], t)
			}
		})
	}
	return headings
}

// extractSections builds content blocks by walking h1-h3 headings and
// capturing sibling text until the next h1-h3. The output is a
// deterministic, comparable view of how the page is sectioned. Very thin
// sections (short body and short heading) are dropped as template noise.
func extractSections(doc *goquery.Document) []seogap.Section {
	var sections []seogap.Section

	doc.Find("h1, h2, h3").Each(func(_ int, sel *goquery.Selection) {
		if len(sel.Nodes) == 0 {
			return
		}
		node := sel.Nodes[0]

		title := seogap.CleanText(selectionText(sel))
		if title == "" {
			return
		}

		var parts []string
		for sib := node.NextSibling; sib != nil; sib = sib.NextSibling {
			if isHeadingNode(sib) {
				break
			}
			txt := seogap.CleanText(nodeText(sib))
			if len(txt) > 20 {
				parts = append(parts, txt)
			}
		}

		body := seogap.CleanText(strings.Join(parts, " "))
		if len(body) > 60 || len(title) > 10 {
			sections = append(sections, seogap.Section{
				Level:   headingLevel(node),
				Heading: title,
				Text:    body,
			})
		}
	})

	if len(sections) > maxSections {
		sections = sections[:maxSections]
	}
	return sections
}

func isHeadingNode(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.Data {
	case "h1", "h2", "h3":
		return true
	}
	return false
}

func headingLevel(n *html.Node) int {
	switch n.Data {
	case "h1":
		return 1
	case "h2":
		return 2
	default:
		return 3
	}
}

// extractSchemas parses JSON-LD script blocks. Blocks that fail to parse
// (multiple objects, trailing commas) are kept with their raw text so the
// page still registers as carrying schema markup.
func extractSchemas(doc *goquery.Document) []any {
	var schemas []any
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		txt := strings.TrimSpace(sel.Text())
		if txt == "" {
			return
		}
		var data any
		if err := json.Unmarshal([]byte(txt), &data); err != nil {
			schemas = append(schemas, map[string]any{"_raw": txt})
			return
		}
		schemas = append(schemas, data)
	})
	return schemas
}

// extractInternalLinks collects links resolving to the same host as the
// page URL, with their anchor texts.
func extractInternalLinks(doc *goquery.Document, pageURL string) []seogap.Link {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil
	}
	baseHost := strings.ToLower(base.Host)

	var links []seogap.Link
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href := sel.AttrOr("href", "")
		if href == "" || isNonHTTPLink(href) {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref)
		if !strings.EqualFold(resolved.Host, baseHost) {
			return
		}

		links = append(links, seogap.Link{
			URL:    resolved.String(),
			Anchor: seogap.CleanText(selectionText(sel)),
		})
	})
	return links
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}

// extractAltTexts collects non-empty image alt attributes.
func extractAltTexts(doc *goquery.Document) []string {
	var alts []string
	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		if alt := seogap.CleanText(sel.AttrOr("alt", "")); alt != "" {
			alts = append(alts, alt)
		}
	})
	return alts
}

// extractFAQs detects question/answer pairs in the DOM. It first looks for
// containers with "faq" in their id or class, then falls back to common
// accordion patterns. Questions come from h3/h4/button elements; the
// answer is the text of the following sibling (or the parent's following
// sibling for nested accordion markup). Pairs with trivially short
// answers are discarded.
func extractFAQs(doc *goquery.Document) []seogap.FAQ {
	candidates := doc.Find(`[class*="faq"], [id*="faq"], [class*="FAQ"], [id*="FAQ"]`)
	if candidates.Length() == 0 {
		candidates = doc.Find("section, div").FilterFunction(func(_ int, sel *goquery.Selection) bool {
			class := strings.ToLower(sel.AttrOr("class", ""))
			return strings.Contains(class, "accordion") ||
				strings.Contains(class, "toggle") ||
				strings.Contains(class, "collapse")
		})
	}

	var faqs []seogap.FAQ

	candidates.Slice(0, min(candidates.Length(), maxFAQCandidates)).Each(func(_ int, candidate *goquery.Selection) {
		candidate.Find("h3, h4, button").Each(func(_ int, q *goquery.Selection) {
			question := seogap.CleanText(selectionText(q))
			if len(question) < 6 {
				return
			}

			answer := seogap.CleanText(selectionText(q.Next()))
			if answer == "" {
				answer = seogap.CleanText(selectionText(q.Parent().Next()))
			}
			if len(answer) <= 20 {
				return
			}

			// Accordion markup repeats questions (button + heading for the
			// same pair), often with small phrasing differences.
			for _, existing := range faqs {
				if seogap.FuzzyEquivalent(existing.Question, question) {
					return
				}
			}

			faqs = append(faqs, seogap.FAQ{Question: question, Answer: answer})
		})
	})

	if len(faqs) > maxFAQs {
		faqs = faqs[:maxFAQs]
	}
	return faqs
}

// documentText returns the visible text of the whole document with word
// boundaries preserved between elements.
func documentText(doc *goquery.Document) string {
	var sb strings.Builder
	for _, n := range doc.Selection.Nodes {
		collectText(n, &sb)
	}
	return seogap.CleanText(sb.String())
}

// selectionText is like goquery's Text but inserts spaces between text
// nodes so that adjacent elements don't run words together.
func selectionText(sel *goquery.Selection) string {
	var sb strings.Builder
	for _, n := range sel.Nodes {
		collectText(n, &sb)
	}
	return sb.String()
}

// nodeText returns the text of a single node subtree with spaces between
// text nodes.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	collectText(n, &sb)
	return sb.String()
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			sb.WriteString(t)
			sb.WriteByte(' ')
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
