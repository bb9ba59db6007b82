// Package seogap provides a CLI tool for on-page SEO gap analysis.
// It fetches a target page and a set of competitor pages, extracts
// comparable structure (headings, sections, schema markup, links, FAQs),
// and reports structural, technical, and content-depth gaps alongside
// keyword density and competitor term frequency.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, rod/).
package seogap
