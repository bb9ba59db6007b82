package main

import (
	"context"
	"io"

	"github.com/fwojciec/seogap"
	"github.com/fwojciec/seogap/audit"
	"github.com/fwojciec/seogap/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	DB      *sqlite.DB
	Audits  seogap.AuditService
	Auditor *audit.Auditor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Analyze AnalyzeCmd `cmd:"" help:"Analyze a page against competitor pages"`
	List    ListCmd    `cmd:"" help:"List stored analysis runs"`
	Show    ShowCmd    `cmd:"" help:"Show a stored analysis run"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored analysis run"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	TargetURL      string   `arg:"" name:"target-url" help:"Your page URL"`
	CompetitorURLs []string `arg:"" name:"competitor-url" help:"Competitor page URLs"`

	Keyword     []string `short:"k" help:"Target keyword to measure density for (repeatable)"`
	Delay       float64  `short:"d" default:"1.0" help:"Polite crawl delay in seconds per domain"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	Render      bool     `short:"r" help:"Render pages in a headless browser (for JS-heavy sites)"`
	Taxonomy    string   `short:"t" help:"Custom section taxonomy YAML file"`
	TopTerms    int      `default:"60" help:"Number of competitor semantic terms to report"`
	NoSave      bool     `help:"Don't store this run in the audit history"`
	JSON        bool     `help:"Print the report as JSON"`
	Verbose     bool     `short:"v" help:"Enable debug logging"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Target string `help:"Only show runs for this target URL"`
	Limit  int    `default:"20" help:"Maximum number of runs to show"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Audit ID"`
	JSON bool   `help:"Print the report as JSON"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Audit ID"`
}
