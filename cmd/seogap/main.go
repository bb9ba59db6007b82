package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/seogap"
	"github.com/fwojciec/seogap/audit"
	seogapgoquery "github.com/fwojciec/seogap/goquery"
	seogaphttp "github.com/fwojciec/seogap/http"
	"github.com/fwojciec/seogap/rod"
	seogapslog "github.com/fwojciec/seogap/slog"
	"github.com/fwojciec/seogap/sqlite"
	seogapyaml "github.com/fwojciec/seogap/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the audit history service.
	DB *sqlite.DB

	// Service exposed for end-to-end testing.
	AuditService seogap.AuditService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("seogap"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'seogap --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open the audit history database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SEOGAP_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.AuditService = sqlite.NewAuditService(m.DB)
	deps.DB = m.DB
	deps.Audits = m.AuditService

	// Wire the auditor only for the analyze command: it may launch a
	// browser, which the history commands never need.
	if cmd == "analyze" {
		auditor, closeFetcher, err := m.buildAuditor(cli.Analyze, stderr)
		if err != nil {
			return err
		}
		defer closeFetcher()
		deps.Auditor = auditor
	}

	return kongCtx.Run(deps)
}

// buildAuditor assembles the fetch/extract/analyze pipeline from the
// analyze command's flags.
func (m *Main) buildAuditor(cmd AnalyzeCmd, stderr io.Writer) (*audit.Auditor, func(), error) {
	var fetcher seogap.Fetcher
	if cmd.Render {
		rodFetcher, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
			return nil, nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = rodFetcher
	} else {
		fetcher = seogaphttp.NewFetcher()
	}

	if cmd.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		fetcher = seogapslog.NewFetcher(fetcher, logger)
	}

	taxonomy := seogap.DefaultTaxonomy()
	if cmd.Taxonomy != "" {
		var err error
		taxonomy, err = seogapyaml.LoadTaxonomy(cmd.Taxonomy)
		if err != nil {
			fetcher.Close()
			return nil, nil, fmt.Errorf("taxonomy: %s", seogap.ErrorMessage(err))
		}
	}

	var limiter seogap.DomainLimiter
	if cmd.Delay > 0 {
		limiter = audit.NewDomainLimiter(1.0 / cmd.Delay)
	}

	auditor := &audit.Auditor{
		Fetcher:     fetcher,
		Extractor:   seogapgoquery.NewExtractor(),
		Taxonomy:    taxonomy,
		RateLimiter: limiter,
		Concurrency: cmd.Concurrency,
		TopTerms:    cmd.TopTerms,
	}

	return auditor, func() { _ = fetcher.Close() }, nil
}

func defaultDBPath() string {
	if path := os.Getenv("SEOGAP_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "seogap.db"
	}
	dir := filepath.Join(home, ".seogap")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "seogap.db")
}
