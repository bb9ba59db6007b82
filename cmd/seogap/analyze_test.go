package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/fwojciec/seogap"
	"github.com/fwojciec/seogap/audit"
	main "github.com/fwojciec/seogap/cmd/seogap"
	"github.com/fwojciec/seogap/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAuditor wires an auditor whose fetcher serves canned text per
// URL; unknown URLs fail to fetch.
func newTestAuditor(pages map[string]string) *audit.Auditor {
	return &audit.Auditor{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				text, ok := pages[url]
				if !ok {
					return "", seogap.Errorf(seogap.EUNAVAILABLE, "fetch %s: connection refused", url)
				}
				return text, nil
			},
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(pageURL, html string) (*seogap.Page, error) {
				return &seogap.Page{
					URL:       pageURL,
					Headings:  map[int][]string{},
					Text:      html,
					WordCount: len(seogap.Tokenize(html)),
				}, nil
			},
		},
		RetryDelays: []time.Duration{},
	}
}

func TestAnalyzeCmd_Run(t *testing.T) {
	t.Parallel()

	pages := map[string]string{
		"https://you.com/page":   "dental care overview",
		"https://comp1.com/page": "dental implants pricing guide",
	}

	t.Run("prints the report and saves the audit", func(t *testing.T) {
		t.Parallel()

		var saved *seogap.Audit
		audits := &mock.AuditService{
			CreateAuditFn: func(_ context.Context, a *seogap.Audit) error {
				a.ID = "audit-123"
				saved = a
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Audits:  audits,
			Auditor: newTestAuditor(pages),
		}

		cmd := &main.AnalyzeCmd{
			TargetURL:      "https://you.com/page",
			CompetitorURLs: []string{"https://comp1.com/page"},
			Keyword:        []string{"dental implants"},
		}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "1 competitor page(s)")
		assert.Contains(t, output, "Page summaries")
		assert.Contains(t, output, "dental implants")
		assert.Contains(t, output, "Saved audit audit-123")

		require.NotNil(t, saved)
		assert.Equal(t, "https://you.com/page", saved.TargetURL)
		assert.Equal(t, []string{"dental implants"}, saved.Keywords)
		require.NotNil(t, saved.Report)
	})

	t.Run("skips persistence with --no-save", func(t *testing.T) {
		t.Parallel()

		audits := &mock.AuditService{
			CreateAuditFn: func(_ context.Context, _ *seogap.Audit) error {
				t.Fatal("CreateAudit should not be called")
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Audits:  audits,
			Auditor: newTestAuditor(pages),
		}

		cmd := &main.AnalyzeCmd{
			TargetURL:      "https://you.com/page",
			CompetitorURLs: []string{"https://comp1.com/page"},
			NoSave:         true,
		}
		require.NoError(t, cmd.Run(deps))
		assert.NotContains(t, stdout.String(), "Saved audit")
	})

	t.Run("prints valid JSON with --json", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Audits:  &mock.AuditService{},
			Auditor: newTestAuditor(pages),
		}

		cmd := &main.AnalyzeCmd{
			TargetURL:      "https://you.com/page",
			CompetitorURLs: []string{"https://comp1.com/page"},
			NoSave:         true,
			JSON:           true,
		}
		require.NoError(t, cmd.Run(deps))

		// Progress lines precede the JSON document.
		output := stdout.String()
		start := bytes.IndexByte(stdout.Bytes(), '{')
		require.GreaterOrEqual(t, start, 0)

		var report seogap.Report
		require.NoError(t, json.Unmarshal([]byte(output[start:]), &report))
		assert.Equal(t, "https://you.com/page", report.Target.URL)
		require.Len(t, report.Competitors, 1)
	})

	t.Run("reports target fetch failure on stderr", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Audits:  &mock.AuditService{},
			Auditor: newTestAuditor(pages),
		}

		cmd := &main.AnalyzeCmd{
			TargetURL:      "https://down.com/page",
			CompetitorURLs: []string{"https://comp1.com/page"},
		}
		require.Error(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "target page")
	})

	t.Run("notes skipped competitors on stderr", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Audits:  &mock.AuditService{},
			Auditor: newTestAuditor(pages),
		}

		cmd := &main.AnalyzeCmd{
			TargetURL:      "https://you.com/page",
			CompetitorURLs: []string{"https://comp1.com/page", "https://down.com/page"},
			NoSave:         true,
		}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stderr.String(), "skip https://down.com/page")
		assert.Contains(t, stdout.String(), "Warnings")
	})
}
