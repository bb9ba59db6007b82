// Package audit orchestrates analysis runs. It coordinates rate-limited
// fetching of the target and competitor pages, extraction and taxonomy
// normalization, and the gap heuristics, assembling everything into a
// seogap.Report.
package audit

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/fwojciec/seogap"
	"github.com/fwojciec/seogap/analyze"
	"golang.org/x/sync/errgroup"
)

// Auditor runs competitor gap analyses.
type Auditor struct {
	Fetcher     seogap.Fetcher
	Extractor   seogap.Extractor
	Taxonomy    *seogap.Taxonomy
	RateLimiter seogap.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
	TopTerms    int
}

// Request holds the inputs for one analysis run.
type Request struct {
	TargetURL      string
	CompetitorURLs []string
	Keywords       []string
}

// Validate returns an error if the request is not runnable.
func (r *Request) Validate() error {
	if r.TargetURL == "" {
		return seogap.Errorf(seogap.EINVALID, "target URL required")
	}
	if len(r.CompetitorURLs) == 0 {
		return seogap.Errorf(seogap.EINVALID, "at least one competitor URL required")
	}
	return nil
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during an analysis run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// fetchResult holds the outcome of processing a single competitor URL.
type fetchResult struct {
	position int
	url      string
	page     *seogap.Page
	err      error
}

// Run executes the analysis: fetches and extracts the target page, then
// the competitor pages concurrently, and computes the gap report.
//
// A target fetch failure aborts the run. Competitor failures become
// warnings on the report; only when every competitor fails does Run
// return an error.
func (a *Auditor) Run(ctx context.Context, req Request, progress ProgressFunc) (*seogap.Report, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	taxonomy := a.Taxonomy
	if taxonomy == nil {
		taxonomy = seogap.DefaultTaxonomy()
	}

	total := len(req.CompetitorURLs) + 1
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	target, err := a.fetchPage(ctx, req.TargetURL, taxonomy)
	if err != nil {
		return nil, seogap.Errorf(seogap.ErrorCode(err), "target page: %s", seogap.ErrorMessage(err))
	}

	var completed atomic.Int64
	completed.Add(1)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressCompleted, Completed: 1, Total: total, URL: req.TargetURL})
	}

	concurrency := a.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	resultCh := make(chan fetchResult, len(req.CompetitorURLs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range req.CompetitorURLs {
			i, u := i, u
			g.Go(func() error {
				page, err := a.fetchPage(gctx, u, taxonomy)
				resultCh <- fetchResult{position: i, url: u, page: page, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]fetchResult, len(req.CompetitorURLs))
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if progress == nil {
			continue
		}
		if result.err != nil {
			progress(ProgressEvent{
				Type:      ProgressFailed,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       result.url,
				Error:     result.err,
			})
		} else {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       result.url,
			})
		}
	}

	// Preserve input order for competitors and warnings.
	var competitors []*seogap.Page
	var warnings []seogap.Warning
	for _, result := range results {
		if result.err != nil {
			warnings = append(warnings, seogap.Warning{
				URL:     result.url,
				Message: seogap.ErrorMessage(result.err),
			})
			continue
		}
		competitors = append(competitors, result.page)
	}

	if len(competitors) == 0 {
		return nil, seogap.Errorf(seogap.EUNAVAILABLE, "all competitor fetches failed")
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return a.buildReport(target, competitors, req.Keywords, warnings), nil
}

// fetchPage fetches, extracts, and normalizes one page. The per-domain
// rate limiter (when configured) is consulted once, before the first
// attempt: one polite delay per page, not per retry.
func (a *Auditor) fetchPage(ctx context.Context, pageURL string, taxonomy *seogap.Taxonomy) (*seogap.Page, error) {
	if a.RateLimiter != nil {
		if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
			if err := a.RateLimiter.Wait(ctx, u.Host); err != nil {
				return nil, err
			}
		}
	}

	delays := a.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, pageURL, a.Fetcher.Fetch, delays)
	if err != nil {
		return nil, err
	}

	page, err := a.Extractor.Extract(pageURL, html)
	if err != nil {
		return nil, err
	}

	return taxonomy.NormalizePage(page), nil
}

// buildReport runs the heuristics over the extracted pages.
func (a *Auditor) buildReport(target *seogap.Page, competitors []*seogap.Page, keywords []string, warnings []seogap.Warning) *seogap.Report {
	targetSummary := seogap.Summarize(target)

	competitorSummaries := make([]seogap.PageSummary, 0, len(competitors))
	competitorTexts := make([]string, 0, len(competitors))
	for _, c := range competitors {
		competitorSummaries = append(competitorSummaries, seogap.Summarize(c))
		competitorTexts = append(competitorTexts, c.Text)
	}

	averages := seogap.Average(competitorSummaries)

	return &seogap.Report{
		Target:      targetSummary,
		Competitors: competitorSummaries,
		Averages:    averages,
		Gaps:        analyze.IdentifyGaps(targetSummary, averages),
		Keywords:    analyze.CompareKeywords(target.Text, competitorTexts, keywords),
		Terms:       analyze.SemanticTerms(competitorTexts, a.TopTerms),
		Warnings:    warnings,
	}
}
