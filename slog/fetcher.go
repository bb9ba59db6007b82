// Package slog provides logging decorators for seogap interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/seogap"
)

// Ensure Fetcher implements seogap.Fetcher.
var _ seogap.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a seogap.Fetcher with structured debug logging of fetch
// timing and outcomes.
type Fetcher struct {
	next   seogap.Fetcher
	logger *slog.Logger
}

// NewFetcher creates a new logging Fetcher.
func NewFetcher(next seogap.Fetcher, logger *slog.Logger) *Fetcher {
	return &Fetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher, logging the result.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Warn("fetch failed",
			"url", url,
			"duration", time.Since(begin),
			"error", err,
		)
		return "", err
	}
	f.logger.Debug("fetch",
		"url", url,
		"duration", time.Since(begin),
		"bytes", len(html),
	)
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}
