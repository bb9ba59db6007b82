package mock

import "github.com/fwojciec/seogap"

var _ seogap.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of seogap.Extractor.
type Extractor struct {
	ExtractFn func(pageURL, html string) (*seogap.Page, error)
}

func (e *Extractor) Extract(pageURL, html string) (*seogap.Page, error) {
	return e.ExtractFn(pageURL, html)
}
