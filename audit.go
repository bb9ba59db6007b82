package seogap

import (
	"context"
	"time"
)

// Audit is a persisted analysis run: the inputs plus the resulting report.
// Keeping runs around lets users track how their page's gaps evolve as
// they act on recommendations.
type Audit struct {
	ID             string    `json:"id"`
	TargetURL      string    `json:"targetUrl"`
	CompetitorURLs []string  `json:"competitorUrls"`
	Keywords       []string  `json:"keywords"`
	Report         *Report   `json:"report"`
	ReportHash     string    `json:"reportHash"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Validate returns an error if the audit contains invalid fields.
func (a *Audit) Validate() error {
	if a.TargetURL == "" {
		return Errorf(EINVALID, "audit target URL required")
	}
	if len(a.CompetitorURLs) == 0 {
		return Errorf(EINVALID, "audit requires at least one competitor URL")
	}
	if a.Report == nil {
		return Errorf(EINVALID, "audit report required")
	}
	return nil
}

// AuditService represents a service for managing stored audits.
type AuditService interface {
	// CreateAudit persists a new audit.
	CreateAudit(ctx context.Context, audit *Audit) error

	// FindAuditByID retrieves an audit by ID.
	// Returns ENOTFOUND if the audit does not exist.
	FindAuditByID(ctx context.Context, id string) (*Audit, error)

	// FindAudits retrieves audits matching the filter, newest first.
	FindAudits(ctx context.Context, filter AuditFilter) ([]*Audit, error)

	// DeleteAudit permanently removes an audit.
	// Returns ENOTFOUND if the audit does not exist.
	DeleteAudit(ctx context.Context, id string) error
}

// AuditFilter represents a filter for FindAudits.
type AuditFilter struct {
	ID        *string `json:"id"`
	TargetURL *string `json:"targetUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
