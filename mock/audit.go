package mock

import (
	"context"

	"github.com/fwojciec/seogap"
)

var _ seogap.AuditService = (*AuditService)(nil)

// AuditService is a mock implementation of seogap.AuditService.
type AuditService struct {
	CreateAuditFn   func(ctx context.Context, audit *seogap.Audit) error
	FindAuditByIDFn func(ctx context.Context, id string) (*seogap.Audit, error)
	FindAuditsFn    func(ctx context.Context, filter seogap.AuditFilter) ([]*seogap.Audit, error)
	DeleteAuditFn   func(ctx context.Context, id string) error
}

func (s *AuditService) CreateAudit(ctx context.Context, audit *seogap.Audit) error {
	return s.CreateAuditFn(ctx, audit)
}

func (s *AuditService) FindAuditByID(ctx context.Context, id string) (*seogap.Audit, error) {
	return s.FindAuditByIDFn(ctx, id)
}

func (s *AuditService) FindAudits(ctx context.Context, filter seogap.AuditFilter) ([]*seogap.Audit, error) {
	return s.FindAuditsFn(ctx, filter)
}

func (s *AuditService) DeleteAudit(ctx context.Context, id string) error {
	return s.DeleteAuditFn(ctx, id)
}
