package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/seogap"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ seogap.AuditService = (*AuditService)(nil)

// AuditService implements seogap.AuditService using SQLite.
// Reports are stored as JSON blobs: they are written once, read whole,
// and never queried by field.
type AuditService struct {
	db *DB
}

// NewAuditService creates a new AuditService.
func NewAuditService(db *DB) *AuditService {
	return &AuditService{db: db}
}

// hashReport computes xxHash of the serialized report as a hex string.
// Two runs with identical findings produce identical hashes, which makes
// "nothing changed since last week" visible at a glance in listings.
func hashReport(report []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(report))
}

// CreateAudit persists a new audit.
func (s *AuditService) CreateAudit(ctx context.Context, audit *seogap.Audit) error {
	if err := audit.Validate(); err != nil {
		return err
	}

	reportJSON, err := json.Marshal(audit.Report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	competitorsJSON, err := json.Marshal(audit.CompetitorURLs)
	if err != nil {
		return fmt.Errorf("marshal competitor URLs: %w", err)
	}
	keywordsJSON, err := json.Marshal(audit.Keywords)
	if err != nil {
		return fmt.Errorf("marshal keywords: %w", err)
	}

	audit.ID = uuid.New().String()
	audit.CreatedAt = time.Now().UTC()
	audit.ReportHash = hashReport(reportJSON)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO audits (id, target_url, competitor_urls, keywords, report, report_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, audit.ID, audit.TargetURL, string(competitorsJSON), string(keywordsJSON),
		string(reportJSON), audit.ReportHash, audit.CreatedAt.Format(time.RFC3339))

	return err
}

// FindAuditByID retrieves an audit by ID.
func (s *AuditService) FindAuditByID(ctx context.Context, id string) (*seogap.Audit, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, target_url, competitor_urls, keywords, report, report_hash, created_at
		FROM audits
		WHERE id = ?
	`, id)

	audit, err := scanAudit(row.Scan)
	if err == sql.ErrNoRows {
		return nil, seogap.Errorf(seogap.ENOTFOUND, "audit not found")
	}
	if err != nil {
		return nil, err
	}
	return audit, nil
}

// FindAudits retrieves audits matching the filter, newest first.
func (s *AuditService) FindAudits(ctx context.Context, filter seogap.AuditFilter) ([]*seogap.Audit, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, target_url, competitor_urls, keywords, report, report_hash, created_at FROM audits WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.TargetURL != nil {
		query.WriteString(" AND target_url = ?")
		args = append(args, *filter.TargetURL)
	}

	query.WriteString(" ORDER BY created_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var audits []*seogap.Audit
	for rows.Next() {
		audit, err := scanAudit(rows.Scan)
		if err != nil {
			return nil, err
		}
		audits = append(audits, audit)
	}
	return audits, rows.Err()
}

// DeleteAudit permanently removes an audit.
func (s *AuditService) DeleteAudit(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM audits WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return seogap.Errorf(seogap.ENOTFOUND, "audit not found")
	}
	return nil
}

// scanAudit scans one audit row using the given scan function.
func scanAudit(scan func(dest ...any) error) (*seogap.Audit, error) {
	var audit seogap.Audit
	var competitorsJSON, keywordsJSON, reportJSON, createdAt string

	if err := scan(&audit.ID, &audit.TargetURL, &competitorsJSON, &keywordsJSON,
		&reportJSON, &audit.ReportHash, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(competitorsJSON), &audit.CompetitorURLs); err != nil {
		return nil, fmt.Errorf("unmarshal competitor URLs: %w", err)
	}
	if err := json.Unmarshal([]byte(keywordsJSON), &audit.Keywords); err != nil {
		return nil, fmt.Errorf("unmarshal keywords: %w", err)
	}
	if err := json.Unmarshal([]byte(reportJSON), &audit.Report); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}

	var err error
	audit.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &audit, nil
}
