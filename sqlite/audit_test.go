package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/seogap"
	"github.com/fwojciec/seogap/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReport() *seogap.Report {
	return &seogap.Report{
		Target: seogap.PageSummary{URL: "https://you.com/page", WordCount: 400},
		Competitors: []seogap.PageSummary{
			{URL: "https://comp1.com/page", WordCount: 900},
		},
		Gaps: []seogap.Gap{
			{
				Type:       seogap.GapStructural,
				Detail:     "Missing section: pricing",
				Confidence: seogap.ConfidenceHigh,
			},
		},
	}
}

func testAudit() *seogap.Audit {
	return &seogap.Audit{
		TargetURL:      "https://you.com/page",
		CompetitorURLs: []string{"https://comp1.com/page", "https://comp2.com/page"},
		Keywords:       []string{"dental implants"},
		Report:         testReport(),
	}
}

func TestAuditService_CreateAudit(t *testing.T) {
	t.Parallel()

	t.Run("creates audit with generated ID, hash, and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAuditService(db)
		ctx := context.Background()

		audit := testAudit()
		err := svc.CreateAudit(ctx, audit)
		require.NoError(t, err)

		assert.NotEmpty(t, audit.ID, "ID should be generated")
		assert.NotEmpty(t, audit.ReportHash, "ReportHash should be generated")
		assert.False(t, audit.CreatedAt.IsZero(), "CreatedAt should be set")
	})

	t.Run("identical reports hash identically", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAuditService(db)
		ctx := context.Background()

		first := testAudit()
		require.NoError(t, svc.CreateAudit(ctx, first))

		second := testAudit()
		require.NoError(t, svc.CreateAudit(ctx, second))

		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, first.ReportHash, second.ReportHash)

		third := testAudit()
		third.Report.Gaps = nil
		require.NoError(t, svc.CreateAudit(ctx, third))
		assert.NotEqual(t, first.ReportHash, third.ReportHash)
	})

	t.Run("returns error for invalid audit", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAuditService(db)

		err := svc.CreateAudit(context.Background(), &seogap.Audit{})
		require.Error(t, err)
		assert.Equal(t, seogap.EINVALID, seogap.ErrorCode(err))
	})
}

func TestAuditService_FindAuditByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips all fields", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAuditService(db)
		ctx := context.Background()

		created := testAudit()
		require.NoError(t, svc.CreateAudit(ctx, created))

		found, err := svc.FindAuditByID(ctx, created.ID)
		require.NoError(t, err)

		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, created.TargetURL, found.TargetURL)
		assert.Equal(t, created.CompetitorURLs, found.CompetitorURLs)
		assert.Equal(t, created.Keywords, found.Keywords)
		assert.Equal(t, created.ReportHash, found.ReportHash)
		require.NotNil(t, found.Report)
		assert.Equal(t, created.Report.Target.URL, found.Report.Target.URL)
		require.Len(t, found.Report.Gaps, 1)
		assert.Equal(t, seogap.GapStructural, found.Report.Gaps[0].Type)
		assert.WithinDuration(t, created.CreatedAt, found.CreatedAt, time.Second)
	})

	t.Run("returns ENOTFOUND for missing audit", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAuditService(db)

		_, err := svc.FindAuditByID(context.Background(), "no-such-id")
		require.Error(t, err)
		assert.Equal(t, seogap.ENOTFOUND, seogap.ErrorCode(err))
	})
}

func TestAuditService_FindAudits(t *testing.T) {
	t.Parallel()

	t.Run("returns audits newest first", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAuditService(db)
		ctx := context.Background()

		older := testAudit()
		require.NoError(t, svc.CreateAudit(ctx, older))

		// RFC3339 timestamps have second resolution; move the first
		// row back so ordering is unambiguous.
		_, err := db.ExecContext(ctx, `UPDATE audits SET created_at = ? WHERE id = ?`,
			time.Now().UTC().Add(-time.Hour).Format(time.RFC3339), older.ID)
		require.NoError(t, err)

		newer := testAudit()
		newer.TargetURL = "https://you.com/other"
		require.NoError(t, svc.CreateAudit(ctx, newer))

		audits, err := svc.FindAudits(ctx, seogap.AuditFilter{})
		require.NoError(t, err)
		require.Len(t, audits, 2)
		assert.Equal(t, newer.ID, audits[0].ID)
		assert.Equal(t, older.ID, audits[1].ID)
	})

	t.Run("filters by target URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAuditService(db)
		ctx := context.Background()

		first := testAudit()
		require.NoError(t, svc.CreateAudit(ctx, first))

		other := testAudit()
		other.TargetURL = "https://you.com/other"
		require.NoError(t, svc.CreateAudit(ctx, other))

		targetURL := "https://you.com/other"
		audits, err := svc.FindAudits(ctx, seogap.AuditFilter{TargetURL: &targetURL})
		require.NoError(t, err)
		require.Len(t, audits, 1)
		assert.Equal(t, other.ID, audits[0].ID)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAuditService(db)
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			require.NoError(t, svc.CreateAudit(ctx, testAudit()))
		}

		audits, err := svc.FindAudits(ctx, seogap.AuditFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, audits, 2)

		audits, err = svc.FindAudits(ctx, seogap.AuditFilter{Limit: 10, Offset: 3})
		require.NoError(t, err)
		assert.Len(t, audits, 2)
	})

	t.Run("returns empty result for no matches", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAuditService(db)

		audits, err := svc.FindAudits(context.Background(), seogap.AuditFilter{})
		require.NoError(t, err)
		assert.Empty(t, audits)
	})
}

func TestAuditService_DeleteAudit(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing audit", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAuditService(db)
		ctx := context.Background()

		audit := testAudit()
		require.NoError(t, svc.CreateAudit(ctx, audit))

		require.NoError(t, svc.DeleteAudit(ctx, audit.ID))

		_, err := svc.FindAuditByID(ctx, audit.ID)
		assert.Equal(t, seogap.ENOTFOUND, seogap.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for missing audit", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAuditService(db)

		err := svc.DeleteAudit(context.Background(), "no-such-id")
		require.Error(t, err)
		assert.Equal(t, seogap.ENOTFOUND, seogap.ErrorCode(err))
	})
}
