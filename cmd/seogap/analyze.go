package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/seogap"
	"github.com/fwojciec/seogap/audit"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	req := audit.Request{
		TargetURL:      c.TargetURL,
		CompetitorURLs: c.CompetitorURLs,
		Keywords:       c.Keyword,
	}

	progress := func(event audit.ProgressEvent) {
		switch event.Type {
		case audit.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Analyzing 1 target + %d competitor page(s)\n", event.Total-1)
		case audit.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  fetched %s\n", event.URL)
		case audit.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.URL, seogap.ErrorMessage(event.Error))
		case audit.ProgressFinished:
			// Report printed after the run completes
		}
	}

	report, err := deps.Auditor.Run(deps.Ctx, req, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seogap.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		printReport(deps.Stdout, report)
	}

	if !c.NoSave {
		auditRecord := &seogap.Audit{
			TargetURL:      c.TargetURL,
			CompetitorURLs: c.CompetitorURLs,
			Keywords:       c.Keyword,
			Report:         report,
		}
		if err := deps.Audits.CreateAudit(deps.Ctx, auditRecord); err != nil {
			fmt.Fprintf(deps.Stderr, "error saving audit: %s\n", seogap.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "\nSaved audit %s\n", auditRecord.ID)
	}

	return nil
}
