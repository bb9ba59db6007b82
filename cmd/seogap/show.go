package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/seogap"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	audit, err := deps.Audits.FindAuditByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seogap.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(audit)
	}

	fmt.Fprintf(deps.Stdout, "Audit %s (%s)\n", audit.ID, audit.CreatedAt.Format(time.DateTime))
	fmt.Fprintf(deps.Stdout, "Target: %s\n", audit.TargetURL)
	fmt.Fprintf(deps.Stdout, "Competitors: %s\n", strings.Join(audit.CompetitorURLs, ", "))
	if len(audit.Keywords) > 0 {
		fmt.Fprintf(deps.Stdout, "Keywords: %s\n", strings.Join(audit.Keywords, ", "))
	}
	printReport(deps.Stdout, audit.Report)

	return nil
}
