package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/seogap"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := seogap.AuditFilter{Limit: c.Limit}
	if c.Target != "" {
		filter.TargetURL = &c.Target
	}

	audits, err := deps.Audits.FindAudits(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seogap.ErrorMessage(err))
		return err
	}

	if len(audits) == 0 {
		fmt.Fprintln(deps.Stdout, "No audits found. Use 'seogap analyze' to run one.")
		return nil
	}

	for _, a := range audits {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d gap(s)  %s\n",
			a.ID, a.CreatedAt.Format(time.DateTime), a.TargetURL,
			len(a.Report.Gaps), a.ReportHash)
	}

	return nil
}
