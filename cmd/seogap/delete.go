package main

import (
	"fmt"

	"github.com/fwojciec/seogap"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Audits.DeleteAudit(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seogap.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted audit %s\n", c.ID)
	return nil
}
