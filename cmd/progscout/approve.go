package main

import (
	"fmt"

	"github.com/progscout/progscout"
)

// Run executes the approve command.
func (c *ApproveCmd) Run(deps *Dependencies) error {
	approved := !c.Revoke
	if err := deps.Programs.SetApproved(deps.Ctx, c.ID, approved); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", progscout.ErrorMessage(err))
		return err
	}

	if approved {
		fmt.Fprintf(deps.Stdout, "Approved %s\n", c.ID)
	} else {
		fmt.Fprintf(deps.Stdout, "Revoked approval for %s\n", c.ID)
	}
	return nil
}
