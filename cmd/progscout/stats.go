package main

import (
	"fmt"

	"github.com/progscout/progscout"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	stats, err := deps.Programs.Stats(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", progscout.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Programs:  %d\n", stats.Programs)
	fmt.Fprintf(deps.Stdout, "Approved:  %d\n", stats.Approved)
	fmt.Fprintf(deps.Stdout, "Sources:   %d\n", stats.Sources)

	if deps.Snapshots != nil {
		if domains, err := deps.Snapshots.CountDomains(deps.Ctx); err == nil {
			fmt.Fprintf(deps.Stdout, "Snapshots: %d domains\n", domains)
		}
	}

	return nil
}
