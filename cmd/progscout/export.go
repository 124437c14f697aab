package main

import (
	"fmt"

	"github.com/progscout/progscout"
	"github.com/progscout/progscout/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	filter := progscout.SnapshotFilter{Limit: c.Limit}
	if c.Domain != "" {
		filter.Domain = &c.Domain
	}

	snapshots, err := deps.Snapshots.FindSnapshots(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", progscout.ErrorMessage(err))
		return err
	}

	if len(snapshots) == 0 {
		fmt.Fprintln(deps.Stdout, "No snapshots to export.")
		return nil
	}

	exporter := fs.NewExporter(c.Dir)
	written := 0
	for _, snap := range snapshots {
		if _, err := exporter.ExportSnapshot(snap); err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", snap.URL, err)
			continue
		}
		written++
	}

	fmt.Fprintf(deps.Stdout, "Exported %d of %d snapshots to %s\n", written, len(snapshots), c.Dir)
	return nil
}
