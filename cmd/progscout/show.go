package main

import (
	"fmt"

	"github.com/progscout/progscout"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	p, err := deps.Programs.FindProgramByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", progscout.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Title:     %s\n", p.Title)
	fmt.Fprintf(deps.Stdout, "URL:       %s\n", p.URL)
	fmt.Fprintf(deps.Stdout, "Type:      %s\n", p.Type)
	fmt.Fprintf(deps.Stdout, "Mode:      %s\n", p.Mode)
	fmt.Fprintf(deps.Stdout, "Price:     %s\n", formatPrice(p))
	if p.PriceUSD != nil {
		fmt.Fprintf(deps.Stdout, "Price USD: %.2f\n", *p.PriceUSD)
	}
	if p.StartDate != "" {
		fmt.Fprintf(deps.Stdout, "Starts:    %s\n", p.StartDate)
	}
	if p.EndDate != "" {
		fmt.Fprintf(deps.Stdout, "Ends:      %s\n", p.EndDate)
	}
	if loc := formatLocation(p); loc != "" {
		fmt.Fprintf(deps.Stdout, "Location:  %s\n", loc)
	}
	fmt.Fprintf(deps.Stdout, "Approved:  %t\n", p.Approved)
	fmt.Fprintf(deps.Stdout, "Added:     %s\n", p.CreatedAt.Format("2006-01-02 15:04"))
	if p.Description != "" {
		fmt.Fprintf(deps.Stdout, "\n%s\n", p.Description)
	}

	if deps.Snapshots != nil {
		if snap, err := deps.Snapshots.FindSnapshotByURL(deps.Ctx, p.URL); err == nil {
			fmt.Fprintf(deps.Stdout, "\nSnapshot:  %s, fetched %s (%d bytes)\n",
				snap.Domain, snap.FetchedAt.Format("2006-01-02 15:04"), len(snap.Content))
		}
	}

	return nil
}

func formatLocation(p *progscout.Program) string {
	var parts []string
	for _, s := range []string{p.Venue, p.City, p.Country} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	out := parts[0]
	for _, s := range parts[1:] {
		out += ", " + s
	}
	return out
}
