package main

import (
	"fmt"

	"github.com/progscout/progscout"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := progscout.ProgramFilter{
		Offset: c.Offset,
		Limit:  c.Limit,
	}
	if set(c.Type) {
		t := progscout.Type(c.Type)
		filter.Type = &t
	}
	if set(c.Mode) {
		m := progscout.Mode(c.Mode)
		filter.Mode = &m
	}
	if set(c.Cost) {
		filter.Cost = &c.Cost
	}
	if set(c.Country) {
		filter.CountryContains = &c.Country
	}
	if set(c.City) {
		filter.CityContains = &c.City
	}

	programs, err := deps.Programs.FindPrograms(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", progscout.ErrorMessage(err))
		return err
	}

	if len(programs) == 0 {
		fmt.Fprintln(deps.Stdout, "No programs found. Use 'progscout search' to find some.")
		return nil
	}

	for _, p := range programs {
		approved := " "
		if p.Approved {
			approved = "*"
		}
		fmt.Fprintf(deps.Stdout, "%s %s  %-7s  %-9s  %10s  %s\n",
			approved, p.ID, p.Type, p.Mode, formatPrice(p), p.Title)
	}

	return nil
}

// set reports whether a filter flag carries a real value.
func set(v string) bool {
	return v != "" && v != "Any"
}

func formatPrice(p *progscout.Program) string {
	if p.Price == nil {
		return "-"
	}
	if p.Currency == "" {
		return fmt.Sprintf("%.2f", *p.Price)
	}
	return fmt.Sprintf("%.2f %s", *p.Price, p.Currency)
}
