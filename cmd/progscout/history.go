package main

import (
	"fmt"
	"strings"

	"github.com/progscout/progscout"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	queries, err := deps.Queries.FindQueries(deps.Ctx, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", progscout.ErrorMessage(err))
		return err
	}

	if len(queries) == 0 {
		fmt.Fprintln(deps.Stdout, "No searches recorded yet.")
		return nil
	}

	for _, q := range queries {
		fmt.Fprintf(deps.Stdout, "%s  %-30s  %s\n",
			q.CreatedAt.Format("2006-01-02 15:04"), q.Topic, describeFilters(q.Filters))
	}

	return nil
}

// describeFilters renders the non-wildcard filters of a past search.
func describeFilters(f progscout.SearchFilters) string {
	var parts []string
	if set(f.Type) {
		parts = append(parts, "type="+f.Type)
	}
	if set(f.Mode) {
		parts = append(parts, "mode="+f.Mode)
	}
	if set(f.Cost) {
		parts = append(parts, "cost="+f.Cost)
	}
	if set(f.Country) {
		parts = append(parts, "country="+f.Country)
	}
	if set(f.Region) {
		parts = append(parts, "region="+f.Region)
	}
	if len(parts) == 0 {
		return "no filters"
	}
	return strings.Join(parts, " ")
}
