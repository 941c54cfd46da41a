package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/titlespec"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	records, err := deps.Records.Records(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", titlespec.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No title specifications are available.")
		return nil
	}

	printRecords(deps.Stdout, records)
	return nil
}

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	records, err := deps.Records.SearchRecords(deps.Ctx, c.Term)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", titlespec.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintf(deps.Stdout, "No title specifications match %q.\n", c.Term)
		return nil
	}

	printRecords(deps.Stdout, records)
	return nil
}

func printRecords(w io.Writer, records []*titlespec.Record) {
	for _, rec := range records {
		fmt.Fprintln(w, titlespec.FormatListItem(rec))
	}
}
