package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/titlespec"
)

// Run executes the show command. Without a code it shows the first record.
func (c *ShowCmd) Run(deps *Dependencies) error {
	records, err := deps.Records.Records(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", titlespec.ErrorMessage(err))
		return err
	}

	ctrl := titlespec.NewController(titlespec.NewHistory(titlespec.Navigation{Code: c.Code}))
	ctrl.DefaultFirst = true
	sel := ctrl.SetDataset(datasetOf(records))

	printSelection(deps.Stdout, sel, deps.Config.FeedbackURL)

	switch sel.State {
	case titlespec.StateNotFound:
		return titlespec.Errorf(titlespec.ENOTFOUND, "title code %q not found", sel.Code)
	case titlespec.StateEmpty:
		return titlespec.Errorf(titlespec.ENOTFOUND, "no title specifications are available")
	}
	return nil
}

// datasetOf rebuilds a dataset from records returned by a RecordService.
func datasetOf(records []*titlespec.Record) *titlespec.Dataset {
	if len(records) == 0 {
		return titlespec.NewDataset(nil, nil)
	}
	return titlespec.NewDataset(records[0].Schema(), records)
}

// printSelection writes the text rendering of sel.
func printSelection(w io.Writer, sel titlespec.Selection, feedbackURL string) {
	switch sel.State {
	case titlespec.StateLoading:
		fmt.Fprintln(w, "Loading title specifications...")
	case titlespec.StateEmpty:
		fmt.Fprintln(w, "No title specifications are available.")
	case titlespec.StateNoSelection:
		fmt.Fprintln(w, "Select a title from the list.")
	case titlespec.StateNotFound:
		fmt.Fprintln(w, "Title code not found")
		fmt.Fprintln(w, titlespec.NotFoundMessage(sel.Code, feedbackURL))
	case titlespec.StateSelected:
		fmt.Fprintln(w, titlespec.FormatRecord(sel.Record))
	}
}
