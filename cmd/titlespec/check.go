package main

import (
	"fmt"

	"github.com/fwojciec/titlespec"
	"github.com/fwojciec/titlespec/catalog"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	dir := deps.Config.LocalPDFDir()
	if dir == "" {
		err := titlespec.Errorf(titlespec.EINVALID, "no local PDF folder; set --pdf-dir or use a local --base-url")
		fmt.Fprintf(deps.Stderr, "error: %s\n", titlespec.ErrorMessage(err))
		return err
	}

	records, err := deps.Records.Records(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", titlespec.ErrorMessage(err))
		return err
	}

	checker := &catalog.Checker{
		Pages:       deps.Pages,
		Dir:         dir,
		Concurrency: c.Concurrency,
	}
	issues, err := checker.Check(deps.Ctx, records)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", titlespec.ErrorMessage(err))
		return err
	}

	for _, is := range issues {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s: %s\n", is.TitleCode, is.FileName, is.Problem, is.Detail)
	}
	fmt.Fprintf(deps.Stdout, "Checked %d records in %s: %d issues\n", len(records), dir, len(issues))

	if len(issues) > 0 {
		return titlespec.Errorf(titlespec.EINVALID, "%d PDF issues found", len(issues))
	}
	return nil
}
