package main

import (
	"fmt"

	"github.com/fwojciec/titlespec"
	"github.com/fwojciec/titlespec/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	exp, err := deps.Exporter.ExportText(deps.Ctx, c.Code)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", titlespec.ErrorMessage(err))
		return err
	}

	if c.Stdout {
		fmt.Fprint(deps.Stdout, exp.Text)
		return nil
	}

	path, err := fs.NewWriter(c.Out).WriteText(deps.Ctx, exp.Filename, exp.Text)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", titlespec.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %s\n", path)
	return nil
}
