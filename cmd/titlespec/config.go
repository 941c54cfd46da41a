package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/titlespec"
	"github.com/fwojciec/titlespec/yaml"
)

// Run executes the config init command. It saves the settings resolved from
// the existing file, environment, and flags.
func (c *ConfigInitCmd) Run(deps *Dependencies) error {
	if _, err := os.Stat(deps.ConfigPath); err == nil && !c.Force {
		err := titlespec.Errorf(titlespec.ECONFLICT, "config file %s already exists; use --force to overwrite", deps.ConfigPath)
		fmt.Fprintf(deps.Stderr, "error: %s\n", titlespec.ErrorMessage(err))
		return err
	}

	if err := yaml.SaveConfig(deps.ConfigPath, deps.Config); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", titlespec.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote config to %s\n", deps.ConfigPath)
	return nil
}
