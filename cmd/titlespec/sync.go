package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/titlespec"
	"github.com/fwojciec/titlespec/sqlite"
)

// Run executes the sync command. The snapshot is replaced only when the
// dataset changed since the last sync.
func (c *SyncCmd) Run(deps *Dependencies) (err error) {
	unlock, err := deps.DB.Lock(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", titlespec.ErrorMessage(err))
		return err
	}
	defer func() {
		if uerr := unlock(); err == nil {
			err = uerr
		}
	}()

	load := deps.Loader.Load
	if c.Full {
		load = deps.Loader.LoadFull
	}

	snap, err := load(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", titlespec.ErrorMessage(err))
		return err
	}

	if len(snap.MissingColumns) > 0 {
		fmt.Fprintf(deps.Stderr, "warning: dataset is missing columns: %s\n", strings.Join(snap.MissingColumns, ", "))
	}
	if len(snap.DuplicateCodes) > 0 {
		fmt.Fprintf(deps.Stderr, "warning: duplicate title codes: %s\n", strings.Join(snap.DuplicateCodes, ", "))
	}

	if !c.Force {
		current, err := deps.Datasets.CurrentDataset(deps.Ctx)
		switch {
		case err == nil && current.Version == snap.Version && current.Source == snap.Source && current.Full == c.Full:
			fmt.Fprintf(deps.Stdout, "Snapshot is up to date (%d records, version %s)\n", current.Records, current.Version)
			return nil
		case err != nil && titlespec.ErrorCode(err) != titlespec.ENOTFOUND:
			fmt.Fprintf(deps.Stderr, "error: %s\n", titlespec.ErrorMessage(err))
			return err
		}
	}

	info, err := deps.Datasets.ReplaceDataset(deps.Ctx, snap.Dataset, sqlite.DatasetInfo{
		Source:   snap.Source,
		Version:  snap.Version,
		Full:     c.Full,
		LoadedAt: snap.LoadedAt,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", titlespec.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Synced %d records from %s (version %s)\n", info.Records, info.Source, info.Version)
	return nil
}
