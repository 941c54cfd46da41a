package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/titlespec"
	"github.com/fwojciec/titlespec/catalog"
	"github.com/fwojciec/titlespec/sqlite"
)

// storedLoader loads the dataset from the synced SQLite snapshot. The
// snapshot serves as both the primary and the full dataset.
type storedLoader struct {
	Datasets *sqlite.DatasetService
	Stderr   io.Writer
}

func (l *storedLoader) Load(ctx context.Context) (*catalog.Snapshot, error) {
	snap, _, err := l.load(ctx)
	return snap, err
}

// LoadFull warns when the snapshot was synced without --full.
func (l *storedLoader) LoadFull(ctx context.Context) (*catalog.Snapshot, error) {
	snap, info, err := l.load(ctx)
	if err != nil {
		return nil, err
	}
	if !info.Full && l.Stderr != nil {
		fmt.Fprintf(l.Stderr, "warning: snapshot was synced without --full; extracted text may be incomplete\n")
	}
	return snap, nil
}

func (l *storedLoader) load(ctx context.Context) (*catalog.Snapshot, *sqlite.DatasetInfo, error) {
	ds, info, err := l.Datasets.LoadDataset(ctx)
	if err != nil {
		return nil, nil, err
	}
	return &catalog.Snapshot{
		Dataset:        ds,
		Source:         info.Source,
		Version:        info.Version,
		LoadedAt:       info.LoadedAt,
		MissingColumns: ds.Schema().Missing(titlespec.RequiredColumns...),
		DuplicateCodes: ds.Duplicates(),
	}, info, nil
}
