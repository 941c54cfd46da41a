// Package catalog loads title specification datasets and serves the
// current one to the rest of the application.
package catalog

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/titlespec"
	"golang.org/x/sync/singleflight"
)

// Snapshot is one loaded dataset with its provenance.
type Snapshot struct {
	Dataset  *titlespec.Dataset
	Source   string
	Version  string
	LoadedAt time.Time

	// MissingColumns lists required columns absent from the header.
	MissingColumns []string

	// DuplicateCodes lists Title Codes shared by more than one record.
	DuplicateCodes []string
}

// Version returns the content version of raw CSV text, used for change
// detection and HTTP ETags.
func Version(raw string) string {
	return strconv.FormatUint(xxhash.Sum64String(raw), 16)
}

// Loader fetches and parses the CSV resources named by a config.
type Loader struct {
	Fetcher titlespec.Fetcher
	Config  titlespec.Config

	// Now returns the load timestamp. Defaults to time.Now.
	Now func() time.Time

	group singleflight.Group
}

// NewLoader returns a loader for the resources in cfg.
func NewLoader(fetcher titlespec.Fetcher, cfg titlespec.Config) *Loader {
	return &Loader{Fetcher: fetcher, Config: cfg}
}

// Load fetches and parses the primary CSV. Concurrent callers share a single
// outstanding request.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	v, err, _ := l.group.Do("primary", func() (any, error) {
		return l.load(ctx, l.Config.CSVURL())
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}

// LoadFull fetches and parses the full CSV used for text exports. Each call
// is an independent request.
func (l *Loader) LoadFull(ctx context.Context) (*Snapshot, error) {
	return l.load(ctx, l.Config.FullCSVURL())
}

func (l *Loader) load(ctx context.Context, location string) (*Snapshot, error) {
	raw, err := l.Fetcher.Fetch(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", location, err)
	}

	ds := titlespec.ParseDataset(raw)

	now := time.Now
	if l.Now != nil {
		now = l.Now
	}

	return &Snapshot{
		Dataset:        ds,
		Source:         location,
		Version:        Version(raw),
		LoadedAt:       now().UTC(),
		MissingColumns: ds.Schema().Missing(titlespec.RequiredColumns...),
		DuplicateCodes: ds.Duplicates(),
	}, nil
}
