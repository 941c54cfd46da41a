package catalog

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/fwojciec/titlespec"
)

// SnapshotLoader loads the primary dataset.
type SnapshotLoader interface {
	Load(ctx context.Context) (*Snapshot, error)
}

// Ensure Catalog implements titlespec.RecordService at compile time.
var _ titlespec.RecordService = (*Catalog)(nil)

// Catalog holds the current dataset snapshot. The snapshot is replaced as a
// whole on reload and is never modified in place.
type Catalog struct {
	loader  SnapshotLoader
	current atomic.Pointer[Snapshot]
}

// New returns a catalog in the loading state.
func New(loader SnapshotLoader) *Catalog {
	return &Catalog{loader: loader}
}

// Reload loads a fresh snapshot and installs it. When the first load fails
// an empty snapshot is installed so readers leave the loading state; a
// failed reload keeps the current snapshot. The load error is returned
// either way.
func (c *Catalog) Reload(ctx context.Context) (*Snapshot, error) {
	snap, err := c.loader.Load(ctx)
	if err != nil {
		c.current.CompareAndSwap(nil, &Snapshot{
			Dataset:  titlespec.NewDataset(nil, nil),
			LoadedAt: time.Now().UTC(),
		})
		return nil, err
	}
	c.current.Store(snap)
	return snap, nil
}

// Snapshot returns the current snapshot, or nil while loading.
func (c *Catalog) Snapshot() *Snapshot {
	return c.current.Load()
}

// Dataset returns the current dataset, or nil while loading.
func (c *Catalog) Dataset() *titlespec.Dataset {
	if snap := c.current.Load(); snap != nil {
		return snap.Dataset
	}
	return nil
}

func (c *Catalog) dataset() (*titlespec.Dataset, error) {
	ds := c.Dataset()
	if ds == nil {
		return nil, titlespec.Errorf(titlespec.EUNAVAILABLE, "dataset is still loading")
	}
	return ds, nil
}

// Records returns every record in source order.
func (c *Catalog) Records(ctx context.Context) ([]*titlespec.Record, error) {
	ds, err := c.dataset()
	if err != nil {
		return nil, err
	}
	return ds.All(), nil
}

// FindRecordByCode returns the first record with the given Title Code.
func (c *Catalog) FindRecordByCode(ctx context.Context, code string) (*titlespec.Record, error) {
	ds, err := c.dataset()
	if err != nil {
		return nil, err
	}
	return ds.FindByKey(code)
}

// FindRecordByFileName returns the first record with the given File Name.
func (c *Catalog) FindRecordByFileName(ctx context.Context, name string) (*titlespec.Record, error) {
	ds, err := c.dataset()
	if err != nil {
		return nil, err
	}
	return ds.FindByFileName(name)
}

// SearchRecords returns the records matching term in source order.
func (c *Catalog) SearchRecords(ctx context.Context, term string) ([]*titlespec.Record, error) {
	ds, err := c.dataset()
	if err != nil {
		return nil, err
	}
	return ds.Search(term), nil
}

// Loaded reports whether a snapshot has been installed.
func (c *Catalog) Loaded() bool {
	return c.current.Load() != nil
}
