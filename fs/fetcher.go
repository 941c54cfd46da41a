// Package fs reads dataset resources from and writes exports to the local
// filesystem.
package fs

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/fwojciec/titlespec"
)

// Ensure Fetcher implements titlespec.Fetcher at compile time.
var _ titlespec.Fetcher = (*Fetcher)(nil)

// Fetcher reads CSV resources from local files. Locations may be plain
// paths or file:// URLs.
type Fetcher struct{}

// NewFetcher returns a local file fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{}
}

// Fetch returns the contents of the file at location. A missing file
// returns ENOTFOUND.
func (f *Fetcher) Fetch(ctx context.Context, location string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := strings.TrimPrefix(location, "file://")
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", titlespec.Errorf(titlespec.ENOTFOUND, "file %s not found", path)
	} else if err != nil {
		return "", err
	}
	return string(b), nil
}

// Close is a no-op.
func (f *Fetcher) Close() error {
	return nil
}
