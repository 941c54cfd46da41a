package mock

import (
	"context"

	"github.com/fwojciec/titlespec"
)

var _ titlespec.PageCounter = (*PageCounter)(nil)

// PageCounter is a mock implementation of titlespec.PageCounter.
type PageCounter struct {
	CountPagesFn func(ctx context.Context, path string) (int, error)
}

func (c *PageCounter) CountPages(ctx context.Context, path string) (int, error) {
	return c.CountPagesFn(ctx, path)
}
