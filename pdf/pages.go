// Package pdf reads page counts from PDF documents.
package pdf

import (
	"context"
	"fmt"

	"github.com/fwojciec/titlespec"
	"github.com/ledongthuc/pdf"
)

// Ensure PageCounter implements titlespec.PageCounter at compile time.
var _ titlespec.PageCounter = (*PageCounter)(nil)

// PageCounter counts pages using the document's page tree.
type PageCounter struct{}

// NewPageCounter returns a PageCounter.
func NewPageCounter() *PageCounter {
	return &PageCounter{}
}

// CountPages returns the number of pages in the PDF at path. The parser
// panics on some malformed files; that is reported as an error.
func (c *PageCounter) CountPages(ctx context.Context, path string) (n int, err error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	defer func() {
		if r := recover(); r != nil {
			n, err = 0, fmt.Errorf("could not read PDF %s: %v", path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return 0, fmt.Errorf("could not read PDF %s: %w", path, err)
	}
	defer f.Close()

	return r.NumPage(), nil
}
