package titlespec

import "context"

// Fetcher retrieves the raw text of a CSV resource.
// Implementations may read from a static HTTP host or the local filesystem.
type Fetcher interface {
	// Fetch returns the body of the resource at location.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, location string) (string, error)

	// Close releases resources held by the fetcher.
	Close() error
}

// PageCounter reports the number of pages in a PDF document.
type PageCounter interface {
	CountPages(ctx context.Context, path string) (int, error)
}
