// Package slog provides logging decorators for titlespec services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/titlespec"
)

// Ensure LoggingFetcher implements titlespec.Fetcher.
var _ titlespec.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   titlespec.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next titlespec.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the location being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, location string) (body string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"location", location,
			"bytes", len(body),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, location)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
