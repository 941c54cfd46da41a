package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/titlespec"
)

// Ensure LoggingPageCounter implements titlespec.PageCounter.
var _ titlespec.PageCounter = (*LoggingPageCounter)(nil)

// LoggingPageCounter wraps a PageCounter with debug logging.
type LoggingPageCounter struct {
	next   titlespec.PageCounter
	logger *slog.Logger
}

// NewLoggingPageCounter creates a new LoggingPageCounter.
func NewLoggingPageCounter(next titlespec.PageCounter, logger *slog.Logger) *LoggingPageCounter {
	return &LoggingPageCounter{next: next, logger: logger}
}

// CountPages delegates to the wrapped counter and logs the result.
func (c *LoggingPageCounter) CountPages(ctx context.Context, path string) (n int, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("count pages",
			"path", path,
			"pages", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.CountPages(ctx, path)
}
