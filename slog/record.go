package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/titlespec"
)

// Ensure LoggingRecordService implements titlespec.RecordService.
var _ titlespec.RecordService = (*LoggingRecordService)(nil)

// LoggingRecordService wraps a RecordService with debug logging. Lookups
// happen on every request, so they log at debug level.
type LoggingRecordService struct {
	next   titlespec.RecordService
	logger *slog.Logger
}

// NewLoggingRecordService creates a new LoggingRecordService.
func NewLoggingRecordService(next titlespec.RecordService, logger *slog.Logger) *LoggingRecordService {
	return &LoggingRecordService{next: next, logger: logger}
}

func (s *LoggingRecordService) Records(ctx context.Context) (records []*titlespec.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("list records",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Records(ctx)
}

func (s *LoggingRecordService) FindRecordByCode(ctx context.Context, code string) (rec *titlespec.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find record",
			"code", code,
			"found", rec != nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRecordByCode(ctx, code)
}

func (s *LoggingRecordService) FindRecordByFileName(ctx context.Context, name string) (rec *titlespec.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find record",
			"file_name", name,
			"found", rec != nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRecordByFileName(ctx, name)
}

func (s *LoggingRecordService) SearchRecords(ctx context.Context, term string) (records []*titlespec.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("search records",
			"term", term,
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchRecords(ctx, term)
}
