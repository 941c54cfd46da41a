package mock

import (
	"context"

	"github.com/fwojciec/titlespec"
)

var _ titlespec.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of titlespec.RecordService.
type RecordService struct {
	RecordsFn              func(ctx context.Context) ([]*titlespec.Record, error)
	FindRecordByCodeFn     func(ctx context.Context, code string) (*titlespec.Record, error)
	FindRecordByFileNameFn func(ctx context.Context, name string) (*titlespec.Record, error)
	SearchRecordsFn        func(ctx context.Context, term string) ([]*titlespec.Record, error)
}

func (s *RecordService) Records(ctx context.Context) ([]*titlespec.Record, error) {
	return s.RecordsFn(ctx)
}

func (s *RecordService) FindRecordByCode(ctx context.Context, code string) (*titlespec.Record, error) {
	return s.FindRecordByCodeFn(ctx, code)
}

func (s *RecordService) FindRecordByFileName(ctx context.Context, name string) (*titlespec.Record, error) {
	return s.FindRecordByFileNameFn(ctx, name)
}

func (s *RecordService) SearchRecords(ctx context.Context, term string) ([]*titlespec.Record, error) {
	return s.SearchRecordsFn(ctx, term)
}
