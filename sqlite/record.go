package sqlite

import (
	"context"

	"github.com/fwojciec/titlespec"
)

// Compile-time interface verification.
var _ titlespec.RecordService = (*RecordService)(nil)

// RecordService implements titlespec.RecordService over the stored
// snapshot with the same semantics as the in-memory dataset.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// Records returns every stored record in source order.
func (s *RecordService) Records(ctx context.Context) ([]*titlespec.Record, error) {
	schema, err := loadSchema(ctx, s.db)
	if err != nil {
		return nil, err
	}
	return queryRecords(ctx, s.db, schema, `SELECT cells FROM records ORDER BY position ASC`)
}

// FindRecordByCode returns the first record in source order with the given
// Title Code. The match is case-sensitive.
func (s *RecordService) FindRecordByCode(ctx context.Context, code string) (*titlespec.Record, error) {
	rec, err := s.findOne(ctx, `SELECT cells FROM records WHERE title_code = ? ORDER BY position ASC LIMIT 1`, code)
	if err != nil {
		return nil, err
	} else if rec == nil {
		return nil, titlespec.Errorf(titlespec.ENOTFOUND, "title code %q not found", code)
	}
	return rec, nil
}

// FindRecordByFileName returns the first record in source order with the
// given File Name.
func (s *RecordService) FindRecordByFileName(ctx context.Context, name string) (*titlespec.Record, error) {
	rec, err := s.findOne(ctx, `SELECT cells FROM records WHERE file_name = ? ORDER BY position ASC LIMIT 1`, name)
	if err != nil {
		return nil, err
	} else if rec == nil {
		return nil, titlespec.Errorf(titlespec.ENOTFOUND, "file %q not found", name)
	}
	return rec, nil
}

// SearchRecords returns the records matching term in source order, using
// the same predicate as titlespec.Dataset.Search.
func (s *RecordService) SearchRecords(ctx context.Context, term string) ([]*titlespec.Record, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]*titlespec.Record, 0, len(records))
	for _, rec := range records {
		if titlespec.Match(rec, term) {
			matches = append(matches, rec)
		}
	}
	return matches, nil
}

// findOne returns the first record selected by query, or nil if none.
func (s *RecordService) findOne(ctx context.Context, query string, arg string) (*titlespec.Record, error) {
	schema, err := loadSchema(ctx, s.db)
	if err != nil {
		return nil, err
	}

	records, err := queryRecords(ctx, s.db, schema, query, arg)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0], nil
}
