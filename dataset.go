package titlespec

import (
	"context"
	"strings"
)

// Dataset is the ordered, immutable collection of records loaded from one
// CSV export. A reload builds a new Dataset rather than editing this one.
type Dataset struct {
	schema  *Schema
	records []*Record
	byCode  map[string]int
	byFile  map[string]int
}

// NewDataset indexes records in source order. When Title Code or File Name
// values repeat, the index keeps the first occurrence.
func NewDataset(schema *Schema, records []*Record) *Dataset {
	if schema == nil {
		schema = NewSchema(nil)
	}
	d := &Dataset{
		schema:  schema,
		records: append([]*Record(nil), records...),
		byCode:  make(map[string]int, len(records)),
		byFile:  make(map[string]int, len(records)),
	}
	for i, rec := range d.records {
		if _, ok := d.byCode[rec.TitleCode()]; !ok {
			d.byCode[rec.TitleCode()] = i
		}
		if _, ok := d.byFile[rec.FileName()]; !ok {
			d.byFile[rec.FileName()] = i
		}
	}
	return d
}

// Schema returns the header schema.
func (d *Dataset) Schema() *Schema {
	return d.schema
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// All returns the records in source order.
func (d *Dataset) All() []*Record {
	return append([]*Record(nil), d.records...)
}

// First returns the first record, or nil for an empty dataset.
func (d *Dataset) First() *Record {
	if len(d.records) == 0 {
		return nil
	}
	return d.records[0]
}

// Contains reports whether rec belongs to this dataset.
func (d *Dataset) Contains(rec *Record) bool {
	if rec == nil {
		return false
	}
	for _, r := range d.records {
		if r == rec {
			return true
		}
	}
	return false
}

// FindByKey returns the first record whose Title Code equals code exactly.
// Returns ENOTFOUND if no record matches.
func (d *Dataset) FindByKey(code string) (*Record, error) {
	i, ok := d.byCode[code]
	if !ok {
		return nil, Errorf(ENOTFOUND, "title code %q not found", code)
	}
	return d.records[i], nil
}

// FindByFileName returns the first record with the given File Name.
// Returns ENOTFOUND if no record matches.
func (d *Dataset) FindByFileName(name string) (*Record, error) {
	i, ok := d.byFile[name]
	if !ok {
		return nil, Errorf(ENOTFOUND, "file %q not found", name)
	}
	return d.records[i], nil
}

// Search returns the records matching term in source order. An empty term
// returns every record.
func (d *Dataset) Search(term string) []*Record {
	if term == "" {
		return d.All()
	}
	var out []*Record
	for _, rec := range d.records {
		if Match(rec, term) {
			out = append(out, rec)
		}
	}
	return out
}

// Duplicates returns the Title Codes that occur on more than one record, in
// order of first occurrence.
func (d *Dataset) Duplicates() []string {
	counts := make(map[string]int, len(d.records))
	var order []string
	for _, rec := range d.records {
		code := rec.TitleCode()
		if code == "" {
			continue
		}
		counts[code]++
		if counts[code] == 2 {
			order = append(order, code)
		}
	}
	return order
}

// Match reports whether rec matches a search term. File Name and Job Title
// match case-insensitively; Title Code matches case-sensitively.
func Match(rec *Record, term string) bool {
	if term == "" {
		return true
	}
	lower := strings.ToLower(term)
	return strings.Contains(strings.ToLower(rec.FileName()), lower) ||
		strings.Contains(strings.ToLower(rec.JobTitle()), lower) ||
		strings.Contains(rec.TitleCode(), term)
}

// RecordService represents a read-only store of title specification records.
type RecordService interface {
	// Records returns every record in source order.
	Records(ctx context.Context) ([]*Record, error)

	// FindRecordByCode returns the first record with the given Title Code.
	// Returns ENOTFOUND if no record matches.
	FindRecordByCode(ctx context.Context, code string) (*Record, error)

	// FindRecordByFileName returns the first record with the given File Name.
	// Returns ENOTFOUND if no record matches.
	FindRecordByFileName(ctx context.Context, name string) (*Record, error)

	// SearchRecords returns the records matching term in source order.
	SearchRecords(ctx context.Context, term string) ([]*Record, error)
}
