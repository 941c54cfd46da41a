package titlespec

import (
	"bytes"
	"encoding/json"
)

// Column names found in title specification exports.
const (
	ColumnFileName       = "File Name"
	ColumnHeader1        = "Header 1"
	ColumnHeader2        = "Header 2"
	ColumnTitleCode      = "Title Code"
	ColumnJobTitle       = "Job Title"
	ColumnEffectiveDate  = "Effective Date"
	ColumnDuties         = "Duties and Responsibilities"
	ColumnTasks          = "Examples of Typical Tasks"
	ColumnQualifications = "Qualification Requirements"
	ColumnPromotion      = "Lines of Promotion"
	ColumnRawText        = "Raw Text"
	ColumnNumPages       = "Num Pages"
)

// RequiredColumns lists the columns the rest of the system depends on.
// File Name filters out phantom rows and Title Code is the permalink key.
var RequiredColumns = []string{ColumnFileName, ColumnTitleCode}

// Schema is the ordered set of column names taken from the header row.
type Schema struct {
	columns []string
	index   map[string]int
}

// NewSchema returns a schema for the given column names. When a name is
// repeated, lookups resolve to its first position.
func NewSchema(columns []string) *Schema {
	s := &Schema{
		columns: append([]string(nil), columns...),
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range s.columns {
		if _, ok := s.index[c]; !ok {
			s.index[c] = i
		}
	}
	return s
}

// Columns returns a copy of the column names in header order.
func (s *Schema) Columns() []string {
	return append([]string(nil), s.columns...)
}

// Len returns the header width.
func (s *Schema) Len() int {
	return len(s.columns)
}

// Index returns the position of the named column.
func (s *Schema) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Has reports whether the named column is present.
func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Missing returns the required columns absent from the schema.
func (s *Schema) Missing(required ...string) []string {
	var missing []string
	for _, name := range required {
		if !s.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// Field is a single column/value pair of a record.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Record is one parsed document: an ordered mapping from column name to
// cell value. Records are immutable once built.
type Record struct {
	schema *Schema
	values []string
}

// NewRecord zips values against the schema. Short rows are padded with
// empty strings and long rows are truncated to the header width.
func NewRecord(schema *Schema, values []string) *Record {
	row := make([]string, schema.Len())
	copy(row, values)
	return &Record{schema: schema, values: row}
}

// Schema returns the schema the record was built against.
func (r *Record) Schema() *Schema {
	return r.schema
}

// Get returns the value of the named column, or "" if the column is absent.
func (r *Record) Get(name string) string {
	i, ok := r.schema.Index(name)
	if !ok {
		return ""
	}
	return r.values[i]
}

// FileName returns the File Name column. Without a File Name header the
// first column stands in for it.
func (r *Record) FileName() string {
	if i, ok := r.schema.Index(ColumnFileName); ok {
		return r.values[i]
	}
	if len(r.values) == 0 {
		return ""
	}
	return r.values[0]
}

// TitleCode returns the Title Code column.
func (r *Record) TitleCode() string { return r.Get(ColumnTitleCode) }

// JobTitle returns the Job Title column.
func (r *Record) JobTitle() string { return r.Get(ColumnJobTitle) }

// RawText returns the Raw Text column.
func (r *Record) RawText() string { return r.Get(ColumnRawText) }

// Label returns the text used to list the record: the job title, falling
// back to the file name.
func (r *Record) Label() string {
	if title := r.JobTitle(); title != "" {
		return title
	}
	return r.FileName()
}

// Values returns a copy of the cell values in header order.
func (r *Record) Values() []string {
	return append([]string(nil), r.values...)
}

// Fields returns the record's column/value pairs in header order.
func (r *Record) Fields() []Field {
	fields := make([]Field, len(r.values))
	for i, v := range r.values {
		fields[i] = Field{Name: r.schema.columns[i], Value: v}
	}
	return fields
}

// MarshalJSON encodes the record as a JSON object whose keys keep header
// order. Repeated column names keep their first value.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	written := 0
	for i, name := range r.schema.columns {
		if r.schema.index[name] != i {
			continue
		}
		if written > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		written++
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
