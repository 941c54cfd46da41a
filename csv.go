package titlespec

import "strings"

// ParseRows splits raw CSV text into rows of fields in a single left-to-right
// scan. Quoted fields may contain commas and newlines, and a doubled quote
// inside a quoted field decodes to one literal quote. CRLF line endings are
// normalized to LF.
//
// ParseRows is total: an unterminated quote does not fail the parse, the
// pending field and row are flushed as-is. Blank lines produce no rows.
func ParseRows(raw string) [][]string {
	raw = strings.TrimPrefix(raw, "\ufeff")
	raw = strings.ReplaceAll(raw, "\r\n", "\n")

	var (
		rows     [][]string
		row      []string
		field    strings.Builder
		inQuotes bool
	)

	flush := func() {
		if field.Len() == 0 && len(row) == 0 {
			return
		}
		row = append(row, field.String())
		field.Reset()
		rows = append(rows, row)
		row = nil
	}

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(raw) && raw[i+1] == '"' {
				field.WriteByte('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			row = append(row, field.String())
			field.Reset()
		case c == '\n' && !inQuotes:
			flush()
		default:
			field.WriteByte(c)
		}
	}
	flush()

	return rows
}

// ParseRecords parses raw CSV text whose first row is the header. Each
// following row is zipped against the header; rows without a file name are
// dropped. A missing or empty header yields an empty schema and no records.
func ParseRecords(raw string) (*Schema, []*Record) {
	rows := ParseRows(raw)
	if len(rows) == 0 {
		return NewSchema(nil), nil
	}

	header := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		header[i] = cleanHeader(name)
	}
	schema := NewSchema(header)

	records := make([]*Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		rec := NewRecord(schema, row)
		if strings.TrimSpace(rec.FileName()) == "" {
			continue
		}
		records = append(records, rec)
	}
	return schema, records
}

// ParseDataset parses raw CSV text into a Dataset.
func ParseDataset(raw string) *Dataset {
	return NewDataset(ParseRecords(raw))
}

func cleanHeader(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}
