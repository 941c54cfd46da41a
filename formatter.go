package titlespec

import (
	"fmt"
	"strings"
)

// FormatRecord formats a record's fields for display, one labelled field
// per block in header order. Empty fields are omitted.
func FormatRecord(rec *Record) string {
	if rec == nil {
		return ""
	}

	parts := make([]string, 0, rec.Schema().Len()+1)
	parts = append(parts, "## "+rec.TitleCode()+" "+rec.Label())
	for _, f := range rec.Fields() {
		if strings.TrimSpace(f.Value) == "" {
			continue
		}
		parts = append(parts, f.Name+":\n"+f.Value)
	}

	return strings.Join(parts, "\n\n")
}

// FormatListItem formats a record as a one-line list entry:
// "<Title Code>  <label>  <Effective Date>".
func FormatListItem(rec *Record) string {
	return fmt.Sprintf("%s  %s  %s", rec.TitleCode(), rec.Label(), rec.Get(ColumnEffectiveDate))
}
