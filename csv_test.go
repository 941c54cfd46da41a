package titlespec_test

import (
	"testing"

	"github.com/fwojciec/titlespec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRows(t *testing.T) {
	t.Parallel()

	t.Run("keeps embedded comma and newline inside quotes", func(t *testing.T) {
		t.Parallel()

		rows := titlespec.ParseRows("A,B\n\"x,y\",\"z\n1\"\n")

		assert.Equal(t, [][]string{
			{"A", "B"},
			{"x,y", "z\n1"},
		}, rows)
	})

	t.Run("decodes doubled quotes inside quoted field", func(t *testing.T) {
		t.Parallel()

		rows := titlespec.ParseRows("A\n\"say \"\"hi\"\"\"\n")

		require.Len(t, rows, 2)
		assert.Equal(t, []string{`say "hi"`}, rows[1])
	})

	t.Run("normalizes CRLF line endings", func(t *testing.T) {
		t.Parallel()

		rows := titlespec.ParseRows("A,B\r\n1,2\r\n")

		assert.Equal(t, [][]string{{"A", "B"}, {"1", "2"}}, rows)
	})

	t.Run("normalizes CRLF inside quoted field", func(t *testing.T) {
		t.Parallel()

		rows := titlespec.ParseRows("A\r\n\"line1\r\nline2\"\r\n")

		require.Len(t, rows, 2)
		assert.Equal(t, []string{"line1\nline2"}, rows[1])
	})

	t.Run("trailing newline does not produce an empty row", func(t *testing.T) {
		t.Parallel()

		assert.Len(t, titlespec.ParseRows("A\n1\n"), 2)
		assert.Len(t, titlespec.ParseRows("A\n1"), 2)
	})

	t.Run("skips blank lines between rows", func(t *testing.T) {
		t.Parallel()

		rows := titlespec.ParseRows("A\n\n1\n\n\n2\n")

		assert.Equal(t, [][]string{{"A"}, {"1"}, {"2"}}, rows)
	})

	t.Run("keeps trailing empty field", func(t *testing.T) {
		t.Parallel()

		rows := titlespec.ParseRows("a,\n")

		assert.Equal(t, [][]string{{"a", ""}}, rows)
	})

	t.Run("flushes unterminated quote at end of input", func(t *testing.T) {
		t.Parallel()

		rows := titlespec.ParseRows("A,B\n1,\"unterminated\nstill going")

		assert.Equal(t, [][]string{
			{"A", "B"},
			{"1", "unterminated\nstill going"},
		}, rows)
	})

	t.Run("returns no rows for empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, titlespec.ParseRows(""))
		assert.Empty(t, titlespec.ParseRows("\n\n"))
	})

	t.Run("strips byte order mark", func(t *testing.T) {
		t.Parallel()

		rows := titlespec.ParseRows("\ufeffFile Name\na.pdf\n")

		assert.Equal(t, [][]string{{"File Name"}, {"a.pdf"}}, rows)
	})

	t.Run("keeps multibyte text intact", func(t *testing.T) {
		t.Parallel()

		rows := titlespec.ParseRows("A\n\"café, naïve\"\n")

		assert.Equal(t, []string{"café, naïve"}, rows[1])
	})
}

func TestParseRecords(t *testing.T) {
	t.Parallel()

	t.Run("zips rows against header", func(t *testing.T) {
		t.Parallel()

		schema, records := titlespec.ParseRecords("File Name,Title Code,Job Title\na.pdf,1.0A,Clerk\nb.pdf,2.0B,Typist\n")

		assert.Equal(t, []string{"File Name", "Title Code", "Job Title"}, schema.Columns())
		require.Len(t, records, 2)
		assert.Equal(t, "a.pdf", records[0].FileName())
		assert.Equal(t, "1.0A", records[0].TitleCode())
		assert.Equal(t, "Typist", records[1].JobTitle())
	})

	t.Run("pads short rows and truncates long rows", func(t *testing.T) {
		t.Parallel()

		_, records := titlespec.ParseRecords("File Name,Title Code,Job Title\na.pdf\nb.pdf,2.0B,Typist,extra,more\n")

		require.Len(t, records, 2)
		assert.Equal(t, []string{"a.pdf", "", ""}, records[0].Values())
		assert.Equal(t, []string{"b.pdf", "2.0B", "Typist"}, records[1].Values())
	})

	t.Run("drops records with empty file name", func(t *testing.T) {
		t.Parallel()

		_, records := titlespec.ParseRecords("File Name,Title Code\na.pdf,1.0A\n,2.0B\n  ,3.0C\n")

		require.Len(t, records, 1)
		assert.Equal(t, "1.0A", records[0].TitleCode())
	})

	t.Run("uses first column when File Name header is absent", func(t *testing.T) {
		t.Parallel()

		_, records := titlespec.ParseRecords("Doc,Title Code\na.pdf,1.0A\n,2.0B\n")

		require.Len(t, records, 1)
		assert.Equal(t, "a.pdf", records[0].FileName())
	})

	t.Run("trims header whitespace and residual quotes", func(t *testing.T) {
		t.Parallel()

		schema, _ := titlespec.ParseRecords(" File Name ,\"\"\"Title Code\"\"\"\n")

		assert.Equal(t, []string{"File Name", "Title Code"}, schema.Columns())
	})

	t.Run("returns empty schema for empty input", func(t *testing.T) {
		t.Parallel()

		schema, records := titlespec.ParseRecords("")

		assert.Equal(t, 0, schema.Len())
		assert.Empty(t, records)
	})

	t.Run("keeps multi-line field within one record", func(t *testing.T) {
		t.Parallel()

		raw := "File Name,Title Code,Raw Text\n" +
			"a.pdf,1.0A,\"DUTIES\nUnder supervision, performs\n\"\"clerical\"\" work\"\n" +
			"b.pdf,2.0B,short\n"

		_, records := titlespec.ParseRecords(raw)

		require.Len(t, records, 2)
		assert.Equal(t, "DUTIES\nUnder supervision, performs\n\"clerical\" work", records[0].RawText())
		assert.Equal(t, "2.0B", records[1].TitleCode())
	})
}

func TestParseDataset(t *testing.T) {
	t.Parallel()

	ds := titlespec.ParseDataset("File Name,Title Code\na.pdf,1.0A\n,2.0B\n")

	assert.Equal(t, 1, ds.Len())
	_, err := ds.FindByKey("2.0B")
	assert.Equal(t, titlespec.ENOTFOUND, titlespec.ErrorCode(err))
}
