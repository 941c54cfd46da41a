package catalog

import (
	"context"

	"github.com/fwojciec/titlespec"
)

// FullLoader loads the full dataset used for text exports.
type FullLoader interface {
	LoadFull(ctx context.Context) (*Snapshot, error)
}

// Export is a record's extracted text ready to be saved.
type Export struct {
	Filename string
	Text     string
	Record   *titlespec.Record
}

// Exporter produces extracted-text exports. Each export fetches the full
// CSV on its own; concurrent exports share nothing.
type Exporter struct {
	Records titlespec.RecordService
	Full    FullLoader
}

// ExportText resolves code in the primary records and returns the matching
// Raw Text from the full dataset.
func (e *Exporter) ExportText(ctx context.Context, code string) (*Export, error) {
	rec, err := e.Records.FindRecordByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	full, err := e.Full.LoadFull(ctx)
	if err != nil {
		return nil, err
	}

	text, err := titlespec.ExtractedText(full.Dataset, rec)
	if err != nil {
		return nil, err
	}

	return &Export{
		Filename: titlespec.ExtractedTextFilename(rec.TitleCode()),
		Text:     text,
		Record:   rec,
	}, nil
}
