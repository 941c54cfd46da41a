package catalog_test

import (
	"context"
	"testing"

	"github.com/fwojciec/titlespec"
	"github.com/fwojciec/titlespec/catalog"
	"github.com/fwojciec/titlespec/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fullLoaderFunc func(ctx context.Context) (*catalog.Snapshot, error)

func (f fullLoaderFunc) LoadFull(ctx context.Context) (*catalog.Snapshot, error) { return f(ctx) }

func TestExporter_ExportText(t *testing.T) {
	t.Parallel()

	primary := titlespec.ParseDataset(testCSV)
	records := &mock.RecordService{
		FindRecordByCodeFn: func(_ context.Context, code string) (*titlespec.Record, error) {
			return primary.FindByKey(code)
		},
	}

	t.Run("returns raw text joined by file name", func(t *testing.T) {
		t.Parallel()

		exporter := &catalog.Exporter{
			Records: records,
			Full: fullLoaderFunc(func(context.Context) (*catalog.Snapshot, error) {
				return snapshotOf(testFullCSV), nil
			}),
		}

		export, err := exporter.ExportText(context.Background(), "10251")

		require.NoError(t, err)
		assert.Equal(t, "CLERK\nDuties", export.Text)
		assert.Equal(t, "10251_extracted_text.txt", export.Filename)
		assert.Equal(t, "clerk.pdf", export.Record.FileName())
	})

	t.Run("unknown code is not found without loading full CSV", func(t *testing.T) {
		t.Parallel()

		exporter := &catalog.Exporter{
			Records: records,
			Full: fullLoaderFunc(func(context.Context) (*catalog.Snapshot, error) {
				t.Fatal("full CSV should not be loaded")
				return nil, nil
			}),
		}

		_, err := exporter.ExportText(context.Background(), "99999")

		assert.Equal(t, titlespec.ENOTFOUND, titlespec.ErrorCode(err))
	})

	t.Run("record absent from full CSV is not found", func(t *testing.T) {
		t.Parallel()

		exporter := &catalog.Exporter{
			Records: records,
			Full: fullLoaderFunc(func(context.Context) (*catalog.Snapshot, error) {
				return snapshotOf("File Name,Raw Text\nother.pdf,x\n"), nil
			}),
		}

		_, err := exporter.ExportText(context.Background(), "10252")

		assert.Equal(t, titlespec.ENOTFOUND, titlespec.ErrorCode(err))
	})

	t.Run("propagates full load failure", func(t *testing.T) {
		t.Parallel()

		exporter := &catalog.Exporter{
			Records: records,
			Full: fullLoaderFunc(func(context.Context) (*catalog.Snapshot, error) {
				return nil, titlespec.Errorf(titlespec.EUNAVAILABLE, "status 502")
			}),
		}

		_, err := exporter.ExportText(context.Background(), "10252")

		assert.Equal(t, titlespec.EUNAVAILABLE, titlespec.ErrorCode(err))
	})
}
