package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/titlespec"
	"github.com/fwojciec/titlespec/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSV = "File Name,Title Code,Job Title,Raw Text\n" +
	"clerk.pdf,10251,Clerk,\"CLERK\nDuties, \"\"routine\"\"\"\n" +
	"typist.pdf,10252,Typist,\n" +
	"CLERK_SR.pdf,10251,Senior Clerk,\n" +
	"engineer.pdf,20210A,Civil Engineer,\n"

// syncTestDataset stores testCSV and returns the database.
func syncTestDataset(t *testing.T) *sqlite.DB {
	t.Helper()
	db := setupTestDB(t)
	_, err := sqlite.NewDatasetService(db).ReplaceDataset(context.Background(), titlespec.ParseDataset(testCSV), sqlite.DatasetInfo{
		Source:   "https://data.example.com/extracted_data.csv",
		Version:  "abc123",
		LoadedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return db
}

func TestDatasetService_ReplaceDataset(t *testing.T) {
	t.Parallel()

	t.Run("stores dataset and reports info", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDatasetService(db)
		loadedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

		info, err := svc.ReplaceDataset(context.Background(), titlespec.ParseDataset(testCSV), sqlite.DatasetInfo{
			Source:   "/srv/extracted_data.csv",
			Version:  "abc123",
			Full:     true,
			LoadedAt: loadedAt,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, info.ID)
		assert.Equal(t, 4, info.Records)
		assert.False(t, info.SyncedAt.IsZero())

		current, err := svc.CurrentDataset(context.Background())
		require.NoError(t, err)
		assert.Equal(t, info.ID, current.ID)
		assert.Equal(t, "/srv/extracted_data.csv", current.Source)
		assert.Equal(t, "abc123", current.Version)
		assert.True(t, current.Full)
		assert.Equal(t, 4, current.Records)
		assert.True(t, loadedAt.Equal(current.LoadedAt))
	})

	t.Run("replaces previous snapshot", func(t *testing.T) {
		t.Parallel()

		db := syncTestDataset(t)
		svc := sqlite.NewDatasetService(db)

		_, err := svc.ReplaceDataset(context.Background(), titlespec.ParseDataset("File Name,Title Code\nnew.pdf,1\n"), sqlite.DatasetInfo{Version: "v2"})
		require.NoError(t, err)

		ds, info, err := svc.LoadDataset(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "v2", info.Version)
		assert.Equal(t, 1, ds.Len())
		assert.Equal(t, []string{"File Name", "Title Code"}, ds.Schema().Columns())

		var count int
		require.NoError(t, db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM records").Scan(&count))
		assert.Equal(t, 1, count)
	})

	t.Run("stores empty dataset", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDatasetService(setupTestDB(t))

		info, err := svc.ReplaceDataset(context.Background(), titlespec.ParseDataset(""), sqlite.DatasetInfo{})

		require.NoError(t, err)
		assert.Equal(t, 0, info.Records)
		ds, _, err := svc.LoadDataset(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, ds.Len())
	})
}

func TestDatasetService_LoadDataset(t *testing.T) {
	t.Parallel()

	t.Run("restores records in source order with values intact", func(t *testing.T) {
		t.Parallel()

		db := syncTestDataset(t)

		ds, _, err := sqlite.NewDatasetService(db).LoadDataset(context.Background())

		require.NoError(t, err)
		want := titlespec.ParseDataset(testCSV)
		require.Equal(t, want.Len(), ds.Len())
		for i, rec := range ds.All() {
			assert.Equal(t, want.All()[i].Values(), rec.Values())
		}
		assert.Equal(t, "CLERK\nDuties, \"routine\"", ds.First().RawText())
	})

	t.Run("returns ENOTFOUND before first sync", func(t *testing.T) {
		t.Parallel()

		_, _, err := sqlite.NewDatasetService(setupTestDB(t)).LoadDataset(context.Background())

		assert.Equal(t, titlespec.ENOTFOUND, titlespec.ErrorCode(err))
	})
}
