package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fwojciec/titlespec"
	"github.com/google/uuid"
)

// DatasetInfo describes the stored snapshot.
type DatasetInfo struct {
	ID       string
	Source   string
	Version  string
	Full     bool // synced from the full dataset
	Records  int
	LoadedAt time.Time
	SyncedAt time.Time
}

// DatasetService stores and restores whole dataset snapshots.
type DatasetService struct {
	db *DB
}

// NewDatasetService creates a new DatasetService.
func NewDatasetService(db *DB) *DatasetService {
	return &DatasetService{db: db}
}

// ReplaceDataset stores ds as the only snapshot, replacing any previous
// one in a single transaction. Returns the stored info with ID and SyncedAt
// set.
func (s *DatasetService) ReplaceDataset(ctx context.Context, ds *titlespec.Dataset, info DatasetInfo) (*DatasetInfo, error) {
	columns, err := encodeStrings(ds.Schema().Columns())
	if err != nil {
		return nil, err
	}

	info.ID = uuid.New().String()
	info.Records = ds.Len()
	info.SyncedAt = time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM datasets`); err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO datasets (id, source, version, is_full, columns, loaded_at, synced_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, info.ID, info.Source, info.Version, info.Full, columns,
		info.LoadedAt.UTC().Format(time.RFC3339Nano), info.SyncedAt.Format(time.RFC3339Nano)); err != nil {
		return nil, err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (dataset_id, position, file_name, title_code, cells)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	for i, rec := range ds.All() {
		cells, err := encodeStrings(rec.Values())
		if err != nil {
			return nil, err
		}
		if _, err := stmt.ExecContext(ctx, info.ID, i, rec.FileName(), rec.TitleCode(), cells); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &info, nil
}

// CurrentDataset returns the stored snapshot's info, or ENOTFOUND if
// nothing has been synced.
func (s *DatasetService) CurrentDataset(ctx context.Context) (*DatasetInfo, error) {
	var info DatasetInfo
	var loadedAt, syncedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT d.id, d.source, d.version, d.is_full, d.loaded_at, d.synced_at,
			(SELECT COUNT(*) FROM records r WHERE r.dataset_id = d.id)
		FROM datasets d
		LIMIT 1
	`).Scan(&info.ID, &info.Source, &info.Version, &info.Full, &loadedAt, &syncedAt, &info.Records)
	if err == sql.ErrNoRows {
		return nil, titlespec.Errorf(titlespec.ENOTFOUND, "no dataset has been synced")
	}
	if err != nil {
		return nil, err
	}

	if info.LoadedAt, err = parseRFC3339(loadedAt, "loaded_at"); err != nil {
		return nil, err
	}
	if info.SyncedAt, err = parseRFC3339(syncedAt, "synced_at"); err != nil {
		return nil, err
	}
	return &info, nil
}

// LoadDataset rebuilds the stored snapshot as an in-memory dataset.
func (s *DatasetService) LoadDataset(ctx context.Context) (*titlespec.Dataset, *DatasetInfo, error) {
	info, err := s.CurrentDataset(ctx)
	if err != nil {
		return nil, nil, err
	}

	schema, err := loadSchema(ctx, s.db)
	if err != nil {
		return nil, nil, err
	}

	records, err := queryRecords(ctx, s.db, schema, `SELECT cells FROM records ORDER BY position ASC`)
	if err != nil {
		return nil, nil, err
	}
	return titlespec.NewDataset(schema, records), info, nil
}

// loadSchema returns the stored header schema, or ENOTFOUND if nothing has
// been synced.
func loadSchema(ctx context.Context, db *DB) (*titlespec.Schema, error) {
	var columns string
	err := db.QueryRowContext(ctx, `SELECT columns FROM datasets LIMIT 1`).Scan(&columns)
	if err == sql.ErrNoRows {
		return nil, titlespec.Errorf(titlespec.ENOTFOUND, "no dataset has been synced")
	}
	if err != nil {
		return nil, err
	}

	names, err := decodeStrings(columns, "columns")
	if err != nil {
		return nil, err
	}
	return titlespec.NewSchema(names), nil
}

// queryRecords runs a query selecting the cells column and builds records
// against schema in result order.
func queryRecords(ctx context.Context, db *DB, schema *titlespec.Schema, query string, args ...any) ([]*titlespec.Record, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*titlespec.Record
	for rows.Next() {
		var cells string
		if err := rows.Scan(&cells); err != nil {
			return nil, err
		}
		values, err := decodeStrings(cells, "cells")
		if err != nil {
			return nil, err
		}
		records = append(records, titlespec.NewRecord(schema, values))
	}
	return records, rows.Err()
}
