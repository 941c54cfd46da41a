package main_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/titlespec"
	main "github.com/fwojciec/titlespec/cmd/titlespec"
	"github.com/fwojciec/titlespec/mock"
	"github.com/stretchr/testify/require"
)

const testCSV = "File Name,Title Code,Job Title,Effective Date,Num Pages\n" +
	"clerk.pdf,10251,Clerk,01/01/1990,1\n" +
	"typist.pdf,10252,Typist,02/02/1992,1\n" +
	"engineer.pdf,20210A,Civil Engineer,04/04/1994,2\n"

const testFullCSV = "File Name,Title Code,Job Title,Raw Text\n" +
	"clerk.pdf,10251,Clerk,\"CLERK\nDuties include filing\"\n" +
	"typist.pdf,10252,Typist,TYPIST\n" +
	"engineer.pdf,20210A,Civil Engineer,ENGINEER\n"

func testRecords(t *testing.T) []*titlespec.Record {
	t.Helper()
	ds := titlespec.ParseDataset(testCSV)
	require.Equal(t, 3, ds.Len())
	return ds.All()
}

// recordService serves records from memory the way the catalog does.
func recordService(records []*titlespec.Record) *mock.RecordService {
	ds := titlespec.NewDataset(nil, nil)
	if len(records) > 0 {
		ds = titlespec.NewDataset(records[0].Schema(), records)
	}
	return &mock.RecordService{
		RecordsFn: func(_ context.Context) ([]*titlespec.Record, error) {
			return ds.All(), nil
		},
		FindRecordByCodeFn: func(_ context.Context, code string) (*titlespec.Record, error) {
			return ds.FindByKey(code)
		},
		FindRecordByFileNameFn: func(_ context.Context, name string) (*titlespec.Record, error) {
			return ds.FindByFileName(name)
		},
		SearchRecordsFn: func(_ context.Context, term string) ([]*titlespec.Record, error) {
			return ds.Search(term), nil
		},
	}
}

type testDeps struct {
	*main.Dependencies
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestDeps(stdin string) *testDeps {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &testDeps{
		Dependencies: &main.Dependencies{
			Ctx:    context.Background(),
			Stdin:  strings.NewReader(stdin),
			Stdout: stdout,
			Stderr: stderr,
			Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
			Config: titlespec.DefaultConfig(),
		},
		stdout: stdout,
		stderr: stderr,
	}
}

// writeDataset creates a local dataset folder with both CSVs.
func writeDataset(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extracted_data.csv"), []byte(testCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extracted_data_full.csv"), []byte(testFullCSV), 0o644))
	return dir
}
