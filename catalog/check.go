package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fwojciec/titlespec"
	"golang.org/x/sync/errgroup"
)

// Problem kinds reported by the checker.
const (
	ProblemMissing    = "missing"
	ProblemUnreadable = "unreadable"
	ProblemPageCount  = "page_count"
)

// Issue is a mismatch between a record and its PDF.
type Issue struct {
	FileName  string `json:"fileName"`
	TitleCode string `json:"titleCode"`
	Problem   string `json:"problem"`
	Detail    string `json:"detail"`
}

// Checker verifies that every record's PDF exists in a local folder and that
// its page count agrees with the Num Pages column.
type Checker struct {
	Pages       titlespec.PageCounter
	Dir         string
	Concurrency int
}

// Check returns the issues found, in record order. It fails only when the
// context is canceled.
func (c *Checker) Check(ctx context.Context, records []*titlespec.Record) ([]Issue, error) {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	found := make([]*Issue, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, rec := range records {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			found[i] = c.checkRecord(gctx, rec)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var issues []Issue
	for _, issue := range found {
		if issue != nil {
			issues = append(issues, *issue)
		}
	}
	return issues, nil
}

func (c *Checker) checkRecord(ctx context.Context, rec *titlespec.Record) *Issue {
	issue := func(problem, detail string) *Issue {
		return &Issue{
			FileName:  rec.FileName(),
			TitleCode: rec.TitleCode(),
			Problem:   problem,
			Detail:    detail,
		}
	}

	path := filepath.Join(c.Dir, filepath.Base(rec.FileName()))
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return issue(ProblemMissing, "no PDF at "+path)
	} else if err != nil {
		return issue(ProblemUnreadable, err.Error())
	}

	pages, err := c.Pages.CountPages(ctx, path)
	if err != nil {
		return issue(ProblemUnreadable, err.Error())
	}

	declared := strings.TrimSpace(rec.Get(titlespec.ColumnNumPages))
	if declared == "" {
		return nil
	}
	want, err := strconv.Atoi(declared)
	if err != nil {
		return issue(ProblemPageCount, fmt.Sprintf("num pages %q is not a number", declared))
	}
	if want != pages {
		return issue(ProblemPageCount, fmt.Sprintf("num pages is %d, PDF has %d", want, pages))
	}
	return nil
}
