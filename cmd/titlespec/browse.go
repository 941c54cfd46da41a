package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/titlespec"
)

const browseHelp = `Commands:
  /TERM      filter the list (a bare / clears the filter)
  N          select the Nth title in the list
  go CODE    open a title code
  l          show the list
  b, f       back, forward
  q          quit`

// Run executes the browse command. Each line read from stdin is one
// navigation step; selections go through the same history as back and
// forward.
func (c *BrowseCmd) Run(deps *Dependencies) error {
	records, err := deps.Records.Records(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", titlespec.ErrorMessage(err))
		return err
	}

	history := titlespec.NewHistory(titlespec.Navigation{Code: c.Code, Embed: c.Embed})
	ctrl := titlespec.NewController(history)
	b := &browser{
		ctrl:     ctrl,
		history:  history,
		out:      deps.Stdout,
		feedback: deps.Config.FeedbackURL,
	}

	sel := ctrl.SetDataset(datasetOf(records))
	if sel.State != titlespec.StateSelected {
		b.printResults()
	}
	printSelection(b.out, sel, b.feedback)

	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(b.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(b.out)
			return scanner.Err()
		}
		if deps.Ctx.Err() != nil {
			return nil
		}
		if !b.exec(strings.TrimSpace(scanner.Text())) {
			return nil
		}
	}
}

type browser struct {
	ctrl     *titlespec.Controller
	history  *titlespec.History
	out      io.Writer
	feedback string
}

// exec runs one command line. Returns false when the session should end.
func (b *browser) exec(line string) bool {
	switch {
	case line == "":
		b.show(b.ctrl.Selection())
	case line == "q" || line == "quit":
		return false
	case line == "?" || line == "help":
		fmt.Fprintln(b.out, browseHelp)
	case line == "l":
		b.printResults()
	case line == "b":
		if !b.history.Back() {
			fmt.Fprintln(b.out, "Already at the oldest entry.")
			return true
		}
		b.show(b.ctrl.Navigated())
	case line == "f":
		if !b.history.Forward() {
			fmt.Fprintln(b.out, "Already at the newest entry.")
			return true
		}
		b.show(b.ctrl.Navigated())
	case strings.HasPrefix(line, "/"):
		b.ctrl.SetFilter(strings.TrimPrefix(line, "/"))
		b.printResults()
	case strings.HasPrefix(line, "go "):
		cur := b.history.Current()
		b.history.Push(titlespec.Navigation{Code: strings.TrimSpace(line[3:]), Embed: cur.Embed})
		b.show(b.ctrl.Navigated())
	default:
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(b.out, "Unknown command %q. Type ? for help.\n", line)
			return true
		}
		b.pick(n)
	}
	return true
}

func (b *browser) pick(n int) {
	results := b.ctrl.Results()
	if n < 1 || n > len(results) {
		fmt.Fprintf(b.out, "No title numbered %d.\n", n)
		return
	}

	sel, err := b.ctrl.Pick(results[n-1])
	if err != nil {
		fmt.Fprintf(b.out, "error: %s\n", titlespec.ErrorMessage(err))
		return
	}
	b.show(sel)
}

func (b *browser) show(sel titlespec.Selection) {
	printSelection(b.out, sel, b.feedback)
}

func (b *browser) printResults() {
	if b.history.Current().Embed {
		return
	}

	results := b.ctrl.Results()
	if len(results) == 0 {
		if f := b.ctrl.Filter(); f != "" {
			fmt.Fprintf(b.out, "No title specifications match %q.\n", f)
		}
		return
	}
	for i, rec := range results {
		fmt.Fprintf(b.out, "%3d. %s\n", i+1, titlespec.FormatListItem(rec))
	}
}
