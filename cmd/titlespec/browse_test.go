package main_test

import (
	"strings"
	"testing"

	main "github.com/fwojciec/titlespec/cmd/titlespec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowseCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("filters, picks, and navigates history", func(t *testing.T) {
		t.Parallel()

		deps := newTestDeps("/engineer\n1\nb\nf\ngo 99999\nq\n")
		deps.Records = recordService(testRecords(t))

		err := (&main.BrowseCmd{}).Run(deps.Dependencies)

		require.NoError(t, err)
		out := deps.stdout.String()

		steps := []string{
			"  1. 10251  Clerk  01/01/1990",
			"Select a title from the list.",
			"  1. 20210A  Civil Engineer  04/04/1994",
			"## 20210A Civil Engineer",
			"Select a title from the list.",
			"## 20210A Civil Engineer",
			"Title code not found",
		}
		rest := out
		for _, step := range steps {
			i := strings.Index(rest, step)
			require.GreaterOrEqual(t, i, 0, "missing %q in order", step)
			rest = rest[i+len(step):]
		}
	})

	t.Run("starts at a permalink", func(t *testing.T) {
		t.Parallel()

		deps := newTestDeps("q\n")
		deps.Records = recordService(testRecords(t))

		err := (&main.BrowseCmd{Code: "10252"}).Run(deps.Dependencies)

		require.NoError(t, err)
		out := deps.stdout.String()
		assert.Contains(t, out, "## 10252 Typist")
		assert.NotContains(t, out, "  1. ")
	})

	t.Run("hides the list in embed mode", func(t *testing.T) {
		t.Parallel()

		deps := newTestDeps("l\n1\n")
		deps.Records = recordService(testRecords(t))

		err := (&main.BrowseCmd{Embed: true}).Run(deps.Dependencies)

		require.NoError(t, err)
		out := deps.stdout.String()
		assert.NotContains(t, out, "Clerk  01/01/1990")
		assert.Contains(t, out, "No title numbered 1.")
	})

	t.Run("reports history bounds and unknown input", func(t *testing.T) {
		t.Parallel()

		deps := newTestDeps("b\nf\nfrobnicate\n")
		deps.Records = recordService(testRecords(t))

		err := (&main.BrowseCmd{}).Run(deps.Dependencies)

		require.NoError(t, err)
		out := deps.stdout.String()
		assert.Contains(t, out, "Already at the oldest entry.")
		assert.Contains(t, out, "Already at the newest entry.")
		assert.Contains(t, out, `Unknown command "frobnicate"`)
	})
}
