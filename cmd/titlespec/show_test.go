package main_test

import (
	"testing"

	"github.com/fwojciec/titlespec"
	main "github.com/fwojciec/titlespec/cmd/titlespec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("shows the requested record", func(t *testing.T) {
		t.Parallel()

		deps := newTestDeps("")
		deps.Records = recordService(testRecords(t))

		err := (&main.ShowCmd{Code: "10252"}).Run(deps.Dependencies)

		require.NoError(t, err)
		out := deps.stdout.String()
		assert.Contains(t, out, "## 10252 Typist")
		assert.Contains(t, out, "File Name:\ntypist.pdf")
	})

	t.Run("shows the first record without a code", func(t *testing.T) {
		t.Parallel()

		deps := newTestDeps("")
		deps.Records = recordService(testRecords(t))

		err := (&main.ShowCmd{}).Run(deps.Dependencies)

		require.NoError(t, err)
		assert.Contains(t, deps.stdout.String(), "## 10251 Clerk")
	})

	t.Run("reports unknown code with feedback link", func(t *testing.T) {
		t.Parallel()

		deps := newTestDeps("")
		deps.Records = recordService(testRecords(t))
		deps.Config.FeedbackURL = "https://example.com/feedback"

		err := (&main.ShowCmd{Code: "99999"}).Run(deps.Dependencies)

		require.Error(t, err)
		assert.Equal(t, titlespec.ENOTFOUND, titlespec.ErrorCode(err))
		out := deps.stdout.String()
		assert.Contains(t, out, "Title code not found")
		assert.Contains(t, out, `"99999"`)
		assert.Contains(t, out, "https://example.com/feedback")
	})

	t.Run("reports empty dataset", func(t *testing.T) {
		t.Parallel()

		deps := newTestDeps("")
		deps.Records = recordService(nil)

		err := (&main.ShowCmd{Code: "10251"}).Run(deps.Dependencies)

		require.Error(t, err)
		assert.Contains(t, deps.stdout.String(), "No title specifications are available.")
	})
}
