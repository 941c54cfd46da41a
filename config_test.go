package titlespec_test

import (
	"testing"

	"github.com/fwojciec/titlespec"
	"github.com/stretchr/testify/assert"
)

func TestConfig_URLs(t *testing.T) {
	t.Parallel()

	t.Run("joins remote locations", func(t *testing.T) {
		t.Parallel()

		cfg := titlespec.DefaultConfig()
		cfg.BaseURL = "https://cdn.example.com/"

		assert.True(t, cfg.IsRemote())
		assert.Equal(t, "https://cdn.example.com/extracted_data.csv", cfg.CSVURL())
		assert.Equal(t, "https://cdn.example.com/extracted_data_full.csv", cfg.FullCSVURL())
		assert.Equal(t, "https://cdn.example.com/pdfs/Clerk%20II.pdf", cfg.PDFURL("Clerk II.pdf"))
		assert.Empty(t, cfg.LocalPDFDir())
	})

	t.Run("joins local locations", func(t *testing.T) {
		t.Parallel()

		cfg := titlespec.DefaultConfig()
		cfg.BaseURL = "/data"

		assert.False(t, cfg.IsRemote())
		assert.Equal(t, "/data/extracted_data.csv", cfg.CSVURL())
		assert.Equal(t, "/data/pdfs/Clerk II.pdf", cfg.PDFURL("Clerk II.pdf"))
		assert.Equal(t, "/data/pdfs/", cfg.LocalPDFDir())
	})

	t.Run("prefers explicit PDF dir", func(t *testing.T) {
		t.Parallel()

		cfg := titlespec.DefaultConfig()
		cfg.BaseURL = "https://cdn.example.com"
		cfg.PDFDir = "/srv/pdfs"

		assert.Equal(t, "/srv/pdfs", cfg.LocalPDFDir())
	})

	t.Run("full CSV falls back to primary", func(t *testing.T) {
		t.Parallel()

		cfg := titlespec.Config{BaseURL: "/data", CSVPath: "a.csv"}

		assert.Equal(t, "/data/a.csv", cfg.FullCSVURL())
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := titlespec.DefaultConfig()
	valid.BaseURL = "https://cdn.example.com"
	assert.NoError(t, valid.Validate())

	missingBase := titlespec.DefaultConfig()
	assert.Equal(t, titlespec.EINVALID, titlespec.ErrorCode(missingBase.Validate()))

	missingCSV := titlespec.Config{BaseURL: "/data"}
	assert.Equal(t, titlespec.EINVALID, titlespec.ErrorCode(missingCSV.Validate()))

	badHost := titlespec.DefaultConfig()
	badHost.BaseURL = "https://"
	assert.Equal(t, titlespec.EINVALID, titlespec.ErrorCode(badHost.Validate()))
}
