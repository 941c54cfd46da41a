package titlespec

import (
	"net/url"
	"strings"
)

// Default resource locations, relative to Config.BaseURL.
const (
	DefaultCSVPath     = "/extracted_data.csv"
	DefaultFullCSVPath = "/extracted_data_full.csv"
	DefaultPDFPath     = "/pdfs/"
)

// Config locates the dataset resources. BaseURL is either an http(s) origin
// of a static file host or a local directory.
type Config struct {
	BaseURL     string `yaml:"base_url" json:"baseUrl"`
	CSVPath     string `yaml:"csv_path" json:"csvPath"`
	FullCSVPath string `yaml:"full_csv_path" json:"fullCsvPath"`
	PDFPath     string `yaml:"pdf_path" json:"pdfPath"`

	// PDFDir is a local PDF folder used by the checker and for serving
	// PDFs directly. When empty and BaseURL is local, PDFPath under
	// BaseURL is used.
	PDFDir string `yaml:"pdf_dir" json:"pdfDir"`

	// FeedbackURL is offered to users when a title code is not found.
	FeedbackURL string `yaml:"feedback_url" json:"feedbackUrl"`
}

// DefaultConfig returns a config with the default resource paths and no
// base location.
func DefaultConfig() Config {
	return Config{
		CSVPath:     DefaultCSVPath,
		FullCSVPath: DefaultFullCSVPath,
		PDFPath:     DefaultPDFPath,
	}
}

// Validate returns an error if the config cannot locate the dataset.
func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return Errorf(EINVALID, "base URL required")
	}
	if strings.TrimSpace(c.CSVPath) == "" {
		return Errorf(EINVALID, "CSV path required")
	}
	if c.IsRemote() {
		u, err := url.Parse(c.BaseURL)
		if err != nil || u.Host == "" {
			return Errorf(EINVALID, "invalid base URL %q", c.BaseURL)
		}
	}
	return nil
}

// IsRemote reports whether BaseURL points at an HTTP host.
func (c Config) IsRemote() bool {
	return strings.HasPrefix(c.BaseURL, "http://") || strings.HasPrefix(c.BaseURL, "https://")
}

// CSVURL returns the location of the primary CSV.
func (c Config) CSVURL() string {
	return joinLocation(c.BaseURL, c.CSVPath)
}

// FullCSVURL returns the location of the full CSV used for text exports.
// Falls back to the primary CSV when no full CSV is configured.
func (c Config) FullCSVURL() string {
	if strings.TrimSpace(c.FullCSVPath) == "" {
		return c.CSVURL()
	}
	return joinLocation(c.BaseURL, c.FullCSVPath)
}

// PDFURL returns the location of the named PDF. Remote names are
// path-escaped.
func (c Config) PDFURL(fileName string) string {
	if c.IsRemote() {
		fileName = url.PathEscape(fileName)
	}
	return joinLocation(joinLocation(c.BaseURL, c.PDFPath), fileName)
}

// LocalPDFDir returns the local PDF folder, or "" if PDFs are only
// available remotely.
func (c Config) LocalPDFDir() string {
	if c.PDFDir != "" {
		return c.PDFDir
	}
	if c.IsRemote() || c.BaseURL == "" {
		return ""
	}
	return joinLocation(c.BaseURL, c.PDFPath)
}

func joinLocation(base, path string) string {
	switch {
	case path == "":
		return base
	case base == "":
		return path
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
