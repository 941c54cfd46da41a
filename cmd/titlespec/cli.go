package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/titlespec"
	"github.com/fwojciec/titlespec/catalog"
	tshttp "github.com/fwojciec/titlespec/http"
	"github.com/fwojciec/titlespec/sqlite"
)

// DatasetLoader loads the primary and full datasets from the source.
type DatasetLoader interface {
	Load(ctx context.Context) (*catalog.Snapshot, error)
	LoadFull(ctx context.Context) (*catalog.Snapshot, error)
}

// SnapshotStore persists a dataset snapshot.
type SnapshotStore interface {
	ReplaceDataset(ctx context.Context, ds *titlespec.Dataset, info sqlite.DatasetInfo) (*sqlite.DatasetInfo, error)
	CurrentDataset(ctx context.Context) (*sqlite.DatasetInfo, error)
}

// Locker guards the snapshot database against concurrent writers.
type Locker interface {
	Lock(ctx context.Context) (unlock func() error, err error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Config     titlespec.Config
	ConfigPath string
	DB         Locker
	Datasets   SnapshotStore
	Loader     DatasetLoader
	Catalog    *catalog.Catalog
	Records    titlespec.RecordService
	Exporter   tshttp.TextExporter
	Pages      titlespec.PageCounter
	Server     *tshttp.Server
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config      string        `help:"Config file path" env:"TITLESPEC_CONFIG" type:"path"`
	DB          string        `name:"db" help:"Snapshot database path" env:"TITLESPEC_DB" type:"path"`
	BaseURL     string        `name:"base-url" help:"Base URL or folder of the dataset and PDFs" env:"TITLESPEC_BASE_URL"`
	CSVPath     string        `name:"csv-path" help:"Location of the primary CSV" env:"TITLESPEC_CSV_PATH"`
	FullCSVPath string        `name:"full-csv-path" help:"Location of the full-text CSV" env:"TITLESPEC_FULL_CSV_PATH"`
	PDFPath     string        `name:"pdf-path" help:"Location of the PDF folder" env:"TITLESPEC_PDF_PATH"`
	PDFDir      string        `name:"pdf-dir" help:"Local folder holding the PDFs" env:"TITLESPEC_PDF_DIR" type:"path"`
	FeedbackURL string        `name:"feedback-url" help:"Link shown when a title code is not found" env:"TITLESPEC_FEEDBACK_URL"`
	Timeout     time.Duration `default:"30s" help:"Timeout for remote fetches"`
	Offline     bool          `help:"Read the dataset from the synced snapshot instead of the source"`
	Verbose     bool          `short:"v" help:"Enable debug logging"`

	Serve  ServeCmd  `cmd:"" help:"Serve the title specification browser"`
	List   ListCmd   `cmd:"" help:"List all title specifications"`
	Search SearchCmd `cmd:"" help:"Search title specifications"`
	Show   ShowCmd   `cmd:"" help:"Show a title specification"`
	Browse BrowseCmd `cmd:"" help:"Browse title specifications interactively"`
	Export ExportCmd `cmd:"" help:"Save the extracted text of a title specification"`
	Sync   SyncCmd   `cmd:"" help:"Store a snapshot of the dataset for offline use"`
	Check  CheckCmd  `cmd:"" help:"Check local PDFs against the dataset"`
	Cfg    ConfigCmd `cmd:"" name:"config" help:"Manage the config file"`
}

// apply overrides cfg with the locations given on the command line.
func (c *CLI) apply(cfg titlespec.Config) titlespec.Config {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.BaseURL, c.BaseURL)
	set(&cfg.CSVPath, c.CSVPath)
	set(&cfg.FullCSVPath, c.FullCSVPath)
	set(&cfg.PDFPath, c.PDFPath)
	set(&cfg.PDFDir, c.PDFDir)
	set(&cfg.FeedbackURL, c.FeedbackURL)
	return cfg
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr           string        `default:"localhost:8080" help:"Address to listen on"`
	DefaultFirst   bool          `help:"Select the first record when no title code is requested"`
	ReloadInterval time.Duration `help:"Reload the dataset periodically (0 disables)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Term string `arg:"" help:"Text to match against file name, title code, or job title"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Code string `arg:"" optional:"" help:"Title code (defaults to the first record)"`
}

// BrowseCmd is the "browse" subcommand.
type BrowseCmd struct {
	Code  string `arg:"" optional:"" help:"Title code to start at"`
	Embed bool   `help:"Hide the list of titles"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Code   string `arg:"" help:"Title code"`
	Out    string `short:"o" default:"." type:"path" help:"Directory to save the text file in"`
	Stdout bool   `help:"Write the text to stdout instead of a file"`
}

// SyncCmd is the "sync" subcommand.
type SyncCmd struct {
	Full  bool `help:"Store the full-text dataset"`
	Force bool `short:"f" help:"Replace the snapshot even if the dataset is unchanged"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	Concurrency int `short:"c" default:"4" help:"Concurrent PDF checks"`
}

// ConfigCmd groups the "config" subcommands.
type ConfigCmd struct {
	Init ConfigInitCmd `cmd:"" help:"Write the current settings to the config file"`
}

// ConfigInitCmd is the "config init" subcommand.
type ConfigInitCmd struct {
	Force bool `short:"f" help:"Overwrite an existing config file"`
}
