package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/titlespec"
	"github.com/fwojciec/titlespec/catalog"
	"github.com/fwojciec/titlespec/fs"
	tshttp "github.com/fwojciec/titlespec/http"
	"github.com/fwojciec/titlespec/pdf"
	tsslog "github.com/fwojciec/titlespec/slog"
	"github.com/fwojciec/titlespec/sqlite"
	"github.com/fwojciec/titlespec/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path for snapshots. Set before calling Run().
	DBPath string

	// Config file path. Set before calling Run().
	ConfigPath string

	// Stdin is read by interactive commands.
	Stdin io.Reader

	// SQLite database, opened only by commands that use snapshots.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:     defaultDBPath(),
		ConfigPath: defaultConfigPath(),
		Stdin:      os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("titlespec"),
		kong.Description("Browse civil service title specifications"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'titlespec --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	command := strings.Fields(kongCtx.Command())[0]

	if cli.Config != "" {
		m.ConfigPath = cli.Config
	}
	if cli.DB != "" {
		m.DBPath = cli.DB
	}

	cfg, err := yaml.LoadConfig(m.ConfigPath, titlespec.DefaultConfig())
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", titlespec.ErrorMessage(err))
		return err
	}
	deps.Config = cli.apply(cfg)
	deps.ConfigPath = m.ConfigPath
	deps.Logger = newLogger(stderr, command, cli.Verbose)

	if command == "config" {
		return kongCtx.Run(deps)
	}

	if command == "sync" && cli.Offline {
		return fmt.Errorf("sync reads the source dataset and cannot run with --offline")
	}

	var datasets *sqlite.DatasetService
	if command == "sync" || cli.Offline {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set TITLESPEC_DB or --db to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		datasets = sqlite.NewDatasetService(m.DB)
		deps.DB = m.DB
		deps.Datasets = datasets
	}

	if cli.Offline {
		stored := &storedLoader{Datasets: datasets, Stderr: stderr}
		deps.Catalog = catalog.New(stored)
		deps.Records = sqlite.NewRecordService(m.DB)
		deps.Exporter = &catalog.Exporter{Records: deps.Records, Full: stored}
	} else {
		if err := deps.Config.Validate(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set TITLESPEC_BASE_URL, pass --base-url, or run 'titlespec config init'\n")
			return err
		}

		fetcher := tsslog.NewLoggingFetcher(newFetcher(deps.Config, cli.Timeout), deps.Logger)
		defer fetcher.Close()

		loader := catalog.NewLoader(fetcher, deps.Config)
		deps.Loader = loader
		deps.Catalog = catalog.New(loader)
		deps.Records = deps.Catalog
		deps.Exporter = &catalog.Exporter{Records: deps.Catalog, Full: loader}
	}
	if command == "serve" {
		deps.Records = deps.Catalog
	}
	deps.Records = tsslog.NewLoggingRecordService(deps.Records, deps.Logger)

	switch command {
	case "serve":
		srv := tshttp.NewServer()
		srv.Config = deps.Config
		srv.Snapshots = deps.Catalog
		srv.Records = deps.Records
		srv.Exporter = deps.Exporter
		srv.Logger = deps.Logger
		deps.Server = srv
	case "check":
		deps.Pages = tsslog.NewLoggingPageCounter(pdf.NewPageCounter(), deps.Logger)
	}

	if !cli.Offline && command != "serve" && command != "sync" {
		reloadCatalog(ctx, deps.Catalog, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// newFetcher returns an HTTP fetcher for remote datasets and a file fetcher
// for local ones.
func newFetcher(cfg titlespec.Config, timeout time.Duration) titlespec.Fetcher {
	if cfg.IsRemote() {
		return tshttp.NewFetcher(
			tshttp.WithTimeout(timeout),
			tshttp.WithRateLimit(2),
		)
	}
	return fs.NewFetcher()
}

// newLogger returns the command's logger. Only warnings and errors are
// shown by default; serve logs requests and loads at info level.
func newLogger(w io.Writer, command string, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if command == "serve" {
		level = slog.LevelInfo
	}
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// reloadCatalog loads the dataset into cat and logs the outcome. A failed
// first load leaves cat with an empty dataset.
func reloadCatalog(ctx context.Context, cat *catalog.Catalog, logger *slog.Logger) {
	snap, err := cat.Reload(ctx)
	if err != nil {
		logger.Error("dataset load failed", "err", err)
		return
	}

	logger.Info("dataset loaded",
		"source", snap.Source,
		"records", snap.Dataset.Len(),
		"version", snap.Version,
	)
	if len(snap.MissingColumns) > 0 {
		logger.Warn("dataset is missing required columns", "columns", strings.Join(snap.MissingColumns, ","))
	}
	if len(snap.DuplicateCodes) > 0 {
		logger.Debug("dataset has duplicate title codes", "codes", strings.Join(snap.DuplicateCodes, ","))
	}
}

func defaultDBPath() string {
	if path := os.Getenv("TITLESPEC_DB"); path != "" {
		return path
	}
	return filepath.Join(homeDir(), "titlespec.db")
}

func defaultConfigPath() string {
	return filepath.Join(homeDir(), "config.yaml")
}

// homeDir returns ~/.titlespec, or the working directory if the user's
// home is unknown.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	dir := filepath.Join(home, ".titlespec")
	_ = os.MkdirAll(dir, 0755)
	return dir
}
