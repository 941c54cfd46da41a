package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/titlespec"
	"github.com/fwojciec/titlespec/catalog"
)

// ShutdownTimeout is the time given for outstanding requests to finish
// before the server shuts down.
const ShutdownTimeout = 5 * time.Second

// SnapshotSource provides the currently loaded dataset snapshot. Snapshot
// returns nil while the first load is outstanding.
type SnapshotSource interface {
	Snapshot() *catalog.Snapshot
}

// TextExporter produces extracted-text downloads.
type TextExporter interface {
	ExportText(ctx context.Context, code string) (*catalog.Export, error)
}

// Server serves the JSON API, PDFs, and the browser page.
type Server struct {
	ln     net.Listener
	server *http.Server
	mux    *http.ServeMux

	// Addr is the bind address, e.g. ":8080".
	Addr string

	Config    titlespec.Config
	Snapshots SnapshotSource
	Records   titlespec.RecordService
	Exporter  TextExporter
	Logger    *slog.Logger

	// DefaultFirst selects the first record on the page and in the
	// selection API when no code is requested.
	DefaultFirst bool
}

// NewServer returns a server with its routes registered.
func NewServer() *Server {
	s := &Server{
		mux:    http.NewServeMux(),
		Logger: slog.Default(),
	}
	s.server = &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /api/records", s.handleRecords)
	s.mux.HandleFunc("GET /api/records/{code}", s.handleRecord)
	s.mux.HandleFunc("GET /api/records/{code}/text", s.handleRecordText)
	s.mux.HandleFunc("GET /api/selection", s.handleSelection)
	s.mux.HandleFunc("GET /pdfs/{name}", s.handlePDF)
	s.mux.HandleFunc("GET /sitemap.xml", s.handleSitemap)
	s.mux.HandleFunc("GET /embed", s.handlePage)
	s.mux.HandleFunc("GET /embed/", s.handlePage)
	s.mux.HandleFunc("GET /{$}", s.handlePage)
	s.mux.HandleFunc("GET /", s.handleFallback)

	return s
}

// ServeHTTP runs the request through the middleware chain and the router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	chain(s.mux, requestID, s.accessLog, s.recoverPanic).ServeHTTP(w, r)
}

// Open binds Addr and starts serving in the background.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}

	go func() {
		if err := s.server.Serve(s.ln); err != nil && err != http.ErrServerClosed {
			s.Logger.Error("http server stopped", "err", err)
		}
	}()
	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "loading"}
	if snap := s.Snapshots.Snapshot(); snap != nil {
		resp.Status = "ok"
		resp.Records = snap.Dataset.Len()
		resp.Version = snap.Version
		resp.LoadedAt = snap.LoadedAt
	}
	writeJSON(w, http.StatusOK, resp)
}

type healthResponse struct {
	Status   string    `json:"status"`
	Records  int       `json:"records"`
	Version  string    `json:"version,omitempty"`
	LoadedAt time.Time `json:"loadedAt,omitzero"`
}
