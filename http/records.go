package http

import (
	"errors"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fwojciec/titlespec"
)

// recordsResponse is the body of GET /api/records.
type recordsResponse struct {
	Columns []string            `json:"columns"`
	Records []*titlespec.Record `json:"records"`
	Total   int                 `json:"total"`
}

// selectionResponse is the body of GET /api/selection.
type selectionResponse struct {
	titlespec.Selection
	Message string `json:"message,omitempty"`
	PDFURL  string `json:"pdfUrl,omitempty"`
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	snap := s.Snapshots.Snapshot()
	if snap == nil {
		s.writeError(w, r, titlespec.Errorf(titlespec.EUNAVAILABLE, "dataset is still loading"))
		return
	}

	etag := strconv.Quote(snap.Version)
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	records, err := s.Records.SearchRecords(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if records == nil {
		records = []*titlespec.Record{}
	}

	writeJSON(w, http.StatusOK, recordsResponse{
		Columns: snap.Dataset.Schema().Columns(),
		Records: records,
		Total:   snap.Dataset.Len(),
	})
}

func (s *Server) handleRecord(w http.ResponseWriter, r *http.Request) {
	rec, err := s.Records.FindRecordByCode(r.Context(), r.PathValue("code"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleRecordText(w http.ResponseWriter, r *http.Request) {
	export, err := s.Exporter.ExportText(r.Context(), r.PathValue("code"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": export.Filename,
	}))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(export.Text))
}

func (s *Server) handleSelection(w http.ResponseWriter, r *http.Request) {
	nav := titlespec.Navigation{
		Code:  r.URL.Query().Get(titlespec.CodeParam),
		Embed: isTrue(r.URL.Query().Get("embed")),
	}
	sel := s.resolve(nav)

	resp := selectionResponse{Selection: sel}
	switch sel.State {
	case titlespec.StateNotFound:
		resp.Message = titlespec.NotFoundMessage(sel.Code, s.Config.FeedbackURL)
	case titlespec.StateSelected:
		resp.PDFURL = pdfPath(sel.Record)
	}
	writeJSON(w, http.StatusOK, resp)
}

// handlePDF serves a PDF from the local folder, or redirects to the remote
// PDF host when no local folder is configured.
func (s *Server) handlePDF(w http.ResponseWriter, r *http.Request) {
	name := filepath.Base(r.PathValue("name"))
	if name == "." || name == string(filepath.Separator) {
		s.writeError(w, r, titlespec.Errorf(titlespec.EINVALID, "invalid PDF name"))
		return
	}

	dir := s.Config.LocalPDFDir()
	if dir == "" {
		http.Redirect(w, r, s.Config.PDFURL(name), http.StatusFound)
		return
	}

	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		s.writeError(w, r, titlespec.Errorf(titlespec.ENOTFOUND, "PDF %q not found", name))
		return
	} else if err != nil {
		s.writeError(w, r, err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		s.writeError(w, r, err)
		return
	} else if info.IsDir() {
		s.writeError(w, r, titlespec.Errorf(titlespec.ENOTFOUND, "PDF %q not found", name))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	http.ServeContent(w, r, name, info.ModTime(), f)
}

// resolve derives the selection for nav from the current snapshot.
func (s *Server) resolve(nav titlespec.Navigation) titlespec.Selection {
	var ds *titlespec.Dataset
	if snap := s.Snapshots.Snapshot(); snap != nil {
		ds = snap.Dataset
	}
	return titlespec.Resolve(titlespec.SelectionInput{
		Dataset:      ds,
		Navigation:   nav,
		DefaultFirst: s.DefaultFirst,
	})
}

// pdfPath returns the server path of the record's PDF.
func pdfPath(rec *titlespec.Record) string {
	return "/pdfs/" + url.PathEscape(filepath.Base(rec.FileName()))
}

func isTrue(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
