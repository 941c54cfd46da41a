package http

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/fwojciec/titlespec"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("page.html").Funcs(template.FuncMap{
	"pdfPath":    pdfPath,
	"pathEscape": url.PathEscape,
	"navURL": func(code string, embed bool) string {
		return titlespec.Navigation{Code: code, Embed: embed}.URL()
	},
	"resultURL": resultURL,
}).ParseFS(templateFS, "templates/page.html"))

// resultURL links a list entry to its title while keeping the active filter.
func resultURL(code, filter string) string {
	u := titlespec.Navigation{Code: code}.URL()
	if filter == "" {
		return u
	}
	q := url.Values{"q": {filter}}.Encode()
	if strings.Contains(u, "?") {
		return u + "&" + q
	}
	return u + "?" + q
}

// pageData is the view model of the browser page.
type pageData struct {
	Navigation titlespec.Navigation
	Selection  titlespec.Selection
	Filter     string
	Results    []*titlespec.Record
	Fields     []titlespec.Field
	Message    string
	Loading    bool
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	nav := titlespec.ParseNavigation(r.URL.Path, r.URL.Query())
	s.renderPage(w, r, nav)
}

// handleFallback serves the page for unknown paths outside the API, so
// client-side links keep working. API paths get a JSON 404.
func (s *Server) handleFallback(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		s.writeError(w, r, titlespec.Errorf(titlespec.ENOTFOUND, "no route for %s", r.URL.Path))
		return
	}
	s.renderPage(w, r, titlespec.Navigation{Code: r.URL.Query().Get(titlespec.CodeParam)})
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, nav titlespec.Navigation) {
	sel := s.resolve(nav)
	data := pageData{
		Navigation: nav,
		Selection:  sel,
		Filter:     r.URL.Query().Get("q"),
		Loading:    sel.State == titlespec.StateLoading,
	}

	switch sel.State {
	case titlespec.StateSelected:
		for _, f := range sel.Record.Fields() {
			if f.Name == titlespec.ColumnRawText || strings.TrimSpace(f.Value) == "" {
				continue
			}
			data.Fields = append(data.Fields, f)
		}
	case titlespec.StateNotFound:
		data.Message = titlespec.NotFoundMessage(sel.Code, s.Config.FeedbackURL)
	}

	if !nav.Embed && !data.Loading {
		results, err := s.Records.SearchRecords(r.Context(), data.Filter)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		data.Results = results
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		s.Logger.Error("render page", "request_id", RequestIDFrom(r.Context()), "err", err)
	}
}
