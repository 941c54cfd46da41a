package http

import (
	"net/http"

	"github.com/beevik/etree"
	"github.com/fwojciec/titlespec"
)

// sitemapNS is the namespace of the sitemaps.org protocol.
const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

// handleSitemap lists the permalink of every title code, once per code,
// so search engines can index each specification.
func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	snap := s.Snapshots.Snapshot()
	if snap == nil {
		s.writeError(w, r, titlespec.Errorf(titlespec.EUNAVAILABLE, "dataset is still loading"))
		return
	}

	base := baseURL(r)
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", sitemapNS)

	seen := make(map[string]bool)
	for _, rec := range snap.Dataset.All() {
		code := rec.TitleCode()
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		urlset.CreateElement("url").CreateElement("loc").SetText(base + titlespec.Navigation{Code: code}.URL())
	}

	doc.Indent(2)
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("ETag", `"`+snap.Version+`"`)
	if _, err := doc.WriteTo(w); err != nil {
		s.Logger.Error("write sitemap", "err", err)
	}
}

// baseURL returns the scheme and host the request was made to.
func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
