package handler

import (
	"encoding/xml"
	"net/http"

	"github.com/rs/zerolog/log"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// buildSitemap lists the static pages, then every business page, then every
// city and city/category page.
func (h *DirectoryHandler) buildSitemap() urlSet {
	today := h.now().Format("2006-01-02")
	page := func(path, freq string, priority float64) sitemapURL {
		return sitemapURL{Loc: h.baseURL + path, LastMod: today, ChangeFreq: freq, Priority: priority}
	}

	urls := []sitemapURL{
		page("", "weekly", 1.0),
		page("/directory", "daily", 0.9),
		page("/submit", "monthly", 0.7),
		page("/about", "monthly", 0.6),
		page("/contact", "monthly", 0.5),
	}

	for _, b := range h.dir.All() {
		urls = append(urls, sitemapURL{
			Loc:        h.baseURL + "/business/" + b.Slug,
			LastMod:    b.CreatedAt,
			ChangeFreq: "weekly",
			Priority:   0.8,
		})
	}

	categories := h.dir.CategoriesWithCounts()
	for _, city := range h.dir.Cities() {
		urls = append(urls, page("/directory/"+city.Slug, "daily", 0.8))
		for _, c := range categories {
			urls = append(urls, page("/directory/"+city.Slug+"/"+c.Slug, "weekly", 0.7))
		}
	}

	return urlSet{Xmlns: sitemapNamespace, URLs: urls}
}

// Sitemap handles GET /sitemap.xml
func (h *DirectoryHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	out, err := xml.MarshalIndent(h.buildSitemap(), "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode sitemap")
		SendJSONError(w, http.StatusInternalServerError, ErrInternal, "Failed to build sitemap")
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(xml.Header))
	w.Write(out)
}
