package seo

import (
	"encoding/xml"
	"strconv"
	"time"
)

// Change frequencies.
const (
	Weekly  = "weekly"
	Monthly = "monthly"
	Yearly  = "yearly"
)

// SitemapEntry is one <url> element.
type SitemapEntry struct {
	Path       string
	ChangeFreq string
	Priority   float64
}

// DefaultSitemap lists every public page with its crawl hints.
var DefaultSitemap = []SitemapEntry{
	{Path: "/", ChangeFreq: Weekly, Priority: 1.0},
	{Path: "/pinturas", ChangeFreq: Weekly, Priority: 0.8},
	{Path: "/esculturas", ChangeFreq: Weekly, Priority: 0.8},
	{Path: "/prensa", ChangeFreq: Monthly, Priority: 0.7},
	{Path: "/contacto", ChangeFreq: Monthly, Priority: 0.6},
	{Path: "/devoluciones", ChangeFreq: Yearly, Priority: 0.3},
	{Path: "/tiempos-de-entrega", ChangeFreq: Yearly, Priority: 0.3},
	{Path: "/privacidad", ChangeFreq: Yearly, Priority: 0.2},
}

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Sitemap renders a sitemaps.org document for entries under baseURL.
func Sitemap(baseURL string, entries []SitemapEntry, lastMod time.Time) ([]byte, error) {
	set := urlset{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	mod := lastMod.UTC().Format(time.RFC3339)
	for _, e := range entries {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        Absolute(baseURL, e.Path),
			LastMod:    mod,
			ChangeFreq: e.ChangeFreq,
			Priority:   formatPriority(e.Priority),
		})
	}
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

func formatPriority(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64)
}
