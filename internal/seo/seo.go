package seo

import "strings"

// OpenGraph holds og:* values.
type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	Locale      string
	SiteName    string
}

// Twitter holds twitter:* card values.
type Twitter struct {
	Card  string
	Image string
}

// Alternate is an hreflang link.
type Alternate struct {
	Lang string
	Href string
}

// Meta is the head metadata of a page.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Keywords    []string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
	Alternates  []Alternate
}

// PageTitle joins a page title with the site name.
func PageTitle(page, site string) string {
	page = strings.TrimSpace(page)
	if page == "" || page == site {
		return site
	}
	return page + " | " + site
}

// OGLocale maps a site language to an og:locale value.
func OGLocale(lang string) string {
	if lang == "en" {
		return "en_US"
	}
	return "es_CL"
}

// Absolute joins base and p into an absolute URL. Absolute p is returned as is.
func Absolute(base, p string) string {
	if p == "" || p == "/" {
		return strings.TrimRight(base, "/")
	}
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(p, "/")
}
