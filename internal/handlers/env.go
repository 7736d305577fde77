package handlers

import (
	"net/http"
	"time"

	"github.com/gpedrosad/mapra2/internal/i18n"
	mw "github.com/gpedrosad/mapra2/internal/middleware"
	"github.com/gpedrosad/mapra2/internal/site"
)

// Env carries what every page view needs.
type Env struct {
	Site      *site.Site
	Bundle    *i18n.Bundle
	BaseURL   string
	Analytics Analytics
	Now       func() time.Time
}

// Localizer returns the request localizer, or one fixed to the default
// locale when the request did not pass through the locale middleware.
func (e Env) Localizer(r *http.Request) *i18n.Localizer {
	if loc := mw.LocalizerFrom(r.Context()); loc != nil {
		return loc
	}
	return i18n.NewLocalizer(e.Bundle, nil, nil)
}

// Page builds the shared page shell. title is the page's own title; an
// empty title yields the site name alone.
func (e Env) Page(r *http.Request, title, description string) PageData {
	loc := e.Localizer(r)
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	path := r.URL.Path
	crumbs := BuildBreadcrumbs(loc, path)
	return PageData{
		Title:       title,
		Lang:        string(loc.Locale()),
		Analytics:   e.Analytics,
		L:           loc,
		CSRF:        mw.CSRFToken(r.Context()),
		Path:        path,
		Nav:         BuildNav(loc, path),
		Breadcrumbs: crumbs,
		Languages:   BuildLanguages(loc, r.URL),
		Footer:      BuildFooter(loc, e.Site, now().Year()),
		SEO: BuildSEO(loc, SEOInput{
			Site:        e.Site,
			BaseURL:     e.BaseURL,
			Path:        path,
			Title:       title,
			Description: description,
			Crumbs:      crumbs,
			Home:        path == "/",
		}),
	}
}
