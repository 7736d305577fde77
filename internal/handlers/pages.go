package handlers

import (
	"net/url"

	"github.com/gpedrosad/mapra2/internal/i18n"
	"github.com/gpedrosad/mapra2/internal/nav"
)

// PageData is the view model shared by every page using the base layout.
type PageData struct {
	Title     string
	Lang      string
	SEO       SEOData
	Analytics Analytics

	// L resolves keys in templates: {{.L.T "key"}}.
	L    *i18n.Localizer
	CSRF string

	Path        string
	Nav         []NavLink
	Breadcrumbs []CrumbView
	Languages   []LangOption
	Footer      FooterView

	// Page chrome toggled by an open lightbox.
	BodyClass string
	KeyBridge bool

	// Optional per-page view model payloads
	Hero    *HeroView
	Offer   *OfferView
	Press   []PressView
	Gallery *GalleryView
	Contact *ContactView
	Legal   *LegalView
}

// NavLink is a translated navigation entry.
type NavLink struct {
	Href   string
	Label  string
	Active bool
}

// CrumbView is a translated breadcrumb.
type CrumbView struct {
	Href   string
	Label  string
	Active bool
}

// LangOption renders one language toggle button.
type LangOption struct {
	Code    string
	Label   string
	Href    string
	Pressed bool
}

// BuildNav translates the main navigation for path.
func BuildNav(loc *i18n.Localizer, path string) []NavLink {
	items := nav.Build(path)
	out := make([]NavLink, 0, len(items))
	for _, it := range items {
		out = append(out, NavLink{Href: it.Href, Label: loc.T(it.LabelKey), Active: it.Active})
	}
	return out
}

// BuildBreadcrumbs translates breadcrumbs for path.
func BuildBreadcrumbs(loc *i18n.Localizer, path string) []CrumbView {
	crumbs := nav.Breadcrumbs(path)
	out := make([]CrumbView, 0, len(crumbs))
	for _, c := range crumbs {
		label := c.Label
		if c.LabelKey != "" {
			label = loc.T(c.LabelKey)
		}
		out = append(out, CrumbView{Href: c.Href, Label: label, Active: c.Active})
	}
	return out
}

// BuildLanguages returns the toggle for every supported locale in display
// order. Each link
// keeps the current query and sets hl.
func BuildLanguages(loc *i18n.Localizer, u *url.URL) []LangOption {
	b := loc.Bundle()
	var out []LangOption
	for _, l := range i18n.Locales() {
		if !b.IsSupported(l) {
			continue
		}
		q := url.Values{}
		if u != nil {
			q = u.Query()
		}
		q.Del(ParamKey)
		q.Set("hl", string(l))
		path := "/"
		if u != nil && u.Path != "" {
			path = u.Path
		}
		out = append(out, LangOption{
			Code:    string(l),
			Label:   loc.T("ui_lang_" + string(l)),
			Href:    path + "?" + q.Encode(),
			Pressed: l == loc.Locale(),
		})
	}
	return out
}
