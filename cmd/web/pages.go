package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/gpedrosad/mapra2/internal/cms"
	"github.com/gpedrosad/mapra2/internal/handlers"
	mw "github.com/gpedrosad/mapra2/internal/middleware"
	"github.com/gpedrosad/mapra2/internal/observability"
	"github.com/gpedrosad/mapra2/internal/seo"
)

// home renders the artist hero and the monthly offer.
func (a *app) home(w http.ResponseWriter, r *http.Request) {
	env := a.env()
	loc := env.Localizer(r)
	vm := env.Page(r, "", "")
	vm.Hero = handlers.BuildHero(loc, a.site.Artist)
	vm.Offer = handlers.BuildOffer(loc, a.site.Offer)
	a.views.renderPage(w, r, http.StatusOK, "home", vm)
}

// series renders a gallery page. htmx requests for the viewer get the
// lightbox fragment only.
func (a *app) series(slug string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := a.site.FindSeries(slug)
		if err != nil {
			a.notFound(w, r)
			return
		}
		env := a.env()
		loc := env.Localizer(r)
		view, host := handlers.BuildGallery(loc, s, r)

		q := r.URL.Query()
		if mw.IsHTMX(r.Context()) && (q.Has(handlers.ParamOpen) || q.Has(handlers.ParamKey)) {
			push := view.Path
			if view.Lightbox != nil {
				push += "?" + handlers.ParamOpen + "=" + strconv.Itoa(view.Lightbox.Index)
			}
			w.Header().Set("HX-Push-Url", push)
			trigger := map[string]any{
				"lightbox:state": map[string]any{
					"bodyClass": host.BodyClass(),
					"keys":      host.Listening(),
				},
			}
			if raw, err := json.Marshal(trigger); err == nil {
				w.Header().Set("HX-Trigger", string(raw))
			}
			a.views.renderFragment(w, r, http.StatusOK, "lightbox", view)
			return
		}

		vm := env.Page(r, view.Title, view.Subtitle)
		vm.Gallery = view
		vm.BodyClass = host.BodyClass()
		vm.KeyBridge = host.Listening()
		a.views.renderPage(w, r, http.StatusOK, "gallery", vm)
	}
}

func (a *app) press(w http.ResponseWriter, r *http.Request) {
	env := a.env()
	loc := env.Localizer(r)
	vm := env.Page(r, loc.T("pr_heading"), "")
	vm.Press = handlers.BuildPress(loc, a.site.Artist.Name, a.site.Press)
	a.views.renderPage(w, r, http.StatusOK, "press", vm)
}

func (a *app) contactForm(w http.ResponseWriter, r *http.Request) {
	env := a.env()
	loc := env.Localizer(r)
	vm := env.Page(r, loc.T("cf_title"), loc.T("cf_subtitle"))
	vm.Contact = handlers.BuildContact(loc, nil)
	a.views.renderPage(w, r, http.StatusOK, "contact", vm)
}

// contactSubmit validates the form. A blur round trip re-renders the form;
// a valid submission redirects to WhatsApp with the filled message.
func (a *app) contactSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		mw.WriteError(w, r, http.StatusBadRequest, "invalid form")
		return
	}
	env := a.env()
	loc := env.Localizer(r)
	form := handlers.FormFromRequest(r)
	htmx := mw.IsHTMX(r.Context())

	if r.PostFormValue(handlers.FieldBlur) != "" {
		a.views.renderFragment(w, r, http.StatusOK, "contact_form", formFragment(env.Page(r, "", ""), handlers.BuildContact(loc, form)))
		return
	}

	link, ok := form.Submit(a.site.Contact.Phone, a.site.Contact.MessageTemplate)
	if !ok {
		view := handlers.BuildContact(loc, form)
		if htmx {
			// htmx only swaps 2xx responses.
			a.views.renderFragment(w, r, http.StatusOK, "contact_form", formFragment(env.Page(r, "", ""), view))
			return
		}
		vm := env.Page(r, loc.T("cf_title"), loc.T("cf_subtitle"))
		vm.Contact = view
		a.views.renderPage(w, r, http.StatusUnprocessableEntity, "contact", vm)
		return
	}
	observability.FromContext(r.Context()).Info("contact redirect", zap.Bool("htmx", htmx))
	if htmx {
		// The client opens the chat in a new tab and the form stays in place.
		raw, err := json.Marshal(map[string]string{eventContactOpen: link})
		if err != nil {
			mw.WriteError(w, r, http.StatusInternalServerError, "contact link")
			return
		}
		w.Header().Set("HX-Trigger", string(raw))
		a.views.renderFragment(w, r, http.StatusOK, "contact_form", formFragment(env.Page(r, "", ""), handlers.BuildContact(loc, form)))
		return
	}
	http.Redirect(w, r, link, http.StatusSeeOther)
}

// eventContactOpen carries the WhatsApp link to app.js.
const eventContactOpen = "contact:open"

func formFragment(page handlers.PageData, view *handlers.ContactView) handlers.PageData {
	page.Contact = view
	return page
}

func (a *app) legal(slug string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		env := a.env()
		loc := env.Localizer(r)
		page, err := a.cms.GetLegalPage(r.Context(), slug, string(loc.Locale()))
		if errors.Is(err, cms.ErrNotFound) {
			a.notFound(w, r)
			return
		}
		if err != nil {
			observability.FromContext(r.Context()).Error("load legal page", zap.String("slug", slug), zap.Error(err))
			mw.WriteError(w, r, http.StatusInternalServerError, "content unavailable")
			return
		}
		desc := page.SEO.Description
		vm := env.Page(r, firstNonEmpty(page.SEO.Title, page.Title), desc)
		vm.Legal = handlers.BuildLegal(loc, page)
		a.views.renderPage(w, r, http.StatusOK, "legal", vm)
	}
}

func (a *app) notFound(w http.ResponseWriter, r *http.Request) {
	env := a.env()
	loc := env.Localizer(r)
	vm := env.Page(r, loc.T("nf_title"), "")
	vm.SEO.Robots = "noindex"
	a.views.renderPage(w, r, http.StatusNotFound, "not_found", vm)
}

func (a *app) sitemap(w http.ResponseWriter, r *http.Request) {
	now := time.Now
	if a.now != nil {
		now = a.now
	}
	body, err := seo.Sitemap(a.cfg.Site.BaseURL, seo.DefaultSitemap, now())
	if err != nil {
		mw.WriteError(w, r, http.StatusInternalServerError, "sitemap unavailable")
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(body)
}

func (a *app) robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("User-agent: *\nAllow: /\nSitemap: " + seo.Absolute(a.cfg.Site.BaseURL, "/sitemap.xml") + "\n"))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
