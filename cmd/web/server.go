package main

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/gpedrosad/mapra2/internal/cms"
	"github.com/gpedrosad/mapra2/internal/config"
	"github.com/gpedrosad/mapra2/internal/handlers"
	"github.com/gpedrosad/mapra2/internal/i18n"
	mw "github.com/gpedrosad/mapra2/internal/middleware"
	"github.com/gpedrosad/mapra2/internal/site"
)

// app wires loaded content to HTTP handlers.
type app struct {
	cfg    config.Config
	logger *zap.Logger
	bundle *i18n.Bundle
	site   *site.Site
	cms    *cms.Client
	views  *views
	now    func() time.Time
}

func (a *app) env() handlers.Env {
	return handlers.Env{
		Site:      a.site,
		Bundle:    a.bundle,
		BaseURL:   a.cfg.Site.BaseURL,
		Analytics: handlers.AnalyticsFromConfig(a.cfg.Analytics),
		Now:       a.now,
	}
}

func (a *app) routes() http.Handler {
	secure := a.cfg.IsProduction()

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// RealIP trusts X-Forwarded-For; deploy only behind a proxy that sets it.
	r.Use(chimw.RealIP)
	r.Use(mw.Logger(a.logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(a.cfg.Server.RequestTimeout))
	r.Use(mw.HTMX)
	r.Use(mw.ClientHints)
	r.Use(mw.Locale(a.bundle, secure))
	r.Use(mw.CSRF(secure))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/assets/*", mw.AssetsWithCache(filepath.Join(a.cfg.Paths.Public, "assets"), "/assets", a.cfg.Site.Dev))
	r.Get("/robots.txt", a.robots)
	r.Get("/sitemap.xml", a.sitemap)

	r.Get("/", a.home)
	r.Get("/pinturas", a.series("pinturas"))
	r.Get("/esculturas", a.series("esculturas"))
	r.Get("/prensa", a.press)
	r.Get("/contacto", a.contactForm)
	r.Post("/contacto", a.contactSubmit)
	for _, slug := range cms.LegalSlugs() {
		r.Get("/"+slug, a.legal(slug))
	}
	r.NotFound(a.notFound)
	return r
}
