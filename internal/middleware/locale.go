package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/gpedrosad/mapra2/internal/i18n"
	"github.com/gpedrosad/mapra2/internal/observability"
)

const (
	// LocaleCookieName stores the visitor's language preference.
	LocaleCookieName = "app.lang"
	// LocaleQueryParam selects a language explicitly, e.g. ?hl=en.
	LocaleQueryParam = "hl"

	localeCookieMaxAge = 365 * 24 * time.Hour
)

// CookieLocaleStore persists the locale in a cookie scoped to one request.
type CookieLocaleStore struct {
	r      *http.Request
	w      http.ResponseWriter
	secure bool
}

// NewCookieLocaleStore binds a store to the request/response pair.
func NewCookieLocaleStore(w http.ResponseWriter, r *http.Request, secure bool) *CookieLocaleStore {
	return &CookieLocaleStore{r: r, w: w, secure: secure}
}

// Load returns the stored code or http.ErrNoCookie.
func (s *CookieLocaleStore) Load() (string, error) {
	c, err := s.r.Cookie(LocaleCookieName)
	if err != nil {
		return "", err
	}
	return c.Value, nil
}

// Save writes the preference cookie.
func (s *CookieLocaleStore) Save(code string) error {
	http.SetCookie(s.w, &http.Cookie{
		Name:     LocaleCookieName,
		Value:    code,
		Path:     "/",
		MaxAge:   int(localeCookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Locale builds the request Localizer from the preference cookie, applies an
// explicit ?hl= selection and exposes the result to handlers.
func Locale(bundle *i18n.Bundle, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := observability.FromContext(r.Context())
			store := NewCookieLocaleStore(w, r, secure)
			loc := i18n.NewLocalizer(bundle, store, logger)
			if q := r.URL.Query().Get(LocaleQueryParam); q != "" {
				if !loc.SetLocale(i18n.Locale(q)) {
					logger.Debug("ignored unsupported locale", zap.String("hl", q))
				}
			}
			w.Header().Set("Content-Language", string(loc.Locale()))
			w.Header().Add("Vary", "Cookie")
			next.ServeHTTP(w, r.WithContext(WithLocalizer(r.Context(), loc)))
		})
	}
}

// Lang returns the active language code for r, defaulting to es.
func Lang(r *http.Request) string {
	if l := LocalizerFrom(r.Context()); l != nil {
		return string(l.Locale())
	}
	return string(i18n.DefaultLocale)
}
