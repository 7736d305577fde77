package middleware

import (
	"net/http"
	"strconv"

	"github.com/gpedrosad/mapra2/internal/responsive"
)

// ClientHints asks browsers for the viewport width and remembers a width
// passed as ?vw= in a cookie so later navigations keep the layout.
func ClientHints(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Accept-CH", responsive.HeaderViewportWidth+", "+responsive.HeaderViewportWidthLegacy)
		w.Header().Add("Vary", responsive.HeaderViewportWidth)
		if raw := r.URL.Query().Get(responsive.ParamViewportWidth); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 {
				http.SetCookie(w, &http.Cookie{
					Name:     responsive.ParamViewportWidth,
					Value:    strconv.Itoa(n),
					Path:     "/",
					SameSite: http.SameSiteLaxMode,
				})
			}
		}
		next.ServeHTTP(w, r)
	})
}
