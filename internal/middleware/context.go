package middleware

import (
	"context"

	"github.com/gpedrosad/mapra2/internal/i18n"
)

// context keys are unexported to avoid collisions
type ctxKey string

const (
	ctxKeyRequestID ctxKey = "req_id"
	ctxKeyIsHTMX    ctxKey = "is_htmx"
	ctxKeyLocalizer ctxKey = "localizer"
	ctxKeyCSRF      ctxKey = "csrf"
)

// WithRequestID stores request id in context
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

// RequestID gets request id from context
func RequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKeyRequestID).(string)
	return v, ok
}

// WithHTMX marks request as HTMX
func WithHTMX(ctx context.Context, is bool) context.Context {
	return context.WithValue(ctx, ctxKeyIsHTMX, is)
}

// IsHTMX returns whether this is an htmx request
func IsHTMX(ctx context.Context) bool {
	v, _ := ctx.Value(ctxKeyIsHTMX).(bool)
	return v
}

// WithLocalizer stores the request localizer.
func WithLocalizer(ctx context.Context, l *i18n.Localizer) context.Context {
	return context.WithValue(ctx, ctxKeyLocalizer, l)
}

// LocalizerFrom returns the request localizer, or nil outside the Locale middleware.
func LocalizerFrom(ctx context.Context) *i18n.Localizer {
	l, _ := ctx.Value(ctxKeyLocalizer).(*i18n.Localizer)
	return l
}

// CSRFToken returns the token templates embed in forms.
func CSRFToken(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyCSRF).(string)
	return v
}
