package i18n

import (
	"go.uber.org/zap"
)

// LocaleStore persists the active locale under a single fixed key.
type LocaleStore interface {
	Load() (string, error)
	Save(code string) error
}

// Localizer binds a Bundle to the active locale of one visitor. It is created
// by the composition root and handed to every consumer.
type Localizer struct {
	bundle *Bundle
	store  LocaleStore
	logger *zap.Logger
	locale Locale
}

// NewLocalizer restores the persisted locale from store, falling back to the
// bundle default when nothing valid was stored. A nil store is allowed.
func NewLocalizer(bundle *Bundle, store LocaleStore, logger *zap.Logger) *Localizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &Localizer{
		bundle: bundle,
		store:  store,
		logger: logger,
		locale: bundle.Fallback(),
	}
	if store == nil {
		return l
	}
	saved, err := store.Load()
	if err != nil {
		logger.Debug("locale preference unavailable", zap.Error(err))
		return l
	}
	if loc, ok := ParseLocale(saved); ok && bundle.IsSupported(loc) {
		l.locale = loc
	}
	return l
}

// Locale returns the active locale.
func (l *Localizer) Locale() Locale { return l.locale }

// Bundle exposes the underlying dictionaries.
func (l *Localizer) Bundle() *Bundle { return l.bundle }

// SetLocale activates loc and persists it. Unsupported codes are ignored and
// report false. Persistence failures are logged and swallowed.
func (l *Localizer) SetLocale(loc Locale) bool {
	parsed, ok := ParseLocale(string(loc))
	if !ok || !l.bundle.IsSupported(parsed) {
		return false
	}
	l.locale = parsed
	if l.store != nil {
		if err := l.store.Save(string(parsed)); err != nil {
			l.logger.Debug("persist locale preference", zap.String("locale", string(parsed)), zap.Error(err))
		}
	}
	return true
}

// T resolves key in the active locale.
func (l *Localizer) T(key string, params ...Params) string {
	return l.bundle.T(l.locale, key, params...)
}

// Text resolves key without parameters.
func (l *Localizer) Text(key string) string {
	return l.bundle.T(l.locale, key)
}

// TOr returns the translation of key, or fallback when the key is missing.
func (l *Localizer) TOr(key, fallback string, params ...Params) string {
	if res := l.T(key, params...); res != "" && res != key {
		return res
	}
	return fallback
}

// Render resolves a tagged text, honouring its fallback.
func (l *Localizer) Render(t Text) string {
	if t.Fallback != "" {
		return l.RenderOr(t, t.Fallback)
	}
	switch t.Kind {
	case KindKey:
		return l.T(t.Value)
	case KindLiteral:
		return t.Value
	default:
		return l.guess(t.Value, t.Value)
	}
}

// RenderOr resolves t, using fallback when t is empty or an unresolved key.
func (l *Localizer) RenderOr(t Text, fallback string) string {
	if t.Value == "" {
		return fallback
	}
	switch t.Kind {
	case KindKey:
		return l.TOr(t.Value, fallback)
	case KindLiteral:
		return t.Value
	default:
		return l.guess(t.Value, fallback)
	}
}

// guess is approximate: a value whose lookup changes it was a key, anything
// else is literal text.
func (l *Localizer) guess(v, fallback string) string {
	if res := l.T(v); res != "" && res != v {
		return res
	}
	if fallback == "" {
		return v
	}
	return fallback
}
