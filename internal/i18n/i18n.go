package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Locale is a supported display language.
type Locale string

const (
	ES Locale = "es"
	EN Locale = "en"

	// DefaultLocale is used when no valid preference has been persisted.
	DefaultLocale = ES
)

// Locales lists the closed set of supported locales in display order.
func Locales() []Locale { return []Locale{ES, EN} }

// ParseLocale accepts a locale code from the supported set.
func ParseLocale(s string) (Locale, bool) {
	l := Locale(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Locales() {
		if l == known {
			return l, true
		}
	}
	return "", false
}

// Params carries interpolation values; values are strings or numbers.
type Params map[string]any

// Bundle holds the per-locale dictionaries. It is immutable after Load.
type Bundle struct {
	dict      map[Locale]map[string]string
	fallback  Locale
	supported map[Locale]struct{}
}

// Load reads <dir>/<locale>.json for every supported locale. The fallback
// locale file is required; other missing files are tolerated.
func Load(dir string, fallback Locale, supported []Locale) (*Bundle, error) {
	if len(supported) == 0 {
		supported = Locales()
	}
	b := &Bundle{
		dict:      map[Locale]map[string]string{},
		fallback:  fallback,
		supported: map[Locale]struct{}{},
	}
	for _, l := range supported {
		b.supported[l] = struct{}{}
		path := filepath.Join(dir, string(l)+".json")
		raw, err := os.ReadFile(path)
		if err != nil {
			if l == fallback {
				return nil, fmt.Errorf("load locale %s: %w", l, err)
			}
			continue
		}
		var m map[string]string
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", l, err)
		}
		b.dict[l] = m
	}
	if _, ok := b.dict[fallback]; !ok {
		return nil, fmt.Errorf("fallback locale %s not loaded", fallback)
	}
	return b, nil
}

// New builds a bundle from in-memory dictionaries.
func New(fallback Locale, dict map[Locale]map[string]string) *Bundle {
	b := &Bundle{
		dict:      make(map[Locale]map[string]string, len(dict)),
		fallback:  fallback,
		supported: map[Locale]struct{}{},
	}
	for l, m := range dict {
		cp := make(map[string]string, len(m))
		for k, v := range m {
			cp[k] = v
		}
		b.dict[l] = cp
		b.supported[l] = struct{}{}
	}
	b.supported[fallback] = struct{}{}
	return b
}

// Supported returns the supported locales sorted by code.
func (b *Bundle) Supported() []Locale {
	out := make([]Locale, 0, len(b.supported))
	for k := range b.supported {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Fallback returns the configured default locale.
func (b *Bundle) Fallback() Locale { return b.fallback }

// IsSupported reports whether l belongs to the bundle's locale set.
func (b *Bundle) IsSupported(l Locale) bool {
	_, ok := b.supported[l]
	return ok
}

// Has reports whether key exists in the dictionary of l.
func (b *Bundle) Has(l Locale, key string) bool {
	_, ok := b.dict[l][key]
	return ok
}

// Keys returns the sorted key set of a locale dictionary.
func (b *Bundle) Keys(l Locale) []string {
	m := b.dict[l]
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// T returns the template for key in locale l, interpolating params when given.
// Missing keys resolve to the key itself.
func (b *Bundle) T(l Locale, key string, params ...Params) string {
	tmpl, ok := b.dict[l][key]
	if !ok {
		return key
	}
	if len(params) == 0 {
		return tmpl
	}
	return Interpolate(tmpl, mergeParams(params))
}

var placeholder = regexp.MustCompile(`\{\{(.*?)\}\}`)

// Interpolate replaces every {{name}} token with the stringified value of
// params[name]. Unknown names become empty.
func Interpolate(tmpl string, params Params) string {
	if !strings.Contains(tmpl, "{{") {
		return tmpl
	}
	return placeholder.ReplaceAllStringFunc(tmpl, func(tok string) string {
		name := strings.TrimSpace(tok[2 : len(tok)-2])
		v, ok := params[name]
		if !ok || v == nil {
			return ""
		}
		return fmt.Sprint(v)
	})
}

func mergeParams(list []Params) Params {
	if len(list) == 1 {
		return list[0]
	}
	out := Params{}
	for _, p := range list {
		for k, v := range p {
			out[k] = v
		}
	}
	return out
}
