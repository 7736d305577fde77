// Package artwork describes gallery pieces and localizes their free-text
// "WIDTHxHEIGHT medium" descriptions.
package artwork

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Artwork is a single gallery piece. ID is its identity.
type Artwork struct {
	ID       string `yaml:"id"`
	ImageURL string `yaml:"image"`
	Info     string `yaml:"info"`
	Title    string `yaml:"title,omitempty"`
}

// KeyResolver maps a translation key to localized text, returning the key
// itself when it is unknown.
type KeyResolver func(key string) string

// MediumRule maps a set of literal medium phrases to a translation key.
type MediumRule struct {
	Patterns []string
	Key      string
}

// DefaultMediumRules is the recognized medium table.
var DefaultMediumRules = []MediumRule{
	{Patterns: []string{"óleo sobre tela", "oleo sobre tela"}, Key: "medium_oil_on_canvas"},
	{Patterns: []string{"óleo sobre telas naturales", "oleo sobre telas naturales"}, Key: "medium_oil_on_natural_canvas"},
	{Patterns: []string{"óleo sobre lienzo", "oleo sobre lienzo"}, Key: "medium_oil_on_canvas"},
}

var dimensions = regexp.MustCompile(`(?is)^\s*(\d+)\s*[x×]\s*(\d+)\s*(.*?)\s*$`)

// Normalize folds s for comparison: diacritics removed, lower-cased, trimmed.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.TrimSpace(strings.ToLower(out))
}

// TranslateInfo localizes info using DefaultMediumRules.
func TranslateInfo(info string, resolve KeyResolver) string {
	return TranslateInfoWith(info, resolve, DefaultMediumRules)
}

// TranslateInfoWith localizes info. Dimensions are kept and always rendered
// with "×"; a recognized medium is replaced by its translation. Input that is
// not a dimension string is tried as a key and otherwise returned unchanged.
func TranslateInfoWith(info string, resolve KeyResolver, rules []MediumRule) string {
	if resolve == nil {
		resolve = func(k string) string { return k }
	}
	m := dimensions.FindStringSubmatch(info)
	if m == nil {
		return resolveOr(resolve, info, info)
	}
	w, h, tail := m[1], m[2], strings.TrimSpace(m[3])
	size := w + "×" + h
	if tail == "" {
		return size
	}

	if key, ok := matchMedium(tail, rules); ok {
		return size + " " + resolve(key)
	}
	return size + " " + resolveOr(resolve, tail, tail)
}

func matchMedium(tail string, rules []MediumRule) (string, bool) {
	folded := Normalize(tail)
	for _, rule := range rules {
		for _, p := range rule.Patterns {
			if folded == Normalize(p) {
				return rule.Key, true
			}
		}
	}
	return "", false
}

func resolveOr(resolve KeyResolver, key, fallback string) string {
	if tr := resolve(key); tr != "" && tr != key {
		return tr
	}
	return fallback
}
