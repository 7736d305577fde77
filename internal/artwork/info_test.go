package artwork

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func dictResolver(m map[string]string) KeyResolver {
	return func(key string) string {
		if v, ok := m[key]; ok {
			return v
		}
		return key
	}
}

var enMediums = dictResolver(map[string]string{
	"medium_oil_on_canvas":         "oil on canvas",
	"medium_oil_on_natural_canvas": "oil on natural canvas",
	"acrilico":                     "acrylic",
	"Sin título":                   "Untitled",
})

func TestTranslateInfo(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase x separator", "110x110 óleo sobre tela", "110×110 oil on canvas"},
		{"accents and case", "90×120 Óleo Sobre Tela", "90×120 oil on canvas"},
		{"unaccented pattern", "90X120 oleo sobre tela", "90×120 oil on canvas"},
		{"natural canvas", "158x122 óleo sobre telas naturales", "158×122 oil on natural canvas"},
		{"lienzo maps to canvas", "100x130 ÓLEO SOBRE LIENZO", "100×130 oil on canvas"},
		{"whitespace runs", "  40 \t x  50    óleo   sobre tela  ", "40×50 óleo   sobre tela"},
		{"tail as key", "30x40 acrilico", "30×40 acrylic"},
		{"unknown tail kept", "30x40 Técnica Mixta", "30×40 Técnica Mixta"},
		{"no tail", "30 × 40", "30×40"},
		{"free text passthrough", "free text no dims", "free text no dims"},
		{"free text as key", "Sin título", "Untitled"},
		{"non digit dimension", "ax40 óleo sobre tela", "ax40 óleo sobre tela"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TranslateInfo(tc.in, enMediums))
		})
	}
}

func TestTranslateInfoSpanishRoundTrip(t *testing.T) {
	es := dictResolver(map[string]string{"medium_oil_on_canvas": "óleo sobre tela"})
	assert.Equal(t, "110×110 óleo sobre tela", TranslateInfo("110x110 Oleo sobre tela", es))
}

func TestTranslateInfoFirstRuleWins(t *testing.T) {
	rules := []MediumRule{
		{Patterns: []string{"tinta"}, Key: "first"},
		{Patterns: []string{"TINTA"}, Key: "second"},
	}
	got := TranslateInfoWith("10x10 Tinta", dictResolver(map[string]string{"first": "ink"}), rules)
	assert.Equal(t, "10×10 ink", got)
}

func TestTranslateInfoNilResolver(t *testing.T) {
	assert.Equal(t, "10×10 óleo", TranslateInfo("10x10 óleo", nil))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "oleo sobre tela", Normalize("  Óleo Sobre Tela "))
	assert.Equal(t, "ceramica gres", Normalize("CERÁMICA GRES"))
	assert.Equal(t, "pinguino", Normalize("pingüino"))
}
