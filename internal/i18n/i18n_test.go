package i18n

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type memoryStore struct {
	value   string
	loadErr error
	saveErr error
	saves   int
}

func (m *memoryStore) Load() (string, error) {
	if m.loadErr != nil {
		return "", m.loadErr
	}
	return m.value, nil
}

func (m *memoryStore) Save(code string) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.value = code
	return nil
}

func testBundle() *Bundle {
	return New(ES, map[Locale]map[string]string{
		ES: {"greet": "Hola {{name}}", "plain": "Galería", "gal_title": "Galería de Arte"},
		EN: {"greet": "Hello {{ name }}", "plain": "Gallery", "gal_title": "Art Gallery"},
	})
}

func TestLoadLocalesFromDisk(t *testing.T) {
	b, err := Load("../../locales", ES, []Locale{ES, EN})
	require.NoError(t, err)
	assert.Equal(t, "Galería de Arte", b.T(ES, "gal_title"))
	assert.Equal(t, "Art Gallery", b.T(EN, "gal_title"))
	assert.Equal(t, []Locale{EN, ES}, b.Supported())
}

func TestLoadedLocalesShareKeySet(t *testing.T) {
	b, err := Load("../../locales", ES, nil)
	require.NoError(t, err)
	assert.Equal(t, b.Keys(ES), b.Keys(EN))
}

func TestLoadRequiresFallbackFile(t *testing.T) {
	_, err := Load(t.TempDir(), ES, []Locale{ES, EN})
	require.Error(t, err)
}

func TestMissingKeyReturnsKey(t *testing.T) {
	b := testBundle()
	for _, l := range []Locale{ES, EN, "fr"} {
		for _, key := range []string{"nope", "", "medium_unknown", "{{x}}"} {
			assert.Equal(t, key, b.T(l, key), "locale %s key %q", l, key)
			assert.Equal(t, key, b.T(l, key, Params{"x": 1}), "locale %s key %q", l, key)
		}
	}
}

func TestInterpolation(t *testing.T) {
	b := testBundle()
	assert.Equal(t, "Hola X", b.T(ES, "greet", Params{"name": "X"}))
	assert.Equal(t, "Hello 7", b.T(EN, "greet", Params{"name": 7}))
	assert.Equal(t, "Hola ", b.T(ES, "greet", Params{"other": "Y"}))
	assert.Equal(t, "Galería", b.T(ES, "plain", Params{"name": "X"}))
	// without params the template is returned verbatim
	assert.Equal(t, "Hola {{name}}", b.T(ES, "greet"))
}

func TestInterpolateMergesParams(t *testing.T) {
	got := Interpolate("{{a}}-{{b}}-{{c}}", mergeParams([]Params{{"a": "1"}, {"b": 2.5}}))
	assert.Equal(t, "1-2.5-", got)
}

func TestParseLocale(t *testing.T) {
	l, ok := ParseLocale(" EN ")
	require.True(t, ok)
	assert.Equal(t, EN, l)
	_, ok = ParseLocale("pt")
	assert.False(t, ok)
}

func TestLocalizerRestoresPersistedLocale(t *testing.T) {
	store := &memoryStore{value: "en"}
	loc := NewLocalizer(testBundle(), store, nil)
	assert.Equal(t, EN, loc.Locale())
	assert.Equal(t, "Art Gallery", loc.Text("gal_title"))
}

func TestLocalizerDefaultsOnBadPreference(t *testing.T) {
	cases := map[string]*memoryStore{
		"absent":       {},
		"unrecognized": {value: "de"},
		"read failure": {loadErr: errors.New("boom")},
	}
	for name, store := range cases {
		t.Run(name, func(t *testing.T) {
			loc := NewLocalizer(testBundle(), store, nil)
			assert.Equal(t, ES, loc.Locale())
		})
	}
	assert.Equal(t, ES, NewLocalizer(testBundle(), nil, nil).Locale())
}

func TestSetLocalePersists(t *testing.T) {
	store := &memoryStore{}
	loc := NewLocalizer(testBundle(), store, nil)
	require.True(t, loc.SetLocale(EN))
	assert.Equal(t, EN, loc.Locale())
	assert.Equal(t, "en", store.value)

	assert.False(t, loc.SetLocale("fr"))
	assert.Equal(t, EN, loc.Locale())
	assert.Equal(t, 1, store.saves)
}

func TestSetLocaleSwallowsPersistFailure(t *testing.T) {
	store := &memoryStore{saveErr: errors.New("quota")}
	loc := NewLocalizer(testBundle(), store, nil)
	require.True(t, loc.SetLocale(EN))
	assert.Equal(t, EN, loc.Locale())
}

func TestRenderTaggedText(t *testing.T) {
	loc := NewLocalizer(testBundle(), nil, nil)
	assert.Equal(t, "Galería de Arte", loc.Render(Key("gal_title")))
	assert.Equal(t, "gal_title", loc.Render(Literal("gal_title")))
	assert.Equal(t, "Galería de Arte", loc.Render(Auto("gal_title")))
	assert.Equal(t, "Fachadas al sol", loc.Render(Auto("Fachadas al sol")))

	assert.Equal(t, "fallback", loc.RenderOr(Key("missing"), "fallback"))
	assert.Equal(t, "fallback", loc.RenderOr(Text{}, "fallback"))
	assert.Equal(t, "literal", loc.RenderOr(Literal("literal"), "fallback"))
	assert.Equal(t, "fallback", loc.RenderOr(Auto("missing"), "fallback"))
}

func TestTOr(t *testing.T) {
	loc := NewLocalizer(testBundle(), nil, nil)
	assert.Equal(t, "Hola Ana", loc.TOr("greet", "x", Params{"name": "Ana"}))
	assert.Equal(t, "x", loc.TOr("missing", "x"))
}

func TestRenderUsesAttachedFallback(t *testing.T) {
	loc := NewLocalizer(testBundle(), nil, nil)
	assert.Equal(t, "Fachadas", loc.Render(Key("ah_theme_1").Or("Fachadas")))
	assert.Equal(t, "Galería de Arte", loc.Render(Key("gal_title").Or("x")))
}

func TestTextFromYAML(t *testing.T) {
	var doc struct {
		Items []Text `yaml:"items"`
	}
	src := `
items:
  - gal_title
  - key: ah_theme_1
    fallback: Fachadas
  - text: Óleo
`
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))
	require.Len(t, doc.Items, 3)
	assert.Equal(t, Auto("gal_title"), doc.Items[0])
	assert.Equal(t, Key("ah_theme_1").Or("Fachadas"), doc.Items[1])
	assert.Equal(t, Literal("Óleo"), doc.Items[2])

	err := yaml.Unmarshal([]byte("items:\n  - key: a\n    text: b\n"), &doc)
	assert.Error(t, err)
}
