package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpedrosad/mapra2/internal/cms"
	"github.com/gpedrosad/mapra2/internal/contact"
	"github.com/gpedrosad/mapra2/internal/i18n"
	"github.com/gpedrosad/mapra2/internal/site"
)

func fixtures(t *testing.T) (*i18n.Bundle, *site.Site) {
	t.Helper()
	b, err := i18n.Load("../../locales", i18n.ES, i18n.Locales())
	require.NoError(t, err)
	s, err := site.Load("../../content/site.yaml")
	require.NoError(t, err)
	return b, s
}

func localizer(b *i18n.Bundle, l i18n.Locale) *i18n.Localizer {
	loc := i18n.NewLocalizer(b, nil, nil)
	loc.SetLocale(l)
	return loc
}

func TestHeroResolvesProfile(t *testing.T) {
	b, s := fixtures(t)
	v := BuildHero(localizer(b, i18n.EN), s.Artist)
	assert.Equal(t, "Marcela Pedrosa", v.Name)
	assert.Equal(t, "Concepción, Chile", v.Location)
	assert.Len(t, v.Techniques, 3)
	assert.Equal(t,
		"https://wa.me/56956189912?text="+contact.EncodeComponent("Hello, I would like to ask about available works by Marcela Pedrosa."),
		v.WhatsAppHref)
	assert.Empty(t, v.InstagramHref, "no link without a profile URL")
	assert.Empty(t, v.WebsiteHref)
}

func TestHeroFallsBackToSpanishDefaults(t *testing.T) {
	empty := i18n.New(i18n.ES, map[i18n.Locale]map[string]string{i18n.ES: {}, i18n.EN: {}})
	loc := localizer(empty, i18n.EN)
	v := BuildHero(loc, site.Artist{Name: "Ana", InstagramURL: "https://instagram.com/ana"})
	assert.Equal(t, []string{"Óleo sobre telas naturales", "Pincelada suelta", "Capas y veladuras"}, v.Techniques)
	assert.Equal(t, []string{"Fachadas", "Bosques", "Figurativo"}, v.Themes)
	assert.Equal(t, "Retrato de Ana", v.AvatarAlt)
	assert.Equal(t, "Abrir Instagram de Ana", v.InstagramAria)
	assert.Empty(t, v.WhatsAppHref, "no phone, no link")
}

func TestOfferPricesAndLink(t *testing.T) {
	b, s := fixtures(t)

	es := BuildOffer(localizer(b, i18n.ES), s.Offer)
	require.NotNil(t, es)
	assert.Equal(t, "$1.200.000", es.ListPrice)
	assert.Equal(t, "$920.000", es.SalePrice)
	assert.Equal(t, "-23%", es.Discount)
	assert.True(t, es.HasSale)

	en := BuildOffer(localizer(b, i18n.EN), s.Offer)
	assert.Equal(t, "$1,200,000", en.ListPrice)
	assert.Equal(t, "90×120 oil on canvas", en.Info)
	assert.Equal(t,
		"https://wa.me/56956189912?text="+contact.EncodeComponent("Hello, I am interested in the artwork Elefante. Is it available?"),
		en.CTAHref)

	assert.Nil(t, BuildOffer(localizer(b, i18n.ES), nil))
}

func TestOfferWithoutSale(t *testing.T) {
	b, _ := fixtures(t)
	v := BuildOffer(localizer(b, i18n.ES), &site.Offer{Title: "X", Currency: "CLP", ListPrice: 5000})
	assert.False(t, v.HasSale)
	assert.Empty(t, v.SalePrice)
	assert.Empty(t, v.Discount)
}

func TestFooter(t *testing.T) {
	b, s := fixtures(t)
	v := BuildFooter(localizer(b, i18n.ES), s, 2026)
	assert.Equal(t, 2026, v.Year)
	assert.Equal(t, "mailto:contacto@marcelapedrosa.com", v.MailHref)
	assert.Equal(t, "+56 9 5618 9912", v.WhatsAppLabel)
	assert.True(t, strings.HasPrefix(v.WhatsAppHref, "https://wa.me/56956189912?text="))
	assert.Equal(t,
		"https://wa.me/56968257817?text="+contact.EncodeComponent("Hola Gonzalo, vi el sitio y quisiera hablar."),
		v.CreditHref)
}

func TestPress(t *testing.T) {
	b, s := fixtures(t)
	list := BuildPress(localizer(b, i18n.ES), s.Artist.Name, s.Press)
	require.Len(t, list, 1)
	assert.Equal(t, "Crónica Chillán", list[0].Source)
	assert.Equal(t, "Nota de prensa sobre Marcela Pedrosa", list[0].ImageAlt)
}

func galleryFor(t *testing.T, target string) (*GalleryView, *PageHost) {
	t.Helper()
	b, s := fixtures(t)
	series, err := s.FindSeries("pinturas")
	require.NoError(t, err)
	return BuildGallery(localizer(b, i18n.ES), series, httptest.NewRequest(http.MethodGet, target, nil))
}

func galleryIDs(v *GalleryView) []string {
	out := make([]string, len(v.Items))
	for i, it := range v.Items {
		out[i] = it.ID
	}
	return out
}

func TestGalleryOrderFollowsViewport(t *testing.T) {
	narrow, host := galleryFor(t, "/pinturas")
	assert.Equal(t, []string{"c1", "c2", "c3", "c4"}, galleryIDs(narrow))
	assert.False(t, narrow.Wide)
	assert.Nil(t, narrow.Lightbox)
	assert.Empty(t, host.BodyClass())
	assert.False(t, host.Listening())

	wide, _ := galleryFor(t, "/pinturas?vw=1600")
	assert.Equal(t, []string{"c1", "c2", "c4", "c3"}, galleryIDs(wide))
	assert.Equal(t, "/pinturas?obra=3", wide.Items[3].Href)
}

func TestGalleryLightboxOpenAndKeys(t *testing.T) {
	v, host := galleryFor(t, "/pinturas?obra=3&vw=1600")
	require.NotNil(t, v.Lightbox)
	assert.Equal(t, "/assets/img/elefante.jpeg", v.Lightbox.ImageURL)
	assert.Equal(t, "Galería de Arte: c3", v.Lightbox.Label)
	assert.Equal(t, "4 / 4", v.Lightbox.Counter)
	assert.Equal(t, "/pinturas?obra=0", v.Lightbox.NextHref)
	assert.Equal(t, "/pinturas?obra=2", v.Lightbox.PrevHref)
	assert.Equal(t, ScrollLockClass, host.BodyClass())
	assert.True(t, host.Listening())

	v, _ = galleryFor(t, "/pinturas?obra=3&key=ArrowRight")
	require.NotNil(t, v.Lightbox)
	assert.Equal(t, 0, v.Lightbox.Index)

	v, _ = galleryFor(t, "/pinturas?obra=0&key=ArrowLeft")
	assert.Equal(t, 3, v.Lightbox.Index)

	v, host = galleryFor(t, "/pinturas?obra=1&key=Escape")
	assert.Nil(t, v.Lightbox)
	assert.Empty(t, host.BodyClass())
	assert.False(t, host.Listening())
}

func TestGalleryIgnoresBadIndex(t *testing.T) {
	for _, q := range []string{"obra=9", "obra=-1", "obra=x", "key=ArrowRight"} {
		v, host := galleryFor(t, "/pinturas?"+q)
		assert.Nil(t, v.Lightbox, q)
		assert.Empty(t, host.BodyClass(), q)
	}
}

func TestGalleryReleasesHostAfterBuild(t *testing.T) {
	b, s := fixtures(t)
	series, err := s.FindSeries("pinturas")
	require.NoError(t, err)
	loc := localizer(b, i18n.ES)

	host := NewPageHost()
	v, snap := buildGallery(loc, series, httptest.NewRequest(http.MethodGet, "/pinturas?obra=1", nil), host)
	require.NotNil(t, v.Lightbox)
	assert.Equal(t, ScrollLockClass, snap.BodyClass())
	assert.True(t, snap.Listening())
	assert.Empty(t, host.BodyClass())
	assert.False(t, host.Listening())

	// A key handler that blows up mid-build must not leave the page locked.
	host = NewPageHost()
	host.ListenKeys(func(string) { panic("key handler failed") })
	assert.Panics(t, func() {
		buildGallery(loc, series, httptest.NewRequest(http.MethodGet, "/pinturas?obra=1&key=ArrowRight", nil), host)
	})
	assert.Empty(t, host.BodyClass())
	assert.Len(t, host.listeners, 1)
}

func TestGalleryEmptySeries(t *testing.T) {
	b, s := fixtures(t)
	series, err := s.FindSeries("esculturas")
	require.NoError(t, err)
	v, _ := BuildGallery(localizer(b, i18n.ES), series, httptest.NewRequest(http.MethodGet, "/esculturas?obra=0", nil))
	assert.Empty(t, v.Items)
	assert.Nil(t, v.Lightbox)
	assert.Equal(t, "Pronto publicaremos nuevas obras.", v.Empty)
}

func postForm(values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/contacto", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	_ = r.ParseForm()
	return r
}

func TestContactBlurShowsOnlyVisitedErrors(t *testing.T) {
	b, _ := fixtures(t)
	loc := localizer(b, i18n.ES)

	v := BuildContact(loc, nil)
	assert.Empty(t, v.NameError)
	assert.Empty(t, v.EmailError)

	f := FormFromRequest(postForm(url.Values{FieldBlur: {"name"}, "email": {"bad"}}))
	v = BuildContact(loc, f)
	assert.Equal(t, "Ingresá tu nombre.", v.NameError)
	assert.Empty(t, v.EmailError, "email not visited yet")
	assert.Equal(t, "name", v.Touched)

	f = FormFromRequest(postForm(url.Values{FieldTouched: {"name"}, FieldBlur: {"email"}, "email": {"bad"}}))
	v = BuildContact(loc, f)
	assert.Equal(t, "Ingresá un correo válido.", v.EmailError)
	assert.Equal(t, "name,email", v.Touched)
	assert.False(t, v.CanSubmit)
}

func TestLegalUpdatedDate(t *testing.T) {
	b, _ := fixtures(t)
	page := cms.Page{Title: "Privacidad", UpdatedAt: time.Date(2025, 9, 28, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "Última actualización: 28-09-2025", BuildLegal(localizer(b, i18n.ES), page).Updated)
	assert.Equal(t, "Last updated: Sep 28, 2025", BuildLegal(localizer(b, i18n.EN), page).Updated)
	assert.Empty(t, BuildLegal(localizer(b, i18n.ES), cms.Page{}).Updated)
}

func TestPageShell(t *testing.T) {
	b, s := fixtures(t)
	env := Env{
		Site:    s,
		Bundle:  b,
		BaseURL: "https://marcelapedrosa.com",
		Now:     func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) },
	}

	home := env.Page(httptest.NewRequest(http.MethodGet, "/", nil), "", "")
	assert.Equal(t, "es", home.Lang)
	assert.Equal(t, "Marcela Pedrosa", home.SEO.Title)
	assert.Equal(t, "https://marcelapedrosa.com", home.SEO.Canonical)
	assert.Equal(t, "es_CL", home.SEO.OG.Locale)
	assert.Equal(t, "https://marcelapedrosa.com/assets/img/bosque.jpeg", home.SEO.OG.Image)
	require.Len(t, home.SEO.JSONLD, 2)
	assert.Contains(t, string(home.SEO.JSONLD[0]), `"jobTitle":"Pintora y Ceramista"`)
	assert.Len(t, home.SEO.Alternates, 3)
	assert.Equal(t, 2026, home.Footer.Year)
	require.Len(t, home.Languages, 2)
	assert.True(t, home.Languages[0].Pressed)
	assert.Equal(t, "/?hl=en", home.Languages[1].Href)

	press := env.Page(httptest.NewRequest(http.MethodGet, "/prensa", nil), "Prensa", "")
	assert.Equal(t, "Prensa | Marcela Pedrosa", press.SEO.Title)
	require.Len(t, press.SEO.JSONLD, 1)
	assert.Contains(t, string(press.SEO.JSONLD[0]), `"item":"https://marcelapedrosa.com/prensa"`)
	for _, n := range press.Nav {
		assert.Equal(t, n.Href == "/prensa", n.Active)
	}
}
