package handlers

import (
	"github.com/gpedrosad/mapra2/internal/contact"
	"github.com/gpedrosad/mapra2/internal/i18n"
	"github.com/gpedrosad/mapra2/internal/site"
)

// HeroView is the artist header on the home page.
type HeroView struct {
	Name       string
	Title      string
	Location   string
	Bio        string
	AvatarURL  string
	AvatarAlt  string
	BannerURL  string
	BannerAlt  string
	Techniques []string
	Themes     []string

	WhatsAppHref  string
	WhatsAppLabel string

	InstagramHref  string
	InstagramLabel string
	InstagramTitle string
	InstagramAria  string

	WebsiteHref  string
	WebsiteLabel string
	WebsiteTitle string
	WebsiteAria  string
}

var (
	defaultTechniques = []i18n.Text{
		i18n.Key("ah_technique_1").Or("Óleo sobre telas naturales"),
		i18n.Key("ah_technique_2").Or("Pincelada suelta"),
		i18n.Key("ah_technique_3").Or("Capas y veladuras"),
	}
	defaultThemes = []i18n.Text{
		i18n.Key("ah_theme_1").Or("Fachadas"),
		i18n.Key("ah_theme_2").Or("Bosques"),
		i18n.Key("ah_theme_3").Or("Figurativo"),
	}
)

// BuildHero resolves the artist profile for the active locale.
func BuildHero(loc *i18n.Localizer, a site.Artist) *HeroView {
	name := a.Name
	p := i18n.Params{"name": name}
	v := &HeroView{
		Name:      name,
		Title:     textOr(loc, a.Title, "ah_title", "Artista visual — Impresionismo figurativo"),
		Location:  textOr(loc, a.Location, "ah_location", "Concepción, Chile"),
		Bio:       textOr(loc, a.Bio, "ah_bio", ""),
		AvatarURL: a.AvatarURL,
		AvatarAlt: loc.TOr("ah_alt_avatar", "Retrato de "+name, p),
		BannerURL: a.BannerURL,
		BannerAlt: loc.TOr("ah_alt_banner", "Obra de "+name, p),

		WhatsAppLabel: loc.TOr("ah_cta_whatsapp", "Escribir por WhatsApp"),
	}
	if v.BannerURL == "" {
		v.BannerURL = "/assets/img/bosque.jpeg"
	}
	v.Techniques = renderList(loc, a.Techniques, defaultTechniques)
	v.Themes = renderList(loc, a.Themes, defaultThemes)

	msg := loc.TOr("ah_cta_whatsapp_text", "Hola, me gustaría hablar con "+name+".", p)
	if href, ok := contact.WhatsAppLinkOptional(a.Phone, msg); ok {
		v.WhatsAppHref = href
	}
	if a.InstagramURL != "" {
		v.InstagramHref = a.InstagramURL
		v.InstagramLabel = loc.TOr("ah_cta_instagram", "Instagram")
		v.InstagramTitle = loc.TOr("ah_cta_instagram_title", "Abrir Instagram")
		v.InstagramAria = loc.TOr("ah_cta_instagram_aria", "Abrir Instagram de "+name, p)
	}
	if a.WebsiteURL != "" {
		v.WebsiteHref = a.WebsiteURL
		v.WebsiteLabel = loc.TOr("ah_cta_site", "Sitio web")
		v.WebsiteTitle = loc.TOr("ah_cta_site_title", "Abrir sitio web")
		v.WebsiteAria = loc.TOr("ah_cta_site_aria", "Abrir sitio web de "+name, p)
	}
	return v
}

// textOr renders t, or the default key with its fallback when t is empty.
func textOr(loc *i18n.Localizer, t i18n.Text, key, fallback string) string {
	if t.IsZero() {
		return loc.TOr(key, fallback)
	}
	return loc.Render(t)
}

func renderList(loc *i18n.Localizer, list, defaults []i18n.Text) []string {
	if len(list) == 0 {
		list = defaults
	}
	out := make([]string, 0, len(list))
	for _, t := range list {
		out = append(out, loc.Render(t))
	}
	return out
}
