package handlers

import (
	"github.com/gpedrosad/mapra2/internal/artwork"
	"github.com/gpedrosad/mapra2/internal/contact"
	"github.com/gpedrosad/mapra2/internal/format"
	"github.com/gpedrosad/mapra2/internal/i18n"
	"github.com/gpedrosad/mapra2/internal/site"
)

// OfferView is the monthly offer card.
type OfferView struct {
	Kicker    string
	Heading   string
	Subtitle  string
	Badge     string
	Aria      string
	Title     string
	ImageURL  string
	ImageAlt  string
	Info      string
	ListLabel string
	ListPrice string
	SalePrice string
	HasSale   bool
	Discount  string
	CTA       string
	CTAHref   string
}

// BuildOffer returns nil when no offer is configured.
func BuildOffer(loc *i18n.Localizer, o *site.Offer) *OfferView {
	if o == nil {
		return nil
	}
	lang := string(loc.Locale())
	p := i18n.Params{"title": o.Title}
	v := &OfferView{
		Kicker:    loc.TOr("of_kicker", "Destacado"),
		Heading:   loc.TOr("of_title", "Oferta del mes"),
		Subtitle:  loc.TOr("of_subtitle", "Una obra seleccionada con precio especial por tiempo limitado."),
		Badge:     loc.TOr("of_badge", "Oferta del mes"),
		Aria:      loc.TOr("of_aria", "Oferta del mes: "+o.Title, p),
		Title:     o.Title,
		ImageURL:  o.ImageURL,
		ImageAlt:  loc.TOr("of_alt", "Obra "+o.Title, p),
		Info:      artwork.TranslateInfo(o.Info, loc.Text),
		ListLabel: loc.TOr("of_price_list", "Precio de lista"),
		ListPrice: format.FmtCurrency(o.ListPrice, o.Currency, lang),
		HasSale:   o.HasSale(),
		CTA:       loc.TOr("of_cta", "Consultar disponibilidad"),
	}
	if v.HasSale {
		v.SalePrice = format.FmtCurrency(o.SalePrice, o.Currency, lang)
		v.Discount = format.Percent(o.DiscountPercent(), lang)
	}
	msg := loc.Render(o.Message)
	if o.Message.Kind == i18n.KindKey {
		msg = loc.TOr(o.Message.Value, "Hola, me interesa la obra "+o.Title+". ¿Está disponible?", p)
	}
	if href, ok := contact.WhatsAppLinkOptional(o.Phone, msg); ok {
		v.CTAHref = href
	}
	return v
}
