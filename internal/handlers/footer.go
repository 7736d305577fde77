package handlers

import (
	"github.com/gpedrosad/mapra2/internal/contact"
	"github.com/gpedrosad/mapra2/internal/i18n"
	"github.com/gpedrosad/mapra2/internal/site"
)

// FooterView is the shared page footer.
type FooterView struct {
	Brand string
	Year  int

	Email     string
	MailHref  string
	MailTitle string

	WhatsAppHref  string
	WhatsAppLabel string
	WhatsAppTitle string

	InstagramHref  string
	InstagramTitle string

	CreditPrefix string
	CreditName   string
	CreditHref   string
	CreditTitle  string
}

// BuildFooter resolves the footer for year.
func BuildFooter(loc *i18n.Localizer, s *site.Site, year int) FooterView {
	v := FooterView{
		Brand:          s.Artist.Name,
		Year:           year,
		Email:          s.Contact.Email,
		MailHref:       contact.MailtoLink(s.Contact.Email),
		MailTitle:      loc.T("ft_title_mail") + " " + s.Contact.Email,
		WhatsAppLabel:  contact.PrettyPhone(s.Contact.Phone),
		WhatsAppTitle:  loc.T("ft_title_wa"),
		InstagramHref:  s.Artist.InstagramURL,
		InstagramTitle: loc.T("ft_title_ig"),
	}
	if href, ok := contact.WhatsAppLinkOptional(s.Contact.Phone, loc.T("wa_text_default")); ok {
		v.WhatsAppHref = href
	}
	if s.Author.Name != "" {
		p := i18n.Params{"name": firstWord(s.Author.Name)}
		v.CreditPrefix = loc.T("ft_credit")
		v.CreditName = s.Author.Name
		v.CreditTitle = loc.T("ft_credit_title", i18n.Params{"name": s.Author.Name})
		msg := loc.Render(s.Author.Message)
		if s.Author.Message.Kind == i18n.KindKey {
			msg = loc.T(s.Author.Message.Value, p)
		}
		if href, ok := contact.WhatsAppLinkOptional(s.Author.Phone, msg); ok {
			v.CreditHref = href
		}
	}
	return v
}

func firstWord(s string) string {
	for i, r := range s {
		if r == ' ' {
			return s[:i]
		}
	}
	return s
}
