package handlers

import (
	"html/template"

	"github.com/gpedrosad/mapra2/internal/cms"
	"github.com/gpedrosad/mapra2/internal/format"
	"github.com/gpedrosad/mapra2/internal/i18n"
)

// LegalView is a rendered legal document.
type LegalView struct {
	Title     string
	Body      template.HTML
	Updated   string
	BackLabel string
}

// BuildLegal renders page with its last update date in the active locale.
func BuildLegal(loc *i18n.Localizer, page cms.Page) *LegalView {
	v := &LegalView{
		Title:     page.Title,
		Body:      page.Body,
		BackLabel: loc.T("lg_back_home"),
	}
	if d := format.FmtDate(page.UpdatedAt, string(loc.Locale())); d != "" {
		v.Updated = loc.T("lg_updated", i18n.Params{"date": d})
	}
	return v
}
