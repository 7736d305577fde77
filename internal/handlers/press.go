package handlers

import (
	"github.com/gpedrosad/mapra2/internal/i18n"
	"github.com/gpedrosad/mapra2/internal/site"
)

// PressView is one press clipping card.
type PressView struct {
	ImageURL string
	ImageAlt string
	Title    string
	Deck     string
	Source   string
	Section  string
	Date     string
	Credit   string
	Href     string
	CTA      string
}

// BuildPress resolves every clipping for the active locale.
func BuildPress(loc *i18n.Localizer, artistName string, items []site.Press) []PressView {
	out := make([]PressView, 0, len(items))
	for _, it := range items {
		out = append(out, PressView{
			ImageURL: it.ImageURL,
			ImageAlt: loc.TOr("pr_alt", "Nota de prensa sobre "+artistName, i18n.Params{"name": artistName}),
			Title:    loc.Render(it.Title),
			Deck:     loc.Render(it.Deck),
			Source:   loc.Render(it.Source),
			Section:  loc.Render(it.Section),
			Date:     loc.Render(it.Date),
			Credit:   it.Credit,
			Href:     it.Href,
			CTA:      textOr(loc, it.CTA, "pr_cta", "Leer nota"),
		})
	}
	return out
}
