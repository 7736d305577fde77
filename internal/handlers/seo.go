package handlers

import (
	"html/template"

	"github.com/gpedrosad/mapra2/internal/i18n"
	"github.com/gpedrosad/mapra2/internal/seo"
	"github.com/gpedrosad/mapra2/internal/site"
)

const defaultRobots = "index, follow, max-image-preview:large"

// SEOData is the head metadata plus structured data blocks.
type SEOData struct {
	seo.Meta
	JSONLD []template.JS
}

// SEOInput describes one page for BuildSEO.
type SEOInput struct {
	Site        *site.Site
	BaseURL     string
	Path        string
	Title       string
	Description string
	Image       string
	Crumbs      []CrumbView
	// Home pages also describe the artist and the site itself.
	Home bool
}

// BuildSEO assembles meta tags, hreflang alternates and JSON-LD.
func BuildSEO(loc *i18n.Localizer, in SEOInput) SEOData {
	name := in.Site.Artist.Name
	lang := string(loc.Locale())
	desc := in.Description
	if desc == "" {
		desc = loc.Render(in.Site.Artist.Description)
	}
	image := in.Image
	if image == "" {
		image = in.Site.Images.OpenGraph
	}
	image = seo.Absolute(in.BaseURL, image)
	canonical := seo.Absolute(in.BaseURL, in.Path)

	out := SEOData{Meta: seo.Meta{
		Title:       seo.PageTitle(in.Title, name),
		Description: desc,
		Canonical:   canonical,
		Keywords:    in.Site.Keywords,
		Robots:      defaultRobots,
		OG: seo.OpenGraph{
			Title:       seo.PageTitle(in.Title, name),
			Description: desc,
			Image:       image,
			Type:        "website",
			Locale:      seo.OGLocale(lang),
			SiteName:    name,
		},
		Twitter: seo.Twitter{Card: "summary_large_image", Image: image},
	}}
	for _, l := range loc.Bundle().Supported() {
		out.Alternates = append(out.Alternates, seo.Alternate{Lang: string(l), Href: canonical + "?hl=" + string(l)})
	}
	out.Alternates = append(out.Alternates, seo.Alternate{Lang: "x-default", Href: canonical})

	if in.Home {
		a := in.Site.Artist
		out.JSONLD = append(out.JSONLD,
			template.JS(seo.JSON(seo.Person(seo.PersonInput{
				Name:        name,
				JobTitle:    loc.Render(a.JobTitle),
				Nationality: loc.Render(a.Nationality),
				Location:    loc.Render(a.Location),
				URL:         seo.Absolute(in.BaseURL, "/"),
				Image:       image,
				SameAs:      in.Site.SameAs,
				Email:       in.Site.Contact.Email,
				Telephone:   in.Site.Contact.Phone,
				Description: desc,
			}))),
			template.JS(seo.JSON(seo.WebSite(name, seo.Absolute(in.BaseURL, "/"), lang))),
		)
	}
	if len(in.Crumbs) > 1 {
		items := make([]seo.BreadcrumbItem, 0, len(in.Crumbs))
		for _, c := range in.Crumbs {
			items = append(items, seo.BreadcrumbItem{Name: c.Label, Item: seo.Absolute(in.BaseURL, c.Href)})
		}
		out.JSONLD = append(out.JSONLD, template.JS(seo.JSON(seo.BreadcrumbList(items))))
	}
	return out
}
