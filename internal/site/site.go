// Package site loads the static portfolio content: artist profile, gallery
// series, monthly offer, press and credits.
package site

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gpedrosad/mapra2/internal/artwork"
	"github.com/gpedrosad/mapra2/internal/i18n"
)

// ErrDuplicateArtwork reports two artworks sharing an id inside one series.
var ErrDuplicateArtwork = errors.New("site: duplicate artwork id")

// ErrUnknownSeries is returned when a series slug is not declared.
var ErrUnknownSeries = errors.New("site: unknown series")

// Site is the whole content tree.
type Site struct {
	Artist   Artist   `yaml:"artist"`
	Series   []Series `yaml:"series"`
	Offer    *Offer   `yaml:"offer"`
	Press    []Press  `yaml:"press"`
	Author   Credit   `yaml:"author"`
	Contact  Contact  `yaml:"contact"`
	SameAs   []string `yaml:"same_as"`
	Keywords []string `yaml:"keywords"`
	Images   ImageSet `yaml:"images"`
}

// Artist is the hero profile.
type Artist struct {
	Name         string      `yaml:"name"`
	Title        i18n.Text   `yaml:"title"`
	Location     i18n.Text   `yaml:"location"`
	Bio          i18n.Text   `yaml:"bio"`
	JobTitle     i18n.Text   `yaml:"job_title"`
	Nationality  i18n.Text   `yaml:"nationality"`
	Description  i18n.Text   `yaml:"description"`
	AvatarURL    string      `yaml:"avatar"`
	BannerURL    string      `yaml:"banner"`
	Phone        string      `yaml:"phone"`
	Email        string      `yaml:"email"`
	InstagramURL string      `yaml:"instagram"`
	WebsiteURL   string      `yaml:"website"`
	Techniques   []i18n.Text `yaml:"techniques"`
	Themes       []i18n.Text `yaml:"themes"`
}

// Series is one gallery page.
type Series struct {
	Slug         string            `yaml:"slug"`
	Title        i18n.Text         `yaml:"title"`
	Subtitle     i18n.Text         `yaml:"subtitle"`
	Empty        i18n.Text         `yaml:"empty"`
	LastOnWideID *string           `yaml:"last_on_wide"`
	Items        []artwork.Artwork `yaml:"items"`
}

// Offer is the monthly featured piece. SalePrice is zero when there is no
// discount.
type Offer struct {
	Title     string    `yaml:"title"`
	ImageURL  string    `yaml:"image"`
	Info      string    `yaml:"info"`
	Currency  string    `yaml:"currency"`
	ListPrice int64     `yaml:"list_price"`
	SalePrice int64     `yaml:"sale_price"`
	Phone     string    `yaml:"phone"`
	Message   i18n.Text `yaml:"message"`
}

// Press is a press clipping card.
type Press struct {
	ImageURL string    `yaml:"image"`
	Title    i18n.Text `yaml:"title"`
	Deck     i18n.Text `yaml:"deck"`
	Source   i18n.Text `yaml:"source"`
	Section  i18n.Text `yaml:"section"`
	Date     i18n.Text `yaml:"date"`
	CTA      i18n.Text `yaml:"cta"`
	Credit   string    `yaml:"credit"`
	Href     string    `yaml:"href"`
}

// Credit is the site author credit in the footer.
type Credit struct {
	Name    string    `yaml:"name"`
	Phone   string    `yaml:"phone"`
	Message i18n.Text `yaml:"message"`
}

// Contact configures the contact form and footer.
type Contact struct {
	Phone           string `yaml:"phone"`
	Email           string `yaml:"email"`
	MessageTemplate string `yaml:"message_template"`
}

// ImageSet lists share images.
type ImageSet struct {
	OpenGraph string `yaml:"og"`
}

// Load reads and validates a site file.
func Load(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("site: read %s: %w", path, err)
	}
	s, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("site: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a site document. Unknown fields are rejected.
func Parse(r io.Reader) (*Site, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Site
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks identity constraints.
func (s *Site) Validate() error {
	slugs := map[string]struct{}{}
	for _, series := range s.Series {
		if series.Slug == "" {
			return errors.New("site: series without slug")
		}
		if _, dup := slugs[series.Slug]; dup {
			return fmt.Errorf("site: duplicate series %q", series.Slug)
		}
		slugs[series.Slug] = struct{}{}
		seen := map[string]struct{}{}
		for _, a := range series.Items {
			if strings.TrimSpace(a.ID) == "" {
				return fmt.Errorf("site: series %q: artwork without id", series.Slug)
			}
			if _, dup := seen[a.ID]; dup {
				return fmt.Errorf("%w: %q in series %q", ErrDuplicateArtwork, a.ID, series.Slug)
			}
			seen[a.ID] = struct{}{}
		}
	}
	if s.Offer != nil && s.Offer.ListPrice < 0 {
		return errors.New("site: offer list price must not be negative")
	}
	return nil
}

// FindSeries returns the series declared under slug.
func (s *Site) FindSeries(slug string) (Series, error) {
	for _, series := range s.Series {
		if series.Slug == slug {
			return series, nil
		}
	}
	return Series{}, fmt.Errorf("%w: %q", ErrUnknownSeries, slug)
}

// LastOnWide returns the id reordered on wide viewports.
func (s Series) LastOnWide(def string) string {
	if s.LastOnWideID == nil {
		return def
	}
	return *s.LastOnWideID
}

// HasSale reports whether the offer is discounted.
func (o Offer) HasSale() bool {
	return o.SalePrice > 0 && o.SalePrice < o.ListPrice
}

// DiscountPercent returns round((1 - sale/list) * 100), or zero without a sale.
func (o Offer) DiscountPercent() int {
	if !o.HasSale() {
		return 0
	}
	pct := (1 - float64(o.SalePrice)/float64(o.ListPrice)) * 100
	return int(pct + 0.5)
}

func (s *Site) applyDefaults() {
	if s.Artist.Name == "" {
		s.Artist.Name = "Marcela Pedrosa"
	}
	if s.Contact.Phone == "" {
		s.Contact.Phone = firstNonEmpty(s.Artist.Phone, "+56 9 5618 9912")
	}
	if s.Artist.Phone == "" {
		s.Artist.Phone = s.Contact.Phone
	}
	if s.Contact.Email == "" {
		s.Contact.Email = s.Artist.Email
	}
	if s.Contact.MessageTemplate == "" {
		s.Contact.MessageTemplate = "Hola, soy {name} ({email}). {message}"
	}
	if s.Offer != nil {
		if s.Offer.Currency == "" {
			s.Offer.Currency = "CLP"
		}
		if s.Offer.Phone == "" {
			s.Offer.Phone = s.Contact.Phone
		}
	}
	if s.Author.Message.IsZero() {
		s.Author.Message = i18n.Key("ft_credit_text")
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
