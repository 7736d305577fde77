package gallery

import (
	"strings"

	"github.com/gpedrosad/mapra2/internal/artwork"
	"github.com/gpedrosad/mapra2/internal/responsive"
)

// Item is one rendered gallery entry.
type Item struct {
	artwork.Artwork
	Index   int
	Caption string
	Alt     string
}

// Controller binds a source list to the responsive policy and translator.
type Controller struct {
	items        []artwork.Artwork
	policy       *responsive.Policy
	resolve      artwork.KeyResolver
	rules        []artwork.MediumRule
	lastOnWideID string
	titleKey     string
	altKey       string

	lightboxes []*Lightbox
	cancel     func()
}

// Option configures a Controller.
type Option func(*Controller)

// WithLastOnWideID overrides the item moved to the end on wide viewports.
// An empty id disables reordering.
func WithLastOnWideID(id string) Option {
	return func(c *Controller) { c.lastOnWideID = id }
}

// WithRules overrides the medium table used for captions.
func WithRules(rules []artwork.MediumRule) Option {
	return func(c *Controller) { c.rules = rules }
}

// WithLabelKeys overrides the translation keys used for labels.
func WithLabelKeys(titleKey, altKey string) Option {
	return func(c *Controller) {
		c.titleKey = titleKey
		c.altKey = altKey
	}
}

// NewController builds a controller. policy may be nil (always narrow).
func NewController(items []artwork.Artwork, policy *responsive.Policy, resolve artwork.KeyResolver, opts ...Option) *Controller {
	if resolve == nil {
		resolve = func(k string) string { return k }
	}
	c := &Controller{
		items:        items,
		policy:       policy,
		resolve:      resolve,
		rules:        artwork.DefaultMediumRules,
		lastOnWideID: DefaultLastOnWideID,
		titleKey:     "gal_title",
		altKey:       "gal_alt",
	}
	for _, opt := range opts {
		opt(c)
	}
	if policy != nil {
		c.cancel = policy.OnChange(func(bool) { c.resize() })
	}
	return c
}

// Wide reports the current policy signal.
func (c *Controller) Wide() bool {
	return c.policy != nil && c.policy.IsWide()
}

// Display returns the ordered artworks.
func (c *Controller) Display() []artwork.Artwork {
	return DisplayList(c.items, c.Wide(), c.lastOnWideID)
}

// Items returns the display list with localized captions and labels.
func (c *Controller) Items() []Item {
	list := c.Display()
	out := make([]Item, len(list))
	for i, a := range list {
		out[i] = Item{
			Artwork: a,
			Index:   i,
			Caption: artwork.TranslateInfoWith(a.Info, c.resolve, c.rules),
			Alt:     c.alt(a),
		}
	}
	return out
}

// Label is the accessible name of an open item.
func (c *Controller) Label(a artwork.Artwork) string {
	if t := strings.TrimSpace(a.Title); t != "" {
		return t
	}
	return c.resolve(c.titleKey) + ": " + a.ID
}

// Lightbox opens a viewer sized to the display list. It is resized whenever
// the policy reorders the list.
func (c *Controller) Lightbox(host Host) *Lightbox {
	lb := NewLightbox(len(c.items), host)
	c.lightboxes = append(c.lightboxes, lb)
	return lb
}

// Close releases every lightbox and detaches from the policy.
func (c *Controller) Close() {
	for _, lb := range c.lightboxes {
		lb.Teardown()
	}
	c.lightboxes = nil
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Controller) alt(a artwork.Artwork) string {
	if t := strings.TrimSpace(a.Title); t != "" {
		return t
	}
	return c.resolve(c.altKey)
}

func (c *Controller) resize() {
	n := len(c.Display())
	for _, lb := range c.lightboxes {
		lb.SetSize(n)
	}
}
