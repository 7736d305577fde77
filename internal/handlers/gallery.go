package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gpedrosad/mapra2/internal/gallery"
	"github.com/gpedrosad/mapra2/internal/i18n"
	"github.com/gpedrosad/mapra2/internal/responsive"
	"github.com/gpedrosad/mapra2/internal/site"
)

// Query parameters driving the lightbox.
const (
	ParamOpen = "obra"
	ParamKey  = "key"
)

// ScrollLockClass is added to <body> while the lightbox is open.
const ScrollLockClass = "overflow-hidden"

// PageHost applies lightbox side effects to the rendered page: a scroll lock
// becomes a body class and a key listener becomes the client key bridge.
type PageHost struct {
	locks     int
	listeners map[int]func(string)
	next      int
}

// NewPageHost returns an idle host.
func NewPageHost() *PageHost {
	return &PageHost{listeners: map[int]func(string){}}
}

func (h *PageHost) LockScroll() func() {
	h.locks++
	done := false
	return func() {
		if !done {
			done = true
			h.locks--
		}
	}
}

func (h *PageHost) ListenKeys(fn func(key string)) func() {
	id := h.next
	h.next++
	h.listeners[id] = fn
	return func() { delete(h.listeners, id) }
}

// Dispatch delivers a key press to every listener.
func (h *PageHost) Dispatch(key string) {
	for _, fn := range h.listeners {
		fn(key)
	}
}

// BodyClass is the class the page body needs right now.
func (h *PageHost) BodyClass() string {
	if h.locks > 0 {
		return ScrollLockClass
	}
	return ""
}

// Listening reports whether the page must forward key presses.
func (h *PageHost) Listening() bool { return len(h.listeners) > 0 }

// snapshot copies the current lock and listener state.
func (h *PageHost) snapshot() *PageHost {
	out := &PageHost{locks: h.locks, listeners: make(map[int]func(string), len(h.listeners)), next: h.next}
	for id, fn := range h.listeners {
		out.listeners[id] = fn
	}
	return out
}

// GalleryView is a rendered series page.
type GalleryView struct {
	Slug     string
	Path     string
	Title    string
	Subtitle string
	Empty    string
	Wide     bool
	Items    []GalleryItemView
	Lightbox *LightboxView

	CloseLabel string
	PrevLabel  string
	NextLabel  string
}

// GalleryItemView is one thumbnail.
type GalleryItemView struct {
	Index    int
	ID       string
	ImageURL string
	Caption  string
	Alt      string
	Href     string
}

// LightboxView is the open viewer.
type LightboxView struct {
	Index     int
	Total     int
	Counter   string
	ImageURL  string
	Caption   string
	Label     string
	Alt       string
	PrevHref  string
	NextHref  string
	CloseHref string
}

// BuildGallery renders series for the request. The viewport comes from
// client hints, the obra parameter opens the viewer and key replays a key
// press through the page host. The returned host reflects the final state.
func BuildGallery(loc *i18n.Localizer, s site.Series, r *http.Request) (*GalleryView, *PageHost) {
	return buildGallery(loc, s, r, NewPageHost())
}

// buildGallery releases everything the viewer acquired on host before it
// returns, panics included. The returned host is a copy taken beforehand.
func buildGallery(loc *i18n.Localizer, s site.Series, r *http.Request, host *PageHost) (*GalleryView, *PageHost) {
	policy := responsive.Watch(responsive.FromRequest(r))
	defer policy.Close()

	ctrl := gallery.NewController(s.Items, policy, loc.Text,
		gallery.WithLastOnWideID(s.LastOnWide(gallery.DefaultLastOnWideID)))
	defer ctrl.Close()
	lb := ctrl.Lightbox(host)

	path := "/" + s.Slug
	v := &GalleryView{
		Slug:       s.Slug,
		Path:       path,
		Title:      loc.Render(s.Title),
		Subtitle:   loc.Render(s.Subtitle),
		Empty:      loc.Render(s.Empty),
		Wide:       ctrl.Wide(),
		CloseLabel: loc.T("gal_close"),
		PrevLabel:  loc.T("gal_prev"),
		NextLabel:  loc.T("gal_next"),
	}
	items := ctrl.Items()
	for _, it := range items {
		v.Items = append(v.Items, GalleryItemView{
			Index:    it.Index,
			ID:       it.ID,
			ImageURL: it.ImageURL,
			Caption:  it.Caption,
			Alt:      it.Alt,
			Href:     itemHref(path, it.Index),
		})
	}

	q := r.URL.Query()
	if raw := q.Get(ParamOpen); raw != "" {
		if i, err := strconv.Atoi(raw); err == nil {
			lb.Open(i)
		}
	}
	if key := q.Get(ParamKey); key != "" {
		host.Dispatch(key)
	}
	if i, ok := lb.Active(); ok {
		it := items[i]
		v.Lightbox = &LightboxView{
			Index:     i,
			Total:     lb.Size(),
			Counter:   fmt.Sprintf("%d / %d", i+1, lb.Size()),
			ImageURL:  it.ImageURL,
			Caption:   it.Caption,
			Label:     ctrl.Label(it.Artwork),
			Alt:       it.Alt,
			PrevHref:  itemHref(path, lb.PrevIndex()),
			NextHref:  itemHref(path, lb.NextIndex()),
			CloseHref: path,
		}
	}

	return v, host.snapshot()
}

func itemHref(path string, i int) string {
	return path + "?" + ParamOpen + "=" + strconv.Itoa(i)
}
