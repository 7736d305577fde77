package responsive

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
)

// Emitter is a settable Source.
type Emitter struct {
	mu     sync.Mutex
	width  int
	known  bool
	subs   map[int]func(int)
	nextID int
}

// NewEmitter returns an Emitter with no known width.
func NewEmitter() *Emitter { return &Emitter{subs: map[int]func(int){}} }

// Width implements Source.
func (e *Emitter) Width() (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.width, e.known
}

// Subscribe implements Source.
func (e *Emitter) Subscribe(fn func(int)) func() {
	e.mu.Lock()
	id := e.nextID
	e.nextID++
	e.subs[id] = fn
	e.mu.Unlock()
	return func() {
		e.mu.Lock()
		delete(e.subs, id)
		e.mu.Unlock()
	}
}

// Subscribers returns the number of active subscriptions.
func (e *Emitter) Subscribers() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.subs)
}

// Set records a new width and notifies every subscriber.
func (e *Emitter) Set(width int) {
	e.mu.Lock()
	e.width, e.known = width, true
	fns := make([]func(int), 0, len(e.subs))
	for _, fn := range e.subs {
		fns = append(fns, fn)
	}
	e.mu.Unlock()
	for _, fn := range fns {
		fn(width)
	}
}

// Static is a Source whose width never changes.
type Static struct {
	W     int
	Known bool
}

// Width implements Source.
func (s Static) Width() (int, bool) { return s.W, s.Known }

// Subscribe implements Source; a static width never notifies.
func (Static) Subscribe(func(int)) func() { return func() {} }

// Client hint and fallback carriers for the viewport width.
const (
	HeaderViewportWidth       = "Sec-CH-Viewport-Width"
	HeaderViewportWidthLegacy = "Viewport-Width"
	ParamViewportWidth        = "vw"
)

// FromRequest builds a static Source from client hints, the vw query
// parameter or the vw cookie, in that order. Unknown width yields a Source
// that reports nothing, which keeps the policy narrow.
func FromRequest(r *http.Request) Source {
	if r == nil {
		return Static{}
	}
	candidates := []string{
		r.Header.Get(HeaderViewportWidth),
		r.Header.Get(HeaderViewportWidthLegacy),
		r.URL.Query().Get(ParamViewportWidth),
	}
	if c, err := r.Cookie(ParamViewportWidth); err == nil {
		candidates = append(candidates, c.Value)
	}
	for _, raw := range candidates {
		if w, ok := parseWidth(raw); ok {
			return Static{W: w, Known: true}
		}
	}
	return Static{}
}

// maxViewportWidth bounds reported widths; anything larger is treated as unknown.
const maxViewportWidth = 1 << 16

func parseWidth(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f <= 0 || f > maxViewportWidth {
		return 0, false
	}
	return int(f), true
}
