// Package responsive exposes the "wide viewport" signal used to reorder
// gallery content.
package responsive

import "sync"

// WideMinWidth is the extra-large breakpoint in CSS pixels.
const WideMinWidth = 1536

// Matches reports whether width is at or above the wide breakpoint.
func Matches(width int) bool { return width >= WideMinWidth }

// Source reports the viewport width and notifies on changes.
type Source interface {
	// Width returns the current width, or false when it is unknown.
	Width() (int, bool)
	// Subscribe registers fn for width changes and returns its cancel func.
	Subscribe(fn func(width int)) (unsubscribe func())
}

// Policy tracks whether the viewport is wide.
type Policy struct {
	mu        sync.Mutex
	wide      bool
	unsub     func()
	listeners map[int]func(bool)
	nextID    int
}

// Watch starts a policy on src. The signal is false until the first width is
// known; a nil src keeps it false permanently.
func Watch(src Source) *Policy {
	p := &Policy{listeners: map[int]func(bool){}}
	if src == nil {
		return p
	}
	if w, ok := src.Width(); ok {
		p.wide = Matches(w)
	}
	p.unsub = src.Subscribe(p.update)
	return p
}

// IsWide returns the current signal.
func (p *Policy) IsWide() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.wide
}

// OnChange registers fn to run whenever the signal flips.
func (p *Policy) OnChange(fn func(wide bool)) (cancel func()) {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = fn
	p.mu.Unlock()
	return func() {
		p.mu.Lock()
		delete(p.listeners, id)
		p.mu.Unlock()
	}
}

// Close detaches the policy from its source. It is safe to call twice.
func (p *Policy) Close() {
	p.mu.Lock()
	unsub := p.unsub
	p.unsub = nil
	p.listeners = map[int]func(bool){}
	p.mu.Unlock()
	if unsub != nil {
		unsub()
	}
}

func (p *Policy) update(width int) {
	wide := Matches(width)
	p.mu.Lock()
	changed := wide != p.wide
	p.wide = wide
	var fns []func(bool)
	if changed {
		for _, fn := range p.listeners {
			fns = append(fns, fn)
		}
	}
	p.mu.Unlock()
	for _, fn := range fns {
		fn(wide)
	}
}
