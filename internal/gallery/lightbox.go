package gallery

// Keys understood by the lightbox.
const (
	KeyEscape     = "Escape"
	KeyArrowRight = "ArrowRight"
	KeyArrowLeft  = "ArrowLeft"
)

// Host provides the environment side effects held while a lightbox is open.
// Each acquisition returns the function that undoes it.
type Host interface {
	LockScroll() (restore func())
	ListenKeys(fn func(key string)) (remove func())
}

// Lightbox is the viewer state machine: closed, or open at an index in
// [0, size).
type Lightbox struct {
	host    Host
	size    int
	active  int
	open    bool
	release []func()
}

// NewLightbox returns a closed lightbox over size items. host may be nil.
func NewLightbox(size int, host Host) *Lightbox {
	if size < 0 {
		size = 0
	}
	return &Lightbox{host: host, size: size}
}

// Active returns the open index.
func (lb *Lightbox) Active() (int, bool) {
	if !lb.open {
		return 0, false
	}
	return lb.active, true
}

// IsOpen reports whether the viewer is showing an item.
func (lb *Lightbox) IsOpen() bool { return lb.open }

// Size returns the number of navigable items.
func (lb *Lightbox) Size() int { return lb.size }

// Open shows item i. It reports false and changes nothing when i is out of
// range. Opening while already open only moves the index.
func (lb *Lightbox) Open(i int) bool {
	if i < 0 || i >= lb.size {
		return false
	}
	lb.active = i
	if !lb.open {
		lb.open = true
		lb.acquire()
	}
	return true
}

// Close hides the viewer and releases held resources.
func (lb *Lightbox) Close() {
	if !lb.open {
		return
	}
	lb.open = false
	lb.active = 0
	lb.releaseAll()
}

// Next advances circularly. No-op when closed.
func (lb *Lightbox) Next() {
	if lb.open {
		lb.active = Wrap(lb.active+1, lb.size)
	}
}

// Prev steps back circularly. No-op when closed.
func (lb *Lightbox) Prev() {
	if lb.open {
		lb.active = Wrap(lb.active-1, lb.size)
	}
}

// NextIndex returns the index Next would move to without moving.
func (lb *Lightbox) NextIndex() int { return Wrap(lb.active+1, lb.size) }

// PrevIndex returns the index Prev would move to without moving.
func (lb *Lightbox) PrevIndex() int { return Wrap(lb.active-1, lb.size) }

// HandleKey applies a keyboard key. It reports whether the key was handled.
func (lb *Lightbox) HandleKey(key string) bool {
	if !lb.open {
		return false
	}
	switch key {
	case KeyEscape:
		lb.Close()
	case KeyArrowRight:
		lb.Next()
	case KeyArrowLeft:
		lb.Prev()
	default:
		return false
	}
	return true
}

// SetSize updates the number of items, closing the viewer when the open
// index no longer exists.
func (lb *Lightbox) SetSize(n int) {
	if n < 0 {
		n = 0
	}
	lb.size = n
	if lb.open && lb.active >= n {
		lb.Close()
	}
}

// Teardown releases everything regardless of state.
func (lb *Lightbox) Teardown() {
	lb.Close()
	lb.releaseAll()
}

// Scoped runs fn with a fresh lightbox and tears it down on every exit path,
// panics included.
func Scoped(size int, host Host, fn func(lb *Lightbox) error) error {
	lb := NewLightbox(size, host)
	defer lb.Teardown()
	return fn(lb)
}

func (lb *Lightbox) acquire() {
	if lb.host == nil {
		return
	}
	// Record each handle before taking the next so a failing host still unwinds.
	lb.release = append(lb.release, lb.host.LockScroll())
	lb.release = append(lb.release, lb.host.ListenKeys(func(key string) { lb.HandleKey(key) }))
}

func (lb *Lightbox) releaseAll() {
	fns := lb.release
	lb.release = nil
	for i := len(fns) - 1; i >= 0; i-- {
		if fns[i] != nil {
			fns[i]()
		}
	}
}
