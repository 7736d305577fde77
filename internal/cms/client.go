// Package cms serves the localized legal pages from local markdown, optionally
// consulting a remote CMS first.
package cms

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrNotFound is returned when a page cannot be located in any locale.
var ErrNotFound = errors.New("cms: not found")

const (
	defaultContentDir = "content"
	defaultCacheTTL   = 5 * time.Minute
	defaultLang       = "es"
)

// Client provides read-only access to content pages.
type Client struct {
	baseURL    string
	contentDir string
	http       *http.Client
	logger     *zap.Logger
	ttl        time.Duration
	now        func() time.Time

	mu    sync.RWMutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	page    Page
	expires time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithContentDir sets the directory holding legal/<lang>/<slug>.md.
func WithContentDir(dir string) Option {
	return func(c *Client) {
		if dir = strings.TrimSpace(dir); dir != "" {
			c.contentDir = dir
		}
	}
}

// WithCacheTTL overrides how long pages stay cached.
func WithCacheTTL(d time.Duration) Option {
	return func(c *Client) {
		if d <= 0 {
			d = time.Minute
		}
		c.ttl = d
	}
}

// WithLogger sets the logger used for remote fallbacks.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithHTTPClient overrides the remote transport.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// NewClient constructs a Client. An empty baseURL disables the remote CMS.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		contentDir: defaultContentDir,
		http:       &http.Client{Timeout: 5 * time.Second},
		logger:     zap.NewNop(),
		ttl:        defaultCacheTTL,
		now:        time.Now,
		cache:      map[string]cacheEntry{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ContentDir returns the configured markdown directory.
func (c *Client) ContentDir() string {
	return c.contentDir
}

func (c *Client) cached(key string) (Page, bool) {
	c.mu.RLock()
	entry, ok := c.cache[key]
	c.mu.RUnlock()
	if !ok || c.now().After(entry.expires) {
		return Page{}, false
	}
	return entry.page, true
}

func (c *Client) store(key string, page Page) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[key] = cacheEntry{page: page, expires: c.now().Add(c.ttl)}
}
