package cms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegalPagesExistInBothLocales(t *testing.T) {
	c := NewClient("", WithContentDir("../../content"))
	for _, slug := range LegalSlugs() {
		for _, lang := range []string{"es", "en"} {
			page, err := c.GetLegalPage(context.Background(), slug, lang)
			require.NoError(t, err, "%s/%s", lang, slug)
			assert.Equal(t, lang, page.Lang)
			assert.NotEmpty(t, page.Title)
			assert.NotEmpty(t, page.Summary)
			assert.Equal(t, time.Date(2025, 9, 28, 0, 0, 0, 0, time.UTC), page.UpdatedAt)
		}
	}
}

func TestMarkdownRenderedAndSanitized(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "es", "privacidad", "---\ntitle: Hola\n---\nPrimer **párrafo**.\n\n<script>alert(1)</script>\n\n## Sección\n\n[externo](https://example.com)\n")
	c := NewClient("", WithContentDir(dir))

	page, err := c.GetLegalPage(context.Background(), "privacidad", "es")
	require.NoError(t, err)
	assert.Equal(t, "Hola", page.Title)
	assert.Equal(t, "Primer párrafo.", page.Summary)
	assert.Equal(t, page.Summary, page.SEO.Description)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(page.Body)))
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Find("script").Length())
	assert.Equal(t, "Sección", doc.Find("h2").Text())
	assert.Equal(t, "_blank", doc.Find("a").AttrOr("target", ""))
}

func TestLocaleFallbackOrder(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "es", "devoluciones", "Texto en español.\n")
	writePage(t, dir, "en", "tiempos-de-entrega", "English only.\n")
	c := NewClient("", WithContentDir(dir))

	page, err := c.GetLegalPage(context.Background(), "devoluciones", "en")
	require.NoError(t, err)
	assert.Equal(t, "es", page.Lang)
	assert.Equal(t, "Devoluciones", page.Title)

	page, err = c.GetLegalPage(context.Background(), "tiempos-de-entrega", "es")
	require.NoError(t, err)
	assert.Equal(t, "en", page.Lang)
	assert.Equal(t, "Tiempos De Entrega", page.Title)

	_, err = c.GetLegalPage(context.Background(), "privacidad", "es")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = c.GetLegalPage(context.Background(), "../secret", "es")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPagesAreCachedUntilExpiry(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "es", "privacidad", "---\ntitle: Uno\n---\nA\n")
	c := NewClient("", WithContentDir(dir), WithCacheTTL(time.Minute))
	now := time.Now()
	c.now = func() time.Time { return now }

	page, err := c.GetLegalPage(context.Background(), "privacidad", "es")
	require.NoError(t, err)
	require.Equal(t, "Uno", page.Title)

	writePage(t, dir, "es", "privacidad", "---\ntitle: Dos\n---\nB\n")
	page, _ = c.GetLegalPage(context.Background(), "privacidad", "es")
	assert.Equal(t, "Uno", page.Title)

	now = now.Add(2 * time.Minute)
	page, _ = c.GetLegalPage(context.Background(), "privacidad", "es")
	assert.Equal(t, "Dos", page.Title)
}

func TestRemoteCMSPreferredWithLocalFallback(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/content/legal/privacidad":
			assert.Equal(t, "en", r.URL.Query().Get("lang"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"title":"Remote","body":"Remote **body**","updated_at":"2025-10-01T00:00:00Z"}`))
		case "/content/legal/devoluciones":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	dir := t.TempDir()
	writePage(t, dir, "en", "devoluciones", "Local returns.\n")
	c := NewClient(srv.URL, WithContentDir(dir))

	page, err := c.GetLegalPage(context.Background(), "privacidad", "en")
	require.NoError(t, err)
	assert.Equal(t, "Remote", page.Title)
	assert.Contains(t, string(page.Body), "<strong>body</strong>")

	page, err = c.GetLegalPage(context.Background(), "devoluciones", "en")
	require.NoError(t, err)
	assert.Equal(t, "Local returns.", page.Summary)
	assert.Equal(t, int32(2), hits.Load())
}

func writePage(t *testing.T, dir, lang, slug, body string) {
	t.Helper()
	path := filepath.Join(dir, legalKind, lang)
	require.NoError(t, os.MkdirAll(path, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(path, slug+".md"), []byte(body), 0o644))
}
