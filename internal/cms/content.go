package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Legal page slugs.
const (
	SlugPrivacy  = "privacidad"
	SlugReturns  = "devoluciones"
	SlugDelivery = "tiempos-de-entrega"

	legalKind = "legal"
)

// LegalSlugs lists every legal page in menu order.
func LegalSlugs() []string {
	return []string{SlugDelivery, SlugPrivacy, SlugReturns}
}

// Page is a localized content page.
type Page struct {
	Slug      string
	Lang      string
	Title     string
	Summary   string
	Body      template.HTML
	UpdatedAt time.Time
	SEO       SEO
}

// SEO holds optional metadata overrides.
type SEO struct {
	Title       string
	Description string
	OGImage     string
}

type frontMatter struct {
	Title     string         `yaml:"title"`
	Summary   string         `yaml:"summary"`
	Lang      string         `yaml:"lang"`
	Format    string         `yaml:"format"`
	UpdatedAt string         `yaml:"updated_at"`
	SEO       frontMatterSEO `yaml:"seo"`
}

type frontMatterSEO struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	OGImage     string `yaml:"og_image"`
}

// GetLegalPage fetches a legal page in lang, falling back to es then en.
func (c *Client) GetLegalPage(ctx context.Context, slug, lang string) (Page, error) {
	return c.GetPage(ctx, legalKind, slug, lang)
}

// GetPage fetches a localized page of kind.
func (c *Client) GetPage(ctx context.Context, kind, slug, lang string) (Page, error) {
	slug = sanitizeSlug(slug)
	if slug == "" {
		return Page{}, ErrNotFound
	}
	lang = normalizeLang(lang)

	key := strings.Join([]string{kind, lang, slug}, "|")
	if page, ok := c.cached(key); ok {
		return page, nil
	}
	page, err := c.fetchPage(ctx, kind, slug, lang)
	if err != nil {
		return Page{}, err
	}
	c.store(key, page)
	return page, nil
}

func (c *Client) fetchPage(ctx context.Context, kind, slug, lang string) (Page, error) {
	if c.baseURL != "" {
		page, err := c.fetchRemote(ctx, kind, slug, lang)
		if err == nil {
			return page, nil
		}
		if !errors.Is(err, ErrNotFound) {
			c.logger.Warn("cms remote fetch failed, using local content",
				zap.String("kind", kind), zap.String("slug", slug), zap.String("lang", lang), zap.Error(err))
		}
	}
	return readLocal(c.contentDir, kind, slug, lang)
}

func (c *Client) fetchRemote(ctx context.Context, kind, slug, lang string) (Page, error) {
	endpoint, err := url.JoinPath(c.baseURL, "content", kind, slug)
	if err != nil {
		return Page{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Page{}, err
	}
	q := req.URL.Query()
	q.Set("lang", lang)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Page{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return Page{}, ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return Page{}, fmt.Errorf("cms: remote status %d", resp.StatusCode)
	}

	var payload struct {
		Slug      string    `json:"slug"`
		Lang      string    `json:"lang"`
		Title     string    `json:"title"`
		Summary   string    `json:"summary"`
		Body      string    `json:"body"`
		Format    string    `json:"format"`
		UpdatedAt time.Time `json:"updated_at"`
		SEO       struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			OGImage     string `json:"og_image"`
		} `json:"seo"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Page{}, fmt.Errorf("cms: decode remote page: %w", err)
	}
	if strings.TrimSpace(payload.Body) == "" {
		return Page{}, fmt.Errorf("cms: empty body for %s/%s", kind, slug)
	}
	body, err := renderBody(payload.Body, payload.Format)
	if err != nil {
		return Page{}, err
	}
	return finish(Page{
		Slug:      firstNonEmpty(payload.Slug, slug),
		Lang:      firstNonEmpty(payload.Lang, lang),
		Title:     payload.Title,
		Summary:   payload.Summary,
		Body:      template.HTML(body),
		UpdatedAt: payload.UpdatedAt,
		SEO: SEO{
			Title:       payload.SEO.Title,
			Description: payload.SEO.Description,
			OGImage:     payload.SEO.OGImage,
		},
	}), nil
}

// readLocal tries lang, then es, then en.
func readLocal(contentDir, kind, slug, lang string) (Page, error) {
	priority := []string{lang}
	for _, l := range []string{defaultLang, "en"} {
		if l != lang {
			priority = append(priority, l)
		}
	}
	for _, candidate := range priority {
		page, err := readMarkdown(contentDir, kind, slug, candidate)
		if err == nil {
			return page, nil
		}
		if errors.Is(err, ErrNotFound) {
			continue
		}
		return Page{}, err
	}
	return Page{}, ErrNotFound
}

func readMarkdown(contentDir, kind, slug, lang string) (Page, error) {
	file := filepath.Join(contentDir, kind, lang, slug+".md")
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Page{}, ErrNotFound
		}
		return Page{}, fmt.Errorf("cms: read %s: %w", file, err)
	}
	fm, body := splitFrontMatter(string(data))
	front := frontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Page{}, fmt.Errorf("cms: parse front matter %s: %w", file, err)
		}
	}
	rendered, err := renderBody(body, front.Format)
	if err != nil {
		return Page{}, fmt.Errorf("cms: %s: %w", file, err)
	}
	page := Page{
		Slug:    slug,
		Lang:    firstNonEmpty(strings.TrimSpace(front.Lang), lang),
		Title:   strings.TrimSpace(front.Title),
		Summary: strings.TrimSpace(front.Summary),
		Body:    template.HTML(rendered),
		SEO: SEO{
			Title:       strings.TrimSpace(front.SEO.Title),
			Description: strings.TrimSpace(front.SEO.Description),
			OGImage:     strings.TrimSpace(front.SEO.OGImage),
		},
		UpdatedAt: parseDate(front.UpdatedAt),
	}
	if page.UpdatedAt.IsZero() {
		if info, statErr := os.Stat(file); statErr == nil {
			page.UpdatedAt = info.ModTime()
		}
	}
	return finish(page), nil
}

func finish(page Page) Page {
	if page.Title == "" {
		page.Title = prettifySlug(page.Slug)
	}
	if page.Summary == "" {
		page.Summary = firstParagraph(string(page.Body))
	}
	if page.SEO.Description == "" {
		page.SEO.Description = page.Summary
	}
	return page
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\uFEFF")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func parseDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "02-01-2006", "2006/01/02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func normalizeLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	if lang == "" {
		return defaultLang
	}
	return lang
}

func prettifySlug(slug string) string {
	parts := strings.Split(strings.TrimSpace(slug), "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		if runes[0] >= 'a' && runes[0] <= 'z' {
			runes[0] -= 'a' - 'A'
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

func sanitizeSlug(slug string) string {
	slug = strings.Trim(strings.TrimSpace(strings.ToLower(slug)), "/")
	if slug == "" || strings.Contains(slug, "..") || strings.ContainsAny(slug, `/\`) {
		return ""
	}
	return slug
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
