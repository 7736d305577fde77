package nav

import (
	"path"
	"strings"
)

// Item represents a top-level navigation item.
type Item struct {
	Path     string // e.g. "/pinturas"
	LabelKey string // i18n key, e.g. "nav_paintings"
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href     string
	LabelKey string
	Active   bool
}

// Crumb represents a breadcrumb entry. If LabelKey is empty, use Label.
type Crumb struct {
	Href     string
	LabelKey string
	Label    string
	Active   bool
}

// Main is the hamburger menu in display order.
var Main = []Item{
	{Path: "/", LabelKey: "nav_home"},
	{Path: "/pinturas", LabelKey: "nav_paintings"},
	{Path: "/esculturas", LabelKey: "nav_ceramics"},
	{Path: "/prensa", LabelKey: "nav_press"},
	{Path: "/tiempos-de-entrega", LabelKey: "nav_delivery"},
	{Path: "/privacidad", LabelKey: "nav_privacy"},
	{Path: "/devoluciones", LabelKey: "nav_returns"},
	{Path: "/contacto", LabelKey: "nav_contact"},
}

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:     it.Path,
			LabelKey: it.LabelKey,
			Active:   isActive(it.Path, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	return currentPath == itemPath || strings.HasPrefix(currentPath, itemPath+"/")
}

// Breadcrumbs builds breadcrumb entries from the current path, starting at
// Home. Known sections use their nav label keys.
func Breadcrumbs(currentPath string) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", LabelKey: "nav_home", Active: currentPath == "/"}}
	if currentPath == "/" {
		return crumbs
	}

	clean := path.Clean(currentPath)
	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")
	href := ""
	for i, part := range parts {
		if part == "" {
			continue
		}
		href += "/" + part
		crumb := Crumb{Href: href, Label: titleFromSegment(part), Active: i == len(parts)-1}
		if i == 0 {
			crumb.LabelKey = labelKeyFor(href)
		}
		crumbs = append(crumbs, crumb)
	}
	return crumbs
}

func labelKeyFor(p string) string {
	for _, it := range Main {
		if it.Path == p {
			return it.LabelKey
		}
	}
	return ""
}

func titleFromSegment(seg string) string {
	if seg == "" {
		return seg
	}
	s := strings.ReplaceAll(seg, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}
