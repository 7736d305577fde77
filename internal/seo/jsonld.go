package seo

import (
	"encoding/json"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// PersonInput describes the artist for the Person schema.
type PersonInput struct {
	Name        string
	JobTitle    string
	Nationality string
	Location    string
	URL         string
	Image       string
	SameAs      []string
	Email       string
	Telephone   string
	Description string
}

// Person returns a schema.org Person. Optional fields are omitted when empty.
func Person(in PersonInput) map[string]any {
	m := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Person",
		"name":        in.Name,
		"jobTitle":    in.JobTitle,
		"nationality": in.Nationality,
		"homeLocation": map[string]any{
			"@type": "Place",
			"name":  in.Location,
		},
		"url": in.URL,
	}
	if in.Image != "" {
		m["image"] = in.Image
	}
	if len(in.SameAs) > 0 {
		m["sameAs"] = in.SameAs
	}
	if in.Email != "" {
		m["email"] = in.Email
	}
	if in.Telephone != "" {
		m["telephone"] = in.Telephone
	}
	if in.Description != "" {
		m["description"] = in.Description
	}
	return m
}

// WebSite returns a minimal WebSite schema.
func WebSite(name, url, lang string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if lang != "" {
		m["inLanguage"] = lang
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}
