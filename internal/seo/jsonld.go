package seo

import (
	"encoding/json"
	"time"

	"darimmo.ma/darimmo-web/internal/blog"
	"darimmo.ma/darimmo-web/internal/i18n"
	"darimmo.ma/darimmo-web/internal/listings"
)

// Script-tag ids for the structured data emitted on a page. They key the
// rendered <script type="application/ld+json"> elements and stay stable so
// a page never emits the same record twice.
const (
	OrganizationID = "ld-organization"
	WebSiteID      = "ld-website"
	ItemListID     = "ld-listings"
	BreadcrumbID   = "ld-breadcrumbs"
	PropertyID     = "ld-property"
	PostID         = "ld-post"
)

// Script pairs a structured-data payload with its script-tag id.
type Script struct {
	ID   string
	Body string
}

// NewScript serializes v for embedding. A nil payload yields nil so callers
// can skip the script tag for absent entities.
func NewScript(id string, v map[string]any) *Script {
	if v == nil {
		return nil
	}
	body := JSON(v)
	if body == "" {
		return nil
	}
	return &Script{ID: id, Body: body}
}

// JSON marshals v to 2-space-indented JSON. It returns an empty string on
// error.
func JSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return string(b)
}

// Organization returns a minimal Organization schema.
func (s Site) Organization(logoURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     s.Name,
		"url":      s.BaseURL,
	}
	if logoURL != "" {
		m["logo"] = s.absURL(logoURL)
	}
	return m
}

// WebSite returns a WebSite schema with an optional SearchAction target.
func (s Site) WebSite(searchRoute string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     s.Name,
		"url":      s.BaseURL,
	}
	if searchRoute != "" {
		m["potentialAction"] = map[string]any{
			"@type":       "SearchAction",
			"target":      s.absURL(searchRoute) + "?search={search_term_string}",
			"query-input": "required name=search_term_string",
		}
	}
	return m
}

// ItemList enumerates listing entities with 1-based positions matching input
// order exactly. urlFor supplies each entity's canonical URL.
func (s Site) ItemList(name string, props []listings.Property, urlFor func(p *listings.Property) string) map[string]any {
	el := make([]map[string]any, 0, len(props))
	for i := range props {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"url":      urlFor(&props[i]),
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "ItemList",
		"name":            name,
		"numberOfItems":   len(props),
		"itemListElement": el,
	}
}

// BreadcrumbItem maps a crumb name to its absolute URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds a schema.org BreadcrumbList with 1-based positions
// in input order.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		entry := map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
		}
		if it.Item != "" {
			entry["item"] = it.Item
		}
		el = append(el, entry)
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// PropertyRecord maps a property to a Product-shaped record with an Offer.
// An absent entity yields nil rather than a malformed partial record.
func (s Site) PropertyRecord(locale i18n.Locale, p *listings.Property, url string) map[string]any {
	if p == nil {
		return nil
	}
	m := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Product",
		"name":        p.Title.Pick(locale, s.Name),
		"description": pick(p.Description, locale),
		"sku":         p.ID,
	}
	if url != "" {
		m["url"] = url
	}
	if img := s.absURL(p.FirstImage()); img != "" {
		m["image"] = img
	}
	if p.Price > 0 {
		availability := "https://schema.org/InStock"
		if !p.Available {
			availability = "https://schema.org/OutOfStock"
		}
		m["offers"] = map[string]any{
			"@type":         "Offer",
			"price":         p.Price,
			"priceCurrency": p.Currency,
			"availability":  availability,
		}
	}
	return m
}

// PostRecord maps a blog post to an Article-shaped record. An absent entity
// yields nil.
func (s Site) PostRecord(locale i18n.Locale, p *blog.Post, url string) map[string]any {
	if p == nil {
		return nil
	}
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Article",
		"headline": p.Title.Pick(locale, "Blog Post"),
	}
	if url != "" {
		m["url"] = url
	}
	if desc := p.MetaDescription.Pick(locale, pick(p.Excerpt, locale)); desc != "" {
		m["description"] = desc
	}
	if img := s.absURL(p.Image); img != "" {
		m["image"] = img
	}
	if p.Author != "" {
		m["author"] = map[string]any{"@type": "Person", "name": p.Author}
	}
	if !p.PublishedAt.IsZero() {
		m["datePublished"] = p.PublishedAt.Format(time.RFC3339)
	}
	if !p.UpdatedAt.IsZero() {
		m["dateModified"] = p.UpdatedAt.Format(time.RFC3339)
	}
	return m
}
