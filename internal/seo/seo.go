// Package seo assembles page metadata, canonical/alternate URL sets, and
// schema.org structured data for the site's server-rendered pages. Everything
// here is a pure transform of already-fetched entities: no I/O, no shared
// state, safe for concurrent use.
package seo

import (
	"strings"
	"time"

	"darimmo.ma/darimmo-web/internal/i18n"
)

// Site carries the per-deployment constants every builder needs.
type Site struct {
	Name    string
	BaseURL string
}

// OpenGraph holds the og:* preview block.
type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
}

// Twitter holds the twitter:* preview block.
type Twitter struct {
	Card  string
	Site  string
	Image string
}

// Article holds article:* metadata for blog posts.
type Article struct {
	PublishedTime time.Time
	ModifiedTime  time.Time
	Author        string
	Section       string
	Tags          []string
}

// Alternate is one hreflang link entry.
type Alternate struct {
	Hreflang string
	Href     string
}

// Meta is the assembled page metadata handed to the layout template.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Alternates  []Alternate
	OG          *OpenGraph
	Twitter     *Twitter
	Article     *Article
}

// absURL resolves a possibly relative asset URL against the site base.
func (s Site) absURL(u string) string {
	u = strings.TrimSpace(u)
	if u == "" {
		return ""
	}
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	if !strings.HasPrefix(u, "/") {
		u = "/" + u
	}
	return strings.TrimRight(s.BaseURL, "/") + u
}

// previewBlocks fills OG and Twitter blocks for a page with an image.
func previewBlocks(title, description, image, ogType string) (*OpenGraph, *Twitter) {
	og := &OpenGraph{Title: title, Description: description, Image: image, Type: ogType}
	tw := &Twitter{Card: "summary_large_image", Image: image}
	if image == "" {
		tw.Card = "summary"
	}
	return og, tw
}

// pick is shorthand used by the builders.
func pick(t *i18n.Text, l i18n.Locale) string {
	return t.Pick(l, "")
}
