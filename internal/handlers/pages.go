package handlers

import (
	"html/template"
	"time"

	"darimmo.ma/darimmo-web/internal/blog"
	"darimmo.ma/darimmo-web/internal/i18n"
	"darimmo.ma/darimmo-web/internal/listings"
	"darimmo.ma/darimmo-web/internal/nav"
	"darimmo.ma/darimmo-web/internal/seo"
	"darimmo.ma/darimmo-web/internal/site"
)

// PageData is the shared view model for pages using the base layout.
type PageData struct {
	Lang      i18n.Locale
	Dir       string // "ltr" or "rtl"
	Path      string
	CSRFToken string

	Settings  site.Settings
	Analytics Analytics

	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb

	SEO     seo.Meta
	Scripts []*seo.Script

	// Optional per-page payloads
	Home      *HomeView
	Listings  *ListingsView
	Property  *PropertyView
	Blog      *BlogView
	Post      *PostView
	Content   *ContentView
	Join      *JoinView
	Favorites *FavoritesView
}

// HomeView feeds the landing page.
type HomeView struct {
	Featured []ListingCard
	Posts    []PostCard
}

// ListingCard is one property tile in a grid.
type ListingCard struct {
	ID           string
	Title        string
	City         string
	Neighborhood string
	PropertyType string
	Price        string
	Area         string
	Bedrooms     int
	Bathrooms    int
	Image        string
	Href         string
	Favorited    bool
}

// ListingsView feeds the collection pages (daily rentals, rentals, sales).
type ListingsView struct {
	Focus      listings.Focus
	Heading    string
	Cards      []ListingCard
	Filters    map[string]string
	Page       int
	LastPage   int
	Total      int
	BaseRoute  string
	SearchMode string // "rental" or "sale", drives the filter form
}

// PropertyView feeds the property detail page.
type PropertyView struct {
	ID           string
	Title        string
	Description  string
	City         string
	Neighborhood string
	PropertyType string
	Price        string
	Area         string
	Bedrooms     int
	Bathrooms    int
	Images       []string
	Available    bool
	Favorited    bool
	ListedAt     string
}

// PostCard is one blog tile.
type PostCard struct {
	Slug        string
	Title       string
	Excerpt     string
	Image       string
	Category    string
	Author      string
	PublishedAt string
	ReadingMin  int
	Href        string
}

// BlogView feeds the blog index.
type BlogView struct {
	Cards    []PostCard
	Filters  map[string]string
	Page     int
	LastPage int
	Total    int
}

// PostView feeds the single post page.
type PostView struct {
	Title       string
	Body        template.HTML
	Image       string
	Category    string
	Tags        []string
	Author      string
	PublishedAt string
	UpdatedAt   string
	ReadingMin  int
}

// ContentView feeds static pages.
type ContentView struct {
	Title         string
	Summary       string
	Body          template.HTML
	EffectiveDate time.Time
	Version       string
}

// JoinView feeds the join-us form, including redisplay after errors.
type JoinView struct {
	Form      site.JoinRequest
	Errors    map[string]string
	Submitted bool
	Failed    bool
}

// FavoritesView feeds the saved-properties page.
type FavoritesView struct {
	Cards []ListingCard
}

// ReadingMinutesFor picks the localized body and estimates reading time.
func ReadingMinutesFor(p *blog.Post, locale i18n.Locale) int {
	if p == nil {
		return 0
	}
	return blog.ReadingMinutes(p.Content.Pick(locale, ""))
}
