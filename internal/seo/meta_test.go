package seo

import (
	"strings"
	"testing"
	"time"

	"darimmo.ma/darimmo-web/internal/blog"
	"darimmo.ma/darimmo-web/internal/i18n"
	"darimmo.ma/darimmo-web/internal/listings"
)

func TestListingMetaTotalCoverage(t *testing.T) {
	for _, focus := range listings.Focuses {
		for _, locale := range i18n.Supported {
			m := testSite.ListingMeta(locale, focus, nil, -1)
			if m.Title == "" {
				t.Fatalf("empty title for %s/%s", focus, locale)
			}
			if m.Description == "" {
				t.Fatalf("empty description for %s/%s", focus, locale)
			}
		}
	}
}

func TestListingMetaFrenchRentScenario(t *testing.T) {
	m := testSite.ListingMeta(i18n.FR, listings.FocusRent, map[string]string{"location": "Casablanca"}, 42)
	if m.Title != "Locations mensuelles - Casablanca" {
		t.Fatalf("title: got %q", m.Title)
	}
	if !strings.HasSuffix(m.Description, "(42 results).") {
		t.Fatalf("description must end with count suffix, got %q", m.Description)
	}
}

func TestListingMetaLocationBeatsPropertyType(t *testing.T) {
	filters := map[string]string{"location": "Rabat", "propertyType": "villa"}
	m := testSite.ListingMeta(i18n.EN, listings.FocusSelling, filters, -1)
	if !strings.HasSuffix(m.Title, "- Rabat") {
		t.Fatalf("location must dominate: %q", m.Title)
	}
	m = testSite.ListingMeta(i18n.EN, listings.FocusSelling, map[string]string{"propertyType": "villa"}, -1)
	if !strings.HasSuffix(m.Title, "- villa") {
		t.Fatalf("propertyType suffix missing: %q", m.Title)
	}
	if strings.Contains(m.Description, "results") {
		t.Fatalf("unknown count must not render a suffix: %q", m.Description)
	}
}

func TestPropertyMetaAbsentEntity(t *testing.T) {
	m := testSite.PropertyMeta(i18n.EN, listings.FocusSelling, nil)
	if m.Title != "Darimmo" {
		t.Fatalf("absent entity title must be the site name, got %q", m.Title)
	}
	if m.Description != "Property details" {
		t.Fatalf("unexpected fallback description %q", m.Description)
	}
	if m.OG != nil || m.Twitter != nil {
		t.Fatalf("absent entity must not carry preview blocks")
	}
}

func TestPropertyMetaTitleAndImage(t *testing.T) {
	p := &listings.Property{
		ID:     "p1",
		Title:  &i18n.Text{FR: "Appartement vue mer"},
		Images: []string{"/img/p1.jpg"},
	}
	m := testSite.PropertyMeta(i18n.FR, listings.FocusRent, p)
	if m.Title != "Appartement vue mer | À louer" {
		t.Fatalf("title: got %q", m.Title)
	}
	if m.OG == nil || m.OG.Image != "https://www.darimmo.ma/img/p1.jpg" {
		t.Fatalf("relative image must be absolutized: %+v", m.OG)
	}
	if m.Description != "Détails de la propriété" {
		t.Fatalf("missing description must use localized fallback, got %q", m.Description)
	}
}

func TestPropertyMetaAbsoluteImagePassthrough(t *testing.T) {
	p := &listings.Property{
		Title:  &i18n.Text{EN: "Villa"},
		Images: []string{"https://cdn.darimmo.ma/img/v.jpg"},
	}
	m := testSite.PropertyMeta(i18n.EN, listings.FocusSelling, p)
	if m.OG.Image != "https://cdn.darimmo.ma/img/v.jpg" {
		t.Fatalf("absolute image must pass through, got %q", m.OG.Image)
	}
}

func TestBlogMetaFilters(t *testing.T) {
	m := testSite.BlogMeta(i18n.EN, map[string]string{"search": "riad", "category": "guides"}, 7)
	if m.Title != "Real Estate Blog - riad" {
		t.Fatalf("search must beat category: %q", m.Title)
	}
	if !strings.HasSuffix(m.Description, "(7 articles).") {
		t.Fatalf("article count suffix missing: %q", m.Description)
	}

	m = testSite.BlogMeta(i18n.EN, map[string]string{"category": "all"}, -1)
	if m.Title != "Real Estate Blog" {
		t.Fatalf(`category "all" must not decorate the title: %q`, m.Title)
	}

	m = testSite.BlogMeta(i18n.FR, map[string]string{"category": "quartiers"}, -1)
	if m.Title != "Blog immobilier - quartiers" {
		t.Fatalf("category suffix missing: %q", m.Title)
	}
}

func TestPostMetaFieldPriority(t *testing.T) {
	p := &blog.Post{
		Slug:            "x",
		Title:           &i18n.Text{EN: "Display title"},
		MetaTitle:       &i18n.Text{EN: "SEO title"},
		Excerpt:         &i18n.Text{EN: "Excerpt text"},
		MetaDescription: &i18n.Text{EN: "SEO description"},
	}
	m := testSite.PostMeta(i18n.EN, p)
	if m.Title != "SEO title" {
		t.Fatalf("metaTitle must win, got %q", m.Title)
	}
	if m.Description != "SEO description" {
		t.Fatalf("metaDescription must win, got %q", m.Description)
	}

	p.MetaTitle, p.MetaDescription = nil, nil
	m = testSite.PostMeta(i18n.EN, p)
	if m.Title != "Display title" || m.Description != "Excerpt text" {
		t.Fatalf("fallback chain broken: %q / %q", m.Title, m.Description)
	}

	m = testSite.PostMeta(i18n.EN, &blog.Post{})
	if m.Title != "Blog Post" {
		t.Fatalf("literal fallback title expected, got %q", m.Title)
	}
}

func TestPostMetaReadingTime(t *testing.T) {
	body := strings.Repeat("mot ", 400)
	p := &blog.Post{
		Title:   &i18n.Text{FR: "Article"},
		Content: &i18n.Text{FR: body},
	}
	m := testSite.PostMeta(i18n.FR, p)
	if !strings.HasSuffix(m.Description, "(2 min read).") {
		t.Fatalf("reading time suffix missing: %q", m.Description)
	}
}

func TestPostMetaArticleBlock(t *testing.T) {
	published := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
	p := &blog.Post{
		Title:       &i18n.Text{EN: "T"},
		Category:    "guides",
		Tags:        []string{"a", "b"},
		Author:      "Equipe Darimmo",
		PublishedAt: published,
		UpdatedAt:   published.Add(24 * time.Hour),
	}
	m := testSite.PostMeta(i18n.EN, p)
	if m.Article == nil {
		t.Fatalf("expected article block")
	}
	if !m.Article.PublishedTime.Equal(published) || m.Article.Section != "guides" {
		t.Fatalf("unexpected article block: %+v", m.Article)
	}
}
