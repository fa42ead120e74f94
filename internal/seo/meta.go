package seo

import (
	"fmt"
	"strings"

	"darimmo.ma/darimmo-web/internal/blog"
	"darimmo.ma/darimmo-web/internal/i18n"
	"darimmo.ma/darimmo-web/internal/listings"
)

// ListingMeta builds metadata for a listing collection page. The dominant
// filter decorates the title: location wins over propertyType when both are
// present. A non-negative total appends a result-count hint.
func (s Site) ListingMeta(locale i18n.Locale, focus listings.Focus, filters map[string]string, total int) Meta {
	title := focusCopy(listingTitles, focus, locale)
	if loc := strings.TrimSpace(filters["location"]); loc != "" {
		title += " - " + loc
	} else if pt := strings.TrimSpace(filters["propertyType"]); pt != "" {
		title += " - " + pt
	}

	description := focusCopy(listingDescriptions, focus, locale)
	if total >= 0 {
		description += fmt.Sprintf(" (%d results).", total)
	}

	og, tw := previewBlocks(title, description, "", "website")
	return Meta{Title: title, Description: description, OG: og, Twitter: tw}
}

// PropertyMeta builds metadata for a single property page. An absent entity
// degrades to the site name and a localized generic description with no
// social preview blocks.
func (s Site) PropertyMeta(locale i18n.Locale, focus listings.Focus, p *listings.Property) Meta {
	if p == nil {
		return Meta{
			Title:       s.Name,
			Description: localeCopy(propertyFallbackDescriptions, locale),
		}
	}

	title := pick(p.Title, locale)
	if title == "" {
		title = s.Name
	} else {
		title += " | " + focusCopy(focusSuffixes, focus, locale)
	}
	description := p.Description.Pick(locale, localeCopy(propertyFallbackDescriptions, locale))

	image := s.absURL(p.FirstImage())
	og, tw := previewBlocks(title, description, image, "product")
	return Meta{Title: title, Description: description, OG: og, Twitter: tw}
}

// BlogMeta builds metadata for the blog collection page. An active search
// term decorates the title ahead of a category filter; the literal category
// "all" means no filter. A non-negative total appends an article count.
func (s Site) BlogMeta(locale i18n.Locale, filters map[string]string, total int) Meta {
	title := localeCopy(blogTitles, locale)
	if search := strings.TrimSpace(filters["search"]); search != "" {
		title += " - " + search
	} else if cat := strings.TrimSpace(filters["category"]); cat != "" && !strings.EqualFold(cat, "all") {
		title += " - " + cat
	}

	description := localeCopy(blogDescriptions, locale)
	if total >= 0 {
		description += fmt.Sprintf(" (%d articles).", total)
	}

	og, tw := previewBlocks(title, description, "", "website")
	return Meta{Title: title, Description: description, OG: og, Twitter: tw}
}

// PostMeta builds metadata for a single blog post. Meta fields win over the
// display fields; body content, when present, appends an estimated reading
// time to the description.
func (s Site) PostMeta(locale i18n.Locale, p *blog.Post) Meta {
	if p == nil {
		return Meta{
			Title:       "Blog Post",
			Description: localeCopy(postFallbackDescriptions, locale),
		}
	}

	title := pick(p.MetaTitle, locale)
	if title == "" {
		title = pick(p.Title, locale)
	}
	if title == "" {
		title = "Blog Post"
	}

	description := pick(p.MetaDescription, locale)
	if description == "" {
		description = pick(p.Excerpt, locale)
	}
	if description == "" {
		description = localeCopy(postFallbackDescriptions, locale)
	}
	if content := pick(p.Content, locale); content != "" {
		if minutes := blog.ReadingMinutes(content); minutes > 0 {
			description += fmt.Sprintf(" (%d min read).", minutes)
		}
	}

	image := s.absURL(p.Image)
	og, tw := previewBlocks(title, description, image, "article")
	meta := Meta{Title: title, Description: description, OG: og, Twitter: tw}
	if !p.PublishedAt.IsZero() {
		meta.Article = &Article{
			PublishedTime: p.PublishedAt,
			ModifiedTime:  p.UpdatedAt,
			Author:        p.Author,
			Section:       p.Category,
			Tags:          append([]string(nil), p.Tags...),
		}
	}
	return meta
}
