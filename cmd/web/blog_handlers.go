package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"darimmo.ma/darimmo-web/internal/blog"
	"darimmo.ma/darimmo-web/internal/content"
	"darimmo.ma/darimmo-web/internal/format"
	handlersPkg "darimmo.ma/darimmo-web/internal/handlers"
	"darimmo.ma/darimmo-web/internal/query"
	"darimmo.ma/darimmo-web/internal/seo"
)

// blogHandler renders the blog index with search/category filtering.
func (a *app) blogHandler(w http.ResponseWriter, r *http.Request) {
	data := a.pageData(r)
	scope := handlersPkg.ScopeFrom(r.Context())

	filters := query.Extract(r.URL.Query(), query.BlogKeys)
	page := query.Page(filters, 1)

	posts, meta := a.blog.List(r.Context(), blog.ListOptions{
		Search:   filters["search"],
		Category: filters["category"],
		Page:     page,
	})

	route := routePath(r)
	data.Blog = &handlersPkg.BlogView{
		Cards:    a.postCards(r, posts),
		Filters:  filters,
		Page:     meta.CurrentPage,
		LastPage: meta.LastPage,
		Total:    meta.Total,
	}
	data.SEO = a.site.BlogMeta(scope.Locale, filters, meta.Total)
	data.SEO.Canonical = a.site.Canonical(route, filters, query.BlogKeys)
	data.SEO.Alternates = a.site.Alternates(route)
	data.Scripts = appendScript(data.Scripts,
		seo.NewScript(seo.BreadcrumbID, seo.BreadcrumbList(a.crumbItems(r, data.Breadcrumbs))),
	)
	a.render(w, r, "blog.tmpl", data)
}

// postHandler renders a single post; a missing slug renders the shell with
// fallback metadata and a 404.
func (a *app) postHandler(w http.ResponseWriter, r *http.Request) {
	data := a.pageData(r)
	scope := handlersPkg.ScopeFrom(r.Context())
	slug := chi.URLParam(r, "slug")

	p, err := a.blog.Get(r.Context(), slug)
	if err != nil && !errors.Is(err, blog.ErrNotFound) {
		p = nil
	}

	route := routePath(r)
	data.SEO = a.site.PostMeta(scope.Locale, p)
	data.SEO.Canonical = a.site.Canonical(route, nil, nil)
	data.SEO.Alternates = a.site.Alternates(route)

	status := http.StatusOK
	if p == nil {
		status = http.StatusNotFound
	} else {
		data.Post = &handlersPkg.PostView{
			Title:       p.Title.Pick(scope.Locale, ""),
			Body:        content.RenderHTML(p.Content.Pick(scope.Locale, ""), "markdown"),
			Image:       p.Image,
			Category:    p.Category,
			Tags:        p.Tags,
			Author:      p.Author,
			PublishedAt: format.Date(p.PublishedAt, scope.Locale),
			UpdatedAt:   format.Date(p.UpdatedAt, scope.Locale),
			ReadingMin:  handlersPkg.ReadingMinutesFor(p, scope.Locale),
		}
		data.Scripts = appendScript(data.Scripts,
			seo.NewScript(seo.PostID, a.site.PostRecord(scope.Locale, p, data.SEO.Canonical)),
			seo.NewScript(seo.BreadcrumbID, seo.BreadcrumbList(a.crumbItems(r, data.Breadcrumbs))),
		)
	}
	a.renderStatus(w, r, status, "post.tmpl", data)
}

// postCards maps posts to blog tiles.
func (a *app) postCards(r *http.Request, posts []blog.Post) []handlersPkg.PostCard {
	scope := handlersPkg.ScopeFrom(r.Context())
	out := make([]handlersPkg.PostCard, 0, len(posts))
	for i := range posts {
		p := &posts[i]
		out = append(out, handlersPkg.PostCard{
			Slug:        p.Slug,
			Title:       p.Title.Pick(scope.Locale, ""),
			Excerpt:     p.Excerpt.Pick(scope.Locale, ""),
			Image:       p.Image,
			Category:    p.Category,
			Author:      p.Author,
			PublishedAt: format.Date(p.PublishedAt, scope.Locale),
			ReadingMin:  handlersPkg.ReadingMinutesFor(p, scope.Locale),
			Href:        localeHref(scope.Locale, "/blog/"+p.Slug),
		})
	}
	return out
}
