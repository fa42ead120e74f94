package main

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"darimmo.ma/darimmo-web/internal/blog"
	"darimmo.ma/darimmo-web/internal/content"
	"darimmo.ma/darimmo-web/internal/favorites"
	handlersPkg "darimmo.ma/darimmo-web/internal/handlers"
	"darimmo.ma/darimmo-web/internal/i18n"
	"darimmo.ma/darimmo-web/internal/listings"
	mw "darimmo.ma/darimmo-web/internal/middleware"
	"darimmo.ma/darimmo-web/internal/nav"
	"darimmo.ma/darimmo-web/internal/seo"
	"darimmo.ma/darimmo-web/internal/site"
)

// app bundles the shared dependencies every handler needs.
type app struct {
	log       *zap.Logger
	bundle    *i18n.Bundle
	site      seo.Site
	listings  *listings.Client
	blog      *blog.Client
	content   *content.Client
	settings  *site.Client
	store     *favorites.SessionStore
	resolver  *favorites.Service
	analytics handlersPkg.Analytics
}

type appConfig struct {
	log       *zap.Logger
	bundle    *i18n.Bundle
	site      seo.Site
	listings  *listings.Client
	blog      *blog.Client
	content   *content.Client
	settings  *site.Client
	store     *favorites.SessionStore
	analytics handlersPkg.Analytics
}

func newApp(cfg appConfig) *app {
	return &app{
		log:       cfg.log,
		bundle:    cfg.bundle,
		site:      cfg.site,
		listings:  cfg.listings,
		blog:      cfg.blog,
		content:   cfg.content,
		settings:  cfg.settings,
		store:     cfg.store,
		resolver:  favorites.NewService(cfg.listings, cfg.log),
		analytics: cfg.analytics,
	}
}

// scoped builds the per-request {locale, focus} pair once, right after locale
// resolution, and stores it in the context for every downstream consumer.
func (a *app) scoped(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := a.settings.Fetch(r.Context())
		scope := handlersPkg.Scope{Locale: mw.Lang(r), Focus: s.Focus}
		next.ServeHTTP(w, r.WithContext(handlersPkg.WithScope(r.Context(), scope)))
	})
}

// pageData seeds the layout fields shared by every page.
func (a *app) pageData(r *http.Request) handlersPkg.PageData {
	scope := handlersPkg.ScopeFrom(r.Context())
	settings := a.settings.Fetch(r.Context())
	path := routePath(r)
	return handlersPkg.PageData{
		Lang:        scope.Locale,
		Dir:         i18n.Dir(scope.Locale),
		Path:        path,
		CSRFToken:   mw.GetSession(r).CSRFToken,
		Settings:    settings,
		Analytics:   a.analytics,
		Nav:         nav.Build(scope.Focus, path),
		Breadcrumbs: nav.Breadcrumbs(path),
	}
}

// routePath strips the locale prefix so nav state and canonical routes are
// computed on the locale-independent path.
func routePath(r *http.Request) string {
	p := r.URL.Path
	for _, l := range i18n.Supported {
		prefix := "/" + string(l)
		if p == prefix {
			return "/"
		}
		if len(p) > len(prefix) && p[:len(prefix)+1] == prefix+"/" {
			return p[len(prefix):]
		}
	}
	return p
}

// render executes the named page template. In dev mode templates are
// reparsed on each request.
func (a *app) render(w http.ResponseWriter, r *http.Request, page string, data handlersPkg.PageData) {
	a.renderStatus(w, r, http.StatusOK, page, data)
}

// renderStatus buffers the template output so the status code can be set
// after a successful execution.
func (a *app) renderStatus(w http.ResponseWriter, r *http.Request, status int, page string, data handlersPkg.PageData) {
	t, err := a.templates()
	if err != nil {
		http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, page, data); err != nil {
		a.log.Error("template exec", zap.String("page", page), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// renderFragment executes a partial template for htmx responses.
func (a *app) renderFragment(w http.ResponseWriter, name string, data any) {
	t, err := a.templates()
	if err != nil {
		http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		a.log.Error("fragment exec", zap.String("fragment", name), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (a *app) templates() (*template.Template, error) {
	if devMode {
		return parseTemplates()
	}
	if tmplCache == nil {
		return nil, fmt.Errorf("templates not initialized")
	}
	return tmplCache, nil
}

// t translates a UI key for the request locale.
func (a *app) t(r *http.Request, key string) string {
	return a.bundle.T(handlersPkg.ScopeFrom(r.Context()).Locale, key)
}

func isHTMX(r *http.Request) bool {
	return mw.IsHTMX(r.Context())
}

func csrfToken(r *http.Request) string {
	return mw.GetSession(r).CSRFToken
}

// localeHref prefixes a route with the locale only when it differs from the
// default, matching the canonical URL scheme.
func localeHref(locale i18n.Locale, route string) string {
	if locale == i18n.Default {
		return route
	}
	return "/" + string(locale) + route
}

// appendScript keeps nil scripts (absent entities) out of the page.
func appendScript(dst []*seo.Script, scripts ...*seo.Script) []*seo.Script {
	for _, s := range scripts {
		if s != nil {
			dst = append(dst, s)
		}
	}
	return dst
}
