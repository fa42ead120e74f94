package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/zap"

	"darimmo.ma/darimmo-web/internal/blog"
	"darimmo.ma/darimmo-web/internal/favorites"
	handlersPkg "darimmo.ma/darimmo-web/internal/handlers"
	"darimmo.ma/darimmo-web/internal/i18n"
	"darimmo.ma/darimmo-web/internal/listings"
	"darimmo.ma/darimmo-web/internal/seo"
	"darimmo.ma/darimmo-web/internal/site"
)

// newTestRouter builds a router like main() does, backed entirely by the
// built-in fallback datasets (no API base URL).
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	devMode = true
	templatesDir = "../../templates"
	publicDir = "../../public"
	localesDir = "../../locales"
	contentDir = "../../content"

	bundle, err := i18n.Load(localesDir)
	if err != nil {
		t.Fatalf("load locales: %v", err)
	}
	i18nBundle = bundle
	if _, err := parseTemplates(); err != nil {
		t.Fatalf("parseTemplates failed: %v", err)
	}

	log := zap.NewNop()
	app := newApp(appConfig{
		log:       log,
		bundle:    bundle,
		site:      seo.Site{Name: "Darimmo", BaseURL: "https://www.darimmo.ma"},
		listings:  listings.NewClient("", log),
		blog:      blog.NewClient("", log),
		content:   newContentClient(""),
		settings:  site.NewClient(""),
		store:     favorites.NewSessionStore(),
		analytics: handlersPkg.Analytics{},
	})
	return newRouter(app)
}

func get(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	body, _ := io.ReadAll(rec.Result().Body)
	return rec, string(body)
}

func TestHealthz(t *testing.T) {
	h := newTestRouter(t)
	rec, body := get(t, h, "/healthz")
	if rec.Code != http.StatusOK || body != "ok" {
		t.Fatalf("healthz: %d %q", rec.Code, body)
	}
}

func TestHomeDefaultsToFrench(t *testing.T) {
	h := newTestRouter(t)
	rec, body := get(t, h, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(body, `lang="fr"`) {
		t.Fatal("page must default to French")
	}
	if !strings.Contains(body, `rel="canonical" href="https://www.darimmo.ma/"`) {
		t.Fatal("canonical link missing")
	}
	if !strings.Contains(body, `id="ld-organization"`) || !strings.Contains(body, `id="ld-website"`) {
		t.Fatal("organization/website structured data missing")
	}
	if rec.Header().Get("Content-Language") != "fr" {
		t.Fatalf("Content-Language: %q", rec.Header().Get("Content-Language"))
	}
}

func TestRentalsFilteredMetadata(t *testing.T) {
	h := newTestRouter(t)
	rec, body := get(t, h, "/rentals?location=Casablanca")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(body, "<title>Locations mensuelles - Casablanca</title>") {
		t.Fatal("filtered listing title missing")
	}
	if !strings.Contains(body, "(1 results).") {
		t.Fatal("result count suffix missing")
	}
	if !strings.Contains(body, "https://www.darimmo.ma/rentals?location=Casablanca") {
		t.Fatal("canonical must keep the retained filter")
	}
	if !strings.Contains(body, `hreflang="ar"`) {
		t.Fatal("hreflang alternates missing")
	}
	if !strings.Contains(body, `id="ld-listings"`) {
		t.Fatal("item list structured data missing")
	}
}

func TestLocalePrefixedRoute(t *testing.T) {
	h := newTestRouter(t)
	rec, body := get(t, h, "/en/sales")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(body, `lang="en"`) {
		t.Fatal("locale prefix must switch the page language")
	}
	if rec.Header().Get("Content-Language") != "en" {
		t.Fatalf("Content-Language: %q", rec.Header().Get("Content-Language"))
	}
}

func TestPropertyDetail(t *testing.T) {
	h := newTestRouter(t)
	rec, body := get(t, h, "/properties/prop-1001")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(body, `id="ld-property"`) {
		t.Fatal("property structured data missing")
	}
}

func TestPropertyMissing(t *testing.T) {
	h := newTestRouter(t)
	rec, body := get(t, h, "/properties/does-not-exist")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(body, "<title>Darimmo</title>") {
		t.Fatal("absent property must fall back to the site name title")
	}
	if strings.Contains(body, `property="og:title"`) {
		t.Fatal("absent property must not emit social preview tags")
	}
	if strings.Contains(body, `id="ld-property"`) {
		t.Fatal("absent property must not emit structured data")
	}
}

func TestBlogIndex(t *testing.T) {
	h := newTestRouter(t)
	rec, body := get(t, h, "/blog")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(body, "<title>Blog immobilier") {
		t.Fatal("blog title missing")
	}
	if !strings.Contains(body, `id="ld-breadcrumbs"`) {
		t.Fatal("breadcrumb structured data missing")
	}
}

func TestBlogPost(t *testing.T) {
	h := newTestRouter(t)
	rec, body := get(t, h, "/blog/quartiers-casablanca-familles")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(body, `id="ld-post"`) {
		t.Fatal("article structured data missing")
	}
	if !strings.Contains(body, "min read).") && !strings.Contains(body, "min read") {
		t.Fatal("reading time missing from description")
	}
}

func TestContentPage(t *testing.T) {
	h := newTestRouter(t)
	rec, body := get(t, h, "/pages/about")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(body, "propos de Darimmo") {
		t.Fatal("french about page expected by default")
	}
}

func TestJoinSubmitWithoutCSRF(t *testing.T) {
	h := newTestRouter(t)
	rec := httptest.NewRecorder()
	form := url.Values{"name": {"A"}, "email": {"a@b.ma"}}
	req := httptest.NewRequest(http.MethodPost, "/join-us", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without CSRF token, got %d", rec.Code)
	}
}

func TestFavoriteToggleFlow(t *testing.T) {
	h := newTestRouter(t)

	// prime session + csrf cookies
	rec, _ := get(t, h, "/")
	cookies := rec.Result().Cookies()
	var token string
	for _, c := range cookies {
		if c.Name == "csrf_token" {
			token = c.Value
		}
	}
	if token == "" {
		t.Fatal("expected csrf cookie")
	}

	form := url.Values{"csrf_token": {token}}
	req := httptest.NewRequest(http.MethodPost, "/favorites/prop-1001", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect after toggle, got %d", rec.Code)
	}
}
