package site

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"darimmo.ma/darimmo-web/internal/listings"
)

func TestFetchFallbackWithoutBaseURL(t *testing.T) {
	SetCacheTTL(time.Millisecond)
	c := NewClient("")
	s := c.Fetch(context.Background())
	if s.SiteName != "Darimmo" {
		t.Fatalf("expected fallback profile, got %+v", s)
	}
	if s.Focus != listings.FocusAll {
		t.Fatalf("fallback focus must be ALL, got %s", s.Focus)
	}
}

func TestFetchRemoteNestedEnvelope(t *testing.T) {
	SetCacheTTL(time.Minute)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/settings" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"item":{"siteName":"Darimmo Agence","websiteFocus":"RENT","socialLinks":[{"network":"Instagram","url":"https://instagram.com/x"}]}}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	s := c.Fetch(context.Background())
	if s.SiteName != "Darimmo Agence" || s.Focus != listings.FocusRent {
		t.Fatalf("unexpected settings: %+v", s)
	}
	if len(s.SocialLinks) != 1 || s.SocialLinks[0].Network != "instagram" {
		t.Fatalf("social links not normalized: %+v", s.SocialLinks)
	}
}

func TestFetchCachesResult(t *testing.T) {
	SetCacheTTL(time.Minute)
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte(`{"item":{"siteName":"Cached"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_ = c.Fetch(context.Background())
	_ = c.Fetch(context.Background())
	if hits != 1 {
		t.Fatalf("expected a single remote hit, got %d", hits)
	}
}

func TestFetchFallsBackOnServerError(t *testing.T) {
	SetCacheTTL(time.Minute)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	s := c.Fetch(context.Background())
	if s.SiteName != "Darimmo" {
		t.Fatalf("expected fallback on 500, got %+v", s)
	}
}
