package seo

import (
	"testing"

	"darimmo.ma/darimmo-web/internal/query"
)

var testSite = Site{Name: "Darimmo", BaseURL: "https://www.darimmo.ma"}

func TestCanonicalFixedKeyOrder(t *testing.T) {
	a := map[string]string{"location": "Casablanca", "propertyType": "apartment", "page": "2"}
	b := map[string]string{"page": "2", "location": "Casablanca", "propertyType": "apartment"}

	ua := testSite.Canonical("/rentals", a, query.RentalKeys)
	ub := testSite.Canonical("/rentals", b, query.RentalKeys)
	if ua != ub {
		t.Fatalf("permuted params must canonicalize identically:\n%s\n%s", ua, ub)
	}
	want := "https://www.darimmo.ma/rentals?location=Casablanca&propertyType=apartment&page=2"
	if ua != want {
		t.Fatalf("got %s, want %s", ua, want)
	}
}

func TestCanonicalDeterministic(t *testing.T) {
	params := map[string]string{"search": "riad", "category": "guides", "page": "3"}
	first := testSite.Canonical("/blog", params, query.BlogKeys)
	for i := 0; i < 100; i++ {
		if got := testSite.Canonical("/blog", params, query.BlogKeys); got != first {
			t.Fatalf("canonical not deterministic: %s vs %s", got, first)
		}
	}
}

func TestCanonicalSkipsMissingAndEscapes(t *testing.T) {
	got := testSite.Canonical("/sales", map[string]string{"location": "Aïn Diab"}, query.SaleKeys)
	want := "https://www.darimmo.ma/sales?location=A%C3%AFn+Diab"
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
	if got := testSite.Canonical("/sales", nil, query.SaleKeys); got != "https://www.darimmo.ma/sales" {
		t.Fatalf("bare route broken: %s", got)
	}
}

func TestAlternatesPerLocale(t *testing.T) {
	alts := testSite.Alternates("/rentals")
	if len(alts) != 4 {
		t.Fatalf("expected 4 alternates, got %d", len(alts))
	}
	want := map[string]string{
		"en": "https://www.darimmo.ma/en/rentals",
		"fr": "https://www.darimmo.ma/fr/rentals",
		"es": "https://www.darimmo.ma/es/rentals",
		"ar": "https://www.darimmo.ma/ar/rentals",
	}
	for _, a := range alts {
		if want[a.Hreflang] != a.Href {
			t.Fatalf("alternate %s: got %s, want %s", a.Hreflang, a.Href, want[a.Hreflang])
		}
	}
}
