package seo

import (
	"encoding/json"
	"strings"
	"testing"

	"darimmo.ma/darimmo-web/internal/blog"
	"darimmo.ma/darimmo-web/internal/i18n"
	"darimmo.ma/darimmo-web/internal/listings"
)

func TestItemListPositions(t *testing.T) {
	props := []listings.Property{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	m := testSite.ItemList("Rentals", props, func(p *listings.Property) string {
		return "https://www.darimmo.ma/properties/" + p.ID
	})
	el, ok := m["itemListElement"].([]map[string]any)
	if !ok || len(el) != 3 {
		t.Fatalf("unexpected itemListElement: %#v", m["itemListElement"])
	}
	for i, entry := range el {
		if entry["position"] != i+1 {
			t.Fatalf("position %d: got %v", i+1, entry["position"])
		}
	}
	if el[1]["url"] != "https://www.darimmo.ma/properties/b" {
		t.Fatalf("url order must match input order: %v", el[1]["url"])
	}
	if m["numberOfItems"] != 3 {
		t.Fatalf("numberOfItems: %v", m["numberOfItems"])
	}
}

func TestBreadcrumbListOrder(t *testing.T) {
	m := BreadcrumbList([]BreadcrumbItem{
		{Name: "Accueil", Item: "https://www.darimmo.ma/"},
		{Name: "Locations", Item: "https://www.darimmo.ma/rentals"},
		{Name: "Appartement vue mer"},
	})
	el := m["itemListElement"].([]map[string]any)
	if len(el) != 3 {
		t.Fatalf("expected 3 crumbs, got %d", len(el))
	}
	if el[0]["position"] != 1 || el[2]["position"] != 3 {
		t.Fatalf("positions must be 1-based in input order")
	}
	if _, ok := el[2]["item"]; ok {
		t.Fatalf("leaf crumb without URL must omit item")
	}
}

func TestPropertyRecordNilEntity(t *testing.T) {
	if m := testSite.PropertyRecord(i18n.FR, nil, ""); m != nil {
		t.Fatalf("nil entity must produce nil record, got %v", m)
	}
	if s := NewScript(PropertyID, nil); s != nil {
		t.Fatalf("nil payload must produce nil script")
	}
}

func TestPropertyRecordOffer(t *testing.T) {
	p := &listings.Property{
		ID:        "p1",
		Title:     &i18n.Text{FR: "Riad"},
		Price:     3200000,
		Currency:  "MAD",
		Available: true,
		Images:    []string{"/img/p1.jpg"},
	}
	m := testSite.PropertyRecord(i18n.FR, p, "https://www.darimmo.ma/properties/p1")
	if m["@type"] != "Product" || m["sku"] != "p1" {
		t.Fatalf("unexpected record: %v", m)
	}
	offer, ok := m["offers"].(map[string]any)
	if !ok {
		t.Fatalf("expected offers block")
	}
	if offer["priceCurrency"] != "MAD" || offer["availability"] != "https://schema.org/InStock" {
		t.Fatalf("unexpected offer: %v", offer)
	}

	p.Available = false
	m = testSite.PropertyRecord(i18n.FR, p, "")
	offer = m["offers"].(map[string]any)
	if offer["availability"] != "https://schema.org/OutOfStock" {
		t.Fatalf("availability must reflect the entity: %v", offer)
	}
}

func TestPostRecordShape(t *testing.T) {
	p := &blog.Post{
		Slug:   "x",
		Title:  &i18n.Text{EN: "Headline"},
		Author: "Equipe Darimmo",
	}
	m := testSite.PostRecord(i18n.EN, p, "https://www.darimmo.ma/blog/x")
	if m["@type"] != "Article" || m["headline"] != "Headline" {
		t.Fatalf("unexpected record: %v", m)
	}
	author := m["author"].(map[string]any)
	if author["name"] != "Equipe Darimmo" {
		t.Fatalf("unexpected author: %v", author)
	}
	if testSite.PostRecord(i18n.EN, nil, "") != nil {
		t.Fatalf("nil post must produce nil record")
	}
}

func TestNewScriptIndentedJSON(t *testing.T) {
	s := NewScript(WebSiteID, testSite.WebSite("/blog"))
	if s == nil || s.ID != WebSiteID {
		t.Fatalf("unexpected script: %+v", s)
	}
	if !strings.Contains(s.Body, "\n  \"@context\"") {
		t.Fatalf("body must be 2-space indented:\n%s", s.Body)
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(s.Body), &decoded); err != nil {
		t.Fatalf("body must round-trip as JSON: %v", err)
	}
	if decoded["@type"] != "WebSite" {
		t.Fatalf("unexpected payload: %v", decoded)
	}
}
