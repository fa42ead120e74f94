package favorites

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"darimmo.ma/darimmo-web/internal/listings"
	"darimmo.ma/darimmo-web/internal/middleware"
)

type fakeLister struct {
	known map[string]*listings.Property
}

func (f *fakeLister) Get(_ context.Context, id string) (*listings.Property, error) {
	if p, ok := f.known[id]; ok {
		return p, nil
	}
	return nil, errors.New("missing")
}

func TestResolvePreservesOrderAndSkipsMissing(t *testing.T) {
	svc := NewService(&fakeLister{known: map[string]*listings.Property{
		"a": {ID: "a"},
		"c": {ID: "c"},
	}}, nil)
	got := svc.Resolve(context.Background(), []string{"c", "missing", "a"})
	if len(got) != 2 || got[0].ID != "c" || got[1].ID != "a" {
		t.Fatalf("unexpected resolution: %+v", got)
	}
}

func TestResolveEmpty(t *testing.T) {
	svc := NewService(&fakeLister{}, nil)
	if got := svc.Resolve(context.Background(), nil); got != nil {
		t.Fatalf("expected nil for empty ids, got %+v", got)
	}
}

func TestSessionStoreToggleNotifiesObservers(t *testing.T) {
	store := NewSessionStore()
	var events []Event
	store.Subscribe(func(e Event) { events = append(events, e) })

	h := middleware.Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !store.Toggle(r, "prop-1") {
			t.Fatal("first toggle must save")
		}
		if !store.Has(r, "prop-1") {
			t.Fatal("Has must see the saved id")
		}
		if store.Toggle(r, "prop-1") {
			t.Fatal("second toggle must unsave")
		}
		if got := store.List(r); len(got) != 0 {
			t.Fatalf("list must be empty after unsave, got %v", got)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if !events[0].Saved || events[1].Saved {
		t.Fatalf("event states wrong: %+v", events)
	}
	if events[0].PropertyID != "prop-1" || events[0].SessionID == "" {
		t.Fatalf("event payload wrong: %+v", events[0])
	}
}
