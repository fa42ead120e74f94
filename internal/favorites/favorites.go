// Package favorites manages the anonymous saved-properties list. The default
// store persists ids in the signed session cookie; observers are notified on
// every change so other components can react without polling.
package favorites

import (
	"context"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"darimmo.ma/darimmo-web/internal/listings"
	"darimmo.ma/darimmo-web/internal/middleware"
)

// Event describes one favorites change.
type Event struct {
	SessionID  string
	PropertyID string
	Saved      bool
}

// Observer receives favorites change events.
type Observer func(Event)

// Store abstracts where the favorites list lives.
type Store interface {
	List(r *http.Request) []string
	Has(r *http.Request, id string) bool
	Toggle(r *http.Request, id string) bool
}

// SessionStore keeps favorites inside the signed session cookie.
type SessionStore struct {
	mu        sync.Mutex
	observers []Observer
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Subscribe registers an observer for change events.
func (s *SessionStore) Subscribe(fn Observer) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

func (s *SessionStore) List(r *http.Request) []string {
	return middleware.GetSession(r).Favorites
}

func (s *SessionStore) Has(r *http.Request, id string) bool {
	return middleware.GetSession(r).HasFavorite(id)
}

// Toggle flips the saved state of a property and reports the new state.
func (s *SessionStore) Toggle(r *http.Request, id string) bool {
	sess := middleware.GetSession(r)
	saved := sess.ToggleFavorite(id)
	s.notify(Event{SessionID: sess.ID, PropertyID: id, Saved: saved})
	return saved
}

func (s *SessionStore) notify(e Event) {
	s.mu.Lock()
	obs := append([]Observer(nil), s.observers...)
	s.mu.Unlock()
	for _, fn := range obs {
		fn(e)
	}
}

// Lister is the subset of the listings client the resolver needs.
type Lister interface {
	Get(ctx context.Context, id string) (*listings.Property, error)
}

// Service hydrates favorite ids into properties.
type Service struct {
	listings Lister
	log      *zap.Logger
}

func NewService(l Lister, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{listings: l, log: log}
}

// Resolve returns the properties behind the saved ids, preserving order.
// Ids that no longer resolve are skipped so a stale cookie never breaks
// the page.
func (s *Service) Resolve(ctx context.Context, ids []string) []listings.Property {
	if s == nil || s.listings == nil || len(ids) == 0 {
		return nil
	}
	out := make([]listings.Property, 0, len(ids))
	for _, id := range ids {
		p, err := s.listings.Get(ctx, id)
		if err != nil {
			s.log.Debug("favorites: skip unresolved id", zap.String("id", id), zap.Error(err))
			continue
		}
		out = append(out, *p)
	}
	return out
}
