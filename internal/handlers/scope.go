package handlers

import (
	"context"

	"darimmo.ma/darimmo-web/internal/i18n"
	"darimmo.ma/darimmo-web/internal/listings"
)

// Scope is the per-request pair every page needs. It is built once at the
// router entry point and read everywhere else, so no handler re-derives the
// locale or the site focus mid-request.
type Scope struct {
	Locale i18n.Locale
	Focus  listings.Focus
}

type scopeKey struct{}

// WithScope stores the request scope in the context.
func WithScope(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// ScopeFrom returns the request scope, defaulting to {fr, ALL} when absent.
func ScopeFrom(ctx context.Context) Scope {
	if v, ok := ctx.Value(scopeKey{}).(Scope); ok {
		return v
	}
	return Scope{Locale: i18n.Default, Focus: listings.FocusAll}
}
