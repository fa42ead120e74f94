package seo

import (
	"net/url"
	"strings"

	"darimmo.ma/darimmo-web/internal/i18n"
)

// Canonical builds the absolute canonical URL for a route. Retained query
// parameters serialize in the page's declared allow-list order, never map
// iteration order, so permuted inputs yield byte-identical URLs.
func (s Site) Canonical(route string, params map[string]string, order []string) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimRight(s.BaseURL, "/"))
	if !strings.HasPrefix(route, "/") {
		sb.WriteByte('/')
	}
	sb.WriteString(route)
	sep := byte('?')
	for _, key := range order {
		v, ok := params[key]
		if !ok || v == "" {
			continue
		}
		sb.WriteByte(sep)
		sb.WriteString(url.QueryEscape(key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(v))
		sep = '&'
	}
	return sb.String()
}

// Alternates emits one absolute URL per supported locale for the route,
// using the /{locale} path prefix convention, in fixed locale order.
func (s Site) Alternates(route string) []Alternate {
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	base := strings.TrimRight(s.BaseURL, "/")
	out := make([]Alternate, 0, len(i18n.Supported))
	for _, l := range i18n.Supported {
		out = append(out, Alternate{
			Hreflang: string(l),
			Href:     base + "/" + string(l) + route,
		})
	}
	return out
}
