package middleware

import "net/http"

// HTMX records whether the request was issued by the htmx runtime (favorite
// toggles, fragment swaps) so handlers can answer with a fragment instead of
// a full page.
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is := r.Header.Get("HX-Request") == "true"
		next.ServeHTTP(w, r.WithContext(WithHTMX(r.Context(), is)))
	})
}
