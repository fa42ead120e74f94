package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"darimmo.ma/darimmo-web/internal/i18n"
)

// Locale resolves the preferred language and stores it in the session and the
// `hl` cookie. Precedence: URL locale prefix, `hl` query override, session,
// cookie, Accept-Language, and finally the site default.
func Locale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := GetSession(r)
		if p := chi.URLParam(r, "locale"); p != "" && i18n.IsSupported(i18n.Locale(strings.ToLower(p))) {
			setLocale(w, s, strings.ToLower(p))
		} else if q := r.URL.Query().Get("hl"); q != "" {
			setLocale(w, s, string(i18n.Resolve(q)))
		} else if s.Locale == "" {
			if c, err := r.Cookie("hl"); err == nil && c.Value != "" {
				s.Locale = string(i18n.Resolve(c.Value))
				s.MarkDirty()
			} else {
				s.Locale = string(i18n.Resolve(r.Header.Get("Accept-Language")))
				s.MarkDirty()
			}
		}
		// surface Content-Language
		if s.Locale != "" {
			w.Header().Set("Content-Language", s.Locale)
		}
		next.ServeHTTP(w, r)
	})
}

func setLocale(w http.ResponseWriter, s *SessionData, locale string) {
	if s.Locale != locale {
		s.Locale = locale
		s.MarkDirty()
	}
	http.SetCookie(w, &http.Cookie{Name: "hl", Value: locale, Path: "/"})
}

// Lang returns the current locale from the session, or the site default.
func Lang(r *http.Request) i18n.Locale {
	if s := GetSession(r); s != nil && s.Locale != "" {
		if l := i18n.Locale(s.Locale); i18n.IsSupported(l) {
			return l
		}
	}
	return i18n.Default
}

// VaryLocale sets Vary header for Accept-Language on dynamic responses
func VaryLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// append to existing Vary if any
		w.Header().Add("Vary", "Accept-Language")
		next.ServeHTTP(w, r)
	})
}
