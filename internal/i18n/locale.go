package i18n

import "strings"

// Locale identifies one of the site's supported languages.
type Locale string

const (
	EN Locale = "en"
	FR Locale = "fr"
	ES Locale = "es"
	AR Locale = "ar"
)

// Default is the locale used when a request hint cannot be matched.
const Default = FR

// Supported lists every locale in the order used for hreflang alternates.
var Supported = []Locale{EN, FR, ES, AR}

// IsSupported reports whether l is a member of the supported set.
func IsSupported(l Locale) bool {
	switch l {
	case EN, FR, ES, AR:
		return true
	}
	return false
}

// Dir returns the writing direction for l ("rtl" for Arabic, else "ltr").
func Dir(l Locale) string {
	if l == AR {
		return "rtl"
	}
	return "ltr"
}

// Resolve chooses the supported locale named by a request hint. The hint may
// be a bare code ("fr"), a tagged code ("ar-EG"), or a comma-separated
// preference list, of which only the first segment counts: later segments are
// never consulted, so "de,en" resolves to Default rather than en. Quality
// parameters on the first segment are ignored. Unmatched or empty hints
// resolve to Default.
func Resolve(hint string) Locale {
	if i := strings.IndexByte(hint, ','); i != -1 {
		hint = hint[:i]
	}
	if i := strings.IndexByte(hint, ';'); i != -1 {
		hint = hint[:i]
	}
	hint = strings.TrimSpace(hint)
	if i := strings.IndexByte(hint, '-'); i != -1 {
		hint = hint[:i]
	}
	if l := Locale(strings.ToLower(hint)); IsSupported(l) {
		return l
	}
	return Default
}
