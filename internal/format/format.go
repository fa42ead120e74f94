package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"darimmo.ma/darimmo-web/internal/i18n"
)

// Price formats a listing price in major units.
// Example: Price(1250000, "MAD", i18n.FR) => "1 250 000 MAD"
func Price(amount float64, currency string, locale i18n.Locale) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = "MAD"
	}
	whole := int64(math.Round(amount))
	grouped := thousandSep(whole, groupSep(locale))
	switch currency {
	case "USD":
		return "$" + grouped
	case "EUR":
		if locale == i18n.EN {
			return "€" + grouped
		}
		return grouped + " €"
	default:
		return grouped + " " + currency
	}
}

func groupSep(locale i18n.Locale) string {
	if locale == i18n.EN {
		return ","
	}
	// narrow no-break space, the French convention
	return " "
}

func thousandSep(n int64, sep string) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var b strings.Builder
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteRune(c)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// Date formats time in a locale-friendly short form.
func Date(t time.Time, locale i18n.Locale) string {
	if t.IsZero() {
		return ""
	}
	switch locale {
	case i18n.EN:
		return t.Format("Jan 2, 2006")
	default:
		return t.Format("02/01/2006")
	}
}

// Area formats a surface in square meters.
func Area(sqm float64) string {
	if sqm <= 0 {
		return ""
	}
	if sqm == math.Trunc(sqm) {
		return fmt.Sprintf("%d m²", int64(sqm))
	}
	return fmt.Sprintf("%.1f m²", sqm)
}
