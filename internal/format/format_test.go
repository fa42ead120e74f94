package format

import (
	"testing"
	"time"

	"darimmo.ma/darimmo-web/internal/i18n"
)

func TestPrice(t *testing.T) {
	cases := []struct {
		amount   float64
		currency string
		locale   i18n.Locale
		want     string
	}{
		{1250000, "MAD", i18n.FR, "1 250 000 MAD"},
		{1250000, "MAD", i18n.EN, "1,250,000 MAD"},
		{950, "mad", i18n.FR, "950 MAD"},
		{120000, "EUR", i18n.FR, "120 000 €"},
		{120000, "EUR", i18n.EN, "€120,000"},
		{5000, "USD", i18n.EN, "$5,000"},
		{800, "", i18n.AR, "800 MAD"},
	}
	for _, c := range cases {
		if got := Price(c.amount, c.currency, c.locale); got != c.want {
			t.Errorf("Price(%v, %q, %s) = %q, want %q", c.amount, c.currency, c.locale, got, c.want)
		}
	}
}

func TestDate(t *testing.T) {
	d := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	if got := Date(d, i18n.EN); got != "Mar 9, 2026" {
		t.Errorf("en date: %q", got)
	}
	if got := Date(d, i18n.FR); got != "09/03/2026" {
		t.Errorf("fr date: %q", got)
	}
	if got := Date(time.Time{}, i18n.FR); got != "" {
		t.Errorf("zero date must be empty, got %q", got)
	}
}

func TestArea(t *testing.T) {
	if got := Area(120); got != "120 m²" {
		t.Errorf("area: %q", got)
	}
	if got := Area(85.5); got != "85.5 m²" {
		t.Errorf("fractional area: %q", got)
	}
	if got := Area(0); got != "" {
		t.Errorf("zero area must be empty, got %q", got)
	}
}
