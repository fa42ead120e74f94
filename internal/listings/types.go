package listings

import (
	"time"

	"darimmo.ma/darimmo-web/internal/i18n"
)

// Focus discriminates the listing categories the site markets. It drives
// copy, labels, and route selection but is never mutated by this package.
type Focus string

const (
	FocusDailyRent Focus = "DAILY_RENT"
	FocusRent      Focus = "RENT"
	FocusSelling   Focus = "SELLING"
	FocusAll       Focus = "ALL"
)

// Focuses lists every concrete focus plus the catch-all, in display order.
var Focuses = []Focus{FocusDailyRent, FocusRent, FocusSelling, FocusAll}

// ParseFocus maps arbitrary input to a valid Focus, defaulting to FocusAll.
func ParseFocus(s string) Focus {
	switch Focus(s) {
	case FocusDailyRent, FocusRent, FocusSelling:
		return Focus(s)
	}
	return FocusAll
}

// Property is a single listing as delivered by the listings API.
type Property struct {
	ID           string
	Title        *i18n.Text
	Description  *i18n.Text
	City         string
	Neighborhood string
	PropertyType string // apartment, villa, riad, studio, office
	Category     Focus
	Price        float64
	Currency     string
	Bedrooms     int
	Bathrooms    int
	AreaSqM      float64
	Images       []string
	Available    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FirstImage returns the property's primary image URL, or "".
func (p *Property) FirstImage() string {
	if p == nil || len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Meta carries pagination info for a listing collection response.
type Meta struct {
	Total       int `json:"total"`
	CurrentPage int `json:"currentPage"`
	LastPage    int `json:"lastPage"`
}
