package listings

import (
	"strings"
	"time"

	"darimmo.ma/darimmo-web/internal/i18n"
)

// fallbackProperties is served when no API base URL is configured or the
// remote call fails, so listing pages always have something to render.
var fallbackProperties = []Property{
	{
		ID:    "prop-1001",
		Title: &i18n.Text{EN: "Sunny apartment near the Corniche", FR: "Appartement lumineux près de la Corniche", AR: "شقة مشمسة قرب الكورنيش"},
		Description: &i18n.Text{
			EN: "Two-bedroom apartment with sea view, five minutes from Ain Diab beach.",
			FR: "Appartement de deux chambres avec vue mer, à cinq minutes de la plage d'Aïn Diab.",
			AR: "شقة من غرفتين بإطلالة على البحر، على بعد خمس دقائق من شاطئ عين الذياب.",
		},
		City:         "Casablanca",
		Neighborhood: "Ain Diab",
		PropertyType: "apartment",
		Category:     FocusDailyRent,
		Price:        850,
		Currency:     "MAD",
		Bedrooms:     2,
		Bathrooms:    1,
		AreaSqM:      95,
		Images:       []string{"/assets/img/listings/prop-1001.jpg"},
		Available:    true,
		CreatedAt:    time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2026, 5, 18, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:    "prop-1002",
		Title: &i18n.Text{EN: "Renovated riad in the medina", FR: "Riad rénové dans la médina", AR: "رياض مجدد في المدينة القديمة"},
		Description: &i18n.Text{
			FR: "Riad traditionnel entièrement rénové, patio central et terrasse sur les toits.",
			AR: "رياض تقليدي مجدد بالكامل، فناء مركزي وشرفة على السطح.",
		},
		City:         "Marrakech",
		Neighborhood: "Medina",
		PropertyType: "riad",
		Category:     FocusSelling,
		Price:        3200000,
		Currency:     "MAD",
		Bedrooms:     5,
		Bathrooms:    4,
		AreaSqM:      280,
		Images:       []string{"/assets/img/listings/prop-1002.jpg", "/assets/img/listings/prop-1002-patio.jpg"},
		Available:    true,
		CreatedAt:    time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:    "prop-1003",
		Title: &i18n.Text{FR: "Studio meublé à Agdal", AR: "استوديو مفروش في أكدال"},
		Description: &i18n.Text{
			FR: "Studio meublé proche des universités, idéal pour une location à l'année.",
			AR: "استوديو مفروش قرب الجامعات، مثالي للإيجار السنوي.",
		},
		City:         "Rabat",
		Neighborhood: "Agdal",
		PropertyType: "studio",
		Category:     FocusRent,
		Price:        4500,
		Currency:     "MAD",
		Bedrooms:     1,
		Bathrooms:    1,
		AreaSqM:      42,
		Images:       []string{"/assets/img/listings/prop-1003.jpg"},
		Available:    true,
		CreatedAt:    time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:    "prop-1004",
		Title: &i18n.Text{EN: "Villa with pool in California", FR: "Villa avec piscine à Californie", AR: "فيلا مع مسبح في كاليفورنيا"},
		Description: &i18n.Text{
			EN: "Family villa with garden and private pool in a gated community.",
			FR: "Villa familiale avec jardin et piscine privée dans une résidence fermée.",
			AR: "فيلا عائلية مع حديقة ومسبح خاص داخل إقامة مغلقة.",
		},
		City:         "Casablanca",
		Neighborhood: "Californie",
		PropertyType: "villa",
		Category:     FocusRent,
		Price:        25000,
		Currency:     "MAD",
		Bedrooms:     4,
		Bathrooms:    3,
		AreaSqM:      350,
		Images:       []string{"/assets/img/listings/prop-1004.jpg"},
		Available:    true,
		CreatedAt:    time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2026, 7, 22, 0, 0, 0, 0, time.UTC),
	},
}

func fallbackList(opts ListOptions) ([]Property, Meta) {
	location := strings.ToLower(strings.TrimSpace(opts.Location))
	propType := strings.ToLower(strings.TrimSpace(opts.PropertyType))

	filtered := make([]Property, 0, len(fallbackProperties))
	for _, p := range fallbackProperties {
		if opts.Focus != "" && opts.Focus != FocusAll && p.Category != opts.Focus {
			continue
		}
		if location != "" {
			hay := strings.ToLower(p.City + " " + p.Neighborhood)
			if !strings.Contains(hay, location) {
				continue
			}
		}
		if propType != "" && p.PropertyType != propType {
			continue
		}
		filtered = append(filtered, cloneProperty(p))
	}
	meta := Meta{Total: len(filtered), CurrentPage: 1, LastPage: 1}
	if opts.Page > 1 {
		// the fallback corpus is a single page
		return []Property{}, Meta{Total: len(filtered), CurrentPage: opts.Page, LastPage: 1}
	}
	return filtered, meta
}

func fallbackGet(id string) (*Property, error) {
	for _, p := range fallbackProperties {
		if p.ID == id {
			cp := cloneProperty(p)
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func cloneProperty(p Property) Property {
	cp := p
	if p.Images != nil {
		cp.Images = append([]string(nil), p.Images...)
	}
	if p.Title != nil {
		t := *p.Title
		cp.Title = &t
	}
	if p.Description != nil {
		d := *p.Description
		cp.Description = &d
	}
	return cp
}
