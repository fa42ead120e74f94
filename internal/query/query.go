// Package query extracts the fixed, per-page sets of recognized filter
// parameters from incoming requests. Anything outside a page's allow-list is
// discarded so arbitrary parameters can never leak into canonical URLs.
package query

import (
	"net/url"
	"strconv"
)

// Allow-listed keys per page type. Order matters: canonical URLs serialize
// retained parameters in exactly this order.
var (
	RentalKeys = []string{"location", "propertyType", "checkIn", "checkOut", "page"}
	SaleKeys   = []string{"location", "propertyType", "priceMin", "priceMax", "page"}
	BlogKeys   = []string{"search", "category", "page"}
)

// Extract retains only allow-listed, single-valued parameters, verbatim —
// including present-but-empty values. Multi-valued and missing keys are
// dropped.
func Extract(raw url.Values, allowed []string) map[string]string {
	out := make(map[string]string, len(allowed))
	for _, key := range allowed {
		vs, ok := raw[key]
		if !ok || len(vs) != 1 {
			continue
		}
		out[key] = vs[0]
	}
	return out
}

// Page parses the "page" parameter as a base-10 integer. Absent, unparseable,
// or sub-1 values clamp to def.
func Page(params map[string]string, def int) int {
	v, ok := params["page"]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	return n
}
