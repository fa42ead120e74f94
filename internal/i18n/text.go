package i18n

import (
	"encoding/json"
	"strings"
)

// Text is a multilingual string as delivered by the listings API. French and
// Arabic are guaranteed by the upstream contract; the rest are optional.
type Text struct {
	EN string `json:"en,omitempty"`
	FR string `json:"fr,omitempty"`
	ES string `json:"es,omitempty"`
	AR string `json:"ar,omitempty"`
}

// pickOrder is the fixed fallback chain walked after the requested locale.
// It is locale-independent on purpose: only the already-tried locale differs.
var pickOrder = []Locale{EN, FR, AR, ES}

// UnmarshalJSON accepts either a locale-keyed object or a bare string. Legacy
// records ship some fields as plain strings; those land in every slot so any
// locale resolves to the same value.
func (t *Text) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		t.EN, t.FR, t.ES, t.AR = s, s, s, s
		return nil
	}
	type plain Text
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*t = Text(p)
	return nil
}

func (t *Text) get(l Locale) string {
	if t == nil {
		return ""
	}
	switch l {
	case EN:
		return t.EN
	case FR:
		return t.FR
	case ES:
		return t.ES
	case AR:
		return t.AR
	}
	return ""
}

// Pick resolves t for locale, walking the fixed fallback chain when the
// requested field is empty. A nil or fully empty record yields fallback.
// Same (t, locale, fallback) always yields the same string.
func (t *Text) Pick(locale Locale, fallback string) string {
	if t == nil {
		return fallback
	}
	if v := strings.TrimSpace(t.get(locale)); v != "" {
		return v
	}
	for _, l := range pickOrder {
		if l == locale {
			continue
		}
		if v := strings.TrimSpace(t.get(l)); v != "" {
			return v
		}
	}
	return fallback
}

// IsEmpty reports whether no locale carries a value.
func (t *Text) IsEmpty() bool {
	return t.Pick(Default, "") == ""
}
