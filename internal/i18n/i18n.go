package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Bundle holds the UI translation dictionaries loaded from locales/*.json.
type Bundle struct {
	dict map[Locale]map[string]string
}

// Load reads one JSON dictionary per supported locale from dir. The default
// locale must load; other files may be missing.
func Load(dir string) (*Bundle, error) {
	b := &Bundle{dict: map[Locale]map[string]string{}}
	for _, l := range Supported {
		path := filepath.Join(dir, string(l)+".json")
		raw, err := os.ReadFile(path)
		if err != nil {
			if l == Default {
				return nil, fmt.Errorf("load locale %s: %w", l, err)
			}
			continue
		}
		var m map[string]string
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", l, err)
		}
		b.dict[l] = m
	}
	if _, ok := b.dict[Default]; !ok {
		return nil, fmt.Errorf("default locale %s not loaded", Default)
	}
	return b, nil
}

// T returns the translation for key in locale, falling back to the default
// locale and finally the key itself.
func (b *Bundle) T(locale Locale, key string) string {
	if b != nil {
		if m, ok := b.dict[locale]; ok {
			if v, ok := m[key]; ok {
				return v
			}
		}
		if m, ok := b.dict[Default]; ok {
			if v, ok := m[key]; ok {
				return v
			}
		}
	}
	return key
}
