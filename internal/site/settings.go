// Package site fetches the agency-wide settings that drive the header,
// footer, contact blocks, and the site-wide listing focus.
package site

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"darimmo.ma/darimmo-web/internal/listings"
)

// Settings is the agency profile served by the settings endpoint.
type Settings struct {
	SiteName    string
	LogoURL     string
	Focus       listings.Focus
	Email       string
	Phone       string
	WhatsApp    string
	Address     string
	SocialLinks []SocialLink
	UpdatedAt   time.Time
}

// SocialLink is one entry of the footer social bar.
type SocialLink struct {
	Network string
	URL     string
}

// ErrNotFound indicates the settings endpoint had nothing for us.
var ErrNotFound = errors.New("site: not found")

// Client fetches settings from the API with a local fallback profile.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a settings client. When baseURL is empty the client
// exclusively serves the fallback profile.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

var (
	cacheMu       sync.RWMutex
	settingsCache *settingsCacheEntry
	cacheTTL      = 5 * time.Minute
)

type settingsCacheEntry struct {
	settings Settings
	expires  time.Time
}

// SetCacheTTL configures the cache duration (primarily for tests).
func SetCacheTTL(d time.Duration) {
	if d <= 0 {
		d = time.Minute
	}
	cacheMu.Lock()
	cacheTTL = d
	settingsCache = nil
	cacheMu.Unlock()
}

// Fetch returns the current settings, prioritizing cached values, then
// remote data, and finally the fallback profile. It never fails.
func (c *Client) Fetch(ctx context.Context) Settings {
	if s, ok := cached(); ok {
		return s
	}
	var s Settings
	var err error
	if c != nil && c.baseURL != "" {
		s, err = c.fetchRemote(ctx)
		if err != nil {
			s = Settings{}
		}
	}
	if s.SiteName == "" {
		s = fallbackSettings()
	}
	store(s)
	return s
}

func (c *Client) fetchRemote(ctx context.Context) (Settings, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/settings", nil)
	if err != nil {
		return Settings{}, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return Settings{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return Settings{}, ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return Settings{}, fmt.Errorf("site: remote status %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return Settings{}, err
	}
	raw := env.resolve()
	if raw == nil {
		return Settings{}, ErrNotFound
	}
	return raw.toSettings(), nil
}

// The settings endpoint shares the API's nested-or-flat envelope.
type envelope struct {
	Data *payload     `json:"data"`
	Item *rawSettings `json:"item"`
}

type payload struct {
	Item *rawSettings `json:"item"`
}

func (e *envelope) resolve() *rawSettings {
	if e.Data != nil {
		return e.Data.Item
	}
	return e.Item
}

type rawSettings struct {
	SiteName    string          `json:"siteName"`
	LogoURL     string          `json:"logoUrl"`
	Focus       string          `json:"websiteFocus"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	WhatsApp    string          `json:"whatsapp"`
	Address     string          `json:"address"`
	SocialLinks []rawSocialLink `json:"socialLinks"`
	UpdatedAt   *time.Time      `json:"updatedAt"`
}

type rawSocialLink struct {
	Network string `json:"network"`
	URL     string `json:"url"`
}

func (r rawSettings) toSettings() Settings {
	s := Settings{
		SiteName: strings.TrimSpace(r.SiteName),
		LogoURL:  strings.TrimSpace(r.LogoURL),
		Focus:    listings.ParseFocus(r.Focus),
		Email:    strings.TrimSpace(r.Email),
		Phone:    strings.TrimSpace(r.Phone),
		WhatsApp: strings.TrimSpace(r.WhatsApp),
		Address:  strings.TrimSpace(r.Address),
	}
	for _, l := range r.SocialLinks {
		if l.URL == "" {
			continue
		}
		s.SocialLinks = append(s.SocialLinks, SocialLink{Network: strings.ToLower(l.Network), URL: l.URL})
	}
	if r.UpdatedAt != nil {
		s.UpdatedAt = *r.UpdatedAt
	}
	return s
}

func fallbackSettings() Settings {
	return Settings{
		SiteName: "Darimmo",
		LogoURL:  "/assets/img/logo.svg",
		Focus:    listings.FocusAll,
		Email:    "contact@darimmo.ma",
		Phone:    "+212 5 22 00 00 00",
		WhatsApp: "+212 6 00 00 00 00",
		Address:  "12 Boulevard d'Anfa, Casablanca",
		SocialLinks: []SocialLink{
			{Network: "instagram", URL: "https://www.instagram.com/darimmo"},
			{Network: "facebook", URL: "https://www.facebook.com/darimmo"},
		},
	}
}

func cached() (Settings, bool) {
	cacheMu.RLock()
	defer cacheMu.RUnlock()
	if settingsCache == nil || time.Now().After(settingsCache.expires) {
		return Settings{}, false
	}
	return cloneSettings(settingsCache.settings), true
}

func store(s Settings) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	settingsCache = &settingsCacheEntry{settings: cloneSettings(s), expires: time.Now().Add(cacheTTL)}
}

func cloneSettings(s Settings) Settings {
	cp := s
	if s.SocialLinks != nil {
		cp.SocialLinks = append([]SocialLink(nil), s.SocialLinks...)
	}
	return cp
}
