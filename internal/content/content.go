// Package content serves localized static pages (about, legal, join-us copy)
// from the remote content API, falling back to local markdown files with YAML
// front matter when the API is unreachable or unconfigured.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"darimmo.ma/darimmo-web/internal/i18n"
)

// ErrNotFound is returned when a page cannot be located anywhere.
var ErrNotFound = errors.New("content: not found")

// Page is a localized static page.
type Page struct {
	Kind          string
	Slug          string
	Locale        i18n.Locale
	Title         string
	Summary       string
	Body          string
	Format        string // "markdown" (default) or "html"
	EffectiveDate time.Time
	UpdatedAt     time.Time
	Version       string
	SEO           PageSEO
}

// PageSEO holds optional metadata overrides for static pages.
type PageSEO struct {
	Title       string
	Description string
	OGImage     string
}

const (
	defaultFormat     = "markdown"
	defaultContentDir = "content"
)

var pageCache = struct {
	mu    sync.RWMutex
	items map[string]cacheEntry
	ttl   time.Duration
}{
	items: map[string]cacheEntry{},
	ttl:   5 * time.Minute,
}

type cacheEntry struct {
	page    Page
	expires time.Time
}

// SetCacheDuration overrides the in-memory cache duration (primarily for tests).
func SetCacheDuration(d time.Duration) {
	if d <= 0 {
		d = time.Minute
	}
	pageCache.mu.Lock()
	pageCache.ttl = d
	pageCache.items = map[string]cacheEntry{}
	pageCache.mu.Unlock()
}

// Client reads static pages from the content API.
type Client struct {
	baseURL    string
	http       *http.Client
	contentDir string
}

// NewClient constructs a Client; an empty baseURL serves local files only.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:       &http.Client{Timeout: 5 * time.Second},
		contentDir: defaultContentDir,
	}
}

// SetContentDir configures the fallback directory for markdown pages.
func (c *Client) SetContentDir(dir string) {
	if c == nil {
		return
	}
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = defaultContentDir
	}
	c.contentDir = dir
}

// GetPage fetches a localized static page, consulting the remote API when
// configured, otherwise falling back to local markdown.
func (c *Client) GetPage(ctx context.Context, kind, slug string, locale i18n.Locale) (Page, error) {
	kind = strings.TrimSpace(strings.ToLower(kind))
	if kind == "" {
		kind = "pages"
	}
	slug = sanitizeSlug(slug)
	if slug == "" {
		return Page{}, ErrNotFound
	}
	if !i18n.IsSupported(locale) {
		locale = i18n.Default
	}

	cacheKey := strings.Join([]string{kind, string(locale), slug}, "|")
	if page, ok := cachedPage(cacheKey); ok {
		return page, nil
	}

	page, err := c.fetchPage(ctx, kind, slug, locale)
	if err != nil {
		return Page{}, err
	}
	storePage(cacheKey, page)
	return page, nil
}

func (c *Client) fetchPage(ctx context.Context, kind, slug string, locale i18n.Locale) (Page, error) {
	if c != nil && c.baseURL != "" {
		if page, err := c.fetchRemote(ctx, kind, slug, locale); err == nil {
			return page, nil
		}
	}
	dir := defaultContentDir
	if c != nil && c.contentDir != "" {
		dir = c.contentDir
	}
	return fallbackPage(dir, kind, slug, locale)
}

func (c *Client) fetchRemote(ctx context.Context, kind, slug string, locale i18n.Locale) (Page, error) {
	endpoint, err := url.JoinPath(c.baseURL, "content", kind, slug)
	if err != nil {
		return Page{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Page{}, err
	}
	q := req.URL.Query()
	q.Set("lang", string(locale))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Page{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return Page{}, ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return Page{}, fmt.Errorf("content: remote status %d", resp.StatusCode)
	}

	var payload struct {
		Kind          string    `json:"kind"`
		Slug          string    `json:"slug"`
		Lang          string    `json:"lang"`
		Title         string    `json:"title"`
		Summary       string    `json:"summary"`
		Body          string    `json:"body"`
		Format        string    `json:"format"`
		EffectiveDate time.Time `json:"effective_date"`
		UpdatedAt     time.Time `json:"updated_at"`
		Version       string    `json:"version"`
		SEO           struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			OGImage     string `json:"og_image"`
		} `json:"seo"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Page{}, err
	}
	if strings.TrimSpace(payload.Body) == "" {
		return Page{}, fmt.Errorf("content: empty body for %s/%s", kind, slug)
	}
	page := Page{
		Kind:          kind,
		Slug:          slug,
		Locale:        locale,
		Title:         payload.Title,
		Summary:       payload.Summary,
		Body:          payload.Body,
		Format:        firstNonEmpty(payload.Format, defaultFormat),
		EffectiveDate: payload.EffectiveDate,
		UpdatedAt:     payload.UpdatedAt,
		Version:       payload.Version,
		SEO: PageSEO{
			Title:       payload.SEO.Title,
			Description: payload.SEO.Description,
			OGImage:     payload.SEO.OGImage,
		},
	}
	return page, nil
}

// fallbackPage walks the locale priority chain: requested, then the default
// locale, then English.
func fallbackPage(contentDir, kind, slug string, locale i18n.Locale) (Page, error) {
	priority := []i18n.Locale{locale}
	if locale != i18n.Default {
		priority = append(priority, i18n.Default)
	}
	if locale != i18n.EN {
		priority = append(priority, i18n.EN)
	}
	for _, candidate := range priority {
		page, err := readMarkdown(contentDir, kind, slug, candidate)
		if err == nil {
			return page, nil
		}
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, ErrNotFound) {
			continue
		}
		return Page{}, err
	}
	return Page{}, ErrNotFound
}

type frontMatter struct {
	Title         string `yaml:"title"`
	Summary       string `yaml:"summary"`
	Format        string `yaml:"format"`
	EffectiveDate string `yaml:"effective_date"`
	UpdatedAt     string `yaml:"updated_at"`
	Version       string `yaml:"version"`
	SEO           struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
		OGImage     string `yaml:"og_image"`
	} `yaml:"seo"`
}

func readMarkdown(contentDir, kind, slug string, locale i18n.Locale) (Page, error) {
	file := filepath.Join(contentDir, kind, string(locale), slug+".md")
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Page{}, ErrNotFound
		}
		return Page{}, err
	}
	fm, body := splitFrontMatter(string(data))
	front := frontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Page{}, fmt.Errorf("content: parse front matter %s: %w", file, err)
		}
	}
	page := Page{
		Kind:    kind,
		Slug:    slug,
		Locale:  locale,
		Title:   strings.TrimSpace(front.Title),
		Summary: strings.TrimSpace(front.Summary),
		Body:    body,
		Format:  firstNonEmpty(strings.TrimSpace(front.Format), defaultFormat),
		Version: strings.TrimSpace(front.Version),
		SEO: PageSEO{
			Title:       strings.TrimSpace(front.SEO.Title),
			Description: strings.TrimSpace(front.SEO.Description),
			OGImage:     strings.TrimSpace(front.SEO.OGImage),
		},
	}
	page.EffectiveDate = parseDate(front.EffectiveDate)
	page.UpdatedAt = parseDate(front.UpdatedAt)
	if page.UpdatedAt.IsZero() {
		if info, err := os.Stat(file); err == nil {
			page.UpdatedAt = info.ModTime()
		}
	}
	if page.Title == "" {
		page.Title = prettifySlug(slug)
	}
	return page, nil
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func parseDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006/01/02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func prettifySlug(slug string) string {
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		if runes[0] >= 'a' && runes[0] <= 'z' {
			runes[0] -= 'a' - 'A'
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

func sanitizeSlug(slug string) string {
	slug = strings.TrimSpace(strings.ToLower(slug))
	slug = strings.Trim(slug, "/")
	if slug == "" || strings.Contains(slug, "..") || strings.ContainsRune(slug, os.PathSeparator) {
		return ""
	}
	return slug
}

func cachedPage(key string) (Page, bool) {
	pageCache.mu.RLock()
	entry, ok := pageCache.items[key]
	pageCache.mu.RUnlock()
	if !ok || time.Now().After(entry.expires) {
		return Page{}, false
	}
	return entry.page, true
}

func storePage(key string, page Page) {
	pageCache.mu.Lock()
	defer pageCache.mu.Unlock()
	pageCache.items[key] = cacheEntry{page: page, expires: time.Now().Add(pageCache.ttl)}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
