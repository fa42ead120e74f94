package blog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"darimmo.ma/darimmo-web/internal/i18n"
	"darimmo.ma/darimmo-web/internal/listings"
)

// ErrNotFound is returned when a post cannot be located.
var ErrNotFound = errors.New("blog: not found")

const defaultPerPage = 9

// Client provides read-only access to the blog endpoints of the content API.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// NewClient constructs a Client. An empty baseURL serves the built-in
// fallback posts.
func NewClient(baseURL string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: 5 * time.Second},
		log:     log,
	}
}

// ListOptions controls blog collection requests.
type ListOptions struct {
	Search   string
	Category string
	Page     int
	PerPage  int
}

// List returns a page of posts plus pagination meta, degrading to the
// fallback posts on failure. The category literal "all" means no filter.
func (c *Client) List(ctx context.Context, opts ListOptions) ([]Post, listings.Meta) {
	if opts.PerPage <= 0 {
		opts.PerPage = defaultPerPage
	}
	if opts.Page < 1 {
		opts.Page = 1
	}
	if strings.EqualFold(opts.Category, "all") {
		opts.Category = ""
	}
	if c == nil || c.baseURL == "" {
		return fallbackPostList(opts)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/posts", nil)
	if err != nil {
		c.log.Warn("blog: build list request", zap.Error(err))
		return fallbackPostList(opts)
	}
	q := req.URL.Query()
	if opts.Search != "" {
		q.Set("search", opts.Search)
	}
	if opts.Category != "" {
		q.Set("category", opts.Category)
	}
	q.Set("page", strconv.Itoa(opts.Page))
	q.Set("perPage", strconv.Itoa(opts.PerPage))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("blog: list request", zap.Error(err))
		return fallbackPostList(opts)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		c.log.Warn("blog: list status", zap.Int("status", resp.StatusCode))
		return fallbackPostList(opts)
	}

	var env listEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.log.Warn("blog: decode list", zap.Error(err))
		return fallbackPostList(opts)
	}
	items, meta := env.resolve()
	posts := make([]Post, 0, len(items))
	for _, raw := range items {
		posts = append(posts, raw.toPost())
	}
	m := listings.Meta{Total: len(posts), CurrentPage: opts.Page, LastPage: 1}
	if meta != nil {
		m = *meta
	}
	return posts, m
}

// Get retrieves a single post by slug.
func (c *Client) Get(ctx context.Context, slug string) (*Post, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrNotFound
	}
	if c == nil || c.baseURL == "" {
		return fallbackPost(slug)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/posts/"+url.PathEscape(slug), nil)
	if err != nil {
		c.log.Warn("blog: build detail request", zap.Error(err))
		return fallbackPost(slug)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("blog: detail request", zap.Error(err))
		return fallbackPost(slug)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return fallbackPost(slug)
	}
	if resp.StatusCode >= 400 {
		c.log.Warn("blog: detail status", zap.Int("status", resp.StatusCode))
		return fallbackPost(slug)
	}

	var env itemEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.log.Warn("blog: decode detail", zap.Error(err))
		return fallbackPost(slug)
	}
	raw := env.resolve()
	if raw == nil {
		return fallbackPost(slug)
	}
	p := raw.toPost()
	return &p, nil
}

// Envelope shapes mirror the listings API: nested `data` or flat.
type listEnvelope struct {
	Data  *listPayload   `json:"data"`
	Items []rawPost      `json:"items"`
	Meta  *listings.Meta `json:"meta"`
}

type listPayload struct {
	Items []rawPost      `json:"items"`
	Meta  *listings.Meta `json:"meta"`
}

func (e *listEnvelope) resolve() ([]rawPost, *listings.Meta) {
	if e.Data != nil {
		return e.Data.Items, e.Data.Meta
	}
	return e.Items, e.Meta
}

type itemEnvelope struct {
	Data *itemPayload `json:"data"`
	Item *rawPost     `json:"item"`
}

type itemPayload struct {
	Item *rawPost `json:"item"`
}

func (e *itemEnvelope) resolve() *rawPost {
	if e.Data != nil {
		return e.Data.Item
	}
	return e.Item
}

type rawPost struct {
	Slug            string     `json:"slug"`
	Title           *i18n.Text `json:"title"`
	Excerpt         *i18n.Text `json:"excerpt"`
	Content         *i18n.Text `json:"content"`
	MetaTitle       *i18n.Text `json:"metaTitle"`
	MetaDescription *i18n.Text `json:"metaDescription"`
	Image           string     `json:"image"`
	Category        string     `json:"category"`
	Tags            []string   `json:"tags"`
	Author          string     `json:"author"`
	PublishedAt     *time.Time `json:"publishedAt"`
	UpdatedAt       *time.Time `json:"updatedAt"`
}

func (r rawPost) toPost() Post {
	p := Post{
		Slug:            r.Slug,
		Title:           r.Title,
		Excerpt:         r.Excerpt,
		Content:         r.Content,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		Image:           r.Image,
		Category:        strings.ToLower(strings.TrimSpace(r.Category)),
		Tags:            append([]string(nil), r.Tags...),
		Author:          r.Author,
	}
	if r.PublishedAt != nil {
		p.PublishedAt = *r.PublishedAt
	}
	if r.UpdatedAt != nil {
		p.UpdatedAt = *r.UpdatedAt
	} else {
		p.UpdatedAt = p.PublishedAt
	}
	return p
}
