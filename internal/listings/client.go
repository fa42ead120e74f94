package listings

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
)

// ErrNotFound is returned when a listing cannot be located.
var ErrNotFound = errors.New("listings: not found")

const defaultPerPage = 12

// Client provides read-only access to the listings API.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// NewClient constructs a Client. An empty baseURL serves the built-in
// fallback dataset, which keeps pages rendering when the API is down or in
// local development.
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

// ListOptions controls listing collection requests. Zero values are omitted
// from the upstream query.
type ListOptions struct {
	Focus        Focus
	Location     string
	PropertyType string
	CheckIn      string
	CheckOut     string
	PriceMin     string
	PriceMax     string
	Page         int
	PerPage      int
}

// List returns a page of properties plus pagination meta. Transport and
// decode failures degrade to the fallback dataset rather than erroring.
func (c *Client) List(ctx context.Context, opts ListOptions) ([]Property, Meta) {
	if opts.PerPage <= 0 {
		opts.PerPage = defaultPerPage
	}
	if opts.Page < 1 {
		opts.Page = 1
	}
	if c == nil || c.baseURL == "" {
		return fallbackList(opts)
	}

	req, err := c.newRequest(ctx, "properties")
	if err != nil {
		c.log.Warn("listings: build list request", zap.Error(err))
		return fallbackList(opts)
	}
	q := req.URL.Query()
	if opts.Focus != "" && opts.Focus != FocusAll {
		q.Set("category", string(opts.Focus))
	}
	if opts.Location != "" {
		q.Set("location", opts.Location)
	}
	if opts.PropertyType != "" {
		q.Set("propertyType", opts.PropertyType)
	}
	if opts.CheckIn != "" {
		q.Set("checkIn", opts.CheckIn)
	}
	if opts.CheckOut != "" {
		q.Set("checkOut", opts.CheckOut)
	}
	if opts.PriceMin != "" {
		q.Set("priceMin", opts.PriceMin)
	}
	if opts.PriceMax != "" {
		q.Set("priceMax", opts.PriceMax)
	}
	q.Set("page", strconv.Itoa(opts.Page))
	q.Set("perPage", strconv.Itoa(opts.PerPage))
	req.URL.RawQuery = q.Encode()

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("listings: list request", zap.Error(err))
		return fallbackList(opts)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		c.log.Warn("listings: list status", zap.Int("status", resp.StatusCode))
		return fallbackList(opts)
	}

	var env listEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.log.Warn("listings: decode list", zap.Error(err))
		return fallbackList(opts)
	}
	items, meta := env.resolve()
	props := make([]Property, 0, len(items))
	for _, raw := range items {
		props = append(props, raw.toProperty())
	}
	m := Meta{Total: len(props), CurrentPage: opts.Page, LastPage: 1}
	if meta != nil {
		m = *meta
	}
	return props, m
}

// Get retrieves a single property by id. Remote misses fall through to the
// fallback dataset before reporting ErrNotFound.
func (c *Client) Get(ctx context.Context, id string) (*Property, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrNotFound
	}
	if c == nil || c.baseURL == "" {
		return fallbackGet(id)
	}

	req, err := c.newRequest(ctx, "properties/"+url.PathEscape(id))
	if err != nil {
		c.log.Warn("listings: build detail request", zap.Error(err))
		return fallbackGet(id)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("listings: detail request", zap.Error(err))
		return fallbackGet(id)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return fallbackGet(id)
	}
	if resp.StatusCode >= 400 {
		c.log.Warn("listings: detail status", zap.Int("status", resp.StatusCode))
		return fallbackGet(id)
	}

	var env itemEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.log.Warn("listings: decode detail", zap.Error(err))
		return fallbackGet(id)
	}
	raw := env.resolve()
	if raw == nil {
		return fallbackGet(id)
	}
	p := raw.toProperty()
	return &p, nil
}

func (c *Client) newRequest(ctx context.Context, path string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// The API historically shipped both `{data:{items,meta}}` and flat
// `{items,meta}` layouts. Both are accepted here, at the decode boundary,
// so call sites never see the difference.
type listEnvelope struct {
	Data  *listPayload  `json:"data"`
	Items []rawProperty `json:"items"`
	Meta  *Meta         `json:"meta"`
}

type listPayload struct {
	Items []rawProperty `json:"items"`
	Meta  *Meta         `json:"meta"`
}

func (e *listEnvelope) resolve() ([]rawProperty, *Meta) {
	if e.Data != nil {
		return e.Data.Items, e.Data.Meta
	}
	return e.Items, e.Meta
}

type itemEnvelope struct {
	Data *itemPayload `json:"data"`
	Item *rawProperty `json:"item"`
}

type itemPayload struct {
	Item *rawProperty `json:"item"`
}

func (e *itemEnvelope) resolve() *rawProperty {
	if e.Data != nil {
		return e.Data.Item
	}
	return e.Item
}

type rawProperty struct {
	ID           string     `json:"id"`
	Title        *i18n.Text `json:"title"`
	Description  *i18n.Text `json:"description"`
	City         string     `json:"city"`
	Neighborhood string     `json:"neighborhood"`
	PropertyType string     `json:"propertyType"`
	Category     string     `json:"category"`
	Price        float64    `json:"price"`
	Currency     string     `json:"currency"`
	Bedrooms     int        `json:"bedrooms"`
	Bathrooms    int        `json:"bathrooms"`
	AreaSqM      float64    `json:"areaSqM"`
	Images       []string   `json:"images"`
	Available    *bool      `json:"available"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (r rawProperty) toProperty() Property {
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	return Property{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		City:         r.City,
		Neighborhood: r.Neighborhood,
		PropertyType: strings.ToLower(strings.TrimSpace(r.PropertyType)),
		Category:     ParseFocus(r.Category),
		Price:        r.Price,
		Currency:     strings.ToUpper(strings.TrimSpace(r.Currency)),
		Bedrooms:     r.Bedrooms,
		Bathrooms:    r.Bathrooms,
		AreaSqM:      r.AreaSqM,
		Images:       append([]string(nil), r.Images...),
		Available:    available,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
