package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-faster/errors"
)

const (
	// DefaultURL is the public demo listing the application starts with.
	DefaultURL = "https://fakestoreapi.com/products"

	userAgent = "shelf/0.1 (https://github.com/llehouerou/shelf)"
)

// Fetcher loads the full product collection.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Item, error)
}

// Client fetches the catalogue with a single GET request.
type Client struct {
	url        string
	userAgent  string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout bounds the whole request. Zero leaves the request unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// New creates a client for the listing endpoint at url.
func New(url string, opts ...Option) *Client {
	if url == "" {
		url = DefaultURL
	}
	c := &Client{
		url:        url,
		userAgent:  userAgent,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the endpoint the client reads from.
func (c *Client) URL() string {
	return c.url
}

// Fetch requests the listing and decodes it. Every failure is a *FetchError.
func (c *Client) Fetch(ctx context.Context) ([]Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, http.NoBody)
	if err != nil {
		return nil, c.fail(0, errors.Wrap(err, "create request"))
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail(0, errors.Wrap(err, "http request"))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.fail(resp.StatusCode, errors.Errorf("unexpected status: %s", resp.Status))
	}

	var items []Item
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, c.fail(resp.StatusCode, errors.Wrap(err, "decode response"))
	}

	if err := validate(items); err != nil {
		return nil, c.fail(resp.StatusCode, err)
	}

	if items == nil {
		items = []Item{}
	}
	return items, nil
}

func (c *Client) fail(status int, err error) error {
	return &FetchError{URL: c.url, StatusCode: status, Err: err}
}

func validate(items []Item) error {
	for _, it := range items {
		if it.Price.IsNegative() {
			return errors.Errorf("item %d: negative price %s", it.ID, it.Price)
		}
	}
	return nil
}
