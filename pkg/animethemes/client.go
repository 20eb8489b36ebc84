// Package animethemes provides a typed client for the AnimeThemes.moe REST API.
//
// A zero-value configuration talks to the public staging API:
//
//	client := animethemes.New()
//	result, err := client.Search(ctx, "Bakemonogatari")
//
// Every operation performs a single HTTP GET and decodes the JSON response
// into a typed result. Results are plain snapshots of one response; the
// client keeps no state between calls beyond its HTTP transport.
package animethemes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the API location used when no override is given.
	DefaultBaseURL = "https://staging.animethemes.moe/api"

	defaultUserAgent = "go-animethemes (github.com/varoOP/go-animethemes)"
	defaultTimeout   = 30 * time.Second

	// The API caps response sizes well below this, anything larger is a
	// misbehaving upstream.
	maxResponseBytes = 8 << 20
)

// Client issues requests against one AnimeThemes API location. It is
// immutable after New and safe for concurrent use.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
	log       zerolog.Logger
}

// Option configures a Client during New.
type Option func(*Client)

// WithBaseURL points the client at a different API location, e.g. a
// self-hosted instance or https://animethemes.dev/api.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient replaces the underlying HTTP client, for example to inject
// a caching or instrumented transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithLogger attaches a zerolog logger. The default is a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log.With().Str("module", "animethemes").Logger() }
}

// WithRateLimit replaces the request limiter. Pass nil to disable client-side
// rate limiting entirely.
func WithRateLimit(l *rate.Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

// New creates a Client. Without options it targets DefaultBaseURL with a
// 30 second timeout and a limiter of one request per second, comfortably
// inside the API's published quota.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: defaultUserAgent,
		http:      &http.Client{Timeout: defaultTimeout},
		limiter:   rate.NewLimiter(rate.Every(time.Second), 1),
		log:       zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL returns the API location the client is configured for.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// get requests an API endpoint relative to the base URL and decodes the
// response into v.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values, v interface{}) error {
	u := c.baseURL + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	return c.getURL(ctx, u, endpoint, v)
}

// FollowLink fetches an absolute URL previously returned by the API, such as
// a pagination link, and decodes the response into dst. Page types use this
// through their Next methods; it is exported so callers can follow the
// first/prev/last links as well.
func (c *Client) FollowLink(ctx context.Context, link string, dst interface{}) error {
	u, err := url.Parse(link)
	if err != nil {
		return errors.Wrapf(err, "invalid link %q", link)
	}

	return c.getURL(ctx, link, u.Path, dst)
}

func (c *Client) getURL(ctx context.Context, u, endpoint string, v interface{}) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return errors.Wrap(err, "waiting for rate limiter")
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return errors.Wrapf(err, "building request for %s", endpoint)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.log.Debug().Str("url", u).Msg("GET")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "requesting %s", endpoint)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errors.Wrapf(err, "reading response from %s", endpoint)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.log.Debug().Int("status", resp.StatusCode).Str("endpoint", endpoint).Msg("API error")
		return &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Endpoint:   endpoint,
			Body:       truncateBody(body),
		}
	}

	if err := json.Unmarshal(body, v); err != nil {
		return &ParseError{Endpoint: endpoint, Err: err}
	}

	if p, ok := v.(clientSetter); ok {
		p.setClient(c)
	}

	return nil
}

// truncateBody keeps error payloads readable when the server answers a
// failure with a full HTML page.
func truncateBody(body []byte) string {
	const max = 512
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
