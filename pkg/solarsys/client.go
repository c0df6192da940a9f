package solarsys

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/solarsys/pkg/observability"
)

// DefaultBaseURL is the bodies collection endpoint of the public API.
const DefaultBaseURL = "https://api.le-systeme-solaire.net/rest/bodies/"

// RequestIDHeader carries the per-request correlation ID.
const RequestIDHeader = "X-Request-ID"

// Client fetches bodies from the API. Each method performs exactly one
// HTTP GET; nothing is retried or cached.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	logger     *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the collection endpoint. An empty value is ignored.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option { return func(c *Client) { c.userAgent = ua } }

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a client for the default endpoint unless overridden.
// The default *http.Client has no timeout; callers cancel through ctx.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
		userAgent:  "solarsys",
		logger:     log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BuildURL returns the collection endpoint when id is empty, or the
// endpoint with id appended as a single path segment otherwise. The id is
// escaped but not validated; unknown ids are rejected by the server.
func (c *Client) BuildURL(id string) string {
	if id == "" {
		return c.baseURL
	}
	return strings.TrimSuffix(c.baseURL, "/") + "/" + url.PathEscape(id)
}

// ListBodies fetches and decodes the whole catalog.
func (c *Client) ListBodies(ctx context.Context) ([]CelestialBody, error) {
	u := c.BuildURL("")
	data, err := c.fetch(ctx, u)
	if err != nil {
		return nil, err
	}
	bodies, err := DecodeList(data)
	if err != nil {
		return nil, withURL(err, u)
	}
	c.logger.Debug("decoded bodies", "count", len(bodies))
	return bodies, nil
}

// GetBody fetches and decodes one body by identifier. The identifier is sent
// as is; the server decides whether it names a body.
func (c *Client) GetBody(ctx context.Context, id string) (*CelestialBody, error) {
	u := c.BuildURL(id)
	data, err := c.fetch(ctx, u)
	if err != nil {
		return nil, err
	}
	b, err := DecodeBody(data)
	if err != nil {
		return nil, withURL(err, u)
	}
	c.logger.Debug("decoded body", "id", b.ID)
	return b, nil
}

// fetch performs a single GET and returns the full body of a 2xx response.
func (c *Client) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &TransportError{Op: http.MethodGet, URL: rawURL, Err: err}
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(RequestIDHeader, reqID)

	host, path := req.URL.Host, req.URL.Path
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, http.MethodGet, host, path)
	c.logger.Debug("GET", "url", rawURL, "request_id", reqID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		hooks.OnError(ctx, http.MethodGet, host, path, err)
		return nil, &TransportError{Op: http.MethodGet, URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	duration := time.Since(start)
	if err != nil {
		hooks.OnError(ctx, http.MethodGet, host, path, err)
		return nil, &TransportError{Op: http.MethodGet, URL: rawURL, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}
	hooks.OnResponse(ctx, http.MethodGet, host, path, resp.StatusCode, duration)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{
			Op:         http.MethodGet,
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w %s", ErrUnexpectedStatus, resp.Status),
		}
	}
	return data, nil
}

func withURL(err error, u string) error {
	var de *DecodeError
	if errors.As(err, &de) && de.URL == "" {
		de.URL = u
	}
	return err
}
