package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	pkgLog "wardrobe-planner/pkg/log"
)

// APIPrefix is prepended to every endpoint path.
const APIPrefix = "/api"

// TokenSource supplies the bearer token for outgoing requests. An empty
// string means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed TokenSource.
type StaticToken string

// Token implements TokenSource.
func (t StaticToken) Token() string { return string(t) }

// Client is the generic HTTP wrapper every resource call goes through.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	limiter    *rate.Limiter
	l          pkgLog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTokenSource sets where bearer tokens come from.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithRateLimit throttles outgoing requests. Requests wait for a slot; none
// are dropped. perSecond <= 0 disables the limiter.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithLogger sets the logger.
func WithLogger(l pkgLog.Logger) Option {
	return func(c *Client) { c.l = l }
}

// New creates a Client for the backend rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		l:          pkgLog.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// Request describes one call. Body may be nil, a *Form (multipart), an
// io.Reader (sent as is), url.Values (form-encoded) or any other value, which
// is encoded as JSON.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   any
}

// Do issues req and decodes a non-null result into out. A null result leaves
// out untouched; use Request when the caller needs to tell the two apart.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	raw, err := c.Request(ctx, req)
	if err != nil {
		return err
	}
	if raw == nil || out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", req.method(), req.Path, err)
	}
	return nil
}

// Request issues req and returns the raw JSON body. It returns nil for 204,
// for an empty body and for a 2xx body that is not valid JSON. Any non-2xx
// status yields an *Error. Nothing is retried.
func (c *Client) Request(ctx context.Context, req Request) (json.RawMessage, error) {
	method := req.method()

	httpReq, err := c.build(ctx, method, req)
	if err != nil {
		return nil, err
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter %s %s: %w", method, req.Path, err)
		}
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.l.Warnf(ctx, "apiclient: %s %s failed: %v", method, req.Path, err)
		return nil, fmt.Errorf("failed to call %s %s: %w", method, req.Path, err)
	}
	defer resp.Body.Close()

	c.l.Debugf(ctx, "apiclient: %s %s -> %d", method, req.Path, resp.StatusCode)

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s %s response: %w", method, req.Path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newError(resp, raw)
		c.l.Warnf(ctx, "apiclient: %s %s rejected (%d): %s", method, req.Path, resp.StatusCode, apiErr.Message)
		return nil, apiErr
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || !json.Valid(trimmed) || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	return json.RawMessage(trimmed), nil
}

func (r Request) method() string {
	if r.Method == "" {
		return http.MethodGet
	}
	return r.Method
}

func (c *Client) build(ctx context.Context, method string, req Request) (*http.Request, error) {
	header := http.Header{}
	for k, v := range req.Header {
		header[k] = append([]string(nil), v...)
	}

	// An explicit Authorization header wins over the token source.
	if header.Get("Authorization") == "" && c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			header.Set("Authorization", "Bearer "+tok)
		}
	}

	body, err := encodeBody(req.Body, header)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s %s body: %w", method, req.Path, err)
	}

	target := c.baseURL + APIPrefix + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s %s request: %w", method, req.Path, err)
	}
	httpReq.Header = header
	return httpReq, nil
}

// encodeBody turns body into a reader and fixes up the Content-Type header.
func encodeBody(body any, header http.Header) (io.Reader, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case *Form:
		// The form owns its boundary; a caller-supplied type would break it.
		r, contentType, err := b.encode()
		if err != nil {
			return nil, err
		}
		header.Set("Content-Type", contentType)
		return r, nil
	case io.Reader:
		return b, nil
	case url.Values:
		if header.Get("Content-Type") == "" {
			header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
		return strings.NewReader(b.Encode()), nil
	default:
		if header.Get("Content-Type") == "" {
			header.Set("Content-Type", "application/json")
		}
		data, err := json.Marshal(b)
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(data), nil
	}
}
