// Package yapi is an HTTP client for the YAPI interface-documentation
// registry. Every call issues exactly one GET against the registry,
// authenticated with a static bearer token carried both as an
// Authorization header and as a token query parameter.
package yapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// ErrInvalidResponse indicates the registry answered with a body that
// is missing an expected field. It usually means the registry's
// contract changed underneath the adapter.
var ErrInvalidResponse = errors.New("invalid response format from registry")

// Client calls the registry's HTTP API.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
	logger  *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client. The default is
// http.DefaultClient; no timeout is imposed beyond its own.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// WithLogger sets the diagnostic logger that receives raw response
// dumps. The default discards them.
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a registry client. baseURL may be empty for
// relative resolution; token must be the registry's project token.
func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   http.DefaultClient,
		logger:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get issues one GET to <baseURL><path> with the token merged into the
// query and returns the raw body. No retries.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	q := url.Values{}
	for k, vs := range params {
		q[k] = vs
	}
	q.Set("token", c.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("GET %s: unexpected status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("GET %s: read body: %w", path, err)
	}
	return body, nil
}

// ListInterfaces fetches the interface list for a project and maps each
// entry into the adapter's vocabulary, preserving order. A missing
// data.list member is an ErrInvalidResponse; a present but non-array
// list degrades to an empty result.
func (c *Client) ListInterfaces(ctx context.Context, projectID int64) ([]Interface, error) {
	params := url.Values{}
	params.Set("project_id", strconv.FormatInt(projectID, 10))

	body, err := c.get(ctx, "/api/interface/list", params)
	if err != nil {
		return nil, err
	}

	// Raw dump goes to the diagnostic stream before any validation.
	c.logger.Printf("yapi /api/interface/list raw response: %s", body)

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	if len(env.Data) == 0 {
		return nil, fmt.Errorf("%w: missing data.list", ErrInvalidResponse)
	}

	var ld listData
	if err := json.Unmarshal(env.Data, &ld); err != nil {
		return nil, fmt.Errorf("%w: missing data.list", ErrInvalidResponse)
	}
	if ld.List == nil {
		return nil, fmt.Errorf("%w: missing data.list", ErrInvalidResponse)
	}

	var raws []rawInterface
	if err := json.Unmarshal(ld.List, &raws); err != nil {
		// The registry has been seen answering with a non-array list.
		// Treat it as empty rather than failing the whole call.
		c.logger.Printf("yapi: data.list is not an array, returning empty list")
		return []Interface{}, nil
	}

	out := make([]Interface, 0, len(raws))
	for _, r := range raws {
		out = append(out, Interface{
			ID:     r.ID,
			Name:   r.Title,
			Path:   r.Path,
			Method: r.Method,
		})
	}
	return out, nil
}

// GetInterface fetches one interface definition and returns the
// registry's data member verbatim.
func (c *Client) GetInterface(ctx context.Context, id int64) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("id", strconv.FormatInt(id, 10))

	body, err := c.get(ctx, "/api/interface/get", params)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, fmt.Errorf("%w: missing data", ErrInvalidResponse)
	}
	return env.Data, nil
}

// ListRaw fetches the full interface list with no filter and returns
// the registry's data member verbatim. Used for resource reads.
func (c *Client) ListRaw(ctx context.Context) (json.RawMessage, error) {
	body, err := c.get(ctx, "/api/interface/list", nil)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	if len(env.Data) == 0 {
		return json.RawMessage("null"), nil
	}
	return env.Data, nil
}
