// Package client provides the HTTP facade shared by every Confluence skill.
//
// The facade owns an immutable session config (base URL, credential, timeout)
// and translates transport and status-code failures into a small set of typed
// errors. It performs no retries and holds no state between calls beyond the
// private connection pool, so a single client instance is created per
// invocation and discarded at process exit.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Document is the generic JSON-shaped payload returned by the Confluence
// API. The remote server owns the schema; skills narrow the fields they need.
type Document = map[string]any

const defaultTimeout = 30 * time.Second

// AuthType selects how the credential is attached to requests.
type AuthType string

const (
	// AuthBasic sends "email:token" as an HTTP Basic header (Confluence Cloud).
	AuthBasic AuthType = "basic"

	// AuthBearer sends the token as a Bearer header (PATs on Server/DC).
	AuthBearer AuthType = "bearer"
)

// Config holds the immutable session settings for one Client.
type Config struct {
	// BaseURL is the site root, e.g. "https://example.atlassian.net/wiki".
	BaseURL string

	// AuthType selects basic or bearer auth. Defaults to AuthBasic.
	AuthType AuthType

	// Email is the account email for basic auth.
	Email string

	// APIToken is the API token or personal access token.
	APIToken string

	// Timeout applies per HTTP call. Defaults to 30s.
	Timeout time.Duration

	// HTTPClient overrides the underlying client. Used by tests.
	HTTPClient *http.Client
}

// Client is the API client facade. Safe to construct without network access;
// not meant to be shared across goroutines issuing concurrent mutations.
type Client struct {
	baseURL  string
	authType AuthType
	email    string
	token    string
	http     *http.Client
}

// New constructs a Client from config. Construction never performs a network
// call; the base URL is only validated for shape.
func New(cfg Config) (*Client, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrValidation)
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("%w: invalid base URL %q: %v", ErrValidation, cfg.BaseURL, err)
	}

	authType := cfg.AuthType
	if authType == "" {
		authType = AuthBasic
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:  base,
		authType: authType,
		email:    cfg.Email,
		token:    cfg.APIToken,
		http:     httpClient,
	}, nil
}

// BaseURL returns the configured site root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues an HTTP GET against path with optional query parameters.
func (c *Client) Get(ctx context.Context, path string, params url.Values) (Document, error) {
	return c.do(ctx, http.MethodGet, path, params, nil)
}

// Post issues an HTTP POST with a JSON body. Not idempotent; callers that
// need add-if-absent semantics check current state first.
func (c *Client) Post(ctx context.Context, path string, body any) (Document, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

// Put issues an HTTP PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (Document, error) {
	return c.do(ctx, http.MethodPut, path, nil, body)
}

// Delete issues an HTTP DELETE. Returns nil on an empty response body.
// Deleting an already-deleted resource returns ErrNotFound.
func (c *Client) Delete(ctx context.Context, path string) (Document, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body any) (Document, error) {
	target, err := c.resolve(path, params)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: marshaling request body: %v", ErrValidation, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", ErrAPI, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAPI, err)
	}
	defer resp.Body.Close()

	return decodeResponse(resp)
}

// resolve joins path onto the base URL. Absolute URLs pass through untouched
// so pagination can follow the server's _links.next verbatim.
func (c *Client) resolve(path string, params url.Values) (string, error) {
	var raw string
	switch {
	case strings.HasPrefix(path, "http://"), strings.HasPrefix(path, "https://"):
		raw = path
	case strings.HasPrefix(path, "/"):
		raw = c.baseURL + path
	default:
		raw = c.baseURL + "/" + path
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: invalid path %q: %v", ErrValidation, path, err)
	}

	if len(params) > 0 {
		q := u.Query()
		for key, values := range params {
			for _, v := range values {
				q.Add(key, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}

// resolveLink resolves a server-supplied continuation URL. Cloud returns
// site-root-relative links that already include the context path (e.g.
// "/wiki/api/v2/..." for a base URL ending in "/wiki"), so relative links
// resolve against the base URL's scheme and host rather than the full base.
// Absolute links pass through untouched.
func (c *Client) resolveLink(link string) (string, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: invalid base URL %q: %v", ErrValidation, c.baseURL, err)
	}

	ref, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("%w: invalid continuation link %q: %v", ErrAPI, link, err)
	}

	return base.ResolveReference(ref).String(), nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token == "" {
		return
	}
	switch c.authType {
	case AuthBearer:
		req.Header.Set("Authorization", "Bearer "+c.token)
	default:
		req.SetBasicAuth(c.email, c.token)
	}
}

// decodeResponse classifies the status code and decodes the JSON body.
// Empty 2xx bodies (204, DELETE responses) decode to nil.
func decodeResponse(resp *http.Response) (Document, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %v", ErrAPI, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newStatusError(resp.StatusCode, raw)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: decoding response body: %v", ErrAPI, err)
	}

	return doc, nil
}
