// Package client provides a thin HTTP client for the card-price-checker API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"syscall"
)

// Client is a thin HTTP client for the card-price-checker API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cookie     string
}

// New creates a new API client targeting the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

const catalogCookieHeader = "X-Catalog-Cookie"

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithCatalogCookie forwards a Cookie header to the catalog on every call.
func WithCatalogCookie(header string) Option {
	return func(c *Client) {
		c.cookie = header
	}
}

// get performs a GET request and decodes the JSON response into dst.
func (c *Client) get(ctx context.Context, path string, dst any) error {
	return c.do(ctx, http.MethodGet, path, nil, dst)
}

// post performs a POST request with a JSON body and decodes the response into dst.
func (c *Client) post(ctx context.Context, path string, body, dst any) error {
	return c.do(ctx, http.MethodPost, path, body, dst)
}

func (c *Client) do(ctx context.Context, method, path string, body, dst any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cookie != "" {
		req.Header.Set(catalogCookieHeader, c.cookie)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, syscall.ECONNREFUSED) {
			return fmt.Errorf("API server not running at %s", c.baseURL)
		}
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return newAPIError(resp.StatusCode, respBody)
	}

	if dst != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, dst); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// APIError is a non-2xx response. Detail comes from the problem body when
// the server sent one, otherwise it is the raw body.
type APIError struct {
	StatusCode int
	Title      string
	Detail     string
	Fields     []string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("API error (HTTP %d): %s", e.StatusCode, e.Detail)
	if len(e.Fields) > 0 {
		msg += " [" + strings.Join(e.Fields, "; ") + "]"
	}
	return msg
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Detail: strings.TrimSpace(string(body))}

	var p struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
		Errors []struct {
			Message  string `json:"message"`
			Location string `json:"location"`
		} `json:"errors"`
	}
	if json.Unmarshal(body, &p) != nil || p.Detail == "" {
		return apiErr
	}

	apiErr.Title = p.Title
	apiErr.Detail = p.Detail
	for _, fe := range p.Errors {
		apiErr.Fields = append(apiErr.Fields, fe.Location+": "+fe.Message)
	}
	return apiErr
}
