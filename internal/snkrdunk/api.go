package snkrdunk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/donaldgifford/card-price-checker/internal/metrics"
)

const (
	// DefaultAPIURL is the catalog JSON API root.
	DefaultAPIURL = "https://snkrdunk.com/en/v1"
	// DefaultUserAgent mimics a desktop browser; the API rejects bare clients.
	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	defaultSearchPerPage = 20
	maxErrorBody         = 512
)

// Endpoint labels used for metrics and spans.
const (
	EndpointSearch    = "search"
	EndpointListings  = "used_listings"
	EndpointHistories = "trading_histories"
)

var tracer = otel.Tracer("github.com/donaldgifford/card-price-checker/internal/snkrdunk")

// Client implements CatalogClient over HTTP.
type Client struct {
	apiURL      string
	userAgent   string
	client      *http.Client
	cookies     CookieProvider
	rateLimiter *RateLimiter
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithAPIURL overrides the default API root.
func WithAPIURL(u string) ClientOption {
	return func(c *Client) {
		c.apiURL = u
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.client = hc
	}
}

// WithCookies sets the cookie source forwarded on every request.
func WithCookies(p CookieProvider) ClientOption {
	return func(c *Client) {
		c.cookies = p
	}
}

// WithRateLimiter injects a rate limiter. When set, every request goes
// through Wait() first.
func WithRateLimiter(r *RateLimiter) ClientOption {
	return func(c *Client) {
		c.rateLimiter = r
	}
}

// NewClient creates a catalog API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		apiURL:    DefaultAPIURL,
		userAgent: DefaultUserAgent,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RateLimiter returns the configured limiter, or nil.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// Search implements CatalogClient.Search.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	perPage := req.PerPage
	if perPage <= 0 {
		perPage = defaultSearchPerPage
	}
	page := max(req.Page, 1)

	params := url.Values{}
	params.Set("keyword", req.Keyword)
	params.Set("perPage", strconv.Itoa(perPage))
	params.Set("page", strconv.Itoa(page))

	var resp SearchResponse
	if err := c.getJSON(ctx, EndpointSearch, "/search", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UsedListings implements CatalogClient.UsedListings.
func (c *Client) UsedListings(ctx context.Context, req PageRequest) ([]UsedListing, error) {
	params := pageParams(req)
	params.Set("sortType", "latest")
	params.Set("isOnlyOnSale", "false")

	var resp usedListingsResponse
	path := "/trading-cards/" + url.PathEscape(req.ProductID) + "/used-listings"
	if err := c.getJSON(ctx, EndpointListings, path, params, &resp); err != nil {
		return nil, err
	}
	return resp.UsedTradingCards, nil
}

// TradingHistories implements CatalogClient.TradingHistories.
func (c *Client) TradingHistories(ctx context.Context, req PageRequest) ([]TradeHistory, error) {
	var resp historiesResponse
	path := "/streetwears/" + url.PathEscape(req.ProductID) + "/trading-histories"
	if err := c.getJSON(ctx, EndpointHistories, path, pageParams(req), &resp); err != nil {
		return nil, err
	}
	return resp.items(), nil
}

func pageParams(req PageRequest) url.Values {
	params := url.Values{}
	params.Set("perPage", strconv.Itoa(req.PerPage))
	params.Set("page", strconv.Itoa(max(req.Page, 1)))
	return params
}

func (c *Client) getJSON(
	ctx context.Context,
	endpoint, path string,
	params url.Values,
	out any,
) (err error) {
	ctx, span := tracer.Start(ctx, "snkrdunk."+endpoint)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.CatalogDailyLimitHits.Inc()
			}
			return fmt.Errorf("rate limit: %w", err)
		}
		metrics.CatalogDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	}

	u := c.apiURL + path + "?" + params.Encode()
	span.SetAttributes(attribute.String("http.url", u))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if c.cookies != nil {
		cookies, err := c.cookies.Cookies(ctx)
		if err != nil {
			return fmt.Errorf("getting cookies: %w", err)
		}
		for _, ck := range cookies {
			httpReq.AddCookie(ck)
		}
	}

	metrics.CatalogRequestsTotal.WithLabelValues(endpoint).Inc()
	start := time.Now()
	resp, err := c.client.Do(httpReq)
	metrics.CatalogRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("executing %s request: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parsing %s response: %w", endpoint, err)
	}
	return nil
}

// StatusError is returned for non-2xx catalog responses.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog API error (status %d) on %s: %s", e.StatusCode, e.Endpoint, e.Body)
}
