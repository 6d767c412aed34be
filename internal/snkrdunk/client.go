// Package snkrdunk provides a SNKRDUNK catalog API client abstracted behind
// interfaces for testability, plus the fail-soft search and pagination
// layers built on it.
package snkrdunk

import (
	"context"
	"net/http"
)

// CatalogClient defines the raw, error-returning catalog API.
type CatalogClient interface {
	Search(ctx context.Context, req SearchRequest) (*SearchResponse, error)
	UsedListings(ctx context.Context, req PageRequest) ([]UsedListing, error)
	TradingHistories(ctx context.Context, req PageRequest) ([]TradeHistory, error)
}

// CookieProvider supplies cookies forwarded with each catalog request.
type CookieProvider interface {
	Cookies(ctx context.Context) ([]*http.Cookie, error)
}

// SearchRequest defines the parameters for a keyword search.
type SearchRequest struct {
	Keyword string
	PerPage int
	Page    int
}

// PageRequest addresses one page of a product's listings or histories.
type PageRequest struct {
	ProductID string
	PerPage   int
	Page      int
}
