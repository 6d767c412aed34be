package client

import (
	"context"
	"net/url"
	"time"

	domain "github.com/donaldgifford/card-price-checker/pkg/types"
)

// Quota is the catalog request budget reported by the server.
type Quota struct {
	DailyLimit int64     `json:"daily_limit"`
	DailyUsed  int64     `json:"daily_used"`
	Remaining  int64     `json:"remaining"`
	Unlimited  bool      `json:"unlimited"`
	ResetAt    time.Time `json:"reset_at"`
}

// Stats returns price statistics for a catalog product.
func (c *Client) Stats(ctx context.Context, productID string) (*domain.AggregateStats, error) {
	var s domain.AggregateStats
	if err := c.get(ctx, "/api/v1/products/"+url.PathEscape(productID)+"/stats", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Quota returns the catalog request budget.
func (c *Client) Quota(ctx context.Context) (*Quota, error) {
	var q Quota
	if err := c.get(ctx, "/api/v1/quota", &q); err != nil {
		return nil, err
	}
	return &q, nil
}
