package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/card-price-checker/internal/snkrdunk"
	domain "github.com/donaldgifford/card-price-checker/pkg/types"
)

// StatsProvider aggregates listings and trade history for one product.
type StatsProvider interface {
	Aggregate(ctx context.Context, productID string) domain.AggregateStats
}

// StatsHandler serves product statistics.
type StatsHandler struct {
	stats StatsProvider
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(s StatsProvider) *StatsHandler {
	return &StatsHandler{stats: s}
}

// StatsInput identifies the product.
type StatsInput struct {
	ID     string `path:"id"                 doc:"Catalog product ID" example:"12345"`
	Cookie string `header:"X-Catalog-Cookie" doc:"Cookie header forwarded to the catalog"`
}

// StatsOutput is the response for the stats endpoint.
type StatsOutput struct {
	Body domain.AggregateStats
}

// GetStats aggregates statistics for a known product ID. A product whose
// pages all failed reports data_available=false rather than an error.
func (h *StatsHandler) GetStats(ctx context.Context, input *StatsInput) (*StatsOutput, error) {
	ctx = snkrdunk.ContextWithCookieHeader(ctx, input.Cookie)
	return &StatsOutput{Body: h.stats.Aggregate(ctx, input.ID)}, nil
}

// RegisterStatsRoutes registers the stats endpoint with the Huma API.
func RegisterStatsRoutes(api huma.API, h *StatsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-product-stats",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/{id}/stats",
		Summary:     "Get product price statistics",
		Description: "Fetches used listings and trade history for a catalog product and returns graded price statistics.",
		Tags:        []string{"catalog"},
	}, h.GetStats)
}
