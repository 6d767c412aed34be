package engine

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/donaldgifford/card-price-checker/pkg/stats"
	domain "github.com/donaldgifford/card-price-checker/pkg/types"
)

// Aggregator fetches a product's listing and history feeds and reduces them
// to grade-filtered market statistics.
type Aggregator struct {
	fetcher PageFetcher
	opts    stats.Options
	log     *slog.Logger
	nowFunc func() time.Time
}

// AggregatorOption configures the Aggregator.
type AggregatorOption func(*Aggregator)

// WithStatsOptions overrides grade, window, bucket and reducer settings.
func WithStatsOptions(o stats.Options) AggregatorOption {
	return func(a *Aggregator) {
		a.opts = o
	}
}

// WithAggregatorLogger sets the logger.
func WithAggregatorLogger(l *slog.Logger) AggregatorOption {
	return func(a *Aggregator) {
		a.log = l
	}
}

// WithNowFunc overrides the clock for testing.
func WithNowFunc(f func() time.Time) AggregatorOption {
	return func(a *Aggregator) {
		a.nowFunc = f
	}
}

// NewAggregator creates an Aggregator.
func NewAggregator(f PageFetcher, opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{
		fetcher: f,
		opts:    stats.DefaultOptions(),
		log:     slog.Default(),
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Grade returns the grade the statistics are filtered to.
func (a *Aggregator) Grade() string {
	return a.opts.Grade
}

// Aggregate never fails. When every page fails DataAvailable is false and
// the money fields are unavailable.
func (a *Aggregator) Aggregate(ctx context.Context, productID string) domain.AggregateStats {
	ctx, span := tracer.Start(ctx, "engine.Aggregate")
	defer span.End()

	set := a.fetcher.FetchAll(ctx, productID)

	out := stats.Aggregate(set.Listings, a.nowFunc(), a.opts)
	out.PagesFetched = set.PagesFetched
	out.PagesFailed = set.PagesFailed
	out.DataAvailable = set.PagesFetched > 0

	span.SetAttributes(
		attribute.String("product.id", productID),
		attribute.Int("pages.fetched", set.PagesFetched),
		attribute.Int("pages.failed", set.PagesFailed),
	)

	if set.PagesFailed > 0 {
		a.log.Debug("partial market data",
			"product_id", productID,
			"pages_fetched", set.PagesFetched,
			"pages_failed", set.PagesFailed,
		)
	}
	a.log.Debug("market data aggregated",
		"product_id", productID,
		"rows", len(set.Listings),
		"units_sold", out.UnitsSold30d,
		"stopped_at", set.StoppedAt,
	)
	return out
}
