// Package engine runs the title-to-price pipeline: normalize, plan queries,
// search the catalog, pick the best match and aggregate its market data.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/card-price-checker/internal/metrics"
	"github.com/donaldgifford/card-price-checker/internal/snkrdunk"
	"github.com/donaldgifford/card-price-checker/pkg/matcher"
	"github.com/donaldgifford/card-price-checker/pkg/query"
	"github.com/donaldgifford/card-price-checker/pkg/stats"
	"github.com/donaldgifford/card-price-checker/pkg/title"
	domain "github.com/donaldgifford/card-price-checker/pkg/types"
)

// ErrTitleUnavailable is returned when no usable title could be read.
var ErrTitleUnavailable = errors.New("card title unavailable")

var tracer = otel.Tracer("github.com/donaldgifford/card-price-checker/internal/engine")

// Searcher runs one catalog query. Failures surface as an empty result.
type Searcher interface {
	Search(ctx context.Context, query string) []domain.CatalogProduct
}

// PageFetcher fetches every listing and history row of a product.
type PageFetcher interface {
	FetchAll(ctx context.Context, productID string) snkrdunk.PageSet
}

// Engine orchestrates a lookup.
type Engine struct {
	searcher   Searcher
	aggregator *Aggregator
	normalizer *title.Normalizer
	builder    *query.Builder
	matcher    *matcher.Matcher
	links      snkrdunk.Links
	log        *slog.Logger
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithNormalizer replaces the default title normalizer.
func WithNormalizer(n *title.Normalizer) EngineOption {
	return func(e *Engine) {
		e.normalizer = n
	}
}

// WithQueryBuilder replaces the default query builder.
func WithQueryBuilder(b *query.Builder) EngineOption {
	return func(e *Engine) {
		e.builder = b
	}
}

// WithMatcher replaces the default matcher.
func WithMatcher(m *matcher.Matcher) EngineOption {
	return func(e *Engine) {
		e.matcher = m
	}
}

// WithLinks sets the catalog web links.
func WithLinks(l snkrdunk.Links) EngineOption {
	return func(e *Engine) {
		e.links = l
	}
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(s Searcher, agg *Aggregator, opts ...EngineOption) *Engine {
	eng := &Engine{
		searcher:   s,
		aggregator: agg,
		normalizer: title.New(),
		builder:    query.NewBuilder(),
		matcher:    matcher.New(),
		links:      snkrdunk.NewLinks(""),
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// Normalize derives the identity and query plan for a title without
// touching the network.
func (eng *Engine) Normalize(raw string) (domain.CardIdentity, domain.QueryPlan) {
	id := eng.normalizer.Normalize(raw)
	return id, eng.builder.Build(id)
}

// Lookup runs the whole pipeline for a title. It never fails: every
// failure mode is reported through the result's Outcome.
func (eng *Engine) Lookup(ctx context.Context, raw string) domain.LookupResult {
	start := time.Now()
	ctx, span := tracer.Start(ctx, "engine.Lookup")
	defer span.End()

	res := eng.lookup(ctx, raw)

	span.SetAttributes(
		attribute.String("outcome", string(res.Outcome)),
		attribute.Int("match.score", res.Match.Score),
	)
	metrics.LookupsTotal.WithLabelValues(string(res.Outcome)).Inc()
	metrics.LookupDuration.Observe(time.Since(start).Seconds())

	eng.log.Info("lookup complete",
		"title", res.Title,
		"outcome", res.Outcome,
		"query", res.Match.MatchedQuery,
		"score", res.Match.Score,
		"duration", time.Since(start),
	)
	return res
}

func (eng *Engine) lookup(ctx context.Context, raw string) domain.LookupResult {
	res := domain.LookupResult{
		Title:     strings.TrimSpace(raw),
		MarketMin: domain.Unavailable(),
	}
	if res.Title == "" {
		res.Outcome = domain.OutcomeInputUnavailable
		return res
	}

	res.Identity, res.Plan = eng.Normalize(res.Title)

	match := eng.searchPrimary(ctx, res.Identity, res.Plan.Primary)
	if !match.Matched() {
		match = eng.searchFallback(ctx, res.Identity, res.Plan.Fallback, match)
	}
	res.Match = match

	if !match.Matched() {
		res.Outcome = domain.OutcomeNoMatch
		res.ManualSearchURL = eng.links.ManualSearchURL(eng.manualQuery(res.Plan))
		return res
	}

	metrics.MatchScore.Observe(float64(match.Score))
	metrics.MatchQueryKindTotal.WithLabelValues(string(match.Kind)).Inc()

	res.ProductURL = eng.links.ProductURL(match.Product.ID)
	res.MarketMin = MarketMin(match.Product)

	agg := eng.aggregator.Aggregate(ctx, match.Product.ID)
	res.Stats = &agg
	if agg.DataAvailable {
		res.Outcome = domain.OutcomeMatched
	} else {
		res.Outcome = domain.OutcomeDataUnavailable
	}
	return res
}

// searchPrimary dispatches every primary query at once and evaluates the
// results in plan order once all have returned.
func (eng *Engine) searchPrimary(
	ctx context.Context,
	id domain.CardIdentity,
	queries []domain.Query,
) domain.MatchResult {
	results := make([][]domain.CatalogProduct, len(queries))

	var g errgroup.Group
	for i, q := range queries {
		g.Go(func() error {
			results[i] = eng.searcher.Search(ctx, q.Text)
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // searches never fail

	var best domain.MatchResult
	for i, q := range queries {
		m := eng.evaluate(q, results[i], id)
		if m.Matched() {
			return m
		}
		best = bestMiss(best, m)
	}
	return best
}

// searchFallback tries the fallback queries one at a time.
func (eng *Engine) searchFallback(
	ctx context.Context,
	id domain.CardIdentity,
	queries []domain.Query,
	best domain.MatchResult,
) domain.MatchResult {
	for _, q := range queries {
		if ctx.Err() != nil {
			break
		}
		m := eng.evaluate(q, eng.searcher.Search(ctx, q.Text), id)
		if m.Matched() {
			return m
		}
		best = bestMiss(best, m)
	}
	return best
}

func (eng *Engine) evaluate(q domain.Query, products []domain.CatalogProduct, id domain.CardIdentity) domain.MatchResult {
	m := eng.matcher.SelectBest(products, id)
	m.MatchedQuery = q.Text
	m.Kind = q.Kind

	eng.log.Debug("query evaluated",
		"kind", q.Kind,
		"query", q.Text,
		"hits", len(products),
		"score", m.Score,
		"matched", m.Matched(),
	)
	return m
}

// manualQuery is the lean query, or the franchise word when there is none.
func (eng *Engine) manualQuery(plan domain.QueryPlan) string {
	if q, ok := plan.Lookup(domain.QueryLean); ok {
		return q.Text
	}
	return eng.builder.Franchise()
}

// bestMiss keeps the highest scoring rejected candidate for diagnostics.
func bestMiss(a, b domain.MatchResult) domain.MatchResult {
	if a.MatchedQuery == "" || b.Score > a.Score {
		return b
	}
	return a
}

// MarketMin is the catalog's own lowest price for a product: the formatted
// value when present, else the raw value with a dollar sign.
func MarketMin(p *domain.CatalogProduct) domain.Money {
	if p == nil {
		return domain.Unavailable()
	}
	display := strings.TrimSpace(p.MinPriceFormat)
	if display == "" && strings.TrimSpace(p.MinPrice) != "" {
		display = "$" + strings.TrimSpace(p.MinPrice)
	}
	if display == "" {
		return domain.Unavailable()
	}
	amount, _ := stats.ParsePrice(display)
	return domain.Money{Amount: amount, Display: display, Available: true}
}

// TitleReader reads the card title shown on a product page.
type TitleReader interface {
	Read(ctx context.Context, pageURL string) (string, error)
}

// LookupPage reads the title from pageURL and looks it up. When the title
// cannot be read the result carries the input_unavailable outcome and the
// error wraps ErrTitleUnavailable.
func (eng *Engine) LookupPage(ctx context.Context, r TitleReader, pageURL string) (domain.LookupResult, error) {
	raw, err := r.Read(ctx, pageURL)
	if err != nil {
		eng.log.Warn("reading page title", "url", pageURL, "error", err)
		metrics.LookupsTotal.WithLabelValues(string(domain.OutcomeInputUnavailable)).Inc()
		return domain.LookupResult{
			Outcome:   domain.OutcomeInputUnavailable,
			MarketMin: domain.Unavailable(),
		}, fmt.Errorf("%w: %w", ErrTitleUnavailable, err)
	}
	return eng.Lookup(ctx, raw), nil
}
