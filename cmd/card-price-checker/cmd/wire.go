package cmd

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/donaldgifford/card-price-checker/internal/config"
	"github.com/donaldgifford/card-price-checker/internal/engine"
	"github.com/donaldgifford/card-price-checker/internal/snkrdunk"
	"github.com/donaldgifford/card-price-checker/pkg/matcher"
	"github.com/donaldgifford/card-price-checker/pkg/query"
	"github.com/donaldgifford/card-price-checker/pkg/title"
)

// pipeline is the lookup stack built from config.
type pipeline struct {
	engine     *engine.Engine
	aggregator *engine.Aggregator
	limiter    *snkrdunk.RateLimiter
}

func newPipeline(cfg *config.Config, log *slog.Logger) (*pipeline, error) {
	cat := cfg.Catalog

	static, err := snkrdunk.NewStaticCookies(cat.Cookie)
	if err != nil {
		return nil, fmt.Errorf("catalog.cookie: %w", err)
	}

	limiter := snkrdunk.NewRateLimiter(cat.RateLimit.PerSecond, cat.RateLimit.Burst, cat.RateLimit.DailyLimit)

	clientOpts := []snkrdunk.ClientOption{
		snkrdunk.WithAPIURL(cat.APIURL),
		snkrdunk.WithHTTPClient(&http.Client{Timeout: cat.Timeout}),
		snkrdunk.WithCookies(snkrdunk.NewContextCookies(static)),
		snkrdunk.WithRateLimiter(limiter),
	}
	if cat.UserAgent != "" {
		clientOpts = append(clientOpts, snkrdunk.WithUserAgent(cat.UserAgent))
	}
	client := snkrdunk.NewClient(clientOpts...)

	searcher := snkrdunk.NewSearcher(client,
		snkrdunk.WithSearchPerPage(cat.SearchPerPage),
		snkrdunk.WithTradingCardsOnly(cat.TradingCardsOnly),
		snkrdunk.WithSearcherLogger(log),
	)

	pg := cat.Pagination
	paginator := snkrdunk.NewPaginator(client,
		snkrdunk.WithListingPages(pg.ListingPages, pg.ListingPerPage),
		snkrdunk.WithHistoryBatches(pg.HistoryBatchSize, pg.HistoryPerPage, pg.HistoryMaxBatches),
		snkrdunk.WithPaginatorLogger(log),
	)

	agg := engine.NewAggregator(paginator,
		engine.WithStatsOptions(cfg.Aggregation.StatsOptions()),
		engine.WithAggregatorLogger(log),
	)

	m := cfg.Matching
	matchOpts := []matcher.Option{matcher.WithThemes(m.Themes)}
	if m.Weights != nil {
		matchOpts = append(matchOpts, matcher.WithWeights(*m.Weights))
	}
	if m.Threshold != nil {
		matchOpts = append(matchOpts, matcher.WithThreshold(*m.Threshold))
	}

	eng := engine.NewEngine(searcher, agg,
		engine.WithLogger(log),
		engine.WithNormalizer(title.New(
			title.WithLanguages(m.Languages),
			title.WithSetDenylist(m.SetDenylist),
			title.WithDefaultLanguage(m.DefaultLanguage),
		)),
		engine.WithQueryBuilder(query.NewBuilder(query.WithFranchise(m.Franchise))),
		engine.WithMatcher(matcher.New(matchOpts...)),
		engine.WithLinks(snkrdunk.NewLinks(cat.WebURL)),
	)

	return &pipeline{engine: eng, aggregator: agg, limiter: limiter}, nil
}
