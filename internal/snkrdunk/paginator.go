package snkrdunk

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/card-price-checker/internal/metrics"
	domain "github.com/donaldgifford/card-price-checker/pkg/types"
)

const (
	defaultListingPages      = 4
	defaultListingPerPage    = 50
	defaultHistoryBatchSize  = 5
	defaultHistoryPerPage    = 100
	defaultHistoryMaxBatches = 4
)

// Stop reasons reported in PageSet.StoppedAt.
const (
	StopFixedPages = "fixed_pages"
	StopShortPage  = "short_page"
	StopMaxBatches = "max_batches"
)

// Feed labels for metrics.
const (
	feedListings  = "used_listings"
	feedHistories = "trading_histories"
)

// Paginator fetches the used-listings and trading-history feeds of a
// product. Page failures are absorbed as empty pages.
type Paginator struct {
	client            CatalogClient
	logger            *slog.Logger
	listingPages      int
	listingPerPage    int
	historyBatchSize  int
	historyPerPage    int
	historyMaxBatches int
}

// PaginatorOption configures the Paginator.
type PaginatorOption func(*Paginator)

// WithListingPages overrides the fixed number of used-listing pages and
// their size.
func WithListingPages(pages, perPage int) PaginatorOption {
	return func(p *Paginator) {
		p.listingPages = pages
		p.listingPerPage = perPage
	}
}

// WithHistoryBatches overrides the history batch size, page size and the
// maximum number of batches.
func WithHistoryBatches(batchSize, perPage, maxBatches int) PaginatorOption {
	return func(p *Paginator) {
		p.historyBatchSize = batchSize
		p.historyPerPage = perPage
		p.historyMaxBatches = maxBatches
	}
}

// WithPaginatorLogger sets the logger.
func WithPaginatorLogger(l *slog.Logger) PaginatorOption {
	return func(p *Paginator) {
		p.logger = l
	}
}

// NewPaginator creates a Paginator.
func NewPaginator(client CatalogClient, opts ...PaginatorOption) *Paginator {
	p := &Paginator{
		client:            client,
		logger:            slog.Default(),
		listingPages:      defaultListingPages,
		listingPerPage:    defaultListingPerPage,
		historyBatchSize:  defaultHistoryBatchSize,
		historyPerPage:    defaultHistoryPerPage,
		historyMaxBatches: defaultHistoryMaxBatches,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PageSet is the result of paginating one or more feeds.
type PageSet struct {
	Listings     []domain.Listing
	PagesFetched int
	PagesFailed  int
	StoppedAt    string
}

type pageResult struct {
	rows []domain.Listing
	size int
	err  error
}

// FetchAll fetches both feeds concurrently and merges them, used listings
// first.
func (p *Paginator) FetchAll(ctx context.Context, productID string) PageSet {
	var (
		g                   errgroup.Group
		listings, histories PageSet
	)
	g.Go(func() error {
		listings = p.UsedListings(ctx, productID)
		return nil
	})
	g.Go(func() error {
		histories = p.TradingHistories(ctx, productID)
		return nil
	})
	_ = g.Wait() //nolint:errcheck // goroutines never fail

	merged := make([]domain.Listing, 0, len(listings.Listings)+len(histories.Listings))
	merged = append(merged, listings.Listings...)
	merged = append(merged, histories.Listings...)

	return PageSet{
		Listings:     merged,
		PagesFetched: listings.PagesFetched + histories.PagesFetched,
		PagesFailed:  listings.PagesFailed + histories.PagesFailed,
		StoppedAt:    histories.StoppedAt,
	}
}

// UsedListings fetches the fixed set of used-listing pages concurrently.
func (p *Paginator) UsedListings(ctx context.Context, productID string) PageSet {
	results := p.fetchPages(ctx, 1, p.listingPages, func(ctx context.Context, page int) pageResult {
		items, err := p.client.UsedListings(ctx, PageRequest{
			ProductID: productID,
			PerPage:   p.listingPerPage,
			Page:      page,
		})
		return pageResult{rows: UsedListingsToDomain(items), size: len(items), err: err}
	})

	set := PageSet{StoppedAt: StopFixedPages}
	for i, r := range results {
		if p.account(&set, feedListings, productID, i+1, r) {
			set.Listings = append(set.Listings, r.rows...)
		}
	}
	return set
}

// TradingHistories fetches history pages in concurrent batches. A batch is
// followed by another only while every page in it was full; rows from pages
// after the first short, empty or failed page are ignored.
func (p *Paginator) TradingHistories(ctx context.Context, productID string) PageSet {
	set := PageSet{StoppedAt: StopMaxBatches}

	for batch := range p.historyMaxBatches {
		first := batch*p.historyBatchSize + 1
		results := p.fetchPages(ctx, first, p.historyBatchSize, func(ctx context.Context, page int) pageResult {
			items, err := p.client.TradingHistories(ctx, PageRequest{
				ProductID: productID,
				PerPage:   p.historyPerPage,
				Page:      page,
			})
			return pageResult{rows: HistoriesToDomain(items), size: len(items), err: err}
		})

		short := false
		for i, r := range results {
			ok := p.account(&set, feedHistories, productID, first+i, r)
			if short {
				continue
			}
			if ok {
				set.Listings = append(set.Listings, r.rows...)
			}
			if !ok || r.size < p.historyPerPage {
				short = true
			}
		}

		if short {
			set.StoppedAt = StopShortPage
			return set
		}
	}

	return set
}

// fetchPages runs fetch for pages [first, first+count) concurrently and
// returns the results in page order.
func (p *Paginator) fetchPages(
	ctx context.Context,
	first, count int,
	fetch func(ctx context.Context, page int) pageResult,
) []pageResult {
	results := make([]pageResult, max(count, 0))

	var g errgroup.Group
	for i := range results {
		g.Go(func() error {
			results[i] = fetch(ctx, first+i)
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // goroutines never fail

	return results
}

// account records a page outcome and reports whether the page succeeded.
func (p *Paginator) account(set *PageSet, feed, productID string, page int, r pageResult) bool {
	if r.err != nil {
		set.PagesFailed++
		metrics.PagesFailedTotal.WithLabelValues(feed).Inc()
		metrics.CatalogFailuresTotal.WithLabelValues(feed, FailureReason(r.err)).Inc()
		p.logger.Debug("page fetch failed",
			"feed", feed,
			"product_id", productID,
			"page", page,
			"error", r.err,
		)
		return false
	}
	set.PagesFetched++
	metrics.PagesFetchedTotal.WithLabelValues(feed).Inc()
	return true
}
