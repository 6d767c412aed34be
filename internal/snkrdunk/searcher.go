package snkrdunk

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/donaldgifford/card-price-checker/internal/metrics"
	domain "github.com/donaldgifford/card-price-checker/pkg/types"
)

// Searcher wraps CatalogClient.Search as a total function: every failure
// becomes an empty result so a fan-out of queries degrades gracefully.
type Searcher struct {
	client           CatalogClient
	perPage          int
	tradingCardsOnly bool
	logger           *slog.Logger
}

// SearcherOption configures the Searcher.
type SearcherOption func(*Searcher)

// WithSearchPerPage overrides the number of hits requested per query.
func WithSearchPerPage(n int) SearcherOption {
	return func(s *Searcher) {
		s.perPage = n
	}
}

// WithTradingCardsOnly drops hits not flagged as trading cards.
func WithTradingCardsOnly(only bool) SearcherOption {
	return func(s *Searcher) {
		s.tradingCardsOnly = only
	}
}

// WithSearcherLogger sets the logger.
func WithSearcherLogger(l *slog.Logger) SearcherOption {
	return func(s *Searcher) {
		s.logger = l
	}
}

// NewSearcher creates a Searcher.
func NewSearcher(client CatalogClient, opts ...SearcherOption) *Searcher {
	s := &Searcher{
		client:  client,
		perPage: defaultSearchPerPage,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search returns the hits for query, or an empty slice on any failure.
func (s *Searcher) Search(ctx context.Context, query string) []domain.CatalogProduct {
	resp, err := s.client.Search(ctx, SearchRequest{Keyword: query, PerPage: s.perPage, Page: 1})
	if err != nil {
		metrics.CatalogFailuresTotal.WithLabelValues(EndpointSearch, FailureReason(err)).Inc()
		s.logger.Warn("catalog search failed", "query", query, "error", err)
		return []domain.CatalogProduct{}
	}

	products := ToProducts(resp)
	if !s.tradingCardsOnly {
		return products
	}

	cards := make([]domain.CatalogProduct, 0, len(products))
	for _, p := range products {
		if p.IsTradingCard {
			cards = append(cards, p)
		}
	}
	return cards
}

// FailureReason classifies an error for the failures metric.
func FailureReason(err error) string {
	var (
		statusErr *StatusError
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.Is(err, ErrDailyLimitReached):
		return "budget"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case errors.As(err, &statusErr):
		return "status"
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return "parse"
	default:
		return "transport"
	}
}
