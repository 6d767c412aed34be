package engine_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/card-price-checker/internal/engine"
	"github.com/donaldgifford/card-price-checker/internal/engine/mocks"
	"github.com/donaldgifford/card-price-checker/internal/snkrdunk"
	domain "github.com/donaldgifford/card-price-checker/pkg/types"
)

const pikachuTitle = "PSA 10 2023 Japanese Pikachu #025/100"

// Queries planned for pikachuTitle.
const (
	leanQuery  = "Pikachu 025/100"
	smartQuery = "2023 Pokemon Japanese 025/100 Pikachu"
	broadQuery = "2023 Japanese Pikachu #025/100"
	idQuery    = "025/100"
)

var testNow = time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

// quietLogger returns a logger that discards output for tests.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEngine(s *mocks.MockSearcher, f *mocks.MockPageFetcher) *engine.Engine {
	agg := engine.NewAggregator(f,
		engine.WithAggregatorLogger(quietLogger()),
		engine.WithNowFunc(func() time.Time { return testNow }),
	)
	return engine.NewEngine(s, agg, engine.WithLogger(quietLogger()))
}

func product(id, name string) domain.CatalogProduct {
	return domain.CatalogProduct{
		ID:             id,
		Name:           name,
		MinPrice:       "80",
		MinPriceFormat: "US $80",
		IsTradingCard:  true,
		Category:       domain.CategoryProduct,
	}
}

func at(d time.Duration) *time.Time {
	t := testNow.Add(-d)
	return &t
}

func healthyPages() snkrdunk.PageSet {
	return snkrdunk.PageSet{
		Listings: []domain.Listing{
			{Source: domain.SourceUsedListing, Condition: "PSA 10", Price: "US $150"},
			{Source: domain.SourceUsedListing, Condition: "PSA 10", Price: "US $120"},
			{Source: domain.SourceTradingHistory, Condition: "PSA 10", Price: "$200", IsSold: true, Timestamp: at(48 * time.Hour)},
		},
		PagesFetched: 5,
		StoppedAt:    snkrdunk.StopShortPage,
	}
}

func TestEngine_Lookup_EmptyTitle(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "   \t\n"} {
		eng := newTestEngine(mocks.NewMockSearcher(t), mocks.NewMockPageFetcher(t))
		res := eng.Lookup(context.Background(), raw)

		assert.Equal(t, domain.OutcomeInputUnavailable, res.Outcome)
		assert.Nil(t, res.Stats)
		assert.False(t, res.MarketMin.Available)
	}
}

func TestEngine_Lookup_PrimaryMatch(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockSearcher(t)
	mf := mocks.NewMockPageFetcher(t)

	ms.EXPECT().Search(mock.Anything, leanQuery).
		Return([]domain.CatalogProduct{product("101", "Pikachu [025/100] 2023")}).Once()
	ms.EXPECT().Search(mock.Anything, smartQuery).
		Return([]domain.CatalogProduct{}).Once()
	mf.EXPECT().FetchAll(mock.Anything, "101").Return(healthyPages()).Once()

	res := newTestEngine(ms, mf).Lookup(context.Background(), pikachuTitle)

	require.Equal(t, domain.OutcomeMatched, res.Outcome)
	require.NotNil(t, res.Match.Product)
	assert.Equal(t, "101", res.Match.Product.ID)
	assert.Equal(t, domain.QueryLean, res.Match.Kind)
	assert.Equal(t, leanQuery, res.Match.MatchedQuery)
	assert.Equal(t, 50, res.Match.Score)
	assert.Equal(t, "https://snkrdunk.com/en/trading-cards/101?slide=right", res.ProductURL)
	assert.Empty(t, res.ManualSearchURL)
	assert.Equal(t, "US $80", res.MarketMin.Display)

	require.NotNil(t, res.Stats)
	assert.True(t, res.Stats.DataAvailable)
	assert.Equal(t, "US $120", res.Stats.LiveAsk.Display)
	assert.Equal(t, "US $200", res.Stats.TrimmedAverage.Display)
	assert.Equal(t, 1, res.Stats.UnitsSold30d)
	assert.Equal(t, 5, res.Stats.PagesFetched)
}

func TestEngine_Lookup_RankOrderBeatsCompletionOrder(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockSearcher(t)
	mf := mocks.NewMockPageFetcher(t)

	// The lean query finishes last but still wins over a higher scoring
	// smart hit because it ranks first.
	ms.EXPECT().Search(mock.Anything, leanQuery).
		RunAndReturn(func(context.Context, string) []domain.CatalogProduct {
			time.Sleep(20 * time.Millisecond)
			return []domain.CatalogProduct{product("1", "Pikachu 025")}
		}).Once()
	ms.EXPECT().Search(mock.Anything, smartQuery).
		Return([]domain.CatalogProduct{product("2", "Pikachu 025/100 2023 Japanese")}).Once()
	mf.EXPECT().FetchAll(mock.Anything, "1").Return(healthyPages()).Once()

	res := newTestEngine(ms, mf).Lookup(context.Background(), pikachuTitle)

	require.True(t, res.Match.Matched())
	assert.Equal(t, "1", res.Match.Product.ID)
	assert.Equal(t, domain.QueryLean, res.Match.Kind)
}

func TestEngine_Lookup_FallbackIsSequential(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockSearcher(t)
	mf := mocks.NewMockPageFetcher(t)

	ms.EXPECT().Search(mock.Anything, leanQuery).Return(nil).Once()
	ms.EXPECT().Search(mock.Anything, smartQuery).
		Return([]domain.CatalogProduct{product("9", "Raichu")}).Once()
	ms.EXPECT().Search(mock.Anything, broadQuery).
		Return([]domain.CatalogProduct{product("7", "Pikachu #025/100")}).Once()
	// The id query is never sent once broad matches.
	mf.EXPECT().FetchAll(mock.Anything, "7").Return(healthyPages()).Once()

	res := newTestEngine(ms, mf).Lookup(context.Background(), pikachuTitle)

	require.Equal(t, domain.OutcomeMatched, res.Outcome)
	assert.Equal(t, domain.QueryBroad, res.Match.Kind)
	assert.Equal(t, "7", res.Match.Product.ID)
}

func TestEngine_Lookup_NoMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		title      string
		wantManual string
	}{
		{
			name:       "manual link from lean query",
			title:      pikachuTitle,
			wantManual: "https://snkrdunk.com/en/search/result?keyword=Pikachu+025%2F100",
		},
		{
			name:       "franchise word without lean query",
			title:      "Japanese 2023",
			wantManual: "https://snkrdunk.com/en/search/result?keyword=Pokemon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := mocks.NewMockSearcher(t)
			ms.EXPECT().Search(mock.Anything, mock.AnythingOfType("string")).
				Return([]domain.CatalogProduct{product("3", "Charizard Box")})

			res := newTestEngine(ms, mocks.NewMockPageFetcher(t)).Lookup(context.Background(), tt.title)

			assert.Equal(t, domain.OutcomeNoMatch, res.Outcome)
			assert.False(t, res.Match.Matched())
			assert.Equal(t, tt.wantManual, res.ManualSearchURL)
			assert.Empty(t, res.ProductURL)
			assert.Nil(t, res.Stats)
		})
	}
}

func TestEngine_Lookup_DataUnavailable(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockSearcher(t)
	mf := mocks.NewMockPageFetcher(t)

	ms.EXPECT().Search(mock.Anything, leanQuery).
		Return([]domain.CatalogProduct{product("101", "Pikachu 025/100")}).Once()
	ms.EXPECT().Search(mock.Anything, smartQuery).Return(nil).Once()
	mf.EXPECT().FetchAll(mock.Anything, "101").
		Return(snkrdunk.PageSet{PagesFailed: 9, StoppedAt: snkrdunk.StopShortPage}).Once()

	res := newTestEngine(ms, mf).Lookup(context.Background(), pikachuTitle)

	assert.Equal(t, domain.OutcomeDataUnavailable, res.Outcome)
	require.NotNil(t, res.Stats)
	assert.False(t, res.Stats.DataAvailable)
	assert.Equal(t, domain.NotAvailable, res.Stats.LiveAsk.Display)
	assert.Equal(t, domain.NotAvailable, res.Stats.TrimmedAverage.Display)
	assert.Equal(t, 9, res.Stats.PagesFailed)
	assert.NotEmpty(t, res.ProductURL)
}

func TestEngine_Normalize(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(mocks.NewMockSearcher(t), mocks.NewMockPageFetcher(t))
	id, plan := eng.Normalize(pikachuTitle)

	assert.Equal(t, "Pikachu", id.Subject)
	assert.Equal(t, []string{leanQuery, smartQuery, broadQuery, idQuery}, plan.All())
}

func TestEngine_LookupPage(t *testing.T) {
	t.Parallel()

	t.Run("title read", func(t *testing.T) {
		t.Parallel()

		ms := mocks.NewMockSearcher(t)
		ms.EXPECT().Search(mock.Anything, mock.AnythingOfType("string")).Return(nil)
		mr := mocks.NewMockTitleReader(t)
		mr.EXPECT().Read(mock.Anything, "https://example.test/item").Return(pikachuTitle, nil).Once()

		res, err := newTestEngine(ms, mocks.NewMockPageFetcher(t)).
			LookupPage(context.Background(), mr, "https://example.test/item")
		require.NoError(t, err)
		assert.Equal(t, pikachuTitle, res.Title)
		assert.Equal(t, domain.OutcomeNoMatch, res.Outcome)
	})

	t.Run("title missing", func(t *testing.T) {
		t.Parallel()

		mr := mocks.NewMockTitleReader(t)
		mr.EXPECT().Read(mock.Anything, mock.Anything).Return("", errors.New("no element matched")).Once()

		res, err := newTestEngine(mocks.NewMockSearcher(t), mocks.NewMockPageFetcher(t)).
			LookupPage(context.Background(), mr, "https://example.test/item")
		require.ErrorIs(t, err, engine.ErrTitleUnavailable)
		assert.Equal(t, domain.OutcomeInputUnavailable, res.Outcome)
	})
}

func TestMarketMin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		product     *domain.CatalogProduct
		wantDisplay string
		wantOK      bool
	}{
		{name: "nil product", wantDisplay: domain.NotAvailable},
		{
			name:        "formatted value",
			product:     &domain.CatalogProduct{MinPrice: "80", MinPriceFormat: "US $80"},
			wantDisplay: "US $80",
			wantOK:      true,
		},
		{
			name:        "raw value",
			product:     &domain.CatalogProduct{MinPrice: "75"},
			wantDisplay: "$75",
			wantOK:      true,
		},
		{name: "neither", product: &domain.CatalogProduct{}, wantDisplay: domain.NotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := engine.MarketMin(tt.product)
			assert.Equal(t, tt.wantDisplay, got.Display)
			assert.Equal(t, tt.wantOK, got.Available)
		})
	}
}
