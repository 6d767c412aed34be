package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/card-price-checker/internal/api/handlers"
	"github.com/donaldgifford/card-price-checker/internal/api/handlers/mocks"
	"github.com/donaldgifford/card-price-checker/internal/snkrdunk"
	domain "github.com/donaldgifford/card-price-checker/pkg/types"
)

func TestStatsHandler_GetStats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		stats    domain.AggregateStats
		wantBody []string
	}{
		{
			name: "available stats",
			stats: domain.AggregateStats{
				Grade:          "PSA 10",
				LiveAsk:        domain.Money{Amount: decimal.NewFromInt(120), Display: "US $120", Available: true},
				TrimmedAverage: domain.Money{Amount: decimal.NewFromInt(200), Display: "US $200", Available: true},
				UnitsSold30d:   3,
				PagesFetched:   5,
				DataAvailable:  true,
			},
			wantBody: []string{
				`"grade":"PSA 10"`,
				`"units_sold_30d":3`,
				`"data_available":true`,
			},
		},
		{
			name: "all pages failed is still 200",
			stats: domain.AggregateStats{
				Grade:          "PSA 10",
				LiveAsk:        domain.Unavailable(),
				TrimmedAverage: domain.Unavailable(),
				PagesFailed:    5,
			},
			wantBody: []string{
				`"data_available":false`,
				`"pages_failed":5`,
				`"display":"N/A"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sp := mocks.NewMockStatsProvider(t)
			sp.EXPECT().Aggregate(mock.Anything, "42").Return(tt.stats).Once()

			_, api := humatest.New(t)
			handlers.RegisterStatsRoutes(api, handlers.NewStatsHandler(sp))

			resp := api.Get("/api/v1/products/42/stats")
			require.Equal(t, http.StatusOK, resp.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
		})
	}
}

func TestStatsHandler_GetStats_ForwardsCookie(t *testing.T) {
	t.Parallel()

	sp := mocks.NewMockStatsProvider(t)
	sp.EXPECT().Aggregate(mock.Anything, "42").
		RunAndReturn(func(ctx context.Context, _ string) domain.AggregateStats {
			cookies, err := snkrdunk.NewContextCookies(nil).Cookies(ctx)
			assert.NoError(t, err)
			if assert.Len(t, cookies, 1) {
				assert.Equal(t, "token", cookies[0].Name)
			}
			return domain.AggregateStats{Grade: "PSA 10"}
		}).Once()

	_, api := humatest.New(t)
	handlers.RegisterStatsRoutes(api, handlers.NewStatsHandler(sp))

	resp := api.Get("/api/v1/products/42/stats", "X-Catalog-Cookie: token=xyz")
	require.Equal(t, http.StatusOK, resp.Code)
}
