package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/card-price-checker/internal/api/handlers"
	"github.com/donaldgifford/card-price-checker/internal/snkrdunk"
)

func TestGetQuota(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		provider handlers.QuotaProvider
		preCalls int
		wantBody []string
	}{
		{
			name:     "nil provider reports unlimited",
			wantBody: []string{`"unlimited":true`, `"daily_limit":0`},
		},
		{
			name:     "fresh rate limiter",
			provider: snkrdunk.NewRateLimiter(100, 10, 5000),
			wantBody: []string{`"daily_limit":5000`, `"daily_used":0`, `"remaining":5000`, `"unlimited":false`},
		},
		{
			name:     "rate limiter with usage",
			provider: snkrdunk.NewRateLimiter(100, 10, 100),
			preCalls: 3,
			wantBody: []string{`"daily_used":3`, `"remaining":97`},
		},
		{
			name:     "no daily limit",
			provider: snkrdunk.NewRateLimiter(100, 10, 0),
			preCalls: 2,
			wantBody: []string{`"daily_used":2`, `"unlimited":true`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if rl, ok := tt.provider.(*snkrdunk.RateLimiter); ok {
				for range tt.preCalls {
					require.NoError(t, rl.Wait(t.Context()))
				}
			}

			_, api := humatest.New(t)
			handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(tt.provider))

			resp := api.Get("/api/v1/quota")
			require.Equal(t, http.StatusOK, resp.Code)

			body := resp.Body.String()
			for _, want := range tt.wantBody {
				assert.Contains(t, body, want)
			}
		})
	}
}

func TestGetQuota_ResetAtValue(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	rl := snkrdunk.NewRateLimiter(
		5, 10, 5000,
		snkrdunk.WithRateLimiterNowFunc(func() time.Time { return now }),
	)

	_, api := humatest.New(t)
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(rl))

	resp := api.Get("/api/v1/quota")
	require.Equal(t, http.StatusOK, resp.Code)

	// ResetAt should be 24 hours from now.
	assert.Contains(t, resp.Body.String(), "2025-06-16T14:30:00Z")
}
