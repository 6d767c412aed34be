package snkrdunk_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/card-price-checker/internal/snkrdunk"
)

func TestRateLimiter_Wait(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rate    float64
		burst   int
		daily   int64
		calls   int
		wantErr bool
	}{
		{
			name:  "allows calls within rate",
			rate:  100,
			burst: 10,
			daily: 5000,
			calls: 3,
		},
		{
			name:  "zero budget is unlimited",
			rate:  1000,
			burst: 20,
			daily: 0,
			calls: 20,
		},
		{
			name:    "rejects when budget reached",
			rate:    100,
			burst:   10,
			daily:   2,
			calls:   3,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rl := snkrdunk.NewRateLimiter(tt.rate, tt.burst, tt.daily)

			var lastErr error
			for range tt.calls {
				lastErr = rl.Wait(context.Background())
				if lastErr != nil {
					break
				}
			}

			if tt.wantErr {
				require.ErrorIs(t, lastErr, snkrdunk.ErrDailyLimitReached)
			} else {
				require.NoError(t, lastErr)
			}
		})
	}
}

func TestRateLimiter_Quota(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	rl := snkrdunk.NewRateLimiter(100, 10, 3, snkrdunk.WithRateLimiterNowFunc(func() time.Time {
		return start
	}))

	require.NoError(t, rl.Wait(context.Background()))

	q := rl.Quota()
	assert.Equal(t, int64(1), q.Used)
	assert.Equal(t, int64(3), q.Limit)
	assert.Equal(t, int64(2), q.Remaining)
	assert.False(t, q.Unlimited)
	assert.Equal(t, start.Add(24*time.Hour), q.ResetAt)

	unlimited := snkrdunk.NewRateLimiter(100, 10, 0).Quota()
	assert.True(t, unlimited.Unlimited)
	assert.Zero(t, unlimited.Remaining)
}

func TestRateLimiter_WindowReset(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	currentTime := time.Date(2025, 1, 15, 23, 59, 0, 0, time.UTC)

	rl := snkrdunk.NewRateLimiter(
		100, 10, 2,
		snkrdunk.WithRateLimiterNowFunc(func() time.Time {
			mu.Lock()
			defer mu.Unlock()
			return currentTime
		}),
	)

	require.NoError(t, rl.Wait(context.Background()))
	require.NoError(t, rl.Wait(context.Background()))
	require.ErrorIs(t, rl.Wait(context.Background()), snkrdunk.ErrDailyLimitReached)

	// A new calendar day is not enough; the window is 24 hours long.
	mu.Lock()
	currentTime = time.Date(2025, 1, 16, 0, 1, 0, 0, time.UTC)
	mu.Unlock()
	require.ErrorIs(t, rl.Wait(context.Background()), snkrdunk.ErrDailyLimitReached)

	mu.Lock()
	currentTime = time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC)
	mu.Unlock()
	require.NoError(t, rl.Wait(context.Background()))
	assert.Equal(t, int64(1), rl.DailyCount())
}

func TestRateLimiter_ContextCanceled(t *testing.T) {
	t.Parallel()

	// 1 per 10 seconds, burst 1.
	rl := snkrdunk.NewRateLimiter(0.1, 1, 0)

	require.NoError(t, rl.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := rl.Wait(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limiter wait")
}
