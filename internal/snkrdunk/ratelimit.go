package snkrdunk

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// ErrDailyLimitReached is returned when the daily request budget is spent.
var ErrDailyLimitReached = errors.New("daily catalog request budget reached")

// RateLimiter paces catalog requests with a token bucket and, optionally,
// caps them with a rolling 24-hour budget. A maxDaily of zero disables the
// budget.
type RateLimiter struct {
	limiter  *rate.Limiter
	daily    atomic.Int64
	maxDaily int64
	resetAt  time.Time
	mu       sync.Mutex
	nowFunc  func() time.Time
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithRateLimiterNowFunc overrides the time function for testing.
func WithRateLimiterNowFunc(f func() time.Time) RateLimiterOption {
	return func(r *RateLimiter) {
		r.nowFunc = f
	}
}

// NewRateLimiter creates a limiter allowing perSecond requests with the
// given burst, and at most maxDaily requests per 24 hours.
func NewRateLimiter(
	perSecond float64,
	burst int,
	maxDaily int64,
	opts ...RateLimiterOption,
) *RateLimiter {
	r := &RateLimiter{
		limiter:  rate.NewLimiter(rate.Limit(perSecond), burst),
		maxDaily: maxDaily,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.resetAt = r.nowFunc().Add(24 * time.Hour)
	return r
}

// Wait blocks until a request may proceed or ctx is canceled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.checkDailyReset()

	if r.maxDaily > 0 && r.daily.Load() >= r.maxDaily {
		return fmt.Errorf("%w (%d/%d)", ErrDailyLimitReached, r.daily.Load(), r.maxDaily)
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	r.daily.Add(1)
	return nil
}

// DailyCount returns the requests made in the current window.
func (r *RateLimiter) DailyCount() int64 {
	return r.daily.Load()
}

// Quota is a point-in-time view of the request budget.
type Quota struct {
	Used      int64
	Limit     int64
	Remaining int64
	Unlimited bool
	ResetAt   time.Time
}

// Quota reports the current budget.
func (r *RateLimiter) Quota() Quota {
	r.checkDailyReset()

	r.mu.Lock()
	resetAt := r.resetAt
	r.mu.Unlock()

	used := r.daily.Load()
	q := Quota{
		Used:      used,
		Limit:     r.maxDaily,
		Unlimited: r.maxDaily <= 0,
		ResetAt:   resetAt,
	}
	if !q.Unlimited {
		q.Remaining = max(r.maxDaily-used, 0)
	}
	return q
}

func (r *RateLimiter) checkDailyReset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.nowFunc()
	if now.After(r.resetAt) {
		r.daily.Store(0)
		r.resetAt = now.Add(24 * time.Hour)
	}
}
