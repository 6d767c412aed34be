// Package stats computes grade-filtered pricing statistics over listing and
// trading-history rows.
package stats

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/card-price-checker/pkg/types"
)

// AskReducer selects the live ask from the active listings.
type AskReducer string

// Live ask reducers.
const (
	AskMin    AskReducer = "min"
	AskLatest AskReducer = "latest"
)

const week = 7 * 24 * time.Hour

// Options controls aggregation.
type Options struct {
	Grade       string
	Window      time.Duration
	Weeks       int
	Reducer     AskReducer
	RecentSales int
}

// DefaultOptions returns PSA 10 over a 30 day window with 8 weekly buckets.
func DefaultOptions() Options {
	return Options{
		Grade:       "PSA 10",
		Window:      30 * 24 * time.Hour,
		Weeks:       8,
		Reducer:     AskMin,
		RecentSales: 5,
	}
}

// ParseAskReducer validates a reducer name.
func ParseAskReducer(s string) (AskReducer, error) {
	switch r := AskReducer(s); r {
	case AskMin, AskLatest:
		return r, nil
	default:
		return "", fmt.Errorf("unknown live ask reducer %q", s)
	}
}

type pricedRow struct {
	row   domain.Listing
	price decimal.Decimal
	ok    bool
}

// Aggregate filters rows to opts.Grade and computes the summary. Rows of
// other grades never contribute. Sold rows without a timestamp count toward
// the recency window but not toward any weekly bucket.
func Aggregate(rows []domain.Listing, now time.Time, opts Options) domain.AggregateStats {
	out := domain.AggregateStats{
		Grade:          opts.Grade,
		LiveAsk:        domain.Unavailable(),
		TrimmedAverage: domain.Unavailable(),
	}

	// A sale can surface in both feeds. Each sold used listing absorbs at
	// most one trading-history row with the same timestamp and price; rows
	// within a single feed are always kept.
	listed := make(map[string]int)
	for _, r := range rows {
		if r.IsSold && r.Source == domain.SourceUsedListing && MatchesGrade(r.Condition, opts.Grade) {
			if key, ok := saleKey(r); ok {
				listed[key]++
			}
		}
	}

	var active, sold []pricedRow
	for _, r := range rows {
		if !MatchesGrade(r.Condition, opts.Grade) {
			continue
		}
		p, ok := ParsePrice(r.Price)
		pr := pricedRow{row: r, price: p, ok: ok}
		if !r.IsSold {
			active = append(active, pr)
			continue
		}
		if r.Source == domain.SourceTradingHistory {
			if key, ok := saleKey(r); ok && listed[key] > 0 {
				listed[key]--
				continue
			}
		}
		sold = append(sold, pr)
	}

	if ask, ok := liveAsk(active, opts.Reducer); ok {
		out.LiveAsk = NewMoney(ask)
	}

	var windowPrices []decimal.Decimal
	for _, s := range sold {
		if s.row.Timestamp != nil && now.Sub(*s.row.Timestamp) > opts.Window {
			continue
		}
		out.UnitsSold30d++
		if s.ok {
			windowPrices = append(windowPrices, s.price)
		}
	}
	if avg, ok := TrimmedMean(windowPrices); ok {
		out.TrimmedAverage = NewMoney(avg)
	}

	out.WeeklyBuckets = weeklyBuckets(sold, now, opts.Weeks)
	out.RecentSales = recentSales(sold, opts.RecentSales)

	return out
}

func saleKey(r domain.Listing) (string, bool) {
	if r.Timestamp == nil {
		return "", false
	}
	return r.Timestamp.UTC().Format(time.RFC3339Nano) + "|" + r.Price, true
}

func liveAsk(active []pricedRow, reducer AskReducer) (decimal.Decimal, bool) {
	var (
		best  decimal.Decimal
		bestT *time.Time
		found bool
	)
	for _, a := range active {
		if !a.ok {
			continue
		}
		switch {
		case !found:
		case reducer == AskLatest:
			// Feed order is newest first; a later row only wins with a newer timestamp.
			if a.row.Timestamp == nil || bestT != nil && !a.row.Timestamp.After(*bestT) {
				continue
			}
		default:
			if !a.price.LessThan(best) {
				continue
			}
		}
		best, bestT, found = a.price, a.row.Timestamp, true
	}
	return best, found
}

// weeklyBuckets partitions the trailing weeks into 7 day [start, end)
// buckets anchored at now minus weeks*7 days.
func weeklyBuckets(sold []pricedRow, now time.Time, weeks int) []domain.WeeklyBucket {
	if weeks <= 0 {
		return nil
	}

	origin := now.Add(-time.Duration(weeks) * week)
	buckets := make([]domain.WeeklyBucket, weeks)
	prices := make([][]decimal.Decimal, weeks)
	for i := range buckets {
		buckets[i].Start = origin.Add(time.Duration(i) * week)
		buckets[i].End = buckets[i].Start.Add(week)
	}

	for _, s := range sold {
		ts := s.row.Timestamp
		if ts == nil || ts.Before(origin) || !ts.Before(buckets[weeks-1].End) {
			continue
		}
		i := int(ts.Sub(origin) / week)
		buckets[i].Volume++
		if s.ok {
			prices[i] = append(prices[i], s.price)
		}
	}

	for i := range buckets {
		if len(prices[i]) > 0 {
			avg := Mean(prices[i])
			buckets[i].AvgPrice = &avg
		}
	}
	return buckets
}

func recentSales(sold []pricedRow, n int) []domain.Sale {
	ordered := slices.Clone(sold)
	slices.SortStableFunc(ordered, func(a, b pricedRow) int {
		ta, tb := a.row.Timestamp, b.row.Timestamp
		switch {
		case ta == nil && tb == nil:
			return 0
		case ta == nil:
			return 1
		case tb == nil:
			return -1
		default:
			return tb.Compare(*ta)
		}
	})

	if n = max(n, 0); len(ordered) > n {
		ordered = ordered[:n]
	}
	out := make([]domain.Sale, 0, len(ordered))
	for _, s := range ordered {
		out = append(out, domain.Sale{
			Price:     s.row.Price,
			Condition: s.row.Condition,
			Timestamp: s.row.Timestamp,
		})
	}
	return out
}
