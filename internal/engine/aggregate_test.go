package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/donaldgifford/card-price-checker/internal/engine"
	"github.com/donaldgifford/card-price-checker/internal/engine/mocks"
	"github.com/donaldgifford/card-price-checker/internal/snkrdunk"
	"github.com/donaldgifford/card-price-checker/pkg/stats"
	domain "github.com/donaldgifford/card-price-checker/pkg/types"
)

func TestAggregator_Aggregate(t *testing.T) {
	t.Parallel()

	pages := snkrdunk.PageSet{
		Listings: []domain.Listing{
			{Condition: "PSA 9", Price: "US $60", Timestamp: at(time.Hour)},
			{Condition: "PSA 9", Price: "US $40", Timestamp: at(5 * time.Hour)},
			{Condition: "PSA 10", Price: "US $500", Timestamp: at(time.Minute)},
			{Condition: "PSA 9", Price: "$45", IsSold: true, Timestamp: at(24 * time.Hour)},
			{Condition: "PSA 9", Price: "$55", IsSold: true, Timestamp: at(60 * 24 * time.Hour)},
		},
		PagesFetched: 3,
		PagesFailed:  1,
	}

	tests := []struct {
		name      string
		opts      stats.Options
		wantGrade string
		wantAsk   string
		wantAvg   string
		wantUnits int
	}{
		{
			name:      "defaults filter to PSA 10",
			opts:      stats.DefaultOptions(),
			wantGrade: "PSA 10",
			wantAsk:   "US $500",
			wantAvg:   domain.NotAvailable,
		},
		{
			name: "PSA 9 with latest ask",
			opts: func() stats.Options {
				o := stats.DefaultOptions()
				o.Grade = "PSA 9"
				o.Reducer = stats.AskLatest
				return o
			}(),
			wantGrade: "PSA 9",
			wantAsk:   "US $60",
			wantAvg:   "US $45",
			wantUnits: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mf := mocks.NewMockPageFetcher(t)
			mf.EXPECT().FetchAll(mock.Anything, "55").Return(pages).Once()

			agg := engine.NewAggregator(mf,
				engine.WithStatsOptions(tt.opts),
				engine.WithAggregatorLogger(quietLogger()),
				engine.WithNowFunc(func() time.Time { return testNow }),
			)
			assert.Equal(t, tt.wantGrade, agg.Grade())

			got := agg.Aggregate(context.Background(), "55")
			assert.True(t, got.DataAvailable)
			assert.Equal(t, tt.wantGrade, got.Grade)
			assert.Equal(t, tt.wantAsk, got.LiveAsk.Display)
			assert.Equal(t, tt.wantAvg, got.TrimmedAverage.Display)
			assert.Equal(t, tt.wantUnits, got.UnitsSold30d)
			assert.Equal(t, 3, got.PagesFetched)
			assert.Equal(t, 1, got.PagesFailed)
			assert.Len(t, got.WeeklyBuckets, tt.opts.Weeks)
		})
	}
}
