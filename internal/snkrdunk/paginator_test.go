package snkrdunk_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/card-price-checker/internal/snkrdunk"
	"github.com/donaldgifford/card-price-checker/internal/snkrdunk/mocks"
)

func historyPage(page, n int) []snkrdunk.TradeHistory {
	out := make([]snkrdunk.TradeHistory, n)
	for i := range out {
		out[i] = snkrdunk.TradeHistory{
			Price:     snkrdunk.FlexString(fmt.Sprintf("$%d", page*1000+i)),
			Condition: "PSA 10",
		}
	}
	return out
}

func TestPaginator_UsedListings(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockCatalogClient(t)
	client.EXPECT().
		UsedListings(mock.Anything, mock.AnythingOfType("snkrdunk.PageRequest")).
		RunAndReturn(func(_ context.Context, req snkrdunk.PageRequest) ([]snkrdunk.UsedListing, error) {
			assert.Equal(t, "101", req.ProductID)
			assert.Equal(t, 2, req.PerPage)
			switch req.Page {
			case 1:
				return []snkrdunk.UsedListing{{Price: "$1"}, {Price: "$2"}}, nil
			case 2:
				return nil, errors.New("boom")
			default:
				// Short pages do not stop the listings feed.
				return []snkrdunk.UsedListing{{Price: snkrdunk.FlexString(fmt.Sprintf("$%d", req.Page*10))}}, nil
			}
		}).
		Times(4)

	p := snkrdunk.NewPaginator(client, snkrdunk.WithListingPages(4, 2))
	set := p.UsedListings(context.Background(), "101")

	assert.Equal(t, 3, set.PagesFetched)
	assert.Equal(t, 1, set.PagesFailed)
	assert.Equal(t, snkrdunk.StopFixedPages, set.StoppedAt)

	prices := make([]string, 0, len(set.Listings))
	for _, l := range set.Listings {
		prices = append(prices, l.Price)
	}
	assert.Equal(t, []string{"$1", "$2", "$30", "$40"}, prices)
}

func TestPaginator_TradingHistories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		pages       map[int]int
		failPages   map[int]bool
		wantRows    int
		wantFetched int
		wantFailed  int
		wantStop    string
		wantCalls   int32
	}{
		{
			name:        "short page in first batch",
			pages:       map[int]int{1: 3, 2: 1, 3: 3},
			wantRows:    4,
			wantFetched: 3,
			wantStop:    snkrdunk.StopShortPage,
			wantCalls:   3,
		},
		{
			name:        "full first batch then short",
			pages:       map[int]int{1: 3, 2: 3, 3: 3, 4: 2},
			wantRows:    11,
			wantFetched: 6,
			wantStop:    snkrdunk.StopShortPage,
			wantCalls:   6,
		},
		{
			name:        "failed page cuts later rows",
			pages:       map[int]int{1: 3, 3: 3},
			failPages:   map[int]bool{2: true},
			wantRows:    3,
			wantFetched: 2,
			wantFailed:  1,
			wantStop:    snkrdunk.StopShortPage,
			wantCalls:   3,
		},
		{
			name:        "max batches",
			pages:       map[int]int{1: 3, 2: 3, 3: 3, 4: 3, 5: 3, 6: 3},
			wantRows:    18,
			wantFetched: 6,
			wantStop:    snkrdunk.StopMaxBatches,
			wantCalls:   6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var calls atomic.Int32
			client := mocks.NewMockCatalogClient(t)
			client.EXPECT().
				TradingHistories(mock.Anything, mock.AnythingOfType("snkrdunk.PageRequest")).
				RunAndReturn(func(_ context.Context, req snkrdunk.PageRequest) ([]snkrdunk.TradeHistory, error) {
					calls.Add(1)
					assert.Equal(t, 3, req.PerPage)
					if tt.failPages[req.Page] {
						return nil, errors.New("page failed")
					}
					return historyPage(req.Page, tt.pages[req.Page]), nil
				})

			// Batches of 3 pages of 3 rows, at most 2 batches.
			p := snkrdunk.NewPaginator(client, snkrdunk.WithHistoryBatches(3, 3, 2))
			set := p.TradingHistories(context.Background(), "55")

			assert.Len(t, set.Listings, tt.wantRows)
			assert.Equal(t, tt.wantFetched, set.PagesFetched)
			assert.Equal(t, tt.wantFailed, set.PagesFailed)
			assert.Equal(t, tt.wantStop, set.StoppedAt)
			assert.Equal(t, tt.wantCalls, calls.Load())
			for _, l := range set.Listings {
				assert.True(t, l.IsSold)
			}
		})
	}
}

func TestPaginator_FetchAll(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockCatalogClient(t)
	client.EXPECT().
		UsedListings(mock.Anything, mock.AnythingOfType("snkrdunk.PageRequest")).
		Return([]snkrdunk.UsedListing{{Price: "$5", Condition: "PSA 10"}}, nil)
	client.EXPECT().
		TradingHistories(mock.Anything, mock.AnythingOfType("snkrdunk.PageRequest")).
		Return(nil, errors.New("down"))

	p := snkrdunk.NewPaginator(client,
		snkrdunk.WithListingPages(2, 50),
		snkrdunk.WithHistoryBatches(2, 100, 1),
	)
	set := p.FetchAll(context.Background(), "7")

	require.Len(t, set.Listings, 2)
	assert.Equal(t, 2, set.PagesFetched)
	assert.Equal(t, 2, set.PagesFailed)
	assert.Equal(t, snkrdunk.StopShortPage, set.StoppedAt)
}
