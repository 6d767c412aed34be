package snkrdunk_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/donaldgifford/card-price-checker/internal/snkrdunk"
	"github.com/donaldgifford/card-price-checker/internal/snkrdunk/mocks"
)

func TestSearcher_Search(t *testing.T) {
	t.Parallel()

	no := false
	resp := &snkrdunk.SearchResponse{
		Products: []snkrdunk.Product{
			{ID: "1", Name: "Pikachu 025/100"},
			{ID: "2", Name: "Pikachu Sleeve", IsTradingCard: &no},
		},
		Streetwears: []snkrdunk.Product{{ID: "3", Name: "Pikachu Box"}},
	}

	tests := []struct {
		name    string
		opts    []snkrdunk.SearcherOption
		resp    *snkrdunk.SearchResponse
		err     error
		wantIDs []string
	}{
		{
			name:    "all hits",
			resp:    resp,
			wantIDs: []string{"1", "2", "3"},
		},
		{
			name:    "trading cards only",
			opts:    []snkrdunk.SearcherOption{snkrdunk.WithTradingCardsOnly(true)},
			resp:    resp,
			wantIDs: []string{"1"},
		},
		{
			name: "failure is empty",
			err:  errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := mocks.NewMockCatalogClient(t)
			client.EXPECT().
				Search(mock.Anything, snkrdunk.SearchRequest{Keyword: "Pikachu 025/100", PerPage: 20, Page: 1}).
				Return(tt.resp, tt.err).
				Once()

			s := snkrdunk.NewSearcher(client, tt.opts...)
			got := s.Search(context.Background(), "Pikachu 025/100")

			assert.NotNil(t, got)
			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			if len(tt.wantIDs) == 0 {
				assert.Empty(t, ids)
			} else {
				assert.Equal(t, tt.wantIDs, ids)
			}
		})
	}
}

func TestSearcher_PerPage(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockCatalogClient(t)
	client.EXPECT().
		Search(mock.Anything, snkrdunk.SearchRequest{Keyword: "Eevee", PerPage: 5, Page: 1}).
		Return(&snkrdunk.SearchResponse{}, nil)

	got := snkrdunk.NewSearcher(client, snkrdunk.WithSearchPerPage(5)).Search(context.Background(), "Eevee")
	assert.Empty(t, got)
}

func TestFailureReason(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "budget", err: snkrdunk.ErrDailyLimitReached, want: "budget"},
		{name: "canceled", err: context.Canceled, want: "canceled"},
		{name: "deadline", err: context.DeadlineExceeded, want: "canceled"},
		{name: "status", err: &snkrdunk.StatusError{StatusCode: 500}, want: "status"},
		{name: "other", err: errors.New("dial tcp: refused"), want: "transport"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, snkrdunk.FailureReason(tt.err))
		})
	}
}
