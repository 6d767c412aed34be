package snkrdunk_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/card-price-checker/internal/snkrdunk"
	"github.com/donaldgifford/card-price-checker/internal/snkrdunk/mocks"
)

func TestClient_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		req             snkrdunk.SearchRequest
		handler         http.HandlerFunc
		wantErr         bool
		errContain      string
		wantProducts    int
		wantStreetwears int
	}{
		{
			name: "products and streetwears",
			req:  snkrdunk.SearchRequest{Keyword: "Pikachu 025/100", PerPage: 20},
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/search", r.URL.Path)
				assert.Equal(t, "Pikachu 025/100", r.URL.Query().Get("keyword"))
				assert.Equal(t, "20", r.URL.Query().Get("perPage"))
				assert.Equal(t, "1", r.URL.Query().Get("page"))
				assert.Equal(t, snkrdunk.DefaultUserAgent, r.Header.Get("User-Agent"))
				assert.Equal(t, "application/json", r.Header.Get("Accept"))

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{
					"products": [
						{"id": 101, "name": "Pikachu [SV4a 025/100]", "minPrice": 12000, "minPriceFormat": "US $80"},
						{"id": "102", "name": "Pikachu Promo", "minPrice": "9000", "isTradingCard": true}
					],
					"streetwears": [
						{"id": 9001, "name": "Pikachu Box"}
					]
				}`))
			},
			wantProducts:    2,
			wantStreetwears: 1,
		},
		{
			name: "missing collections",
			req:  snkrdunk.SearchRequest{Keyword: "nothing"},
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "20", r.URL.Query().Get("perPage"))
				_, _ = w.Write([]byte(`{}`))
			},
		},
		{
			name: "500 server error",
			req:  snkrdunk.SearchRequest{Keyword: "x"},
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr:    true,
			errContain: "status 500",
		},
		{
			name: "403 forbidden",
			req:  snkrdunk.SearchRequest{Keyword: "x"},
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`<html>blocked</html>`))
			},
			wantErr:    true,
			errContain: "status 403",
		},
		{
			name: "invalid JSON",
			req:  snkrdunk.SearchRequest{Keyword: "x"},
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("not valid json"))
			},
			wantErr:    true,
			errContain: "parsing search response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := snkrdunk.NewClient(snkrdunk.WithAPIURL(srv.URL))
			resp, err := client.Search(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContain)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, resp)
			assert.Len(t, resp.Products, tt.wantProducts)
			assert.Len(t, resp.Streetwears, tt.wantStreetwears)
		})
	}
}

func TestClient_Search_FlexibleIDs(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"products":[{"id":101,"name":"A","minPrice":1.5},{"id":"abc","name":"B","minPrice":null}]}`))
	}))
	defer srv.Close()

	resp, err := snkrdunk.NewClient(snkrdunk.WithAPIURL(srv.URL)).
		Search(context.Background(), snkrdunk.SearchRequest{Keyword: "x"})
	require.NoError(t, err)
	require.Len(t, resp.Products, 2)
	assert.Equal(t, "101", resp.Products[0].ID.String())
	assert.Equal(t, "1.5", resp.Products[0].MinPrice.String())
	assert.Equal(t, "abc", resp.Products[1].ID.String())
	assert.Empty(t, resp.Products[1].MinPrice.String())
}

func TestClient_UsedListings(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trading-cards/101/used-listings", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "50", q.Get("perPage"))
		assert.Equal(t, "3", q.Get("page"))
		assert.Equal(t, "latest", q.Get("sortType"))
		assert.Equal(t, "false", q.Get("isOnlyOnSale"))

		_, _ = w.Write([]byte(`{"usedTradingCards":[
			{"id":1,"condition":"PSA 10","price":"US $120","isSold":false,"updatedAt":"2025-06-01T10:00:00Z"},
			{"id":2,"condition":"PSA 9","price":"US $40","isSold":true}
		]}`))
	}))
	defer srv.Close()

	items, err := snkrdunk.NewClient(snkrdunk.WithAPIURL(srv.URL)).
		UsedListings(context.Background(), snkrdunk.PageRequest{ProductID: "101", PerPage: 50, Page: 3})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "US $120", items[0].Price.String())
	assert.True(t, items[1].IsSold)
}

func TestClient_TradingHistories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "histories key", body: `{"histories":[{"price":"$1"},{"price":"$2"}]}`, want: 2},
		{name: "legacy history key", body: `{"history":[{"price":"$1"}]}`, want: 1},
		{name: "neither key", body: `{"items":[]}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/streetwears/55/trading-histories", r.URL.Path)
				assert.Equal(t, "100", r.URL.Query().Get("perPage"))
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			items, err := snkrdunk.NewClient(snkrdunk.WithAPIURL(srv.URL)).
				TradingHistories(context.Background(), snkrdunk.PageRequest{ProductID: "55", PerPage: 100, Page: 1})
			require.NoError(t, err)
			assert.Len(t, items, tt.want)
		})
	}
}

func TestClient_ForwardsCookies(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("session")
		if assert.NoError(t, err) {
			assert.Equal(t, "abc", c.Value)
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	cookies := mocks.NewMockCookieProvider(t)
	cookies.EXPECT().
		Cookies(mock.Anything).
		Return([]*http.Cookie{{Name: "session", Value: "abc"}}, nil).
		Once()

	client := snkrdunk.NewClient(snkrdunk.WithAPIURL(srv.URL), snkrdunk.WithCookies(cookies))
	_, err := client.Search(context.Background(), snkrdunk.SearchRequest{Keyword: "x"})
	require.NoError(t, err)
}

func TestClient_CookieProviderError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("request should not be sent")
	}))
	defer srv.Close()

	cookies := mocks.NewMockCookieProvider(t)
	cookies.EXPECT().
		Cookies(mock.Anything).
		Return(nil, errors.New("jar unavailable"))

	client := snkrdunk.NewClient(snkrdunk.WithAPIURL(srv.URL), snkrdunk.WithCookies(cookies))
	_, err := client.Search(context.Background(), snkrdunk.SearchRequest{Keyword: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "getting cookies")
}

func TestClient_RateLimited(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	// Daily budget of 1.
	rl := snkrdunk.NewRateLimiter(100, 10, 1)
	client := snkrdunk.NewClient(snkrdunk.WithAPIURL(srv.URL), snkrdunk.WithRateLimiter(rl))
	assert.Same(t, rl, client.RateLimiter())

	_, err := client.Search(context.Background(), snkrdunk.SearchRequest{Keyword: "x"})
	require.NoError(t, err)

	_, err = client.Search(context.Background(), snkrdunk.SearchRequest{Keyword: "x"})
	require.ErrorIs(t, err, snkrdunk.ErrDailyLimitReached)
	assert.Contains(t, err.Error(), "rate limit:")
}

func TestStatusError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := snkrdunk.NewClient(snkrdunk.WithAPIURL(srv.URL)).
		UsedListings(context.Background(), snkrdunk.PageRequest{ProductID: "1", PerPage: 50, Page: 1})

	var statusErr *snkrdunk.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
	assert.Equal(t, snkrdunk.EndpointListings, statusErr.Endpoint)
	assert.Equal(t, "status", snkrdunk.FailureReason(err))
}
