package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/card-price-checker/internal/api/handlers"
	"github.com/donaldgifford/card-price-checker/internal/api/handlers/mocks"
	"github.com/donaldgifford/card-price-checker/internal/snkrdunk"
)

func TestHealthz(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Healthz(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestReadyz(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		quota      *snkrdunk.Quota
		wantStatus int
		wantBody   string
	}{
		{
			name:       "no quota provider is ready",
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ready"}`,
		},
		{
			name:       "unlimited budget is ready",
			quota:      &snkrdunk.Quota{Used: 9000, Unlimited: true},
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ready"}`,
		},
		{
			name:       "remaining budget is ready",
			quota:      &snkrdunk.Quota{Used: 10, Limit: 100, Remaining: 90},
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ready"}`,
		},
		{
			name:       "spent budget is not ready",
			quota:      &snkrdunk.Quota{Used: 100, Limit: 100},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"budget_exhausted"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var h *handlers.HealthHandler
			if tt.quota != nil {
				qp := mocks.NewMockQuotaProvider(t)
				qp.EXPECT().Quota().Return(*tt.quota).Once()
				h = handlers.NewHealthHandler(qp)
			} else {
				h = handlers.NewHealthHandler(nil)
			}

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, h.Readyz(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
