package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/card-price-checker/internal/api/handlers"
	"github.com/donaldgifford/card-price-checker/internal/api/handlers/mocks"
	"github.com/donaldgifford/card-price-checker/internal/present"
	domain "github.com/donaldgifford/card-price-checker/pkg/types"
)

func newPopupHandler(svc handlers.LookupService) *handlers.PopupHandler {
	return handlers.NewPopupHandler(svc, present.NewBoard(),
		handlers.WithPopupLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

func decodeSnapshot(t *testing.T, body io.Reader) present.Snapshot {
	t.Helper()
	var snap present.Snapshot
	require.NoError(t, json.NewDecoder(body).Decode(&snap))
	return snap
}

func TestPopupHandler_OpenThenGet(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	svc := mocks.NewMockLookupService(t)
	svc.EXPECT().Lookup(mock.Anything, pikachuTitle).
		RunAndReturn(func(context.Context, string) domain.LookupResult {
			<-release
			return matchedResult()
		}).Once()

	h := newPopupHandler(svc)
	_, api := humatest.New(t)
	handlers.RegisterPopupRoutes(api, h)

	resp := api.Post("/api/v1/popup/open", map[string]any{"title": pikachuTitle})
	require.Equal(t, http.StatusAccepted, resp.Code)
	assert.Contains(t, resp.Body.String(), `"token":1`)

	resp = api.Get("/api/v1/popup")
	require.Equal(t, http.StatusOK, resp.Code)
	snap := decodeSnapshot(t, resp.Body)
	assert.True(t, snap.Pending)
	assert.Equal(t, present.Loading(pikachuTitle), snap.Patch)

	close(release)
	h.Wait()

	resp = api.Get("/api/v1/popup")
	require.Equal(t, http.StatusOK, resp.Code)
	snap = decodeSnapshot(t, resp.Body)
	assert.False(t, snap.Pending)
	assert.Equal(t, domain.OutcomeMatched, snap.Patch.Outcome)
	assert.Equal(t, "US $120", snap.Patch.LivePrice)
}

func TestPopupHandler_StaleLookupDiscarded(t *testing.T) {
	t.Parallel()

	const newer = "PSA 10 Charizard #006/165"

	releaseOld := make(chan struct{})
	svc := mocks.NewMockLookupService(t)
	svc.EXPECT().Lookup(mock.Anything, pikachuTitle).
		RunAndReturn(func(context.Context, string) domain.LookupResult {
			<-releaseOld
			return matchedResult()
		}).Once()
	svc.EXPECT().Lookup(mock.Anything, newer).
		Return(domain.LookupResult{Title: newer, Outcome: domain.OutcomeNoMatch}).Once()

	h := newPopupHandler(svc)
	_, api := humatest.New(t)
	handlers.RegisterPopupRoutes(api, h)

	require.Equal(t, http.StatusAccepted, api.Post("/api/v1/popup/open", map[string]any{"title": pikachuTitle}).Code)
	require.Equal(t, http.StatusAccepted, api.Post("/api/v1/popup/open", map[string]any{"title": newer}).Code)

	// The older lookup finishes last and must not overwrite the newer result.
	close(releaseOld)
	h.Wait()

	snap := decodeSnapshot(t, api.Get("/api/v1/popup").Body)
	assert.Equal(t, uint64(2), snap.Session.Token)
	assert.Equal(t, domain.OutcomeNoMatch, snap.Patch.Outcome)
	assert.Equal(t, newer, snap.Patch.CardName)
}

func TestPopupHandler_Page(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockLookupService(t)
	svc.EXPECT().Lookup(mock.Anything, "<b>Pikachu</b>").
		Return(domain.LookupResult{Title: "<b>Pikachu</b>", Outcome: domain.OutcomeNoMatch}).Once()

	h := newPopupHandler(svc)
	_, api := humatest.New(t)
	handlers.RegisterPopupRoutes(api, h)

	require.Equal(t, http.StatusAccepted, api.Post("/api/v1/popup/open", map[string]any{"title": "<b>Pikachu</b>"}).Code)
	h.Wait()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/popup", http.NoBody)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Page(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))

	body := rec.Body.String()
	assert.Contains(t, body, `<h1 id="cardName">&lt;b&gt;Pikachu&lt;/b&gt;</h1>`)
	assert.Contains(t, body, present.StatusNoMatch)
	assert.NotContains(t, body, "<b>Pikachu</b>")
}
