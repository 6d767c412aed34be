package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/card-price-checker/internal/present"
	"github.com/donaldgifford/card-price-checker/internal/snkrdunk"
)

const defaultPopupTimeout = 60 * time.Second

// PopupHandler drives the popup board: opening starts a background lookup
// whose result is committed only if no newer open has happened since.
type PopupHandler struct {
	svc     LookupService
	board   *present.Board
	timeout time.Duration
	log     *slog.Logger

	wg sync.WaitGroup
}

// PopupOption configures a PopupHandler.
type PopupOption func(*PopupHandler)

// WithPopupTimeout bounds each background lookup.
func WithPopupTimeout(d time.Duration) PopupOption {
	return func(h *PopupHandler) {
		h.timeout = d
	}
}

// WithPopupLogger sets the logger.
func WithPopupLogger(l *slog.Logger) PopupOption {
	return func(h *PopupHandler) {
		h.log = l
	}
}

// NewPopupHandler creates a new PopupHandler.
func NewPopupHandler(svc LookupService, board *present.Board, opts ...PopupOption) *PopupHandler {
	h := &PopupHandler{
		svc:     svc,
		board:   board,
		timeout: defaultPopupTimeout,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// PopupOpenInput is the request body for opening the popup.
type PopupOpenInput struct {
	Body struct {
		Title  string `json:"title"            doc:"Product title read from the active page" example:"PSA 10 2023 Pokemon Japanese Pikachu #025/100"`
		Cookie string `json:"cookie,omitempty" doc:"Cookie header forwarded to the catalog"`
	}
}

// PopupOpenOutput returns the session the background lookup belongs to.
type PopupOpenOutput struct {
	Body struct {
		Session present.Session `json:"session" doc:"Popup session; only the newest commits its result"`
	}
}

// Open shows the loading patch and starts the lookup in the background.
func (h *PopupHandler) Open(ctx context.Context, input *PopupOpenInput) (*PopupOpenOutput, error) {
	title := input.Body.Title
	session := h.board.Begin(title)

	bg := snkrdunk.ContextWithCookieHeader(context.WithoutCancel(ctx), input.Body.Cookie)
	h.wg.Go(func() {
		bg, cancel := context.WithTimeout(bg, h.timeout)
		defer cancel()

		res := h.svc.Lookup(bg, title)
		if !h.board.Commit(session, present.RenderResult(res)) {
			h.log.Debug("discarding stale popup result",
				"session", session.ID,
				"token", session.Token,
				"outcome", res.Outcome,
			)
		}
	})

	out := &PopupOpenOutput{}
	out.Body.Session = session
	return out, nil
}

// PopupOutput is the current popup state.
type PopupOutput struct {
	Body present.Snapshot
}

// Get returns the current popup state.
func (h *PopupHandler) Get(_ context.Context, _ *struct{}) (*PopupOutput, error) {
	return &PopupOutput{Body: h.board.Current()}, nil
}

// Page renders the current popup state as HTML.
//
// @Summary Popup page
// @Description Renders the current popup patch as an HTML page.
// @Tags popup
// @Produce html
// @Success 200
// @Router /popup [get]
func (h *PopupHandler) Page(c echo.Context) error {
	snap := h.board.Current()
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return present.Page(snap.Patch).Render(c.Request().Context(), c.Response())
}

// Wait blocks until background lookups have finished.
func (h *PopupHandler) Wait() {
	h.wg.Wait()
}

// RegisterPopupRoutes registers the popup endpoints with the Huma API.
func RegisterPopupRoutes(api huma.API, h *PopupHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "open-popup",
		Method:        http.MethodPost,
		Path:          "/api/v1/popup/open",
		Summary:       "Open the popup for a title",
		Description:   "Shows the loading state and runs the lookup in the background. A later open supersedes this one.",
		Tags:          []string{"popup"},
		DefaultStatus: http.StatusAccepted,
	}, h.Open)

	huma.Register(api, huma.Operation{
		OperationID: "get-popup",
		Method:      http.MethodGet,
		Path:        "/api/v1/popup",
		Summary:     "Get the popup state",
		Description: "Returns the newest session, whether its lookup is pending, and the display patch.",
		Tags:        []string{"popup"},
	}, h.Get)
}
