// Package api assembles the Echo server: middleware, Huma operations, the
// popup page and operational endpoints.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/donaldgifford/card-price-checker/api/openapi"
	"github.com/donaldgifford/card-price-checker/internal/api/handlers"
	mw "github.com/donaldgifford/card-price-checker/internal/api/middleware"
	"github.com/donaldgifford/card-price-checker/internal/present"
)

// Services are the domain dependencies behind the HTTP surface.
type Services struct {
	Lookup handlers.LookupService
	Stats  handlers.StatsProvider
	Quota  handlers.QuotaProvider
	Board  *present.Board
}

// Options configure the server.
type Options struct {
	Version     string
	CORSOrigins []string
	Logger      *slog.Logger
	PopupOpts   []handlers.PopupOption
}

// Server is the configured Echo instance plus the popup worker it owns.
type Server struct {
	Echo  *echo.Echo
	API   huma.API
	popup *handlers.PopupHandler
}

// NewServer wires every route.
func NewServer(svc Services, opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	board := svc.Board
	if board == nil {
		board = present.NewBoard()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(mw.Recovery(log))
	e.Use(mw.RequestLog(log))
	e.Use(mw.Metrics())
	e.Use(mw.Tracing())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: opts.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, "X-Catalog-Cookie", "X-Request-ID"},
	}))

	health := handlers.NewHealthHandler(svc.Quota)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	cfg := huma.DefaultConfig("Card Price Checker API", opts.Version)
	cfg.Info.Description = "Matches marketplace card titles to SNKRDUNK products and reports graded price statistics."
	cfg.DocsPath = ""
	api := humaecho.New(e, cfg)
	openapi.RegisterRoutes(e)

	popupOpts := append([]handlers.PopupOption{handlers.WithPopupLogger(log)}, opts.PopupOpts...)
	popup := handlers.NewPopupHandler(svc.Lookup, board, popupOpts...)

	handlers.RegisterLookupRoutes(api, handlers.NewLookupHandler(svc.Lookup))
	handlers.RegisterStatsRoutes(api, handlers.NewStatsHandler(svc.Stats))
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(svc.Quota))
	handlers.RegisterPopupRoutes(api, popup)
	e.GET("/popup", popup.Page)

	return &Server{Echo: e, API: api, popup: popup}
}

// Start listens on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	if err := s.Echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving HTTP: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests and waits for background popup lookups.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.Echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	done := make(chan struct{})
	go func() {
		s.popup.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for popup lookups: %w", ctx.Err())
	}
}
