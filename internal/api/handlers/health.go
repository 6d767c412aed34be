// Package handlers implements HTTP handlers for the card-price-checker API.
package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	quota QuotaProvider
}

// NewHealthHandler creates a new HealthHandler. q may be nil.
func NewHealthHandler(q QuotaProvider) *HealthHandler {
	return &HealthHandler{quota: q}
}

// Healthz returns 200 if the process is running.
//
// @Summary Liveness check
// @Description Returns 200 if the process is running.
// @Tags health
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /healthz [get]
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 while catalog requests can still be made, 503 once the
// daily request budget is spent.
//
// @Summary Readiness check
// @Description Returns 200 while the catalog request budget has room, 503 otherwise.
// @Tags health
// @Produce json
// @Success 200 {object} StatusResponse
// @Failure 503 {object} StatusResponse
// @Router /readyz [get]
func (h *HealthHandler) Readyz(c echo.Context) error {
	if h.quota != nil {
		if q := h.quota.Quota(); !q.Unlimited && q.Remaining <= 0 {
			return c.JSON(
				http.StatusServiceUnavailable,
				StatusResponse{Status: "budget_exhausted"},
			)
		}
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "ready"})
}
