package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/card-price-checker/internal/snkrdunk"
)

// QuotaProvider reports the catalog request budget.
type QuotaProvider interface {
	Quota() snkrdunk.Quota
}

// QuotaHandler provides the catalog request budget endpoint.
type QuotaHandler struct {
	quota QuotaProvider
}

// NewQuotaHandler creates a new QuotaHandler. q may be nil.
func NewQuotaHandler(q QuotaProvider) *QuotaHandler {
	return &QuotaHandler{quota: q}
}

// QuotaBody is the budget returned by the quota endpoint.
type QuotaBody struct {
	DailyLimit int64     `json:"daily_limit" example:"5000"                 doc:"Configured daily request limit; 0 means unlimited"`
	DailyUsed  int64     `json:"daily_used"  example:"142"                  doc:"Catalog requests made in the current 24-hour window"`
	Remaining  int64     `json:"remaining"   example:"4858"                 doc:"Requests remaining in the current window"`
	Unlimited  bool      `json:"unlimited"   example:"false"                doc:"True when no daily limit is configured"`
	ResetAt    time.Time `json:"reset_at"    example:"2025-06-16T14:30:00Z" doc:"When the current 24-hour window expires"`
}

// QuotaOutput is the response for the quota endpoint.
type QuotaOutput struct {
	Body QuotaBody
}

// GetQuota returns the current catalog request budget.
func (h *QuotaHandler) GetQuota(_ context.Context, _ *struct{}) (*QuotaOutput, error) {
	resp := &QuotaOutput{}
	if h.quota == nil {
		resp.Body.Unlimited = true
		return resp, nil
	}

	q := h.quota.Quota()
	resp.Body = QuotaBody{
		DailyLimit: q.Limit,
		DailyUsed:  q.Used,
		Remaining:  q.Remaining,
		Unlimited:  q.Unlimited,
		ResetAt:    q.ResetAt,
	}

	return resp, nil
}

// RegisterQuotaRoutes registers the quota endpoint with the Huma API.
func RegisterQuotaRoutes(api huma.API, h *QuotaHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-quota",
		Method:      http.MethodGet,
		Path:        "/api/v1/quota",
		Summary:     "Get catalog request budget",
		Description: "Returns the daily catalog request usage, remaining budget, and window reset time.",
		Tags:        []string{"catalog"},
	}, h.GetQuota)
}
