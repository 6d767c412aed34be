package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/card-price-checker/internal/present"
	"github.com/donaldgifford/card-price-checker/internal/snkrdunk"
	domain "github.com/donaldgifford/card-price-checker/pkg/types"
)

// LookupService runs the title-to-price pipeline.
type LookupService interface {
	Lookup(ctx context.Context, title string) domain.LookupResult
	Normalize(title string) (domain.CardIdentity, domain.QueryPlan)
}

// LookupHandler handles lookup and normalize requests.
type LookupHandler struct {
	svc LookupService
}

// NewLookupHandler creates a new LookupHandler.
func NewLookupHandler(svc LookupService) *LookupHandler {
	return &LookupHandler{svc: svc}
}

// LookupInput is the request body for the lookup endpoint. An empty title
// is not a validation error; it yields the input_unavailable outcome.
type LookupInput struct {
	Body struct {
		Title  string `json:"title"            doc:"Product title as shown on the marketplace page" example:"PSA 10 2023 Pokemon Japanese Pikachu #025/100"`
		Cookie string `json:"cookie,omitempty" doc:"Cookie header forwarded to the catalog"`
	}
}

// LookupOutput is the response for the lookup endpoint.
type LookupOutput struct {
	Body struct {
		Result domain.LookupResult `json:"result" doc:"Pipeline result"`
		Patch  present.Patch       `json:"patch"  doc:"Display values for the result"`
	}
}

// Lookup runs the pipeline for a title. Catalog failures surface as
// outcomes, never as 5xx.
func (h *LookupHandler) Lookup(ctx context.Context, input *LookupInput) (*LookupOutput, error) {
	ctx = snkrdunk.ContextWithCookieHeader(ctx, input.Body.Cookie)

	res := h.svc.Lookup(ctx, input.Body.Title)

	out := &LookupOutput{}
	out.Body.Result = res
	out.Body.Patch = present.RenderResult(res)
	return out, nil
}

// NormalizeInput is the request body for the normalize endpoint.
type NormalizeInput struct {
	Body struct {
		Title string `json:"title" minLength:"1" doc:"Product title" example:"PSA 10 2023 Pokemon Japanese Pikachu #025/100"`
	}
}

// NormalizeOutput is the response for the normalize endpoint.
type NormalizeOutput struct {
	Body struct {
		Identity domain.CardIdentity `json:"identity" doc:"Fields extracted from the title"`
		Plan     domain.QueryPlan    `json:"plan"     doc:"Ranked catalog queries"`
	}
}

// Normalize extracts the card identity and query plan without searching.
func (h *LookupHandler) Normalize(_ context.Context, input *NormalizeInput) (*NormalizeOutput, error) {
	id, plan := h.svc.Normalize(input.Body.Title)

	out := &NormalizeOutput{}
	out.Body.Identity = id
	out.Body.Plan = plan
	return out, nil
}

// RegisterLookupRoutes registers lookup endpoints with the Huma API.
func RegisterLookupRoutes(api huma.API, h *LookupHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "lookup-card",
		Method:      http.MethodPost,
		Path:        "/api/v1/lookup",
		Summary:     "Look up a card title",
		Description: "Normalizes the title, searches the catalog, selects the best match, and aggregates graded pricing.",
		Tags:        []string{"lookup"},
	}, h.Lookup)

	huma.Register(api, huma.Operation{
		OperationID: "normalize-title",
		Method:      http.MethodPost,
		Path:        "/api/v1/normalize",
		Summary:     "Normalize a card title",
		Description: "Returns the extracted card identity and the ranked query plan without contacting the catalog.",
		Tags:        []string{"lookup"},
	}, h.Normalize)
}
