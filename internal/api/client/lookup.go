package client

import (
	"context"

	"github.com/donaldgifford/card-price-checker/internal/present"
	domain "github.com/donaldgifford/card-price-checker/pkg/types"
)

// LookupResponse is the pipeline result plus its display patch.
type LookupResponse struct {
	Result domain.LookupResult `json:"result"`
	Patch  present.Patch       `json:"patch"`
}

// NormalizeResponse is the identity and query plan for a title.
type NormalizeResponse struct {
	Identity domain.CardIdentity `json:"identity"`
	Plan     domain.QueryPlan    `json:"plan"`
}

type titleRequest struct {
	Title  string `json:"title"`
	Cookie string `json:"cookie,omitempty"`
}

// Lookup runs the full pipeline for title.
func (c *Client) Lookup(ctx context.Context, title string) (*LookupResponse, error) {
	var resp LookupResponse
	if err := c.post(ctx, "/api/v1/lookup", titleRequest{Title: title, Cookie: c.cookie}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Normalize returns the identity and query plan for title without searching.
func (c *Client) Normalize(ctx context.Context, title string) (*NormalizeResponse, error) {
	var resp NormalizeResponse
	if err := c.post(ctx, "/api/v1/normalize", titleRequest{Title: title}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// OpenPopup starts a background popup lookup and returns its session.
func (c *Client) OpenPopup(ctx context.Context, title string) (*present.Session, error) {
	var resp struct {
		Session present.Session `json:"session"`
	}
	if err := c.post(ctx, "/api/v1/popup/open", titleRequest{Title: title, Cookie: c.cookie}, &resp); err != nil {
		return nil, err
	}
	return &resp.Session, nil
}

// Popup returns the current popup state.
func (c *Client) Popup(ctx context.Context) (*present.Snapshot, error) {
	var snap present.Snapshot
	if err := c.get(ctx, "/api/v1/popup", &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
