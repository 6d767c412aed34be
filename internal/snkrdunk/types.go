package snkrdunk

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FlexString decodes a JSON string or number into its textual form.
// The catalog is inconsistent about numeric ids and prices.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// String returns the underlying text.
func (f FlexString) String() string {
	return string(f)
}

// SearchResponse is the /search payload.
type SearchResponse struct {
	Products    []Product `json:"products"`
	Streetwears []Product `json:"streetwears"`
}

// Product is one search hit.
type Product struct {
	ID             FlexString `json:"id"`
	Name           string     `json:"name"`
	MinPrice       FlexString `json:"minPrice"`
	MinPriceFormat string     `json:"minPriceFormat"`
	IsTradingCard  *bool      `json:"isTradingCard,omitempty"`
}

type usedListingsResponse struct {
	UsedTradingCards []UsedListing `json:"usedTradingCards"`
}

// UsedListing is one row of the used-listings feed.
type UsedListing struct {
	ID        FlexString `json:"id"`
	Condition string     `json:"condition"`
	Price     FlexString `json:"price"`
	IsSold    bool       `json:"isSold"`
	UpdatedAt string     `json:"updatedAt"`
	CreatedAt string     `json:"createdAt"`
}

// historiesResponse accepts both the current and legacy collection keys.
type historiesResponse struct {
	Histories []TradeHistory `json:"histories"`
	History   []TradeHistory `json:"history"`
}

func (r historiesResponse) items() []TradeHistory {
	if len(r.Histories) > 0 {
		return r.Histories
	}
	return r.History
}

// TradeHistory is one completed trade.
type TradeHistory struct {
	Price     FlexString `json:"price"`
	Condition string     `json:"condition"`
	Status    string     `json:"status"`
	Date      string     `json:"date"`
	TradedAt  string     `json:"tradedAt"`
	UpdatedAt string     `json:"updatedAt"`
	CreatedAt string     `json:"createdAt"`
}
