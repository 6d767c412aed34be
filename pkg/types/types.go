// Package domain defines the core types shared by the card price checker.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CardIdentity is the structured reading of a marketplace title.
// Every field is either empty or derived from the raw title.
type CardIdentity struct {
	Subject    string `json:"subject"`
	CardNumber string `json:"card_number"`
	SetMarker  string `json:"set_marker"`
	Year       string `json:"year"`
	Language   string `json:"language"`
	Cleaned    string `json:"cleaned"`
}

// IsEmpty reports whether no identity field could be derived.
func (c CardIdentity) IsEmpty() bool {
	return c.Subject == "" && c.CardNumber == "" && c.SetMarker == "" &&
		c.Year == "" && c.Language == ""
}

// QueryKind names the strategy that produced a search query.
type QueryKind string

// Query kinds in rank order within their tier.
const (
	QuerySet   QueryKind = "set"
	QueryLean  QueryKind = "lean"
	QuerySmart QueryKind = "smart"
	QueryBroad QueryKind = "broad"
	QueryID    QueryKind = "id"
)

// Query is one candidate search string.
type Query struct {
	Kind QueryKind `json:"kind"`
	Text string    `json:"text"`
}

// QueryPlan is the ranked set of queries for one lookup. Primary queries are
// dispatched together; fallback queries run one at a time afterwards.
type QueryPlan struct {
	Primary  []Query `json:"primary"`
	Fallback []Query `json:"fallback"`
}

// All returns every query text in evaluation order.
func (p QueryPlan) All() []string {
	out := make([]string, 0, len(p.Primary)+len(p.Fallback))
	for _, q := range p.Primary {
		out = append(out, q.Text)
	}
	for _, q := range p.Fallback {
		out = append(out, q.Text)
	}
	return out
}

// Lookup returns the first query of the given kind.
func (p QueryPlan) Lookup(kind QueryKind) (Query, bool) {
	for _, q := range p.Primary {
		if q.Kind == kind {
			return q, true
		}
	}
	for _, q := range p.Fallback {
		if q.Kind == kind {
			return q, true
		}
	}
	return Query{}, false
}

// Product categories returned by the catalog search.
const (
	CategoryProduct    = "product"
	CategoryStreetwear = "streetwear"
)

// CatalogProduct is a catalog search hit. Treated as read-only.
type CatalogProduct struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	MinPrice       string `json:"min_price,omitempty"`
	MinPriceFormat string `json:"min_price_format,omitempty"`
	IsTradingCard  bool   `json:"is_trading_card"`
	Category       string `json:"category"`
}

// MatchResult is the selected product, or a nil Product when nothing
// cleared the acceptance threshold.
type MatchResult struct {
	Product      *CatalogProduct `json:"product,omitempty"`
	MatchedQuery string          `json:"matched_query,omitempty"`
	Kind         QueryKind       `json:"kind,omitempty"`
	Score        int             `json:"score"`
}

// Matched reports whether a product was accepted.
func (m MatchResult) Matched() bool {
	return m.Product != nil
}

// ListingSource distinguishes the two listing feeds.
type ListingSource string

// Listing sources.
const (
	SourceUsedListing    ListingSource = "used_listing"
	SourceTradingHistory ListingSource = "trading_history"
)

// Listing is one row from either the used-listings or trading-history feed.
type Listing struct {
	Source    ListingSource `json:"source"`
	Condition string        `json:"condition"`
	Price     string        `json:"price"`
	IsSold    bool          `json:"is_sold"`
	Timestamp *time.Time    `json:"timestamp,omitempty"`
}

// NotAvailable is the display form of a missing monetary value.
const NotAvailable = "N/A"

// Money is a USD amount with its display string.
type Money struct {
	Amount    decimal.Decimal `json:"amount"`
	Display   string          `json:"display"`
	Available bool            `json:"available"`
}

// Unavailable returns the N/A money value.
func Unavailable() Money {
	return Money{Display: NotAvailable}
}

// WeeklyBucket aggregates sold rows whose timestamp falls in [Start, End).
// AvgPrice is nil when the bucket is empty.
type WeeklyBucket struct {
	Start    time.Time        `json:"start"`
	End      time.Time        `json:"end"`
	AvgPrice *decimal.Decimal `json:"avg_price,omitempty"`
	Volume   int              `json:"volume"`
}

// Sale is a recent sold row shown in the history table.
type Sale struct {
	Price     string     `json:"price"`
	Condition string     `json:"condition"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// AggregateStats summarises the listings of one product for one grade.
type AggregateStats struct {
	Grade          string         `json:"grade"`
	LiveAsk        Money          `json:"live_ask"`
	TrimmedAverage Money          `json:"trimmed_average"`
	UnitsSold30d   int            `json:"units_sold_30d"`
	WeeklyBuckets  []WeeklyBucket `json:"weekly_buckets"`
	RecentSales    []Sale         `json:"recent_sales"`
	PagesFetched   int            `json:"pages_fetched"`
	PagesFailed    int            `json:"pages_failed"`
	DataAvailable  bool           `json:"data_available"`
}

// Outcome is the terminal state of a lookup.
type Outcome string

// Lookup outcomes.
const (
	OutcomeMatched          Outcome = "matched"
	OutcomeNoMatch          Outcome = "no_match"
	OutcomeInputUnavailable Outcome = "input_unavailable"
	OutcomeDataUnavailable  Outcome = "data_unavailable"
)

// LookupResult is everything produced for one title.
type LookupResult struct {
	Title           string          `json:"title"`
	Identity        CardIdentity    `json:"identity"`
	Plan            QueryPlan       `json:"plan"`
	Match           MatchResult     `json:"match"`
	Stats           *AggregateStats `json:"stats,omitempty"`
	MarketMin       Money           `json:"market_min"`
	Outcome         Outcome         `json:"outcome"`
	ManualSearchURL string          `json:"manual_search_url,omitempty"`
	ProductURL      string          `json:"product_url,omitempty"`
}
