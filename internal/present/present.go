// Package present turns lookup results into display patches for the popup
// page, the extension and the CLI.
package present

//go:generate templ generate -f popup.templ

import (
	"strconv"
	"time"

	"github.com/donaldgifford/card-price-checker/pkg/stats"
	domain "github.com/donaldgifford/card-price-checker/pkg/types"
)

// Status and placeholder strings.
const (
	StatusLivePrice   = "Live Price"
	StatusNotListed   = "Not listed"
	StatusAverageSold = "Average Sold"
	StatusNoHistory   = "No history"
	StatusUnitsSold   = "Units Sold"
	StatusNoMatch     = "No match found"
	StatusUnavailable = "Data unavailable"
	StatusSearching   = "Searching..."
	StatusCalculating = "Calculating..."
	StatusWaiting     = "Waiting for page..."

	MessageNavigate    = "Navigate to the card page"
	MessageNoMatch     = "No match found"
	MessageUnavailable = "Data unavailable"

	HistoryManualSearch = "Check title or try manual search"
	HistoryLoading      = "Loading history..."

	CardNotFound = "Card not found"
	soldStatus   = "SOLD"
	pending      = "..."
	marketPrefix = "Min Market: "
	noMarket     = "--"
)

// HistoryRow is one recent sale.
type HistoryRow struct {
	Condition string `json:"condition"`
	Price     string `json:"price"`
	Status    string `json:"status"`
	Date      string `json:"date,omitempty"`
}

// ChartPoint is one weekly bucket ready for plotting.
type ChartPoint struct {
	Week     string `json:"week"`
	AvgPrice string `json:"avg_price"`
	Volume   int    `json:"volume"`
}

// Link is the popup's primary action.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Patch is the full set of values a view needs to display a result. Views
// replace every field they render; nothing is merged.
type Patch struct {
	Outcome      domain.Outcome `json:"outcome"`
	CardName     string         `json:"card_name"`
	LivePrice    string         `json:"live_price"`
	LiveStatus   string         `json:"live_status"`
	AvgPrice     string         `json:"avg_price"`
	AvgStatus    string         `json:"avg_status"`
	UnitsSold    string         `json:"units_sold"`
	UnitsStatus  string         `json:"units_status"`
	MarketMin    string         `json:"market_min"`
	History      []HistoryRow   `json:"history"`
	HistoryEmpty string         `json:"history_empty,omitempty"`
	Chart        []ChartPoint   `json:"chart"`
	Link         *Link          `json:"link,omitempty"`
	Message      string         `json:"message,omitempty"`
}

// Loading is the patch shown while a lookup for title is in flight.
func Loading(title string) Patch {
	return Patch{
		CardName:     title,
		LivePrice:    pending,
		LiveStatus:   StatusSearching,
		AvgPrice:     pending,
		AvgStatus:    StatusCalculating,
		UnitsSold:    pending,
		UnitsStatus:  StatusCalculating,
		MarketMin:    marketPrefix + noMarket,
		HistoryEmpty: HistoryLoading,
	}
}

// RenderResult maps a lookup result to a patch. It has no side effects.
func RenderResult(res domain.LookupResult) Patch {
	p := Patch{
		Outcome:     res.Outcome,
		CardName:    res.Title,
		LivePrice:   domain.NotAvailable,
		AvgPrice:    domain.NotAvailable,
		UnitsSold:   "0",
		UnitsStatus: StatusUnitsSold,
		MarketMin:   marketLabel(res.MarketMin),
	}

	switch res.Outcome {
	case domain.OutcomeInputUnavailable:
		p.CardName = CardNotFound
		p.LiveStatus = StatusWaiting
		p.AvgStatus = StatusWaiting
		p.Message = MessageNavigate
		return p

	case domain.OutcomeNoMatch:
		p.LiveStatus = StatusNoMatch
		p.AvgStatus = StatusNoMatch
		p.HistoryEmpty = HistoryManualSearch
		p.Message = MessageNoMatch
		if res.ManualSearchURL != "" {
			p.Link = &Link{Label: "Search on SNKRDUNK", URL: res.ManualSearchURL}
		}
		return p
	}

	if res.ProductURL != "" {
		p.Link = &Link{Label: "View on SNKRDUNK", URL: res.ProductURL}
	}

	if res.Outcome == domain.OutcomeDataUnavailable || res.Stats == nil {
		p.LiveStatus = StatusUnavailable
		p.AvgStatus = StatusUnavailable
		p.HistoryEmpty = MessageUnavailable
		p.Message = MessageUnavailable
		return p
	}

	s := res.Stats
	p.LivePrice = s.LiveAsk.Display
	p.LiveStatus = StatusNotListed
	if s.LiveAsk.Available {
		p.LiveStatus = StatusLivePrice
	}

	p.AvgPrice = s.TrimmedAverage.Display
	p.AvgStatus = StatusNoHistory
	if s.TrimmedAverage.Available {
		p.AvgStatus = StatusAverageSold
	}

	p.UnitsSold = strconv.Itoa(s.UnitsSold30d)
	p.History = historyRows(s.RecentSales)
	if len(p.History) == 0 {
		p.HistoryEmpty = "No recent " + s.Grade + " trades"
	}
	p.Chart = chartPoints(s.WeeklyBuckets)

	return p
}

func marketLabel(m domain.Money) string {
	if !m.Available || m.Display == "" {
		return marketPrefix + noMarket
	}
	return marketPrefix + m.Display
}

func historyRows(sales []domain.Sale) []HistoryRow {
	rows := make([]HistoryRow, 0, len(sales))
	for _, s := range sales {
		row := HistoryRow{
			Condition: s.Condition,
			Price:     s.Price,
			Status:    soldStatus,
		}
		if s.Timestamp != nil {
			row.Date = s.Timestamp.Format(time.DateOnly)
		}
		rows = append(rows, row)
	}
	return rows
}

func chartPoints(buckets []domain.WeeklyBucket) []ChartPoint {
	points := make([]ChartPoint, 0, len(buckets))
	for _, b := range buckets {
		pt := ChartPoint{
			Week:     b.Start.Format("Jan 2"),
			AvgPrice: domain.NotAvailable,
			Volume:   b.Volume,
		}
		if b.AvgPrice != nil {
			pt.AvgPrice = stats.FormatUSD(*b.AvgPrice)
		}
		points = append(points, pt)
	}
	return points
}
