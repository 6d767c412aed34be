package snkrdunk

import (
	"strings"
	"time"

	domain "github.com/donaldgifford/card-price-checker/pkg/types"
)

const defaultCondition = "Used"

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// ToProducts flattens a search response into catalog products, products
// first then streetwears.
func ToProducts(resp *SearchResponse) []domain.CatalogProduct {
	if resp == nil {
		return nil
	}
	out := make([]domain.CatalogProduct, 0, len(resp.Products)+len(resp.Streetwears))
	for i := range resp.Products {
		out = append(out, toProduct(&resp.Products[i], domain.CategoryProduct))
	}
	for i := range resp.Streetwears {
		out = append(out, toProduct(&resp.Streetwears[i], domain.CategoryStreetwear))
	}
	return out
}

func toProduct(p *Product, category string) domain.CatalogProduct {
	// Hits without the flag are trading cards only when they come from the
	// products collection.
	isCard := category == domain.CategoryProduct
	if p.IsTradingCard != nil {
		isCard = *p.IsTradingCard
	}
	return domain.CatalogProduct{
		ID:             p.ID.String(),
		Name:           strings.TrimSpace(p.Name),
		MinPrice:       p.MinPrice.String(),
		MinPriceFormat: p.MinPriceFormat,
		IsTradingCard:  isCard,
		Category:       category,
	}
}

// UsedListingsToDomain converts used-listing rows.
func UsedListingsToDomain(items []UsedListing) []domain.Listing {
	out := make([]domain.Listing, 0, len(items))
	for i := range items {
		it := &items[i]
		out = append(out, domain.Listing{
			Source:    domain.SourceUsedListing,
			Condition: conditionOrDefault(it.Condition),
			Price:     it.Price.String(),
			IsSold:    it.IsSold,
			Timestamp: ParseTimestamp(it.UpdatedAt, it.CreatedAt),
		})
	}
	return out
}

// HistoriesToDomain converts trade-history rows. Every history row is a sale.
func HistoriesToDomain(items []TradeHistory) []domain.Listing {
	out := make([]domain.Listing, 0, len(items))
	for i := range items {
		it := &items[i]
		out = append(out, domain.Listing{
			Source:    domain.SourceTradingHistory,
			Condition: conditionOrDefault(it.Condition),
			Price:     it.Price.String(),
			IsSold:    true,
			Timestamp: ParseTimestamp(it.TradedAt, it.Date, it.UpdatedAt, it.CreatedAt),
		})
	}
	return out
}

// ParseTimestamp returns the first candidate that parses in a known layout,
// or nil.
func ParseTimestamp(candidates ...string) *time.Time {
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, c); err == nil {
				return &t
			}
		}
	}
	return nil
}

func conditionOrDefault(c string) string {
	if c = strings.TrimSpace(c); c != "" {
		return c
	}
	return defaultCondition
}
