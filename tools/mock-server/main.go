// Package main implements a mock SNKRDUNK catalog server for local
// development. It serves search, used-listings and trading-history feeds
// from a JSON fixture so the checker can run without network access.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// catalogFixture is the on-disk fixture shape. Timestamps are stored as
// day offsets so the 30-day window always has data.
type catalogFixture struct {
	Products []fixtureProduct `json:"products"`
}

type fixtureProduct struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	MinPrice       string           `json:"minPrice"`
	MinPriceFormat string           `json:"minPriceFormat"`
	IsTradingCard  bool             `json:"isTradingCard"`
	Listings       []fixtureListing `json:"listings"`
	Histories      []fixtureHistory `json:"histories"`
}

type fixtureListing struct {
	ID        string `json:"id"`
	Condition string `json:"condition"`
	Price     string `json:"price"`
	IsSold    bool   `json:"isSold"`
	DaysAgo   int    `json:"daysAgo"`
}

type fixtureHistory struct {
	Price     string `json:"price"`
	Condition string `json:"condition"`
	Status    string `json:"status"`
	DaysAgo   int    `json:"daysAgo"`
}

type searchProduct struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	MinPrice       string `json:"minPrice"`
	MinPriceFormat string `json:"minPriceFormat"`
	IsTradingCard  bool   `json:"isTradingCard"`
}

type searchResponse struct {
	Products    []searchProduct `json:"products"`
	Streetwears []searchProduct `json:"streetwears"`
}

type usedListing struct {
	ID        string `json:"id"`
	Condition string `json:"condition"`
	Price     string `json:"price"`
	IsSold    bool   `json:"isSold"`
	UpdatedAt string `json:"updatedAt"`
}

type tradeHistory struct {
	Price     string `json:"price"`
	Condition string `json:"condition"`
	Status    string `json:"status"`
	TradedAt  string `json:"tradedAt"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/catalog.json", "path to catalog fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "products", len(fixture.Products))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock catalog server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, fixture, time.Now)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(logger *slog.Logger, fixture *catalogFixture, now func() time.Time) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /en/v1/search", searchHandler(logger, fixture))
	mux.HandleFunc("GET /en/v1/trading-cards/{id}/used-listings", listingsHandler(logger, fixture, now))
	mux.HandleFunc("GET /en/v1/streetwears/{id}/trading-histories", historiesHandler(logger, fixture, now))
	return mux
}

func loadFixture(path string) (*catalogFixture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var f catalogFixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &f, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

// pageWindow reads page/perPage and returns the slice bounds for n items.
func pageWindow(r *http.Request, n, defaultPerPage int) (start, end int) {
	perPage := defaultPerPage
	if v, err := strconv.Atoi(r.URL.Query().Get("perPage")); err == nil && v > 0 {
		perPage = v
	}
	page := 1
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	start = min((page-1)*perPage, n)
	end = min(start+perPage, n)
	return start, end
}

// matchesKeyword reports whether every keyword word appears in name.
func matchesKeyword(name, keyword string) bool {
	name = strings.ToLower(name)
	for _, word := range strings.Fields(strings.ToLower(keyword)) {
		if !strings.Contains(name, word) {
			return false
		}
	}
	return true
}

func searchHandler(logger *slog.Logger, fixture *catalogFixture) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keyword := r.URL.Query().Get("keyword")

		matched := []searchProduct{}
		for _, p := range fixture.Products {
			if matchesKeyword(p.Name, keyword) {
				matched = append(matched, searchProduct{
					ID:             p.ID,
					Name:           p.Name,
					MinPrice:       p.MinPrice,
					MinPriceFormat: p.MinPriceFormat,
					IsTradingCard:  p.IsTradingCard,
				})
			}
		}
		total := len(matched)
		start, end := pageWindow(r, total, 20)

		writeJSON(w, searchResponse{Products: matched[start:end], Streetwears: []searchProduct{}})
		logger.Info("search", "keyword", keyword, "matched", total, "returned", end-start)
	}
}

func listingsHandler(logger *slog.Logger, fixture *catalogFixture, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := findProduct(fixture, r.PathValue("id"))
		if !ok {
			notFound(w)
			return
		}

		start, end := pageWindow(r, len(p.Listings), 50)
		rows := make([]usedListing, 0, end-start)
		for _, l := range p.Listings[start:end] {
			rows = append(rows, usedListing{
				ID:        l.ID,
				Condition: l.Condition,
				Price:     l.Price,
				IsSold:    l.IsSold,
				UpdatedAt: daysAgo(now, l.DaysAgo),
			})
		}

		writeJSON(w, map[string]any{"usedTradingCards": rows})
		logger.Info("used listings", "product", p.ID, "returned", len(rows))
	}
}

func historiesHandler(logger *slog.Logger, fixture *catalogFixture, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := findProduct(fixture, r.PathValue("id"))
		if !ok {
			notFound(w)
			return
		}

		start, end := pageWindow(r, len(p.Histories), 100)
		rows := make([]tradeHistory, 0, end-start)
		for _, h := range p.Histories[start:end] {
			rows = append(rows, tradeHistory{
				Price:     h.Price,
				Condition: h.Condition,
				Status:    h.Status,
				TradedAt:  daysAgo(now, h.DaysAgo),
			})
		}

		writeJSON(w, map[string]any{"histories": rows})
		logger.Info("trading histories", "product", p.ID, "returned", len(rows))
	}
}

func findProduct(fixture *catalogFixture, id string) (fixtureProduct, bool) {
	for _, p := range fixture.Products {
		if p.ID == id {
			return p, true
		}
	}
	return fixtureProduct{}, false
}

func daysAgo(now func() time.Time, days int) string {
	return now().UTC().AddDate(0, 0, -days).Format(time.RFC3339)
}

func notFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(map[string]string{"message": "product not found"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}
