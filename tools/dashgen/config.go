package main

import "errors"

// KnownMetrics is the set of metric names exported by card-price-checker
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"cpc_http_request_duration_seconds": true,
	"cpc_http_requests_total":           true,

	// Health metrics.
	"cpc_healthz_up": true,
	"cpc_readyz_up":  true,

	// Catalog API metrics.
	"cpc_catalog_requests_total":           true,
	"cpc_catalog_failures_total":           true,
	"cpc_catalog_request_duration_seconds": true,
	"cpc_catalog_daily_usage":              true,
	"cpc_catalog_daily_limit_hits_total":   true,

	// Pagination metrics.
	"cpc_pages_fetched_total": true,
	"cpc_pages_failed_total":  true,

	// Lookup metrics.
	"cpc_lookups_total":           true,
	"cpc_lookup_duration_seconds": true,
	"cpc_match_score":             true,
	"cpc_match_query_kind_total":  true,

	// Recording rules.
	"cpc:http_requests:rate5m":    true,
	"cpc:http_errors:rate5m":      true,
	"cpc:catalog_requests:rate5m": true,
	"cpc:catalog_failures:rate5m": true,
	"cpc:lookups:rate5m":          true,
	"cpc:lookups_no_match:rate5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
