// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/card-price-checker/pkg/matcher"
	"github.com/donaldgifford/card-price-checker/pkg/stats"
	"github.com/donaldgifford/card-price-checker/pkg/title"
)

// Config is the top-level application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Catalog     CatalogConfig     `yaml:"catalog"`
	Matching    MatchingConfig    `yaml:"matching"`
	Aggregation AggregationConfig `yaml:"aggregation"`
	Browser     BrowserConfig     `yaml:"browser"`
	Tracing     TracingConfig     `yaml:"tracing"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	// PopupTimeout bounds a background popup lookup.
	PopupTimeout time.Duration `yaml:"popup_timeout"`
	CORSOrigins  []string      `yaml:"cors_origins"`
}

// CatalogConfig defines the SNKRDUNK API settings.
type CatalogConfig struct {
	APIURL           string           `yaml:"api_url"`
	WebURL           string           `yaml:"web_url"`
	UserAgent        string           `yaml:"user_agent"`
	Cookie           string           `yaml:"cookie"`
	Timeout          time.Duration    `yaml:"timeout"`
	SearchPerPage    int              `yaml:"search_per_page"`
	TradingCardsOnly bool             `yaml:"trading_cards_only"`
	Pagination       PaginationConfig `yaml:"pagination"`
	RateLimit        RateLimitConfig  `yaml:"rate_limit"`
}

// PaginationConfig controls how many listing and history pages are read.
type PaginationConfig struct {
	ListingPages      int `yaml:"listing_pages"`
	ListingPerPage    int `yaml:"listing_per_page"`
	HistoryBatchSize  int `yaml:"history_batch_size"`
	HistoryPerPage    int `yaml:"history_per_page"`
	HistoryMaxBatches int `yaml:"history_max_batches"`
}

// RateLimitConfig defines catalog API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"` // 0 disables the daily budget
}

// MatchingConfig defines title parsing and match scoring.
type MatchingConfig struct {
	Franchise       string           `yaml:"franchise"`
	DefaultLanguage string           `yaml:"default_language"`
	Languages       []string         `yaml:"languages"`
	SetDenylist     []string         `yaml:"set_denylist"`
	Threshold       *int             `yaml:"threshold"`
	Themes          []string         `yaml:"themes"`
	Weights         *matcher.Weights `yaml:"weights"`
}

// AggregationConfig defines how market statistics are computed.
type AggregationConfig struct {
	Grade       string        `yaml:"grade"`
	Window      time.Duration `yaml:"window"`
	Weeks       int           `yaml:"weeks"`
	LiveAsk     string        `yaml:"live_ask"` // min, latest
	RecentSales int           `yaml:"recent_sales"`
}

// BrowserConfig defines the headless browser used to read page titles.
type BrowserConfig struct {
	Bin        string        `yaml:"bin"`
	ControlURL string        `yaml:"control_url"`
	Timeout    time.Duration `yaml:"timeout"`
}

// TracingConfig defines OpenTelemetry trace export.
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Endpoint    string  `yaml:"endpoint"`
	Insecure    bool    `yaml:"insecure"`
	ServiceName string  `yaml:"service_name"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json, pretty
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	// Seed weights so a partial weights section overrides only what it names.
	w := matcher.DefaultWeights()
	cfg := &Config{Matching: MatchingConfig{Weights: &w}}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a configuration with every default applied, for running
// without a config file.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyCatalogDefaults(&cfg.Catalog)
	applyMatchingDefaults(&cfg.Matching)
	applyAggregationDefaults(&cfg.Aggregation)
	applyBrowserDefaults(&cfg.Browser)
	applyTracingDefaults(&cfg.Tracing)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 60 * time.Second
	}
	if s.PopupTimeout == 0 {
		s.PopupTimeout = 60 * time.Second
	}
	if len(s.CORSOrigins) == 0 {
		s.CORSOrigins = []string{"*"}
	}
}

func applyCatalogDefaults(c *CatalogConfig) {
	if c.APIURL == "" {
		c.APIURL = "https://snkrdunk.com/en/v1"
	}
	if c.WebURL == "" {
		c.WebURL = "https://snkrdunk.com/en"
	}
	if c.Timeout == 0 {
		c.Timeout = 15 * time.Second
	}
	if c.SearchPerPage == 0 {
		c.SearchPerPage = 20
	}
	applyPaginationDefaults(&c.Pagination)
	applyRateLimitDefaults(&c.RateLimit)
}

func applyPaginationDefaults(p *PaginationConfig) {
	if p.ListingPages == 0 {
		p.ListingPages = 4
	}
	if p.ListingPerPage == 0 {
		p.ListingPerPage = 50
	}
	if p.HistoryBatchSize == 0 {
		p.HistoryBatchSize = 5
	}
	if p.HistoryPerPage == 0 {
		p.HistoryPerPage = 100
	}
	if p.HistoryMaxBatches == 0 {
		p.HistoryMaxBatches = 4
	}
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 5.0
	}
	if r.Burst == 0 {
		r.Burst = 10
	}
}

func applyMatchingDefaults(m *MatchingConfig) {
	if m.Franchise == "" {
		m.Franchise = "Pokemon"
	}
	if len(m.Languages) == 0 {
		m.Languages = slices.Clone(title.DefaultLanguages)
	}
	if m.SetDenylist == nil {
		m.SetDenylist = slices.Clone(title.DefaultSetDenylist)
	}
	if m.Threshold == nil {
		t := matcher.DefaultThreshold
		m.Threshold = &t
	}
	if m.Themes == nil {
		m.Themes = slices.Clone(matcher.DefaultThemes)
	}
	if m.Weights == nil {
		w := matcher.DefaultWeights()
		m.Weights = &w
	}
}

func applyAggregationDefaults(a *AggregationConfig) {
	if a.Grade == "" {
		a.Grade = "PSA 10"
	}
	if a.Window == 0 {
		a.Window = 30 * 24 * time.Hour
	}
	if a.Weeks == 0 {
		a.Weeks = 8
	}
	if a.LiveAsk == "" {
		a.LiveAsk = string(stats.AskMin)
	}
	if a.RecentSales == 0 {
		a.RecentSales = 5
	}
}

func applyBrowserDefaults(b *BrowserConfig) {
	if b.Timeout == 0 {
		b.Timeout = 30 * time.Second
	}
}

func applyTracingDefaults(t *TracingConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "card-price-checker"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1.0
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

// StatsOptions converts the aggregation section for the stats package.
func (a *AggregationConfig) StatsOptions() stats.Options {
	return stats.Options{
		Grade:       a.Grade,
		Window:      a.Window,
		Weeks:       a.Weeks,
		Reducer:     stats.AskReducer(a.LiveAsk),
		RecentSales: a.RecentSales,
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535 (got %d)", cfg.Server.Port))
	}

	for _, u := range []struct{ key, value string }{
		{"catalog.api_url", cfg.Catalog.APIURL},
		{"catalog.web_url", cfg.Catalog.WebURL},
	} {
		if parsed, err := url.Parse(u.value); err != nil || parsed.Scheme == "" || parsed.Host == "" {
			errs = append(errs, fmt.Errorf("%s must be an absolute URL (got %q)", u.key, u.value))
		}
	}

	if cfg.Catalog.SearchPerPage < 1 {
		errs = append(errs, fmt.Errorf("catalog.search_per_page must be positive"))
	}
	p := cfg.Catalog.Pagination
	if p.ListingPages < 0 || p.ListingPerPage < 1 || p.HistoryBatchSize < 1 ||
		p.HistoryPerPage < 1 || p.HistoryMaxBatches < 1 {
		errs = append(errs, fmt.Errorf("catalog.pagination values must be positive"))
	}
	if cfg.Catalog.RateLimit.PerSecond < 0 || cfg.Catalog.RateLimit.Burst < 1 {
		errs = append(errs, fmt.Errorf("catalog.rate_limit.per_second must be >= 0 and burst >= 1"))
	}
	if cfg.Catalog.RateLimit.DailyLimit < 0 {
		errs = append(errs, fmt.Errorf("catalog.rate_limit.daily_limit must be >= 0"))
	}

	if *cfg.Matching.Threshold < 0 {
		errs = append(errs, fmt.Errorf("matching.threshold must be >= 0"))
	}

	if _, err := stats.ParseAskReducer(cfg.Aggregation.LiveAsk); err != nil {
		errs = append(errs, fmt.Errorf("aggregation.live_ask must be one of: min, latest (got %q)", cfg.Aggregation.LiveAsk))
	}
	if cfg.Aggregation.Window < 0 || cfg.Aggregation.Weeks < 0 || cfg.Aggregation.RecentSales < 0 {
		errs = append(errs, fmt.Errorf("aggregation window, weeks and recent_sales must not be negative"))
	}

	if cfg.Tracing.Enabled && cfg.Tracing.Endpoint == "" {
		errs = append(errs, fmt.Errorf("tracing.endpoint is required when tracing is enabled"))
	}
	if cfg.Tracing.SampleRatio < 0 || cfg.Tracing.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("tracing.sample_ratio must be between 0 and 1"))
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level must be one of: debug, info, warn, error (got %q)", cfg.Logging.Level))
	}
	switch cfg.Logging.Format {
	case "text", "json", "pretty":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be one of: text, json, pretty (got %q)", cfg.Logging.Format))
	}

	return errors.Join(errs...)
}
