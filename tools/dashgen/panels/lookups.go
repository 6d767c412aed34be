package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// LookupOutcomes returns a timeseries panel showing lookups per second by
// outcome.
func LookupOutcomes() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Lookups by Outcome").
		Description("Title lookups per second split by terminal outcome").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(rate(`+jobSel("cpc_lookups_total")+`[5m])) by (outcome)`,
			"{{outcome}}", "A",
		)).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// LookupDuration returns a timeseries panel showing median and p95 lookup
// durations.
func LookupDuration() *timeseries.PanelBuilder {
	bucket := jobSel("cpc_lookup_duration_seconds_bucket")
	return timeseries.NewPanelBuilder().
		Title("Lookup Duration").
		Description("End-to-end lookup duration percentiles").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`histogram_quantile(0.50, sum(rate(`+bucket+`[5m])) by (le))`, "p50", "A")).
		WithTarget(PromQuery(`histogram_quantile(0.95, sum(rate(`+bucket+`[5m])) by (le))`, "p95", "B")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// QueryKinds returns a bar gauge panel showing which query strategy produced
// accepted matches.
func QueryKinds() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Match Query Strategy").
		Description("Accepted matches by the query that found them").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(increase(`+jobSel("cpc_match_query_kind_total")+`[24h])) by (kind)`,
			"{{kind}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// MatchScoreDistribution returns a bar gauge panel showing accepted match
// scores across histogram buckets.
func MatchScoreDistribution() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Match Score Distribution").
		Description("Scores of accepted matches (0-100)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(increase(`+jobSel("cpc_match_score_bucket")+`[1h])) by (le)`,
			"{{le}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// PageFetches returns a timeseries panel comparing fetched and failed feed
// pages.
func PageFetches() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Feed Pages").
		Description("Listing and history pages fetched and failed per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(`+jobSel("cpc_pages_fetched_total")+`[5m])) by (feed)`,
			"{{feed}} fetched", "A",
		)).
		WithTarget(PromQuery(
			`sum(rate(`+jobSel("cpc_pages_failed_total")+`[5m])) by (feed)`,
			"{{feed}} failed", "B",
		)).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
