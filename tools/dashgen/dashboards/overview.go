// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/card-price-checker/tools/dashgen/panels"
)

// BuildOverview constructs the CPC Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("CPC Overview").
		Uid("cpc-overview").
		Tags([]string{"cpc", "card-price-checker"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.QuotaGauge()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Catalog API.
	b.WithRow(dashboard.NewRowBuilder("Catalog API").
		WithPanel(panels.CatalogCallRate()).
		WithPanel(panels.CatalogLatency()).
		WithPanel(panels.CatalogFailures()).
		WithPanel(panels.DailyUsage()).
		WithPanel(panels.LimitHits()))

	// Row 4: Lookups.
	b.WithRow(dashboard.NewRowBuilder("Lookups").
		WithPanel(panels.LookupOutcomes()).
		WithPanel(panels.LookupDuration()).
		WithPanel(panels.QueryKinds()))

	// Row 5: Matching and feeds.
	b.WithRow(dashboard.NewRowBuilder("Matching").
		WithPanel(panels.MatchScoreDistribution()).
		WithPanel(panels.PageFetches()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
