package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/card-price-checker/tools/dashgen/rules"
)

var known = map[string]bool{
	"cpc_lookups_total":           true,
	"cpc_lookup_duration_seconds": true,
	"cpc:lookups:rate5m":          true,
}

func TestExpr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		expr    string
		wantErr string
	}{
		{name: "known counter", expr: `sum(rate(cpc_lookups_total[5m])) by (outcome)`},
		{name: "histogram bucket", expr: `histogram_quantile(0.95, sum(rate(cpc_lookup_duration_seconds_bucket[5m])) by (le))`},
		{name: "recording rule", expr: `cpc:lookups:rate5m > 1`},
		{name: "unknown metric", expr: `rate(cpc_missing_total[5m])`, wantErr: "unknown metric"},
		{name: "syntax error", expr: `sum(rate(cpc_lookups_total[5m])`, wantErr: "parsing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := Expr(tt.expr, known)
			if tt.wantErr == "" {
				assert.True(t, res.Ok(), "errors: %v", res.Errors)
				return
			}
			assert.False(t, res.Ok())
			assert.Contains(t, res.Errors[0], tt.wantErr)
		})
	}
}

func TestDashboard_CollectsNestedExprs(t *testing.T) {
	t.Parallel()

	dash := map[string]any{
		"panels": []any{
			map[string]any{"targets": []any{map[string]any{"expr": "cpc:lookups:rate5m"}}},
			map[string]any{"panels": []any{
				map[string]any{"targets": []any{map[string]any{"expr": "cpc_unknown"}}},
			}},
		},
	}

	res := Dashboard(dash, known)
	assert.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "cpc_unknown")
}

func TestDashboard_NoQueriesWarns(t *testing.T) {
	t.Parallel()

	res := Dashboard(map[string]any{"title": "empty"}, known)
	assert.True(t, res.Ok())
	assert.NotEmpty(t, res.Warnings)
}

func TestRules(t *testing.T) {
	t.Parallel()

	cr := rules.PrometheusRule{Spec: rules.PrometheusRuleSpec{Groups: []rules.RuleGroup{{
		Name: "g",
		Rules: []rules.Rule{
			{Record: "cpc:lookups:rate5m", Expr: `sum(rate(cpc_lookups_total[5m]))`},
			{Expr: `cpc_lookups_total`},
		},
	}}}}

	res := Rules(cr, known)
	assert.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "neither record nor alert")
}
