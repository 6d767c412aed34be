package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "cpc-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "cpc-recording",
					Rules: []Rule{
						{
							Record: "cpc:http_requests:rate5m",
							Expr:   `sum(rate(cpc_http_requests_total[5m]))`,
						},
						{
							Record: "cpc:http_errors:rate5m",
							Expr:   `sum(rate(cpc_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "cpc:catalog_requests:rate5m",
							Expr:   `sum(rate(cpc_catalog_requests_total[5m]))`,
						},
						{
							Record: "cpc:catalog_failures:rate5m",
							Expr:   `sum(rate(cpc_catalog_failures_total[5m]))`,
						},
						{
							Record: "cpc:lookups:rate5m",
							Expr:   `sum(rate(cpc_lookups_total[5m]))`,
						},
						{
							Record: "cpc:lookups_no_match:rate5m",
							Expr:   `sum(rate(cpc_lookups_total{outcome="no_match"}[5m]))`,
						},
					},
				},
			},
		},
	}
}
