package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// card-price-checker operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "cpc-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "cpc-alerts",
					Rules: []Rule{
						{
							Alert: "CpcDown",
							Expr:  `absent(up{job="card-price-checker"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Card Price Checker is down",
								"description": "The card-price-checker job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "CpcBudgetExhausted",
							Expr:  `cpc_readyz_up == 0`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Card Price Checker is not ready",
								"description": "Readiness has failed for 5 minutes, usually because the daily catalog budget is spent.",
							},
						},
						{
							Alert: "CpcHighErrorRate",
							Expr:  `cpc:http_errors:rate5m / cpc:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on Card Price Checker",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "CpcCatalogFailures",
							Expr:  `cpc:catalog_failures:rate5m / cpc:catalog_requests:rate5m > 0.2`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Catalog requests are failing",
								"description": "More than 20% of catalog requests have been absorbed as empty results for 10 minutes.",
							},
						},
						{
							Alert: "CpcNoMatchRateHigh",
							Expr:  `cpc:lookups_no_match:rate5m / cpc:lookups:rate5m > 0.5`,
							For:   "30m",
							Labels: map[string]string{
								"severity": "info",
							},
							Annotations: map[string]string{
								"summary":     "Most lookups find no match",
								"description": "Over half of lookups ended without a match for 30 minutes. Catalog naming may have changed.",
							},
						},
						{
							Alert: "CpcDailyLimitReached",
							Expr:  `increase(cpc_catalog_daily_limit_hits_total[5m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Catalog daily budget has been reached",
								"description": "The daily catalog request budget is exhausted. Lookups return no data until the window rolls.",
							},
						},
					},
				},
			},
		},
	}
}
