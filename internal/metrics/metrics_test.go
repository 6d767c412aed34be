package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, CatalogRequestsTotal)
	assert.NotNil(t, CatalogFailuresTotal)
	assert.NotNil(t, CatalogRequestDuration)
	assert.NotNil(t, CatalogDailyUsage)
	assert.NotNil(t, CatalogDailyLimitHits)
	assert.NotNil(t, PagesFetchedTotal)
	assert.NotNil(t, PagesFailedTotal)
	assert.NotNil(t, LookupsTotal)
	assert.NotNil(t, LookupDuration)
	assert.NotNil(t, MatchScore)
	assert.NotNil(t, MatchQueryKindTotal)
}
