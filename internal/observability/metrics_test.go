package observability

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollectorRegistersAll(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	c.SetRegistrySizes(7, 4, 1018)
	assert.Equal(t, 7.0, testutil.ToFloat64(c.AssetCount))
	assert.Equal(t, 4.0, testutil.ToFloat64(c.ZoneCount))
	assert.Equal(t, 1018.0, testutil.ToFloat64(c.TotalCapacityMW))

	c.SelectionChanges.WithLabelValues("asset").Inc()
	c.SelectionChanges.WithLabelValues("zone").Inc()
	c.SelectionChanges.WithLabelValues("zone").Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(c.SelectionChanges.WithLabelValues("asset")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.SelectionChanges.WithLabelValues("zone")))

	c.StreamClients.Inc()
	c.StreamClients.Dec()
	assert.Equal(t, 0.0, testutil.ToFloat64(c.StreamClients))
}

func TestNewCollectorRejectsDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewCollector(reg)
	require.NoError(t, err)

	_, err = NewCollector(reg)
	assert.Error(t, err)
}

func TestHandlerServesGatheredMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)
	c.SetRegistrySizes(3, 2, 150)

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	c.Handler().ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "atlas_registry_assets 3")
	assert.Contains(t, body, "atlas_registry_total_capacity_mw 150")
}
