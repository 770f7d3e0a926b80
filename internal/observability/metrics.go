// Package observability bundles the Prometheus metrics exposed by the
// dashboard backend.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns every metric the API server publishes and the gatherer
// backing the /metrics endpoint.
type Collector struct {
	gatherer prometheus.Gatherer

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	SelectionChanges *prometheus.CounterVec
	StreamClients    prometheus.Gauge

	AssetCount      prometheus.Gauge
	ZoneCount       prometheus.Gauge
	TotalCapacityMW prometheus.Gauge
}

// NewCollector registers the dashboard metrics against reg, defaulting to
// the global Prometheus registry when reg is nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &Collector{
		gatherer: gatherer,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "atlas_http_requests_total",
			Help: "Handled HTTP requests, labeled by route, method, and status code.",
		}, []string{"route", "method", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "atlas_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route", "method"}),
		SelectionChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "atlas_selection_changes_total",
			Help: "Selection mutations, labeled by axis (asset or zone).",
		}, []string{"axis"}),
		StreamClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "atlas_stream_clients",
			Help: "Currently connected selection-stream websocket clients.",
		}),
		AssetCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "atlas_registry_assets",
			Help: "Battery assets in the registry.",
		}),
		ZoneCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "atlas_registry_zones",
			Help: "Pricing zones in the registry.",
		}),
		TotalCapacityMW: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "atlas_registry_total_capacity_mw",
			Help: "Total fleet capacity in MW.",
		}),
	}

	for _, col := range []prometheus.Collector{
		c.HTTPRequests, c.HTTPDuration, c.SelectionChanges,
		c.StreamClients, c.AssetCount, c.ZoneCount, c.TotalCapacityMW,
	} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// SetRegistrySizes records the (startup-time) registry aggregates. The
// registries never change after construction, so this is called once.
func (c *Collector) SetRegistrySizes(assetCount, zoneCount int, totalCapacityMW float64) {
	c.AssetCount.Set(float64(assetCount))
	c.ZoneCount.Set(float64(zoneCount))
	c.TotalCapacityMW.Set(totalCapacityMW)
}

// Handler serves the /metrics endpoint for this collector's gatherer.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}
