package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "travel_explorer"

// Registry groups the application collectors on a private registry so
// tests can create as many as they like.
type Registry struct {
	reg *prometheus.Registry

	UpstreamFetches  *prometheus.CounterVec
	UpstreamDuration prometheus.Histogram
	CountriesLoaded  prometheus.Gauge
	Bookings         *prometheus.CounterVec
	HTTPRequests     *prometheus.CounterVec
}

// New registers every collector plus the Go and process collectors
func New() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		UpstreamFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_fetches_total",
			Help:      "Country list queries sent to the GraphQL API, by outcome.",
		}, []string{"outcome"}),
		UpstreamDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_fetch_duration_seconds",
			Help:      "Latency of the country list query.",
			Buckets:   prometheus.DefBuckets,
		}),
		CountriesLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "countries_loaded",
			Help:      "Number of country records held in memory.",
		}),
		Bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_total",
			Help:      "Booking form submissions, by result.",
		}, []string{"result"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by route and status class.",
		}, []string{"route", "status"}),
	}

	r.reg.MustRegister(
		r.UpstreamFetches,
		r.UpstreamDuration,
		r.CountriesLoaded,
		r.Bookings,
		r.HTTPRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Handler exposes the registry in the Prometheus text format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// Gatherer is used by tests to inspect collected values
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}
