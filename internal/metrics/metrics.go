package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	PropertiesListed  *prometheus.CounterVec
	ListFallbacks     prometheus.Counter
	PropertiesCreated *prometheus.CounterVec
	CreateFailures    *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	listed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sunshare_properties_listed_total",
		Help: "List requests served, by data source.",
	}, []string{"source"})
	fallbacks := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sunshare_list_fallback_total",
		Help: "List requests answered with mock data after a read error.",
	})
	created := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sunshare_properties_created_total",
		Help: "Properties created, by backend.",
	}, []string{"backend"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sunshare_create_failures_total",
		Help: "Failed property creations, by backend.",
	}, []string{"backend"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sunshare_http_request_duration_seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	r.MustRegister(
		listed, fallbacks, created, failures, duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Registry{
		reg:               r,
		PropertiesListed:  listed,
		ListFallbacks:     fallbacks,
		PropertiesCreated: created,
		CreateFailures:    failures,
		RequestDuration:   duration,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
