package metrics

import (
	"hotelier/config"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace    = "hotelier"
	unknownRoute = "unknown"
)

// Metrics owns a private registry so tests can build as many as they need.
type Metrics struct {
	enabled         bool
	registry        *prometheus.Registry
	handler         http.Handler
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	reportBuilds    *prometheus.CounterVec
	reportCacheHits *prometheus.CounterVec
	invalidations   *prometheus.CounterVec
}

func New(cfg *config.Config) *Metrics {
	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by route pattern and status code.",
	}, []string{"route", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})
	builds := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_builds_total",
		Help:      "Reports computed from the database, by kind and mode.",
	}, []string{"kind", "mode"})
	hits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_cache_hits_total",
		Help:      "Reports served from cache, by kind.",
	}, []string{"kind"})
	invalidations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_cache_invalidations_total",
		Help:      "Report cache invalidations, by trigger.",
	}, []string{"source"})

	registry.MustRegister(requests, duration, builds, hits, invalidations)

	return &Metrics{
		enabled:         cfg.Metrics.Enable,
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestsTotal:   requests,
		requestDuration: duration,
		reportBuilds:    builds,
		reportCacheHits: hits,
		invalidations:   invalidations,
	}
}

func (m *Metrics) Enabled() bool {
	return m != nil && m.enabled
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		})
	}

	return m.handler
}

// Middleware records count and latency per chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if !m.Enabled() {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		route := routePattern(r)
		m.requestsTotal.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

func (m *Metrics) ReportBuilt(kind, mode string) {
	if m == nil {
		return
	}

	m.reportBuilds.WithLabelValues(kind, mode).Inc()
}

func (m *Metrics) ReportCacheHit(kind string) {
	if m == nil {
		return
	}

	m.reportCacheHits.WithLabelValues(kind).Inc()
}

func (m *Metrics) CacheInvalidated(source string) {
	if m == nil {
		return
	}

	m.invalidations.WithLabelValues(source).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func routePattern(r *http.Request) string {
	if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
		if pattern := routeCtx.RoutePattern(); pattern != "" {
			return pattern
		}
	}

	return unknownRoute
}
