// Package metrics exposes Prometheus metrics for the registration service and
// serves them on a dedicated listener.
package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the registration service
type Metrics struct {
	SubmissionsTotal    prometheus.Counter
	SubmissionsRejected prometheus.Counter
	ReviewsTotal        *prometheus.CounterVec
	AttachmentFetches   prometheus.Counter
}

// New creates all Prometheus metrics and registers them with the default
// registerer.
func New(namespace string) *Metrics {
	return NewWith(namespace, prometheus.DefaultRegisterer)
}

// NewWith creates all Prometheus metrics against an explicit registerer.
func NewWith(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SubmissionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Total number of registration records created",
		}),
		SubmissionsRejected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_rejected_total",
			Help:      "Total number of registration submissions refused before creation",
		}),
		ReviewsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reviews_total",
			Help:      "Total number of review verdicts, by resulting status",
		}, []string{"status"}),
		AttachmentFetches: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attachment_fetches_total",
			Help:      "Total number of attachment downloads served",
		}),
	}
}

// MetricsServer serves the Prometheus scrape endpoint on its own address.
type MetricsServer struct {
	srv *http.Server
}

// NewServer creates a metrics server listening on addr.
func NewServer(addr string) (*MetricsServer, error) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &MetricsServer{
		srv: &http.Server{
			Addr:    addr,
			Handler: mux,
		},
	}, nil
}

// ListenAndServe blocks serving the scrape endpoint.
func (s *MetricsServer) ListenAndServe() error {
	return s.srv.ListenAndServe()
}

// Shutdown gracefully stops the metrics server.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
