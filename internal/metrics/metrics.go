package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aescholar", Name: "http_requests_total", Help: "Handled HTTP requests",
	}, []string{"method", "route", "code"})
	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "aescholar", Name: "http_request_duration_seconds", Help: "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	Transitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aescholar", Name: "application_transitions_total", Help: "Application status transitions",
	}, []string{"to"})
	PaymentBatches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aescholar", Name: "payment_batches_total", Help: "Payment batches by outcome",
	}, []string{"event"})
	SideEffectFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aescholar", Name: "side_effect_failures_total", Help: "Dropped notification and audit writes",
	}, []string{"kind"})
	SFSChecks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aescholar", Name: "sfs_checks_total", Help: "Student Finance System enrollment lookups",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPDuration, Transitions, PaymentBatches, SideEffectFailures, SFSChecks)
}

func Handler() http.Handler { return promhttp.Handler() }

// Middleware records request counts and latency per chi route pattern.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
