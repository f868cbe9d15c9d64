package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/praxisapp/praxis/internal/web"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
)

func middlewareWeb(tracer trace.Tracer, h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "web")
		defer span.End()

		v := web.Values{
			TraceID: span.SpanContext().TraceID().String(),
			Tracer:  tracer,
			Now:     time.Now().UTC(),
		}
		ctx = web.SetValues(ctx, &v)
		r = r.WithContext(ctx)

		h.ServeHTTP(w, r)
	})
}

var (
	reqTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "praxis_requests_total",
		Help: "Number of handled API requests.",
	}, []string{"route", "code"})

	reqDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "praxis_request_duration_seconds",
		Help:    "API request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
)

func init() {
	prometheus.MustRegister(reqTotal, reqDuration)
}

func middlewareMetrics(h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}

		h(sw, r)

		route := r.Pattern
		reqTotal.WithLabelValues(route, strconv.Itoa(sw.code)).Inc()
		reqDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}
