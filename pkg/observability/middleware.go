package observability

import (
	"net/http"
	"strconv"
	"time"
)

// knownPaths are the fixed routes exported as the "path" metric label.
// Anything else is folded into "other" to keep label cardinality bounded.
var knownPaths = map[string]bool{
	"/":                   true,
	"/api/v1/query":       true,
	"/api/v1/providers":   true,
	"/api/v1/countries":   true,
	"/api/v1/compare":     true,
	"/api/v1/recommend":   true,
	"/api/v1/rates":       true,
	"/api/v1/regulations": true,
}

// MetricsMiddleware wraps an HTTP handler to record request metrics.
//
// It captures:
//   - ragfin_requests_total (counter): per request with method, path, and status class labels
//   - ragfin_request_duration_seconds (histogram): request duration with method and path labels
//   - ragfin_inflight_requests (gauge): incremented while a request is being handled
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		InFlightRequests.Inc()
		defer InFlightRequests.Dec()

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		path := r.URL.Path
		if !knownPaths[path] {
			path = "other"
		}

		// Build a status class label like "2xx", "4xx", "5xx".
		statusStr := strconv.Itoa(sw.status/100) + "xx"

		RequestsTotal.WithLabelValues(r.Method, path, statusStr).Inc()
		RequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}

// ObserveProviderCall records one AI backend call. Called by the engine
// around provider.Complete.
func ObserveProviderCall(provider, model string, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	ProviderRequestsTotal.WithLabelValues(provider, model, status).Inc()
	ProviderLatency.WithLabelValues(provider, model).Observe(duration.Seconds())
}

// statusWriter wraps http.ResponseWriter to capture the status code.
type statusWriter struct {
	http.ResponseWriter
	status  int
	written bool
}

// WriteHeader captures the status code and delegates to the underlying writer.
func (w *statusWriter) WriteHeader(status int) {
	if !w.written {
		w.status = status
		w.written = true
	}
	w.ResponseWriter.WriteHeader(status)
}

// Write delegates to the underlying writer and marks the status as written.
func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.written = true
	}
	return w.ResponseWriter.Write(b)
}

// Unwrap returns the underlying ResponseWriter, enabling http.ResponseController
// and similar utilities to access the original writer.
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
