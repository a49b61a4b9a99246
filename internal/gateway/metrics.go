package gateway

import (
	"net/http"

	"supplydesk/internal/contract"
	"supplydesk/internal/metrics"
)

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (s *statusWriter) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

const (
	labelNone    = "none"
	labelUnknown = "unknown"
)

// metricLabel keeps the label set fixed: the known actions plus two
// buckets for a missing and an unrecognised action.
func metricLabel(r *http.Request) string {
	raw := r.URL.Query().Get(contract.ActionParam)
	switch action := contract.Action(raw); {
	case raw == "":
		return labelNone
	case action.Known():
		return raw
	default:
		return labelUnknown
	}
}

// Instrument records per-action request counts, failures and latency.
// Preflight requests are not counted.
func Instrument(m *metrics.Actions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			timer := metrics.StartTimer()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)

			m.Observe(metricLabel(r), sw.status, timer.Duration())
		})
	}
}

// MetricsHandler serves the current counters as JSON.
func MetricsHandler(m *metrics.Actions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"actions": m.Snapshot()})
	}
}
