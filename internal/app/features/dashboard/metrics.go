// internal/app/features/dashboard/metrics.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
)

// ServeMetrics handles GET /dashboard/metrics.
//
// `?intake=` narrows the candidate set to one cohort; omitting it or passing
// "all" covers every student. An unknown intake yields zeroed metrics rather
// than an error.
func (h *Handler) ServeMetrics(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.Engine.Metrics(query.Get(r, "intake")))
}

// ServePerformance handles GET /dashboard/performance: the three standing
// segments for the same candidate set ServeMetrics uses.
func (h *Handler) ServePerformance(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.Engine.Performance(query.Get(r, "intake")))
}
