// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the dashboard routes. Typically:
// r.Mount("/dashboard", dashboard.Routes(handler))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/metrics", h.ServeMetrics)
	r.Get("/performance", h.ServePerformance)

	return r
}
