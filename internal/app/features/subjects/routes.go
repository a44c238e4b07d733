// internal/app/features/subjects/routes.go
package subjects

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the subject routes. Typically:
// r.Mount("/subjects", subjects.Routes(handler))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleCreate)

	return r
}
