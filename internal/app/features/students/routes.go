// internal/app/features/students/routes.go
package students

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts all student routes under the path where the caller mounts
// it. Typically: r.Mount("/students", students.Routes(handler))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)
	r.Get("/{id}", h.ServeView)
	r.Patch("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
	r.Get("/{id}/subjects", h.ServeSubjects)

	return r
}
