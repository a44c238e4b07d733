// internal/app/features/students/delete.go
package students

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleDelete handles DELETE /students/{id}. Subjects linked to the student
// are deliberately left in place.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if !h.Records.DeleteStudent(id) {
		respondError(w, http.StatusNotFound, "student not found")
		return
	}
	h.Log.Info("student deleted", zap.String("id", id))

	w.WriteHeader(http.StatusNoContent)
}
