// internal/app/features/students/view.go
package students

import (
	"errors"
	"net/http"

	recordstore "github.com/dalemusser/gradehub/internal/app/store/records"
	"github.com/go-chi/chi/v5"
)

// ServeView handles GET /students/{id}: the student joined with its
// subjects, or 404.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	st, err := h.Records.GetStudent(id)
	if err != nil {
		if errors.Is(err, recordstore.ErrNotFound) {
			respondError(w, http.StatusNotFound, "student not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	respondJSON(w, http.StatusOK, st)
}

// ServeSubjects handles GET /students/{id}/subjects. The list is resolved by
// foreign-key match alone, so it also answers for students that no longer
// exist (deletes do not cascade).
func (h *Handler) ServeSubjects(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	respondJSON(w, http.StatusOK, h.Records.SubjectsByStudentID(id))
}
