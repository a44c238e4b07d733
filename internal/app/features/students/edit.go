// internal/app/features/students/edit.go
package students

import (
	"encoding/json"
	"errors"
	"net/http"

	recordstore "github.com/dalemusser/gradehub/internal/app/store/records"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleUpdate handles PATCH /students/{id}: a partial merge onto the stored
// record. ID and creation time never change.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Credits != nil && *req.Credits < 0 {
		respondError(w, http.StatusBadRequest, "credits must not be negative")
		return
	}

	st, err := h.Records.UpdateStudent(id, recordstore.StudentUpdate{
		Name:      req.Name,
		Email:     req.Email,
		Intake:    req.Intake,
		Programme: req.Programme,
		CGPA:      req.CGPA,
		Credits:   req.Credits,
	})
	if err != nil {
		if errors.Is(err, recordstore.ErrNotFound) {
			respondError(w, http.StatusNotFound, "student not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "update failed")
		return
	}
	h.Log.Info("student updated", zap.String("id", id))

	respondJSON(w, http.StatusOK, st)
}
