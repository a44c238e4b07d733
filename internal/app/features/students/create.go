// internal/app/features/students/create.go
package students

import (
	"encoding/json"
	"net/http"
	"strings"

	recordstore "github.com/dalemusser/gradehub/internal/app/store/records"
	"go.uber.org/zap"
)

// HandleCreate handles POST /students.
//
// Creating an ID that already exists silently overwrites the stored record
// (last write wins); the response is 201 either way.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req.ID = strings.TrimSpace(req.ID)
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.ID == "" || req.Name == "" || req.Email == "" {
		respondError(w, http.StatusBadRequest, "id, name, and email are required")
		return
	}
	if req.Credits < 0 {
		respondError(w, http.StatusBadRequest, "credits must not be negative")
		return
	}

	st := h.Records.CreateStudent(recordstore.NewStudent{
		ID:        req.ID,
		Name:      req.Name,
		Email:     req.Email,
		Intake:    req.Intake,
		Programme: req.Programme,
		CGPA:      req.CGPA,
		Credits:   req.Credits,
	})
	h.Log.Info("student created", zap.String("id", st.ID), zap.String("intake", st.Intake))

	respondJSON(w, http.StatusCreated, st)
}
