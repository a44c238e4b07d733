// internal/app/features/subjects/create.go
package subjects

import (
	"encoding/json"
	"net/http"
	"strings"

	recordstore "github.com/dalemusser/gradehub/internal/app/store/records"
	"go.uber.org/zap"
)

// HandleCreate handles POST /subjects. The store assigns a generated key.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req.Code = strings.TrimSpace(req.Code)
	req.Name = strings.TrimSpace(req.Name)
	if req.Code == "" || req.Name == "" {
		respondError(w, http.StatusBadRequest, "code and name are required")
		return
	}

	sub := h.Records.CreateSubject(recordstore.NewSubject{
		Code:      req.Code,
		Name:      req.Name,
		Status:    req.Status,
		Grade:     req.Grade,
		StudentID: req.StudentID,
	})
	h.Log.Info("subject created", zap.String("id", sub.ID), zap.String("code", sub.Code))

	respondJSON(w, http.StatusCreated, sub)
}
