// internal/app/features/students/handler.go
package students

import (
	"encoding/json"
	"net/http"

	recordstore "github.com/dalemusser/gradehub/internal/app/store/records"
	"go.uber.org/zap"
)

// Handler is the feature-level handler for Students. It holds the record
// store handle and logger provided by WAFFLE DBDeps.
type Handler struct {
	Records *recordstore.Store
	Log     *zap.Logger
}

func NewHandler(records *recordstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Records: records,
		Log:     logger,
	}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}
