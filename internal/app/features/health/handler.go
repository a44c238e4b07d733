// internal/app/features/health/handler.go
package health

import (
	"encoding/json"
	"net/http"

	recordstore "github.com/dalemusser/gradehub/internal/app/store/records"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Records *recordstore.Store
	Log     *zap.Logger
}

// NewHandler constructs a health Handler with the record store and logger.
func NewHandler(records *recordstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Records: records,
		Log:     logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Students int    `json:"students"`
	Subjects int    `json:"subjects"`
}

// Serve handles GET /health.
//
// The store is in-memory and seeded at startup (falling back to a fixed set
// on ingestion failure), so a running process is always servable:
//
//	{ "status":"ok", "students":3, "subjects":4 }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	students, subjects := h.Records.Counts()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:   "ok",
		Students: students,
		Subjects: subjects,
	})
}
