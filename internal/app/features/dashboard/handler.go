// internal/app/features/dashboard/handler.go
package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/gradehub/internal/app/analytics"
	"go.uber.org/zap"
)

// Handler serves the derived dashboard figures. It holds no state of its
// own: every request re-derives from the record store through the engine.
type Handler struct {
	Engine *analytics.Engine
	Log    *zap.Logger
}

func NewHandler(engine *analytics.Engine, logger *zap.Logger) *Handler {
	return &Handler{
		Engine: engine,
		Log:    logger,
	}
}

func respondJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
