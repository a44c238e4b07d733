// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/gradehub/internal/app/analytics"
	dashboardfeature "github.com/dalemusser/gradehub/internal/app/features/dashboard"
	healthfeature "github.com/dalemusser/gradehub/internal/app/features/health"
	studentsfeature "github.com/dalemusser/gradehub/internal/app/features/students"
	subjectsfeature "github.com/dalemusser/gradehub/internal/app/features/subjects"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, store seeding, and any Startup
// hooks have completed. The transport layer is a thin adapter: each feature
// router validates request shapes, delegates to the record store or the
// analytics engine, and translates ErrNotFound into status codes.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	engine := analytics.New(deps.Records)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Records, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Student records
	studentsHandler := studentsfeature.NewHandler(deps.Records, logger)
	r.Mount("/students", studentsfeature.Routes(studentsHandler))

	// Subject records
	subjectsHandler := subjectsfeature.NewHandler(deps.Records, logger)
	r.Mount("/subjects", subjectsfeature.Routes(subjectsHandler))

	// Derived analytics
	dashboardHandler := dashboardfeature.NewHandler(engine, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))

	return r, nil
}
