// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the store has been
// built and seeded, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	students, subjects := deps.Records.Counts()
	logger.Info("record store ready",
		zap.Int("students", students),
		zap.Int("subjects", subjects))
	return nil
}
