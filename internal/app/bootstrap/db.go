// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	recordstore "github.com/dalemusser/gradehub/internal/app/store/records"
	"github.com/dalemusser/gradehub/internal/app/system/ingest"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB builds the in-memory record store and seeds it from the CSV
// snapshot. Ingestion failure must never crash the process or leave the
// store empty, so any load error is logged and replaced by the fixed
// fallback set.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	return DBDeps{Records: loadRecords(appCfg, logger)}, nil
}

// EnsureSchema sets up indexes or schema as needed. The record store has
// neither, so this is a no-op.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return nil
}

// loadRecords runs the seed-or-fallback load. Both CSVs must load for the
// snapshot to be used; a failure in either swaps in the complete fallback
// set so the two collections stay consistent with each other.
func loadRecords(appCfg AppConfig, logger *zap.Logger) *recordstore.Store {
	students, err := ingest.LoadStudents(appCfg.StudentsCSV)
	var subjects []ingest.SubjectRow
	if err == nil {
		subjects, err = ingest.LoadSubjects(appCfg.SubjectsCSV)
	}
	if err != nil {
		logger.Warn("csv ingestion failed, seeding fallback set", zap.Error(err))
		students = ingest.FallbackStudents()
		subjects = ingest.FallbackSubjects()
	}

	store := recordstore.New()
	for _, row := range students {
		store.CreateStudent(recordstore.NewStudent{
			ID:        row.ID,
			Name:      row.Name,
			Email:     row.Email,
			Intake:    row.Intake,
			Programme: row.Programme,
			CGPA:      row.CGPA,
			Credits:   row.Credits,
		})
	}
	for _, row := range subjects {
		store.CreateSubject(recordstore.NewSubject{
			Code:      row.Code,
			Name:      row.Name,
			Status:    row.Status,
			Grade:     row.Grade,
			StudentID: row.StudentID,
		})
	}
	return store
}
