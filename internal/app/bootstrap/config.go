// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for GradeHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: students_csv, subjects_csv
//   - Environment variables: GRADEHUB_STUDENTS_CSV, GRADEHUB_SUBJECTS_CSV
//   - Command-line flags: --students_csv, --subjects_csv
var appConfigKeys = []config.AppKey{
	{Name: "students_csv", Default: "./data/students.csv", Desc: "Path of the student snapshot CSV loaded at startup"},
	{Name: "subjects_csv", Default: "./data/subjects.csv", Desc: "Path of the subject snapshot CSV loaded at startup"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config files,
// environment variables (WAFFLE_* for core, GRADEHUB_* for app), and
// command-line flags, merging with precedence flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "GRADEHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		StudentsCSV: appValues.String("students_csv"),
		SubjectsCSV: appValues.String("subjects_csv"),
	}
	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// A missing file at either path is NOT an error here: ingestion failure is
// recovered at connect time by seeding the fallback set. Only structurally
// unusable configuration (blank paths) aborts startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.StudentsCSV == "" {
		return fmt.Errorf("students_csv must not be blank")
	}
	if appCfg.SubjectsCSV == "" {
		return fmt.Errorf("subjects_csv must not be blank")
	}
	return nil
}
