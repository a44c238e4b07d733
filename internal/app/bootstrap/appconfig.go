// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (HTTP ports, TLS, logging level, CORS); AppConfig
// is everything specific to GradeHub.
type AppConfig struct {
	// StudentsCSV is the path of the student snapshot loaded at startup.
	StudentsCSV string
	// SubjectsCSV is the path of the subject snapshot loaded at startup.
	SubjectsCSV string
}
