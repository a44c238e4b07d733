// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	recordstore "github.com/dalemusser/gradehub/internal/app/store/records"
)

// DBDeps holds the back-end dependencies for the app. GradeHub's only
// backing state is the in-memory record store, built and seeded in
// ConnectDB and rebuilt from scratch on every process start.
type DBDeps struct {
	Records *recordstore.Store
}
