// Package sqlitex opens SQLite database handles with sensible defaults,
// supporting both pure Go (modernc.org/sqlite) and CGO (mattn/go-sqlite3)
// drivers.
//
// Build modes:
//   - Default: uses pure Go modernc.org/sqlite
//   - CGO mode (CGO_ENABLED=1 -tags cgo_sqlite): uses mattn/go-sqlite3
//
// The driver name is "sqlite" or "sqlite3" depending on the implementation.
// Use Open instead of sql.Open to get the correct driver either way.
//
// This package is a convenience collaborator for the table package, which
// itself only borrows connections and never opens them.
package sqlitex

import (
	"database/sql"
	"fmt"
)

// pragmas applied by Open to every new handle.
var pragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA synchronous=NORMAL",
	"PRAGMA foreign_keys=ON",
	"PRAGMA busy_timeout=5000",
}

// DriverName returns the SQL driver name registered by the selected
// implementation.
func DriverName() string {
	return driverName
}

// DriverType returns a string identifying the underlying implementation.
// Returns "cgo" for mattn/go-sqlite3, "purego" for modernc.org/sqlite.
func DriverType() string {
	return driverType
}

// IsCGO returns true if the CGO implementation is being used.
func IsCGO() bool {
	return driverType == "cgo"
}

// Open opens a SQLite database using the selected driver and applies safe
// default pragmas (WAL journaling, normal sync, foreign keys, busy timeout).
func Open(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("sqlitex: open %s: %w", dataSourceName, err)
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlitex: set pragma %q: %w", pragma, err)
		}
	}
	return db, nil
}

// OpenReadOnly opens a SQLite database in read-only mode. No pragmas are
// applied; journal mode cannot be changed on a read-only handle.
func OpenReadOnly(path string) (*sql.DB, error) {
	db, err := sql.Open(driverName, path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("sqlitex: open read-only %s: %w", path, err)
	}
	return db, nil
}

// MustOpen opens a SQLite database and panics on error. Intended for tests
// and initialization code where failure is unrecoverable.
func MustOpen(dataSourceName string) *sql.DB {
	db, err := Open(dataSourceName)
	if err != nil {
		panic(err)
	}
	return db
}

// Info describes the selected SQLite driver configuration.
type Info struct {
	DriverName string `json:"driver_name"`
	DriverType string `json:"driver_type"`
	IsCGO      bool   `json:"is_cgo"`
	Package    string `json:"package"`
}

// GetInfo returns information about the current SQLite configuration.
func GetInfo() Info {
	return Info{
		DriverName: driverName,
		DriverType: driverType,
		IsCGO:      IsCGO(),
		Package:    driverPackage,
	}
}
