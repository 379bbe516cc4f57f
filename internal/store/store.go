package store

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 1 - devices, device_history, staff, wards
const currentSchemaVersion = 1

const defaultBusyTimeoutMS = 5000

// Options control how the database file is opened.
type Options struct {
	// Path is the full path of the SQLite database file.
	Path string
	// DisableWAL falls back to the rollback journal. Needed when the data
	// directory sits on a filesystem that cannot share WAL sidecar files.
	DisableWAL bool
	// BusyTimeoutMS is the wait budget for a locked database before a
	// write fails with SQLITE_BUSY. Zero means 5000.
	BusyTimeoutMS int
	// RecreateOnStart deletes the database file (and WAL sidecars) before
	// opening. Destroys all data; meant for ephemeral/demo deployments
	// and never enabled by default.
	RecreateOnStart bool
}

// Store owns the embedded database handle for the four record tables.
type Store struct {
	db *sql.DB
}

// Open creates or opens the SQLite database at opts.Path, applies pragmas
// and the schema, and records the schema version. Idempotent.
func Open(opts Options) (*Store, error) {
	if opts.RecreateOnStart {
		for _, p := range []string{opts.Path, opts.Path + "-wal", opts.Path + "-shm"} {
			if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to remove %s: %w", p, err)
			}
		}
	}

	db, err := sql.Open("sqlite3", opts.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite allows a single writer; one pooled connection avoids
	// SQLITE_BUSY between our own requests and lets the busy timeout
	// cover only external lock holders.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db, opts); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DB returns the underlying handle for the repositories.
func (s *Store) DB() *sql.DB {
	return s.db
}

func applyPragmas(db *sql.DB, opts Options) error {
	journalMode := "WAL"
	if opts.DisableWAL {
		journalMode = "DELETE"
	}
	busyTimeout := opts.BusyTimeoutMS
	if busyTimeout <= 0 {
		busyTimeout = defaultBusyTimeoutMS
	}

	pragmas := []string{
		fmt.Sprintf("PRAGMA journal_mode = %s", journalMode),
		"PRAGMA synchronous = NORMAL",
		fmt.Sprintf("PRAGMA busy_timeout = %d", busyTimeout),
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// applySchema creates the tables if they don't exist and stamps the schema
// version. Any future schema change must be an explicit numbered migration
// keyed off user_version, not an edit of schema.sql alone.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version > currentSchemaVersion {
		return fmt.Errorf("database schema version %d is newer than supported version %d", version, currentSchemaVersion)
	}
	if version < currentSchemaVersion {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
			return fmt.Errorf("failed to set schema version: %w", err)
		}
	}

	return nil
}
