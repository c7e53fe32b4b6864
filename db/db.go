package db

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Open opens or creates the SQLite database at the given path.
// An empty path falls back to ~/.local/share/tagging-football-cli/data.db.
// Parent directories are created if they don't exist, the schema is applied,
// and foreign keys are enabled so match deletion cascades to events.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		var err error
		path, err = defaultPath()
		if err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	database, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}

	if err := database.Ping(); err != nil {
		database.Close()
		return nil, err
	}

	if err := migrate(database); err != nil {
		database.Close()
		return nil, err
	}

	return database, nil
}

// OpenMemory opens an in-memory database with the schema applied.
// Used by tests; the pool is capped at one connection so every statement
// sees the same in-memory database.
func OpenMemory() (*sql.DB, error) {
	database, err := sql.Open("sqlite", ":memory:?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	database.SetMaxOpenConns(1)

	if err := migrate(database); err != nil {
		database.Close()
		return nil, err
	}

	return database, nil
}

// migrate applies the schema. All statements use IF NOT EXISTS, so this is
// safe to run on every startup.
func migrate(database *sql.DB) error {
	_, err := database.Exec(CreateTablesSQL)
	return err
}

// defaultPath returns the default database file location.
func defaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".local", "share", "tagging-football-cli", "data.db"), nil
}
