package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/maloquacious/wurlitzer/internal/store"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements the Store interface using modernc.org/sqlite.
type SQLiteStore struct {
	dbPath string
	db     *sql.DB
}

var _ store.Store = (*SQLiteStore)(nil)

// New creates a new SQLiteStore.
func New(dbPath string) *SQLiteStore {
	return &SQLiteStore{
		dbPath: dbPath,
	}
}

// Open opens the SQLite database, creating the file if it is absent.
func (s *SQLiteStore) Open() error {
	db, err := sql.Open("sqlite", s.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// One connection so every statement sees the same transaction state.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	s.db = db
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Create runs the schema against the database and commits.
// It fails if any object in the schema already exists.
func (s *SQLiteStore) Create(schema string) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Migrate re-runs the schema, copies the legacy user rows into the user
// table and drops the legacy table. Nothing is committed unless every step succeeds.
func (s *SQLiteStore) Migrate(schema string) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	if _, err := tx.Exec(copyLegacyUsers); err != nil {
		return fmt.Errorf("failed to copy %s rows: %w", store.LegacyUserTable, err)
	}

	if _, err := tx.Exec(dropLegacyUsers); err != nil {
		return fmt.Errorf("failed to drop %s: %w", store.LegacyUserTable, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// CheckState returns the current state of the datastore.
func (s *SQLiteStore) CheckState() (store.StoreState, error) {
	if s.db == nil {
		return store.StateMissing, fmt.Errorf("database not opened")
	}

	legacy, err := s.hasTable(store.LegacyUserTable)
	if err != nil {
		return store.StateUninitialized, err
	}
	if legacy {
		return store.StateLegacy, nil
	}

	current, err := s.hasTable(store.UserTable)
	if err != nil {
		return store.StateUninitialized, err
	}
	if !current {
		return store.StateUninitialized, nil
	}

	return store.StateReady, nil
}

// CountUsers returns the number of rows in the user table.
func (s *SQLiteStore) CountUsers() (int, error) {
	if s.db == nil {
		return 0, fmt.Errorf("database not opened")
	}

	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM user`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

func (s *SQLiteStore) hasTable(name string) (bool, error) {
	var count int
	if err := s.db.QueryRow(tableExists, name).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check %s table: %w", name, err)
	}
	return count > 0, nil
}
