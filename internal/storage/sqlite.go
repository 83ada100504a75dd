package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// SQLite is the database-backed Storage implementation. Concurrent-write
// consistency is delegated to the SQLite engine; the application layer only
// uses a transaction for the campaign cascade delete.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at dsn and bootstraps the schema.
func NewSQLite(dsn string) (*SQLite, error) {
	if dsn == "" {
		return nil, errors.New("database DSN is required")
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	// Verify we can actually connect to the database
	if err := db.Ping(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("ping failed: %w, close failed: %v", err, closeErr)
		}
		return nil, err
	}

	if err := createTables(db); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("create tables failed: %w, close failed: %v", err, closeErr)
		}
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS admins (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS contacts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			phone TEXT NOT NULL UNIQUE,
			email TEXT,
			is_active BOOLEAN NOT NULL DEFAULT 1
		);

		CREATE TABLE IF NOT EXISTS campaigns (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			start_date TEXT NOT NULL,
			end_date TEXT NOT NULL,
			sms_message TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'active',
			platforms TEXT NOT NULL,
			created_at TEXT NOT NULL,
			form_url TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS submissions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			campaign_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			platform TEXT NOT NULL,
			screenshot_url TEXT NOT NULL,
			engagement_count INTEGER NOT NULL,
			points INTEGER NOT NULL DEFAULT 0,
			submitted_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS activities (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			type TEXT NOT NULL,
			message TEXT NOT NULL,
			timestamp TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_submissions_campaign_id ON submissions(campaign_id);
		CREATE INDEX IF NOT EXISTS idx_contacts_phone ON contacts(phone);
	`)
	return err
}

// GetDB exposes the underlying handle for stores that share the database,
// such as the session store.
func (s *SQLite) GetDB() *sql.DB {
	return s.db
}

// Close closes the database connection
func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return errors.New("database already closed")
	}

	err := s.db.Close()
	s.db = nil
	return err
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

// lastInsertID extracts the autoincrement ID assigned by an insert.
func lastInsertID(res sql.Result) (int, error) {
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read insert id: %w", err)
	}
	return int(id), nil
}
