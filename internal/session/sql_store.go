package session

import (
	"database/sql"
	"fmt"
	"time"
)

// SQLStore persists sessions in a dedicated table so logins survive a server
// restart. It shares the database handle with the entity storage.
type SQLStore struct {
	db *sql.DB
}

// NewSQLStore bootstraps the sessions table on db.
func NewSQLStore(db *sql.DB) (*SQLStore, error) {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			admin_id INTEGER NOT NULL,
			expires_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to create sessions table: %w", err)
	}
	return &SQLStore{db: db}, nil
}

// Create stores a new session for adminID
func (s *SQLStore) Create(adminID int, ttl time.Duration) (*Session, error) {
	sess, err := newSession(adminID, ttl)
	if err != nil {
		return nil, err
	}

	_, err = s.db.Exec(
		"INSERT INTO sessions (id, admin_id, expires_at) VALUES (?, ?, ?)",
		sess.ID, sess.AdminID, sess.ExpiresAt.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return sess, nil
}

// Get looks up a session by ID, purging it if expired
func (s *SQLStore) Get(id string) (*Session, error) {
	if id == "" {
		return nil, nil
	}

	sess := &Session{}
	var expiresAt int64
	err := s.db.QueryRow(
		"SELECT id, admin_id, expires_at FROM sessions WHERE id = ?", id,
	).Scan(&sess.ID, &sess.AdminID, &expiresAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	sess.ExpiresAt = time.Unix(expiresAt, 0)
	if sess.Expired() {
		if err := s.Delete(id); err != nil {
			return nil, err
		}
		return nil, nil
	}

	return sess, nil
}

// Delete removes a session. Deleting a missing ID is a no-op.
func (s *SQLStore) Delete(id string) error {
	if _, err := s.db.Exec("DELETE FROM sessions WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
