// Package session provides the server-side session store backing the
// dashboard's cookie authentication. Session data lives in its own store,
// keyed by session ID, separate from the entity tables.
package session

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Session ties a browser cookie to a logged-in admin.
type Session struct {
	ID        string
	AdminID   int
	ExpiresAt time.Time
}

// Expired reports whether the session's lifetime has passed.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Store persists sessions. Get returns (nil, nil) for unknown or expired
// IDs; expired sessions are purged on lookup.
type Store interface {
	Create(adminID int, ttl time.Duration) (*Session, error)
	Get(id string) (*Session, error)
	Delete(id string) error
}

var errInvalidTTL = errors.New("session TTL must be positive")

func newSession(adminID int, ttl time.Duration) (*Session, error) {
	if ttl <= 0 {
		return nil, errInvalidTTL
	}
	return &Session{
		ID:        uuid.New().String(),
		AdminID:   adminID,
		ExpiresAt: time.Now().Add(ttl),
	}, nil
}
