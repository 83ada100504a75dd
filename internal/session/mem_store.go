package session

import (
	"sync"
	"time"
)

// MemStore keeps sessions in process memory. Pairs with the in-memory
// entity storage for demo runs.
type MemStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemStore creates an empty in-memory session store
func NewMemStore() *MemStore {
	return &MemStore{sessions: make(map[string]*Session)}
}

// Create stores a new session for adminID
func (s *MemStore) Create(adminID int, ttl time.Duration) (*Session, error) {
	sess, err := newSession(adminID, ttl)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *sess
	s.sessions[sess.ID] = &copied
	return sess, nil
}

// Get looks up a session by ID, purging it if expired
func (s *MemStore) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	if sess.Expired() {
		delete(s.sessions, id)
		return nil, nil
	}

	copied := *sess
	return &copied, nil
}

// Delete removes a session. Deleting a missing ID is a no-op.
func (s *MemStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
