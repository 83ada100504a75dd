package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Manager issues and resolves session cookies against a Store.
type Manager struct {
	store      Store
	cookieName string
	ttl        time.Duration
	secure     bool
}

// NewManager creates a session manager
func NewManager(store Store, cookieName string, ttl time.Duration, secure bool) *Manager {
	return &Manager{
		store:      store,
		cookieName: cookieName,
		ttl:        ttl,
		secure:     secure,
	}
}

// Issue creates a session for adminID and sets the session cookie.
func (m *Manager) Issue(c *gin.Context, adminID int) (*Session, error) {
	sess, err := m.store.Create(adminID, m.ttl)
	if err != nil {
		return nil, err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, sess.ID, int(m.ttl.Seconds()), "/", "", m.secure, true)
	return sess, nil
}

// Current resolves the request's session cookie. Returns (nil, nil) when no
// valid session exists.
func (m *Manager) Current(c *gin.Context) (*Session, error) {
	id, err := c.Cookie(m.cookieName)
	if err != nil {
		// No cookie present
		return nil, nil
	}
	return m.store.Get(id)
}

// Clear destroys the request's session and expires the cookie.
func (m *Manager) Clear(c *gin.Context) error {
	id, err := c.Cookie(m.cookieName)
	if err != nil {
		return nil
	}

	if err := m.store.Delete(id); err != nil {
		return err
	}
	c.SetCookie(m.cookieName, "", -1, "/", "", m.secure, true)
	return nil
}
