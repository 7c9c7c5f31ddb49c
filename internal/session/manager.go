package session

import (
	"errors"
	"sync"
	"time"

	"book-review-service/internal/models"
	"book-review-service/internal/utils"
)

var ErrInvalidSession = errors.New("invalid or expired session")

// Manager issues and resolves session tokens. Tokens are signed JWTs,
// but the manager's table is the authority: a token the table does not
// hold is invalid regardless of its signature, which is what makes
// Invalidate work. Expiry is checked lazily on resolve; the sweeper
// daemon only reclaims memory.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	ttl      time.Duration
}

// NewManager creates a manager issuing sessions valid for ttl.
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]models.Session),
		ttl:      ttl,
	}
}

// Create mints a token for username and records the session. Earlier
// sessions for the same user stay valid.
func (m *Manager) Create(username string) (models.Session, error) {
	token, err := utils.GenerateJWT(username, m.ttl)
	if err != nil {
		return models.Session{}, err
	}

	now := time.Now()
	sess := models.Session{
		Token:     token,
		Username:  username,
		IssuedAt:  now,
		ExpiresAt: now.Add(m.ttl),
	}

	m.mu.Lock()
	m.sessions[token] = sess
	m.mu.Unlock()

	return sess, nil
}

// Resolve maps a token back to its username. Expired sessions are
// treated as absent and removed; once invalid, a token never resolves
// again.
func (m *Manager) Resolve(token string) (string, error) {
	m.mu.RLock()
	sess, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok {
		return "", ErrInvalidSession
	}
	if time.Now().After(sess.ExpiresAt) {
		m.Invalidate(token)
		return "", ErrInvalidSession
	}
	return sess.Username, nil
}

// Invalidate removes the session if present, otherwise no-op.
func (m *Manager) Invalidate(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// Sweep drops expired sessions and returns how many were removed.
func (m *Manager) Sweep() int {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for token, sess := range m.sessions {
		if now.After(sess.ExpiresAt) {
			delete(m.sessions, token)
			removed++
		}
	}
	return removed
}
