package store

import (
	"errors"
	"sync"

	"book-review-service/internal/models"
)

var (
	ErrInvalidInput  = errors.New("username and password are required")
	ErrDuplicateUser = errors.New("username already exists")
)

// UserStore is the in-memory registry of username/credential pairs.
// Registrations are serialized so a duplicate-check-then-insert is one
// atomic step: of two racing registrations for the same username,
// exactly one succeeds.
type UserStore struct {
	mu    sync.Mutex
	users map[string]models.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]models.User)}
}

func (s *UserStore) Register(username, password string) error {
	if username == "" || password == "" {
		return ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[username]; ok {
		return ErrDuplicateUser
	}
	s.users[username] = models.User{Username: username, Password: password}
	return nil
}

func (s *UserStore) Exists(username string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.users[username]
	return ok
}

// Verify reports whether a user with exactly this username/password
// pair is registered.
func (s *UserStore) Verify(username, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[username]
	return ok && u.Password == password
}
