package service

import (
	"context"
	"errors"

	"book-review-service/internal/constants"
	"book-review-service/internal/models"
	"book-review-service/internal/session"
	"book-review-service/internal/store"
	"book-review-service/internal/utils"
)

var (
	ErrUnauthorized = errors.New("invalid or expired session")

	// ErrInternal marks a broken invariant (a live session pointing at
	// an unknown user), not a user-facing failure.
	ErrInternal = errors.New("session references an unknown user")
)

// ReviewService performs authorized review mutations. The mutation
// target is always the token-resolved username; callers never supply
// one, so a session can only touch its own review slot.
type ReviewService struct {
	sessions *session.Manager
	users    *store.UserStore
	catalog  *store.BookCatalog
	audit    utils.Logger
}

func NewReviewService(sessions *session.Manager, users *store.UserStore, catalog *store.BookCatalog, audit utils.Logger) *ReviewService {
	return &ReviewService{
		sessions: sessions,
		users:    users,
		catalog:  catalog,
		audit:    audit,
	}
}

type ReviewResult struct {
	Username string
	Review   string
	Reviews  map[string]string
}

// AddOrUpdateReview upserts the caller's review on the book. Creating
// and overwriting are the same operation, so a repeat call with the
// same text yields the same review map.
func (s *ReviewService) AddOrUpdateReview(token, isbn, text string) (ReviewResult, error) {
	username, err := s.resolve(token)
	if err != nil {
		return ReviewResult{}, err
	}

	reviews, err := s.catalog.SetReview(isbn, username, text)
	if err != nil {
		return ReviewResult{}, err
	}

	s.audit.Log(context.Background(), models.BookEntity, constants.Update, username, map[string]string{"isbn": isbn, "review": text})

	return ReviewResult{Username: username, Review: text, Reviews: reviews}, nil
}

// DeleteReview removes the caller's review on the book, reporting a
// missing book and a missing review distinctly.
func (s *ReviewService) DeleteReview(token, isbn string) (map[string]string, error) {
	username, err := s.resolve(token)
	if err != nil {
		return nil, err
	}

	reviews, err := s.catalog.DeleteReview(isbn, username)
	if err != nil {
		return nil, err
	}

	s.audit.Log(context.Background(), models.BookEntity, constants.Delete, username, map[string]string{"isbn": isbn})

	return reviews, nil
}

func (s *ReviewService) resolve(token string) (string, error) {
	username, err := s.sessions.Resolve(token)
	if err != nil {
		return "", ErrUnauthorized
	}
	if !s.users.Exists(username) {
		return "", ErrInternal
	}
	return username, nil
}
