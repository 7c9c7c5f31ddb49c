package store

import (
	"errors"
	"strings"
	"sync"

	"book-review-service/internal/models"
)

var (
	ErrBookNotFound   = errors.New("book not found")
	ErrReviewNotFound = errors.New("review not found")
)

// bookEntry guards a single book's review map. Reviewers of different
// books never contend on each other's lock.
type bookEntry struct {
	mu   sync.Mutex
	book models.Book
}

// BookCatalog owns the ISBN-keyed book map. The outer lock covers the
// map and insertion order only; each book carries its own lock for
// review mutation.
type BookCatalog struct {
	mu    sync.RWMutex
	books map[string]*bookEntry
	order []string
}

func NewBookCatalog() *BookCatalog {
	return &BookCatalog{books: make(map[string]*bookEntry)}
}

// Add seeds a book into the catalog. Books are seeded at startup; users
// never create or delete them, only their review maps mutate.
func (c *BookCatalog) Add(book models.Book) {
	if book.Reviews == nil {
		book.Reviews = make(map[string]string)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.books[book.ISBN]; !ok {
		c.order = append(c.order, book.ISBN)
	}
	c.books[book.ISBN] = &bookEntry{book: book}
}

// All returns every book in catalog insertion order.
func (c *BookCatalog) All() []models.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()

	books := make([]models.Book, 0, len(c.order))
	for _, isbn := range c.order {
		books = append(books, c.books[isbn].snapshot())
	}
	return books
}

func (c *BookCatalog) ByISBN(isbn string) (models.Book, error) {
	c.mu.RLock()
	entry, ok := c.books[isbn]
	c.mu.RUnlock()

	if !ok {
		return models.Book{}, ErrBookNotFound
	}
	return entry.snapshot(), nil
}

// ByAuthor matches the author field case-insensitively by substring.
// An empty match reports ErrBookNotFound rather than an empty list,
// mirroring the shipped behavior.
func (c *BookCatalog) ByAuthor(author string) ([]models.Book, error) {
	return c.match(func(b models.Book) bool {
		return strings.Contains(strings.ToLower(b.Author), strings.ToLower(author))
	})
}

// ByTitle matches the title field with the same policy as ByAuthor.
func (c *BookCatalog) ByTitle(title string) ([]models.Book, error) {
	return c.match(func(b models.Book) bool {
		return strings.Contains(strings.ToLower(b.Title), strings.ToLower(title))
	})
}

func (c *BookCatalog) match(keep func(models.Book) bool) ([]models.Book, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var books []models.Book
	for _, isbn := range c.order {
		if b := c.books[isbn].snapshot(); keep(b) {
			books = append(books, b)
		}
	}
	if len(books) == 0 {
		return nil, ErrBookNotFound
	}
	return books, nil
}

func (c *BookCatalog) Reviews(isbn string) (map[string]string, error) {
	c.mu.RLock()
	entry, ok := c.books[isbn]
	c.mu.RUnlock()

	if !ok {
		return nil, ErrBookNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return copyReviews(entry.book.Reviews), nil
}

// SetReview upserts the review keyed by username: created if absent,
// overwritten if present. Returns a copy of the updated review map.
func (c *BookCatalog) SetReview(isbn, username, text string) (map[string]string, error) {
	c.mu.RLock()
	entry, ok := c.books[isbn]
	c.mu.RUnlock()

	if !ok {
		return nil, ErrBookNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.book.Reviews[username] = text
	return copyReviews(entry.book.Reviews), nil
}

// DeleteReview removes the review keyed by username. Missing book and
// missing review are reported distinctly.
func (c *BookCatalog) DeleteReview(isbn, username string) (map[string]string, error) {
	c.mu.RLock()
	entry, ok := c.books[isbn]
	c.mu.RUnlock()

	if !ok {
		return nil, ErrBookNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if _, ok := entry.book.Reviews[username]; !ok {
		return nil, ErrReviewNotFound
	}
	delete(entry.book.Reviews, username)
	return copyReviews(entry.book.Reviews), nil
}

// snapshot copies the book so callers never alias the guarded map.
func (e *bookEntry) snapshot() models.Book {
	e.mu.Lock()
	defer e.mu.Unlock()

	b := e.book
	b.Reviews = copyReviews(e.book.Reviews)
	return b
}

func copyReviews(reviews map[string]string) map[string]string {
	out := make(map[string]string, len(reviews))
	for user, text := range reviews {
		out[user] = text
	}
	return out
}
