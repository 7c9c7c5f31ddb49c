package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"book-review-service/internal/models"
)

func TestBookHandler_GetBooks(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status OK, got %d", w.Code)
	}

	var books []models.Book
	if err := json.Unmarshal(w.Body.Bytes(), &books); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(books) != 2 {
		t.Errorf("expected 2 books, got %d", len(books))
	}
	if books[0].ISBN != "978-1" {
		t.Errorf("catalog order not preserved, first ISBN = %s", books[0].ISBN)
	}
}

func TestBookHandler_GetBook(t *testing.T) {
	env := newTestEnv(t)

	t.Run("existing book", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/isbn/978-1", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status OK, got %d", w.Code)
		}

		var book models.Book
		if err := json.Unmarshal(w.Body.Bytes(), &book); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if book.Title != "Things Fall Apart" {
			t.Errorf("title = %s, want Things Fall Apart", book.Title)
		}
	})

	t.Run("unknown isbn", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/isbn/978-9", "", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected status NotFound, got %d", w.Code)
		}
	})
}

func TestBookHandler_GetBooksByAuthor(t *testing.T) {
	env := newTestEnv(t)

	t.Run("substring match", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/author/achebe", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status OK, got %d", w.Code)
		}

		var books []models.Book
		if err := json.Unmarshal(w.Body.Bytes(), &books); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(books) != 1 || books[0].ISBN != "978-1" {
			t.Errorf("unexpected result: %v", books)
		}
	})

	t.Run("empty match is 404", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/author/nonexistent", "", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected status NotFound, got %d", w.Code)
		}
	})
}

func TestBookHandler_GetBooksByTitle(t *testing.T) {
	env := newTestEnv(t)

	t.Run("substring match", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/title/fairy", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status OK, got %d", w.Code)
		}
	})

	t.Run("empty match is 404", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/title/nonexistent", "", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected status NotFound, got %d", w.Code)
		}
	})
}

func TestBookHandler_GetReviews(t *testing.T) {
	env := newTestEnv(t)
	env.Catalog.SetReview("978-1", "alice", "great book")

	t.Run("existing book", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/review/978-1", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status OK, got %d", w.Code)
		}

		var body struct {
			Reviews map[string]string `json:"reviews"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Reviews["alice"] != "great book" {
			t.Errorf("reviews = %v, want alice entry", body.Reviews)
		}
	})

	t.Run("unknown isbn", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/review/978-9", "", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected status NotFound, got %d", w.Code)
		}
	})
}
