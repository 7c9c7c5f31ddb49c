package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"book-review-service/internal/store"
	"book-review-service/internal/utils"
)

type BookHandler struct {
	Catalog *store.BookCatalog
}

func NewBookHandler(catalog *store.BookCatalog) *BookHandler {
	return &BookHandler{Catalog: catalog}
}

// GET /
func (h *BookHandler) GetBooks(w http.ResponseWriter, r *http.Request) {
	books := h.Catalog.All()
	if err := json.NewEncoder(w).Encode(books); err != nil {
		utils.JSONError(w, "Error retrieving books", http.StatusInternalServerError)
	}
}

// GET /isbn/{isbn}
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	isbn := mux.Vars(r)["isbn"]

	book, err := h.Catalog.ByISBN(isbn)
	if err != nil {
		utils.JSONError(w, "Book not found", http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(book)
}

// GET /author/{author}
func (h *BookHandler) GetBooksByAuthor(w http.ResponseWriter, r *http.Request) {
	author := mux.Vars(r)["author"]

	books, err := h.Catalog.ByAuthor(author)
	if err != nil {
		utils.JSONError(w, "No books found by this author", http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(books)
}

// GET /title/{title}
func (h *BookHandler) GetBooksByTitle(w http.ResponseWriter, r *http.Request) {
	title := mux.Vars(r)["title"]

	books, err := h.Catalog.ByTitle(title)
	if err != nil {
		utils.JSONError(w, "No books found by this title", http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(books)
}

// GET /review/{isbn}
func (h *BookHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	isbn := mux.Vars(r)["isbn"]

	reviews, err := h.Catalog.Reviews(isbn)
	if err != nil {
		utils.JSONError(w, "Book not found", http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(map[string]any{"reviews": reviews})
}
