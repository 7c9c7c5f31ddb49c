package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"book-review-service/internal/service"
	"book-review-service/internal/session"
	"book-review-service/internal/store"
	"book-review-service/internal/utils"
)

type ReviewHandler struct {
	Service *service.ReviewService
}

func NewReviewHandler(svc *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: svc}
}

// PUT /auth/review/{isbn}?review=text
func (h *ReviewHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	isbn := mux.Vars(r)["isbn"]
	text := r.URL.Query().Get("review")
	token := session.TokenFromRequest(r)

	result, err := h.Service.AddOrUpdateReview(token, isbn, text)
	if err != nil {
		writeReviewError(w, err)
		return
	}

	json.NewEncoder(w).Encode(map[string]any{
		"message": "Review added/modified successfully",
		"review":  result.Review,
		"reviews": result.Reviews,
	})
}

// DELETE /auth/review/{isbn}
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	isbn := mux.Vars(r)["isbn"]
	token := session.TokenFromRequest(r)

	reviews, err := h.Service.DeleteReview(token, isbn)
	if err != nil {
		writeReviewError(w, err)
		return
	}

	json.NewEncoder(w).Encode(map[string]any{
		"message": "Review deleted successfully",
		"reviews": reviews,
	})
}

func writeReviewError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		utils.JSONError(w, "Invalid or expired session", http.StatusUnauthorized)
	case errors.Is(err, store.ErrBookNotFound):
		utils.JSONError(w, "Book not found", http.StatusNotFound)
	case errors.Is(err, store.ErrReviewNotFound):
		utils.JSONError(w, "Review not found", http.StatusNotFound)
	default:
		utils.JSONError(w, "Internal server error", http.StatusInternalServerError)
	}
}
