package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"book-review-service/internal/constants"
	"book-review-service/internal/middleware"
	"book-review-service/internal/models"
	"book-review-service/internal/session"
	"book-review-service/internal/store"
	"book-review-service/internal/utils"
)

type AuthHandler struct {
	Users       *store.UserStore
	Sessions    *session.Manager
	AuditLogger utils.Logger
}

func NewAuthHandler(users *store.UserStore, sessions *session.Manager, logger utils.Logger) *AuthHandler {
	return &AuthHandler{Users: users, Sessions: sessions, AuditLogger: logger}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// POST /register
func (a *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if err := a.Users.Register(req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateUser):
			utils.JSONError(w, "Username already exists", http.StatusBadRequest)
		default:
			utils.JSONError(w, "Username and password are required", http.StatusBadRequest)
		}
		return
	}

	a.AuditLogger.Log(r.Context(), models.UserEntity, constants.Register, req.Username, nil)

	json.NewEncoder(w).Encode(map[string]string{"message": "User registered successfully"})
}

// POST /login
func (a *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if req.Username == "" || req.Password == "" {
		utils.JSONError(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	if !a.Users.Verify(req.Username, req.Password) {
		utils.JSONError(w, "Invalid Login. Check username and password", http.StatusNotFound)
		return
	}

	sess, err := a.Sessions.Create(req.Username)
	if err != nil {
		utils.JSONError(w, "Could not create session", http.StatusInternalServerError)
		return
	}

	session.SetCookie(w, sess.Token, sess.ExpiresAt)

	a.AuditLogger.Log(r.Context(), models.SessionEntity, constants.Login, req.Username, nil)

	json.NewEncoder(w).Encode(LoginResponse{
		Message: "User successfully logged in",
		Token:   sess.Token,
	})
}

// POST /auth/logout
func (a *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := session.TokenFromRequest(r)
	a.Sessions.Invalidate(token)
	session.ClearCookie(w)

	if username, ok := r.Context().Value(middleware.ContextUsername).(string); ok {
		a.AuditLogger.Log(r.Context(), models.SessionEntity, constants.Logout, username, nil)
	}

	json.NewEncoder(w).Encode(map[string]string{"message": "User successfully logged out"})
}
