package middleware

import (
	"context"
	"net/http"

	"book-review-service/internal/session"
	"book-review-service/internal/utils"
)

type contextKey string

const ContextUsername contextKey = "username"

type SessionMiddleware struct {
	Sessions *session.Manager
}

// RequireSession rejects requests without a resolvable session token
// and stores the resolved username in the request context.
func (m *SessionMiddleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := session.TokenFromRequest(r)
		if token == "" {
			utils.JSONError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		if _, err := utils.ParseJWT(token); err != nil {
			utils.JSONError(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		username, err := m.Sessions.Resolve(token)
		if err != nil {
			utils.JSONError(w, "Invalid or expired session", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ContextUsername, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
