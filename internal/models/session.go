package models

import "time"

// Session binds an opaque token to the username that logged in.
// A user may hold several live sessions at once; logging in again
// never invalidates earlier tokens.
type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

const (
	SessionEntity = "session"
)
