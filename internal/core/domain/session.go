package domain

import "time"

// Session associates an opaque token with an authenticated user and their
// current score. It is the sole authority for "is this caller logged in":
// the sid cookie only carries the token, all state lives server-side.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Score     int       `json:"score"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session has passed its server-side expiry.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
