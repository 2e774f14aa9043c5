package model

import "time"

// Session maps an opaque server-held token to an authenticated user, with a
// fixed absolute expiry set at creation.
type Session struct {
	Token     string    `json:"-"`
	UserID    int       `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session's absolute expiry has passed.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
