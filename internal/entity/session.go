package entity

import "time"

// Session binds a client (cookie-carried session id) to the token it
// currently holds. ExpiresAt is the session's own lifetime, independent of
// the token's embedded expiry.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Token     string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
