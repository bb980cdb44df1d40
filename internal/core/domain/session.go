package domain

import "time"

// Session identifies an anonymous browser session. Namespace is derived
// from ID and is the only part that reaches storage.
type Session struct {
	ID        string    `json:"-"`
	Namespace string    `json:"-"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
