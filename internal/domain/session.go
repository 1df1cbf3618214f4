package domain

import (
	"time"
)

// Session is an opaque bearer token persisted as a document. The token is the
// only handle clients ever see; the document id stays internal to the store.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
