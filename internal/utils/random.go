package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"
)

const sessionTokenBytes = 32

// GenerateSessionToken returns an opaque, unguessable bearer token. Session
// tokens gate every mutation in the CMS, so the entropy source must be
// crypto/rand, never math/rand.
func GenerateSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func NewUserID() string {
	return "user-" + uuid.NewString()
}
