package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSessionToken(t *testing.T) {
	token, err := GenerateSessionToken()
	require.NoError(t, err)

	// 32 random bytes in unpadded base64url
	assert.Len(t, token, 43)
	assert.NotContains(t, token, "=")
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")
}

func TestGenerateSessionTokenUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateSessionToken()
		require.NoError(t, err)
		assert.False(t, seen[token], "token collision")
		seen[token] = true
	}
}

func TestNewUserID(t *testing.T) {
	id := NewUserID()
	assert.True(t, strings.HasPrefix(id, "user-"))
	assert.NotEqual(t, id, NewUserID())
}
