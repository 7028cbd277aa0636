package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	store := NewMemorySessionStore("opensesame", time.Hour)

	token, err := store.Issue("opensesame")
	require.NoError(t, err)
	assert.Len(t, token, 64, "token is 32 random bytes hex encoded")

	assert.True(t, store.Validate(token))

	store.Revoke(token)
	assert.False(t, store.Validate(token))
}

func TestSessionRejectsWrongPassword(t *testing.T) {
	store := NewMemorySessionStore("opensesame", time.Hour)

	token, err := store.Issue("wrong")
	assert.ErrorIs(t, err, ErrInvalidPassword)
	assert.Empty(t, token)
}

func TestSessionExpires(t *testing.T) {
	store := NewMemorySessionStore("opensesame", 10*time.Millisecond)

	token, err := store.Issue("opensesame")
	require.NoError(t, err)
	assert.True(t, store.Validate(token))

	time.Sleep(30 * time.Millisecond)
	assert.False(t, store.Validate(token), "expired token fails closed")
}

func TestSessionTokensAreUnique(t *testing.T) {
	store := NewMemorySessionStore("opensesame", time.Hour)

	a, err := store.Issue("opensesame")
	require.NoError(t, err)
	b, err := store.Issue("opensesame")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, store.Validate(a), "issuing a second token keeps the first valid")
	assert.True(t, store.Validate(b))
}

func TestRevokeUnknownTokenIsNoOp(t *testing.T) {
	store := NewMemorySessionStore("opensesame", time.Hour)
	store.Revoke("never-issued")
	assert.False(t, store.Validate("never-issued"))
}
