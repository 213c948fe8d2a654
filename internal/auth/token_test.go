package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	m := NewManager("test-secret")

	token, err := m.Sign(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
}

func TestVerifyEmptyToken(t *testing.T) {
	m := NewManager("test-secret")

	_, err := m.Verify("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbageToken(t *testing.T) {
	m := NewManager("test-secret")

	_, err := m.Verify("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	m := NewManager("test-secret")
	other := NewManager("another-secret")

	token, err := m.Sign(42)
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyExpiredToken(t *testing.T) {
	m := NewManager("test-secret")

	// Token dibuat seolah-olah delapan hari yang lalu,
	// satu hari melewati masa berlaku tujuh hari
	m.now = func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }
	token, err := m.Sign(42)
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenLifetimeIsSevenDays(t *testing.T) {
	m := NewManager("test-secret")

	// Enam hari masih valid
	m.now = func() time.Time { return time.Now().Add(-6 * 24 * time.Hour) }
	token, err := m.Sign(7)
	require.NoError(t, err)

	m.now = time.Now
	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
}
