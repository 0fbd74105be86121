package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundtrip(t *testing.T) {
	m, err := NewTokenManager("test-secret")
	require.NoError(t, err)

	token, err := m.Generate(42, "admin")
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	issuer, err := NewTokenManager("secret-a")
	require.NoError(t, err)
	verifier, err := NewTokenManager("secret-b")
	require.NoError(t, err)

	token, err := issuer.Generate(1, "admin")
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.Error(t, err)
}

func TestTokenRejectsExpired(t *testing.T) {
	m := &TokenManager{secret: []byte("test-secret"), ttl: -time.Minute}

	token, err := m.Generate(1, "admin")
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.Error(t, err)
}

func TestTokenRejectsGarbage(t *testing.T) {
	m, err := NewTokenManager("test-secret")
	require.NoError(t, err)

	_, err = m.Parse("not-a-token")
	assert.Error(t, err)
}

func TestNewTokenManagerRequiresSecret(t *testing.T) {
	_, err := NewTokenManager("")
	assert.Error(t, err)
}
