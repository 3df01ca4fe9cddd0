package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTMakerRoundTrip(t *testing.T) {
	m := NewJWTMaker("secret", time.Minute)
	id := uuid.New()

	token, claims, err := m.GenerateToken(id, "a@b.c", "recruiter")
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)

	got, err := m.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, got.UserID)
	assert.Equal(t, "recruiter", got.Role)
}

func TestJWTMakerRejects(t *testing.T) {
	m := NewJWTMaker("secret", time.Minute)
	token, _, err := m.GenerateToken(uuid.New(), "a@b.c", "recruiter")
	require.NoError(t, err)

	_, err = NewJWTMaker("other", time.Minute).VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, _, err := NewJWTMaker("secret", -time.Minute).GenerateToken(uuid.New(), "a@b.c", "recruiter")
	require.NoError(t, err)
	_, err = m.VerifyToken(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.VerifyToken("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
