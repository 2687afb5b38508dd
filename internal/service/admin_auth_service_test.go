package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAdminAuthService_Login(t *testing.T) {
	svc := NewAdminAuthService("Admin@Lot.test", hash(t, "s3cret"), "jwt-secret").(*adminAuthService)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	token, err := svc.Login(" admin@lot.test ", "s3cret")
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte("jwt-secret"), nil
	}, jwt.WithTimeFunc(func() time.Time { return fixed }))
	require.NoError(t, err)
	assert.Equal(t, "admin@lot.test", claims.Subject)
	assert.WithinDuration(t, fixed.Add(time.Hour), claims.ExpiresAt.Time, 0)
}

func TestAdminAuthService_Rejects(t *testing.T) {
	svc := NewAdminAuthService("admin@lot.test", hash(t, "s3cret"), "jwt-secret")

	_, err := svc.Login("admin@lot.test", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login("other@lot.test", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	noSecret := NewAdminAuthService("admin@lot.test", hash(t, "s3cret"), "")
	_, err = noSecret.Login("admin@lot.test", "s3cret")
	assert.EqualError(t, err, "JWT_SECRET not set")
}
