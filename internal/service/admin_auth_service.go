package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const tokenTTL = time.Hour

type AdminAuthService interface {
	Login(email, password string) (string, error)
}

type adminAuthService struct {
	email        string
	passwordHash []byte
	secret       []byte
	now          func() time.Time
}

// NewAdminAuthService checks logins against a single configured admin whose
// password is stored as a bcrypt hash.
func NewAdminAuthService(email, passwordHash, secret string) AdminAuthService {
	return &adminAuthService{
		email:        strings.ToLower(strings.TrimSpace(email)),
		passwordHash: []byte(passwordHash),
		secret:       []byte(secret),
		now:          time.Now,
	}
}

func (s *adminAuthService) Login(email, password string) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("JWT_SECRET not set")
	}
	if s.email == "" || strings.ToLower(strings.TrimSpace(email)) != s.email {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   s.email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
