package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AdminRole is the only role issued by AuthService.
const AdminRole = "admin"

const defaultTokenTTL = 24 * time.Hour

var (
	ErrAuthDisabled       = errors.New("admin auth is not configured")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService issues and verifies admin bearer tokens for a single
// configured account.
type AuthService struct {
	Username     string
	PasswordHash string
	Secret       []byte
	TTL          time.Duration
	Now          func() time.Time
}

// Enabled reports whether an admin password hash is configured.
func (s AuthService) Enabled() bool {
	return strings.TrimSpace(s.PasswordHash) != "" && len(s.Secret) > 0
}

// Issue checks the credentials and returns a signed token with its expiry.
func (s AuthService) Issue(username, password string) (string, time.Time, error) {
	if !s.Enabled() {
		return "", time.Time{}, ErrAuthDisabled
	}
	if strings.TrimSpace(username) != s.Username {
		return "", time.Time{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.PasswordHash), []byte(password)); err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	ttl := s.TTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	exp := s.now().Add(ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  s.Username,
		"role": AdminRole,
		"exp":  exp.Unix(),
	})
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// Parse verifies the token and returns its role claim.
func (s AuthService) Parse(tokenString string) (string, error) {
	if !s.Enabled() {
		return "", ErrAuthDisabled
	}
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	role, _ := claims["role"].(string)
	if role == "" {
		return "", ErrInvalidToken
	}
	return role, nil
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
