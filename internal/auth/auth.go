package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token expired")
)

// Claims for operator tokens.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Config holds the operator credential and signing configuration.
type Config struct {
	Secret       []byte
	PasswordHash string // bcrypt hash of the operator password
	TokenTTL     time.Duration
	Issuer       string
}

// Service issues and validates operator tokens. With no secret or password
// hash configured the service reports disabled and the middleware lets
// requests through.
type Service struct {
	secret       []byte
	passwordHash string
	tokenTTL     time.Duration
	issuer       string
}

// NewService creates the operator auth service.
func NewService(cfg Config) *Service {
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = 1 * time.Hour
	}
	if cfg.Issuer == "" {
		cfg.Issuer = "boxing-platform"
	}
	return &Service{
		secret:       cfg.Secret,
		passwordHash: cfg.PasswordHash,
		tokenTTL:     cfg.TokenTTL,
		issuer:       cfg.Issuer,
	}
}

// Enabled reports whether mutating endpoints require a token.
func (s *Service) Enabled() bool {
	return len(s.secret) > 0 && s.passwordHash != ""
}

// Login verifies the operator password and returns a signed token.
func (s *Service) Login(password string) (string, time.Time, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	now := time.Now()
	expiresAt := now.Add(s.tokenTTL)
	claims := Claims{
		Role: "operator",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   "operator",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// ValidateToken parses and checks an operator token.
func (s *Service) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
