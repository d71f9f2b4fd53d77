package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/MedusCode/kupipodariday-backend/internal/apperrors"
	model "github.com/MedusCode/kupipodariday-backend/internal/models"
	users "github.com/MedusCode/kupipodariday-backend/internal/userService"
)

// Service defines signup, signin and bearer-token handling. Tokens are
// HS256 JWTs whose subject is the user id.
type Service struct {
	users  *users.Service
	secret []byte
	ttl    time.Duration
}

// NewService creates a new auth Service instance.
func NewService(userService *users.Service, secret string, ttl time.Duration) *Service {
	return &Service{
		users:  userService,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Signup registers the account and issues a token for it. Credential
// collisions propagate as ErrAlreadyExists.
func (s *Service) Signup(ctx context.Context, input users.RegisterInput) (*model.User, string, error) {
	user, err := s.users.Register(ctx, input)
	if err != nil {
		return nil, "", fmt.Errorf("service: signup failed: %w", err)
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("service: signup failed: %w", err)
	}

	return user, token, nil
}

// Signin verifies the credentials and issues a token. An unknown
// username and a wrong password are indistinguishable to the caller.
func (s *Service) Signin(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("service: signin: %w", apperrors.ErrInvalidCredentials)
		}
		return "", fmt.Errorf("service: signin failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", fmt.Errorf("service: signin: %w", apperrors.ErrInvalidCredentials)
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("service: signin failed: %w", err)
	}
	return token, nil
}

// IssueToken signs a token for userID with the configured TTL.
func (s *Service) IssueToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"sub": float64(userID),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("service: failed to sign token for user %d: %w", userID, err)
	}
	return signed, nil
}

// ParseToken validates a bearer token and returns the user id it was
// issued for. Every failure mode maps to ErrInvalidCredentials so the
// middleware leaks nothing about why a token was rejected.
func (s *Service) ParseToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("service: invalid token: %w", apperrors.ErrInvalidCredentials)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("service: invalid token claims: %w", apperrors.ErrInvalidCredentials)
	}
	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return 0, fmt.Errorf("service: invalid token subject: %w", apperrors.ErrInvalidCredentials)
	}

	return uint(sub), nil
}
