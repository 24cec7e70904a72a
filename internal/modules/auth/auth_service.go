package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"trip-planner/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenLifetime = 24 * time.Hour

// ServiceInterface defines the contract for the auth service.
type ServiceInterface interface {
	IssueToken(ctx context.Context, accessKey string) (string, error)
}

// Service exchanges the configured service access key for a signed API
// token. There are no user accounts; every caller holding the key gets a
// short-lived client identity.
type Service struct {
	accessKey string
	jwtSecret string
}

// NewService creates a new auth service.
func NewService(accessKey, jwtSecret string) *Service {
	return &Service{accessKey: accessKey, jwtSecret: jwtSecret}
}

// IssueToken validates the presented key and returns a signed JWT.
func (s *Service) IssueToken(_ context.Context, accessKey string) (string, error) {
	if s.accessKey == "" ||
		subtle.ConstantTimeCompare([]byte(accessKey), []byte(s.accessKey)) != 1 {
		return "", models.ErrInvalidAccessKey
	}

	claims := &models.JwtCustomClaims{
		ClientID: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("service.IssueToken: %w", err)
	}
	return signed, nil
}
