package auth

import (
	"context"
	"errors"
	"testing"

	"trip-planner/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueTokenWithValidKey(t *testing.T) {
	svc := NewService("secret-key", "jwt-secret")

	signed, err := svc.IssueToken(context.Background(), "secret-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims := &models.JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("jwt-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("issued token did not verify: %v", err)
	}
	if claims.ClientID == "" {
		t.Fatal("token carries no client ID")
	}
}

func TestIssueTokenWithWrongKey(t *testing.T) {
	svc := NewService("secret-key", "jwt-secret")

	if _, err := svc.IssueToken(context.Background(), "guess"); !errors.Is(err, models.ErrInvalidAccessKey) {
		t.Fatalf("expected ErrInvalidAccessKey, got %v", err)
	}
}

func TestIssueTokenWithUnconfiguredKey(t *testing.T) {
	svc := NewService("", "jwt-secret")

	if _, err := svc.IssueToken(context.Background(), ""); !errors.Is(err, models.ErrInvalidAccessKey) {
		t.Fatalf("an empty configured key must never issue tokens, got %v", err)
	}
}
