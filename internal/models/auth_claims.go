package models

import "github.com/golang-jwt/jwt/v5"

// JwtCustomClaims carries the claims embedded in an issued API token.
type JwtCustomClaims struct {
	ClientID string `json:"client_id"`
	jwt.RegisteredClaims
}
