package auth

import (
	"context"
	"time"
)

// Claims holds the validated contents of a token.
type Claims struct {
	UserID    int64
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}

// JWTService defines the contract for issuing and verifying bearer tokens.
type JWTService interface {
	// GenerateToken creates a signed token for the given user with the
	// configured lifetime.
	GenerateToken(ctx context.Context, userID int64) (string, error)

	// ValidateToken verifies a presented token and returns its claims.
	// Returns ErrExpiredToken for expired tokens and ErrInvalidToken for
	// malformed tokens or invalid signatures.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}
