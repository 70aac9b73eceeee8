// Package auth provides token issuance/verification and password hashing
// services used by the identity layer.
package auth

import "errors"

// Common authentication errors.
var (
	// ErrInvalidToken is returned when a token is malformed, carries an
	// invalid signature, or otherwise fails validation.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token expired")

	// ErrTokenNotYetValid is returned when a token's NotBefore claim is in
	// the future.
	ErrTokenNotYetValid = errors.New("token not yet valid")
)
