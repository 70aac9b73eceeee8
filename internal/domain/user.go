package domain

import (
	"errors"
	"strings"
	"time"
)

// Common user validation errors
var (
	ErrEmptyName           = errors.New("name cannot be empty")
	ErrNameTooShort        = errors.New("name must be at least 2 characters long")
	ErrNameTooLong         = errors.New("name must be at most 50 characters long")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User represents a registered account.
//
// The ID is assigned by the store at creation time from a monotonically
// increasing sequence. Email is unique across all users, compared exactly
// as stored. HashedPassword is never serialized.
type User struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	APIKey         string    `json:"apiKey"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewUser creates a User ready to be handed to the store. The caller is
// responsible for hashing the password and generating the API key; the
// store assigns ID and timestamps.
// Returns an error if validation fails.
func NewUser(name, email, hashedPassword, apiKey string) (*User, error) {
	user := &User{
		Name:           name,
		Email:          email,
		HashedPassword: hashedPassword,
		APIKey:         apiKey,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	name := strings.TrimSpace(u.Name)
	if name == "" {
		return ErrEmptyName
	}
	if len(name) < 2 {
		return ErrNameTooShort
	}
	if len(name) > 50 {
		return ErrNameTooLong
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}

	return nil
}

// validateEmailFormat performs basic validation of email format. Request
// payloads are already validated with a stricter email rule at the API
// boundary; this is a last line of defense for entities constructed in
// code.
func validateEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domainPart := email[at+1:]
	dot := strings.Index(domainPart, ".")
	return dot > 0 && dot < len(domainPart)-1
}
