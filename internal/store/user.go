package store

import (
	"context"

	"github.com/taskboard/taskboard-api/internal/domain"
)

// UserUpdate describes the fields of a user that may be changed after
// creation. Nil fields are left untouched. ID, APIKey, HashedPassword and
// CreatedAt are deliberately absent: they cannot be mutated through the
// update path.
type UserUpdate struct {
	Name  *string
	Email *string
}

// IsZero reports whether the update would change nothing.
func (u UserUpdate) IsZero() bool {
	return u.Name == nil && u.Email == nil
}

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store, assigning its ID and
	// creation/update timestamps on the passed entity.
	// Returns ErrEmailExists if the email is already taken.
	// Returns ErrInvalidEntity wrapping the domain error if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by their email address (exact match).
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update applies a partial update to an existing user and refreshes
	// its UpdatedAt timestamp, returning the updated entity.
	// Returns ErrUserNotFound if the user does not exist.
	// Returns ErrEmailExists if the new email belongs to a different user;
	// updating a user to their own current email succeeds.
	Update(ctx context.Context, id int64, update UserUpdate) (*domain.User, error)

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	// Deleting a user does not touch their tasks; callers that need the
	// cascade go through the account service.
	Delete(ctx context.Context, id int64) error
}
