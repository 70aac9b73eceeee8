package store

import (
	"context"

	"github.com/taskboard/taskboard-api/internal/domain"
)

// TaskUpdate describes the fields of a task that may be changed after
// creation. Nil fields are left untouched. ID, UserID and CreatedAt are
// deliberately absent: ownership and identity cannot be mutated through
// the update path.
type TaskUpdate struct {
	Title       *string
	Description *string
	Priority    *domain.Priority
	Completed   *bool
}

// IsZero reports whether the update would change nothing.
func (u TaskUpdate) IsZero() bool {
	return u.Title == nil && u.Description == nil && u.Priority == nil && u.Completed == nil
}

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store, assigning its ID and
	// creation/update timestamps on the passed entity. The task's ID
	// sequence is independent of the user ID sequence.
	// Returns ErrInvalidEntity wrapping the domain error if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// ListByUser returns all tasks owned by the given user, ordered by
	// creation time descending (newest first). Tasks created at the same
	// instant are ordered by descending ID so the most recently created
	// task still comes first. This ordering is a contract: it determines
	// page 1 contents.
	ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error)

	// Update applies a partial update to an existing task and refreshes
	// its UpdatedAt timestamp, returning the updated entity.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, id int64, update TaskUpdate) (*domain.Task, error)

	// Delete removes a task from the store by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error

	// DeleteByUser removes every task owned by the given user and returns
	// the number of tasks removed. Used by the account deletion cascade.
	DeleteByUser(ctx context.Context, userID int64) (int, error)
}
