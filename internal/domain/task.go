package domain

import (
	"errors"
	"time"
)

// Common task validation errors
var (
	ErrEmptyTitle         = errors.New("title cannot be empty")
	ErrTitleTooLong       = errors.New("title must be at most 100 characters long")
	ErrDescriptionTooLong = errors.New("description must be at most 500 characters long")
	ErrInvalidPriority    = errors.New("priority must be one of: low, medium, high")
	ErrEmptyTaskUserID    = errors.New("task must reference an owning user")
)

// Priority is the task priority enumeration.
type Priority string

// Valid priority values.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority is applied when a task is created without an explicit
// priority.
const DefaultPriority = PriorityMedium

// IsValid reports whether p is one of the defined priority values.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Priorities returns all defined priority values.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// Task represents a single to-do item owned by a user.
//
// The ID is assigned by the store from a sequence independent of user IDs.
// UserID is immutable after creation; the update path exposes no way to
// change it.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Priority    Priority  `json:"priority"`
	Completed   bool      `json:"completed"`
	UserID      int64     `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewTask creates a Task ready to be handed to the store. An empty
// priority defaults to DefaultPriority; the store assigns ID and
// timestamps. Returns an error if validation fails.
func NewTask(userID int64, title, description string, priority Priority) (*Task, error) {
	if priority == "" {
		priority = DefaultPriority
	}

	task := &Task{
		Title:       title,
		Description: description,
		Priority:    priority,
		Completed:   false,
		UserID:      userID,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrEmptyTitle
	}
	if len(t.Title) > 100 {
		return ErrTitleTooLong
	}
	if len(t.Description) > 500 {
		return ErrDescriptionTooLong
	}
	if !t.Priority.IsValid() {
		return ErrInvalidPriority
	}
	if t.UserID == 0 {
		return ErrEmptyTaskUserID
	}
	return nil
}
