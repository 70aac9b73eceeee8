package api

import (
	"github.com/taskboard/taskboard-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest defines the payload for the profile update
// endpoint. At least one field must be provided.
type UpdateProfileRequest struct {
	Name  *string `json:"name"  validate:"omitempty,min=2,max=50"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// CreateTaskRequest defines the payload for the task creation endpoint.
// An omitted priority defaults to medium.
type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Priority    string `json:"priority"    validate:"omitempty,oneof=low medium high"`
}

// UpdateTaskRequest defines the payload for the task update endpoint.
// At least one field must be provided.
type UpdateTaskRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Priority    *string `json:"priority"    validate:"omitempty,oneof=low medium high"`
	Completed   *bool   `json:"completed"`
}

// AuthData is the data payload for registration and login responses.
type AuthData struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// UserData is the data payload for profile responses.
type UserData struct {
	User *domain.User `json:"user"`
}

// TaskData is the data payload for single-task responses.
type TaskData struct {
	Task *domain.Task `json:"task"`
}
