package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/service/auth"
	"github.com/taskboard/taskboard-api/internal/store"
)

// UserService implements the account lifecycle: registration, login,
// profile updates, and cascading account deletion.
type UserService struct {
	users    store.UserStore
	tasks    store.TaskStore
	hasher   auth.PasswordHasher
	verifier auth.PasswordVerifier
	jwt      auth.JWTService
	logger   *slog.Logger
}

// NewUserService creates a new UserService with the given dependencies.
func NewUserService(
	users store.UserStore,
	tasks store.TaskStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	jwtService auth.JWTService,
	logger *slog.Logger,
) *UserService {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UserService")
	}

	return &UserService{
		users:    users,
		tasks:    tasks,
		hasher:   hasher,
		verifier: verifier,
		jwt:      jwtService,
		logger:   logger.With(slog.String("component", "user_service")),
	}
}

// Register creates a new account and issues its first token.
// Returns store.ErrEmailExists if the email is already taken.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	hashed, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := domain.NewUser(name, email, hashed, uuid.New().String())
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(ctx, user.ID)
	if err != nil {
		s.logger.Error("failed to generate token", "error", err, "user_id", user.ID)
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, token, nil
}

// Login authenticates an email/password pair and issues a token.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(ctx, user.ID)
	if err != nil {
		s.logger.Error("failed to generate token", "error", err, "user_id", user.ID)
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return user, token, nil
}

// GetProfile returns the user record for the given ID.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

// UpdateProfile applies a partial update to the user's name and/or email.
// Updating a user to their own current email succeeds; an email belonging
// to a different user yields store.ErrEmailExists.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, update store.UserUpdate) (*domain.User, error) {
	user, err := s.users.Update(ctx, userID, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info("profile updated", "user_id", userID)
	return user, nil
}

// DeleteAccount removes the user and every task they own. No orphaned
// tasks remain, and the email becomes available for re-registration.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *UserService) DeleteAccount(ctx context.Context, userID int64) error {
	removed, err := s.tasks.DeleteByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user tasks: %w", err)
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}

	s.logger.Info("account deleted", "user_id", userID, "tasks_removed", removed)
	return nil
}
