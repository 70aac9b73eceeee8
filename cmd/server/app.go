package main

import (
	"fmt"
	"log/slog"

	"github.com/taskboard/taskboard-api/internal/config"
	"github.com/taskboard/taskboard-api/internal/platform/memstore"
	"github.com/taskboard/taskboard-api/internal/service"
	"github.com/taskboard/taskboard-api/internal/service/auth"
	"github.com/taskboard/taskboard-api/internal/store"
)

// application holds the wired dependencies of the server process.
type application struct {
	config *config.Config
	logger *slog.Logger

	userStore store.UserStore
	taskStore store.TaskStore

	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier

	userService *service.UserService
	taskService *service.TaskService
}

// newApplication constructs the dependency graph: stores, auth services,
// and the application services, all sharing the given config and logger.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	userStore := memstore.NewUserStore()
	taskStore := memstore.NewTaskStore()

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	verifier := auth.NewBcryptVerifier()

	return &application{
		config:           cfg,
		logger:           logger,
		userStore:        userStore,
		taskStore:        taskStore,
		jwtService:       jwtService,
		passwordHasher:   hasher,
		passwordVerifier: verifier,
		userService: service.NewUserService(
			userStore,
			taskStore,
			hasher,
			verifier,
			jwtService,
			logger,
		),
		taskService: service.NewTaskService(taskStore, logger),
	}, nil
}
