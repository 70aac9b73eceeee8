package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/taskboard/taskboard-api/internal/api"
	apiMiddleware "github.com/taskboard/taskboard-api/internal/api/middleware"
	"github.com/taskboard/taskboard-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all
// routes and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	if app.config.RateLimit.Enabled {
		r.Use(httprate.LimitByIP(
			app.config.RateLimit.RequestLimit,
			time.Duration(app.config.RateLimit.WindowSeconds)*time.Second,
		))
	}

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(app.userService, app.logger)
	taskHandler := api.NewTaskHandler(app.taskService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.userStore)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			// Authentication endpoints (public, stricter rate limit)
			r.Group(func(r chi.Router) {
				if app.config.RateLimit.Enabled {
					r.Use(httprate.LimitByIP(
						app.config.RateLimit.AuthRequestLimit,
						time.Duration(app.config.RateLimit.AuthWindowSeconds)*time.Second,
					))
				}
				r.Post("/register", authHandler.Register)
				r.Post("/login", authHandler.Login)
			})

			// Account endpoints (protected)
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Get("/profile", authHandler.GetProfile)
				r.Put("/profile", authHandler.UpdateProfile)
				r.Delete("/account", authHandler.DeleteAccount)
			})
		})

		// Task endpoints (protected)
		r.Route("/tasks", func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Post("/", taskHandler.Create)
			r.Get("/", taskHandler.List)
			r.Get("/statistics", taskHandler.Statistics)
			r.Get("/{id}", taskHandler.Get)
			r.Put("/{id}", taskHandler.Update)
			r.Patch("/{id}/toggle", taskHandler.Toggle)
			r.Delete("/{id}", taskHandler.Delete)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
			"success":   true,
			"message":   "API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Welcome endpoint
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "Welcome to the Taskboard API",
			"version": "1.0.0",
			"endpoints": map[string]string{
				"auth":   "/api/auth",
				"tasks":  "/api/tasks",
				"health": "/health",
			},
		})
	})

	// JSON 404 for unknown routes
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Route not found")
	})

	return r
}
