package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskboard/taskboard-api/internal/api/middleware"
	"github.com/taskboard/taskboard-api/internal/config"
	"github.com/taskboard/taskboard-api/internal/platform/memstore"
	"github.com/taskboard/taskboard-api/internal/service"
	"github.com/taskboard/taskboard-api/internal/service/auth"
)

// testServer wires the handlers, the auth middleware, and the in-memory
// stores behind the same route layout the server mounts, so tests
// exercise URL parameters and the auth chain the way production does.
type testServer struct {
	router *chi.Mux
	users  *memstore.UserStore
	tasks  *memstore.TaskStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            "test-secret-that-is-at-least-32-chars!!",
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	users := memstore.NewUserStore()
	tasks := memstore.NewTaskStore()

	userService := service.NewUserService(
		users, tasks,
		auth.NewBcryptHasher(bcrypt.MinCost),
		auth.NewBcryptVerifier(),
		jwtService, logger,
	)
	taskService := service.NewTaskService(tasks, logger)

	authHandler := NewAuthHandler(userService, logger)
	taskHandler := NewTaskHandler(taskService, logger)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, users)

	r := chi.NewRouter()
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Get("/profile", authHandler.GetProfile)
			r.Put("/profile", authHandler.UpdateProfile)
			r.Delete("/account", authHandler.DeleteAccount)
		})
	})
	r.Route("/api/tasks", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Post("/", taskHandler.Create)
		r.Get("/", taskHandler.List)
		r.Get("/statistics", taskHandler.Statistics)
		r.Get("/{id}", taskHandler.Get)
		r.Put("/{id}", taskHandler.Update)
		r.Patch("/{id}/toggle", taskHandler.Toggle)
		r.Delete("/{id}", taskHandler.Delete)
	})

	return &testServer{router: r, users: users, tasks: tasks}
}

// do performs a request against the test router. A non-empty token is
// sent as a bearer credential; a non-nil body is JSON-encoded.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

// register creates an account through the API and returns its token.
func (ts *testServer) register(t *testing.T, name, email string) string {
	t.Helper()

	rec := ts.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.Token)
	return body.Data.Token
}

// createTask creates a task through the API and returns its ID.
func (ts *testServer) createTask(t *testing.T, token, title string, fields map[string]any) int64 {
	t.Helper()

	payload := map[string]any{"title": title}
	for k, v := range fields {
		payload[k] = v
	}

	rec := ts.do(t, http.MethodPost, "/api/tasks/", token, payload)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body struct {
		Data struct {
			Task struct {
				ID int64 `json:"id"`
			} `json:"task"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Data.Task.ID
}

// envelope is the generic response wrapper for assertions that only care
// about the status flag and message.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}
