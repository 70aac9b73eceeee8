package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/service"
)

// Default and maximum page sizes for list endpoints.
const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// parseIDParam extracts a numeric ID from the URL path.
func parseIDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, fmt.Errorf("missing %s parameter", name)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s parameter", name)
	}
	return id, nil
}

// parseListTasksParams extracts the filter and pagination query
// parameters for the task list endpoint, applying defaults and rejecting
// malformed values before they reach the query engine.
func parseListTasksParams(r *http.Request) (service.ListTasksParams, error) {
	params := service.ListTasksParams{
		Page:  1,
		Limit: defaultPageLimit,
	}

	q := r.URL.Query()

	if raw := q.Get("completed"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			return params, fmt.Errorf("completed must be true or false")
		}
		params.Completed = &completed
	}

	if raw := q.Get("priority"); raw != "" {
		priority := domain.Priority(raw)
		if !priority.IsValid() {
			return params, fmt.Errorf("priority must be one of: low, medium, high")
		}
		params.Priority = &priority
	}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return params, fmt.Errorf("page must be a positive integer")
		}
		params.Page = page
	}

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxPageLimit {
			return params, fmt.Errorf("limit must be between 1 and %d", maxPageLimit)
		}
		params.Limit = limit
	}

	return params, nil
}
