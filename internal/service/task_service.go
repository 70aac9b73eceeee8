package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/store"
)

// recentWindow is the trailing window used for the recent-activity count.
const recentWindow = 7 * 24 * time.Hour

// CreateTaskParams carries the fields for creating a task. An empty
// Priority defaults to domain.DefaultPriority.
type CreateTaskParams struct {
	Title       string
	Description string
	Priority    domain.Priority
}

// ListTasksParams carries the filter and pagination inputs for listing
// tasks. Nil filters are not applied; present filters are exact-match and
// combine with AND semantics. Page is 1-based.
type ListTasksParams struct {
	Completed *bool
	Priority  *domain.Priority
	Page      int
	Limit     int
}

// Pagination describes the position of a page within the filtered result
// set.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalTasks  int  `json:"totalTasks"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// TaskSummary aggregates completion counts over a set of tasks.
// CompletionRate is the percentage of completed tasks rounded to the
// nearest integer, 0 when the set is empty.
type TaskSummary struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	Pending        int `json:"pending"`
	CompletionRate int `json:"completionRate"`
}

// PriorityCounts partitions a set of tasks by priority.
type PriorityCounts struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// RecentActivity counts tasks created within the trailing 7-day window.
type RecentActivity struct {
	Last7Days int `json:"last7Days"`
}

// TaskPage is the result of a list operation: one page of the filtered,
// ordered task list plus pagination metadata and a summary over the
// filtered set.
type TaskPage struct {
	Tasks      []*domain.Task `json:"tasks"`
	Pagination Pagination     `json:"pagination"`
	Statistics TaskSummary    `json:"statistics"`
}

// TaskStatistics aggregates over the user's unfiltered task set.
type TaskStatistics struct {
	Overview TaskSummary    `json:"overview"`
	Priority PriorityCounts `json:"priority"`
	Recent   RecentActivity `json:"recent"`
}

// TaskService implements task CRUD with per-resource ownership
// enforcement, plus the query engine: filtering, pagination, and
// aggregate statistics.
type TaskService struct {
	tasks  store.TaskStore
	logger *slog.Logger
	now    func() time.Time // Injectable for testing the recent-activity window
}

// NewTaskService creates a new TaskService with the given dependencies.
func NewTaskService(tasks store.TaskStore, logger *slog.Logger) *TaskService {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskService")
	}

	return &TaskService{
		tasks:  tasks,
		logger: logger.With(slog.String("component", "task_service")),
		now:    time.Now,
	}
}

// Create stores a new task owned by the given user.
func (s *TaskService) Create(ctx context.Context, userID int64, params CreateTaskParams) (*domain.Task, error) {
	task, err := domain.NewTask(userID, params.Title, params.Description, params.Priority)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Info("task created", "task_id", task.ID, "user_id", userID)
	return task, nil
}

// Get returns the task with the given ID if the caller owns it.
// Returns store.ErrTaskNotFound for unknown IDs and ErrTaskNotOwned when
// the task belongs to a different user.
func (s *TaskService) Get(ctx context.Context, userID, taskID int64) (*domain.Task, error) {
	return s.ownedTask(ctx, userID, taskID)
}

// List returns one page of the caller's tasks after applying the optional
// completion-state and priority filters. A page past the end of the
// filtered list yields an empty page, not an error.
func (s *TaskService) List(ctx context.Context, userID int64, params ListTasksParams) (*TaskPage, error) {
	all, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	filtered := make([]*domain.Task, 0, len(all))
	for _, task := range all {
		if params.Completed != nil && task.Completed != *params.Completed {
			continue
		}
		if params.Priority != nil && task.Priority != *params.Priority {
			continue
		}
		filtered = append(filtered, task)
	}

	total := len(filtered)
	start := (params.Page - 1) * params.Limit
	end := start + params.Limit

	page := []*domain.Task{}
	if start < total {
		if end > total {
			end = total
		}
		page = filtered[start:end]
	}

	return &TaskPage{
		Tasks: page,
		Pagination: Pagination{
			CurrentPage: params.Page,
			TotalPages:  int(math.Ceil(float64(total) / float64(params.Limit))),
			TotalTasks:  total,
			HasNextPage: start+params.Limit < total,
			HasPrevPage: params.Page > 1,
		},
		Statistics: summarize(filtered),
	}, nil
}

// Update applies a partial update to a task the caller owns.
func (s *TaskService) Update(ctx context.Context, userID, taskID int64, update store.TaskUpdate) (*domain.Task, error) {
	if _, err := s.ownedTask(ctx, userID, taskID); err != nil {
		return nil, err
	}

	task, err := s.tasks.Update(ctx, taskID, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info("task updated", "task_id", taskID, "user_id", userID)
	return task, nil
}

// Toggle flips the completed flag of a task the caller owns and returns
// the updated task.
func (s *TaskService) Toggle(ctx context.Context, userID, taskID int64) (*domain.Task, error) {
	task, err := s.ownedTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	completed := !task.Completed
	updated, err := s.tasks.Update(ctx, taskID, store.TaskUpdate{Completed: &completed})
	if err != nil {
		return nil, err
	}

	s.logger.Info("task toggled", "task_id", taskID, "user_id", userID, "completed", updated.Completed)
	return updated, nil
}

// Delete removes a task the caller owns.
func (s *TaskService) Delete(ctx context.Context, userID, taskID int64) error {
	if _, err := s.ownedTask(ctx, userID, taskID); err != nil {
		return err
	}

	if err := s.tasks.Delete(ctx, taskID); err != nil {
		return err
	}

	s.logger.Info("task deleted", "task_id", taskID, "user_id", userID)
	return nil
}

// Statistics aggregates over the caller's unfiltered task set: completion
// counts, a partition by priority, and the count of tasks created within
// the trailing 7-day window (inclusive boundary at exactly 7 days back).
func (s *TaskService) Statistics(ctx context.Context, userID int64) (*TaskStatistics, error) {
	all, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var priority PriorityCounts
	for _, task := range all {
		switch task.Priority {
		case domain.PriorityHigh:
			priority.High++
		case domain.PriorityMedium:
			priority.Medium++
		case domain.PriorityLow:
			priority.Low++
		}
	}

	cutoff := s.now().Add(-recentWindow)
	recent := 0
	for _, task := range all {
		if !task.CreatedAt.Before(cutoff) {
			recent++
		}
	}

	return &TaskStatistics{
		Overview: summarize(all),
		Priority: priority,
		Recent:   RecentActivity{Last7Days: recent},
	}, nil
}

// ownedTask resolves a task and enforces the ownership check: unknown IDs
// yield store.ErrTaskNotFound; tasks owned by another user yield
// ErrTaskNotOwned. The two outcomes stay distinct all the way to the API.
func (s *TaskService) ownedTask(ctx context.Context, userID, taskID int64) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.UserID != userID {
		return nil, ErrTaskNotOwned
	}
	return task, nil
}

// summarize computes completion counts and the rounded completion rate
// over a set of tasks. The rate is 0 for an empty set; there is no
// division by zero.
func summarize(tasks []*domain.Task) TaskSummary {
	total := len(tasks)
	completed := 0
	for _, task := range tasks {
		if task.Completed {
			completed++
		}
	}

	rate := 0
	if total > 0 {
		rate = int(math.Round(float64(completed) / float64(total) * 100))
	}

	return TaskSummary{
		Total:          total,
		Completed:      completed,
		Pending:        total - completed,
		CompletionRate: rate,
	}
}
