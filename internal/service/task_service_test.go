package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/platform/memstore"
	"github.com/taskboard/taskboard-api/internal/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixedTaskStore serves a prepared, pre-ordered task list. It lets query
// tests control creation timestamps directly, which the real store does
// not allow.
type fixedTaskStore struct {
	tasks []*domain.Task
}

var _ store.TaskStore = (*fixedTaskStore)(nil)

func (s *fixedTaskStore) Create(ctx context.Context, task *domain.Task) error {
	task.ID = int64(len(s.tasks) + 1)
	s.tasks = append(s.tasks, task)
	return nil
}

func (s *fixedTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	for _, task := range s.tasks {
		if task.ID == id {
			return task, nil
		}
	}
	return nil, store.ErrTaskNotFound
}

func (s *fixedTaskStore) ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error) {
	result := make([]*domain.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if task.UserID == userID {
			result = append(result, task)
		}
	}
	return result, nil
}

func (s *fixedTaskStore) Update(ctx context.Context, id int64, update store.TaskUpdate) (*domain.Task, error) {
	task, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Completed != nil {
		task.Completed = *update.Completed
	}
	if update.Title != nil {
		task.Title = *update.Title
	}
	return task, nil
}

func (s *fixedTaskStore) Delete(ctx context.Context, id int64) error {
	for i, task := range s.tasks {
		if task.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return store.ErrTaskNotFound
}

func (s *fixedTaskStore) DeleteByUser(ctx context.Context, userID int64) (int, error) {
	kept := s.tasks[:0]
	removed := 0
	for _, task := range s.tasks {
		if task.UserID == userID {
			removed++
			continue
		}
		kept = append(kept, task)
	}
	s.tasks = kept
	return removed, nil
}

func fixedTask(id, userID int64, title string, completed bool, priority domain.Priority, createdAt time.Time) *domain.Task {
	return &domain.Task{
		ID:        id,
		Title:     title,
		Priority:  priority,
		Completed: completed,
		UserID:    userID,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestTaskServiceList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	// Five tasks, newest first, as the store contract orders them.
	fiveTasks := func() *fixedTaskStore {
		return &fixedTaskStore{tasks: []*domain.Task{
			fixedTask(5, 1, "five", true, domain.PriorityHigh, base.Add(4*time.Minute)),
			fixedTask(4, 1, "four", false, domain.PriorityMedium, base.Add(3*time.Minute)),
			fixedTask(3, 1, "three", true, domain.PriorityLow, base.Add(2*time.Minute)),
			fixedTask(2, 1, "two", false, domain.PriorityHigh, base.Add(time.Minute)),
			fixedTask(1, 1, "one", false, domain.PriorityMedium, base),
		}}
	}

	t.Run("first page", func(t *testing.T) {
		t.Parallel()
		svc := NewTaskService(fiveTasks(), discardLogger())

		page, err := svc.List(ctx, 1, ListTasksParams{Page: 1, Limit: 2})
		require.NoError(t, err)

		require.Len(t, page.Tasks, 2)
		assert.Equal(t, "five", page.Tasks[0].Title)
		assert.Equal(t, "four", page.Tasks[1].Title)
		assert.Equal(t, Pagination{
			CurrentPage: 1,
			TotalPages:  3,
			TotalTasks:  5,
			HasNextPage: true,
			HasPrevPage: false,
		}, page.Pagination)
	})

	t.Run("last page is short", func(t *testing.T) {
		t.Parallel()
		svc := NewTaskService(fiveTasks(), discardLogger())

		page, err := svc.List(ctx, 1, ListTasksParams{Page: 3, Limit: 2})
		require.NoError(t, err)

		require.Len(t, page.Tasks, 1)
		assert.Equal(t, "one", page.Tasks[0].Title)
		assert.False(t, page.Pagination.HasNextPage)
		assert.True(t, page.Pagination.HasPrevPage)
	})

	t.Run("page past the end is empty, not an error", func(t *testing.T) {
		t.Parallel()
		svc := NewTaskService(fiveTasks(), discardLogger())

		page, err := svc.List(ctx, 1, ListTasksParams{Page: 9, Limit: 2})
		require.NoError(t, err)

		assert.Empty(t, page.Tasks)
		assert.Equal(t, 5, page.Pagination.TotalTasks)
		assert.False(t, page.Pagination.HasNextPage)
		assert.True(t, page.Pagination.HasPrevPage)
	})

	t.Run("completed filter", func(t *testing.T) {
		t.Parallel()
		svc := NewTaskService(fiveTasks(), discardLogger())

		completed := true
		page, err := svc.List(ctx, 1, ListTasksParams{Completed: &completed, Page: 1, Limit: 10})
		require.NoError(t, err)

		require.Len(t, page.Tasks, 2)
		assert.Equal(t, "five", page.Tasks[0].Title)
		assert.Equal(t, "three", page.Tasks[1].Title)
		assert.Equal(t, 2, page.Pagination.TotalTasks)
	})

	t.Run("filters combine with AND semantics", func(t *testing.T) {
		t.Parallel()
		svc := NewTaskService(fiveTasks(), discardLogger())

		completed := false
		priority := domain.PriorityHigh
		page, err := svc.List(ctx, 1, ListTasksParams{
			Completed: &completed,
			Priority:  &priority,
			Page:      1,
			Limit:     10,
		})
		require.NoError(t, err)

		require.Len(t, page.Tasks, 1)
		assert.Equal(t, "two", page.Tasks[0].Title)
	})

	t.Run("summary is computed over the filtered set", func(t *testing.T) {
		t.Parallel()
		svc := NewTaskService(fiveTasks(), discardLogger())

		priority := domain.PriorityHigh
		page, err := svc.List(ctx, 1, ListTasksParams{Priority: &priority, Page: 1, Limit: 10})
		require.NoError(t, err)

		assert.Equal(t, TaskSummary{
			Total:          2,
			Completed:      1,
			Pending:        1,
			CompletionRate: 50,
		}, page.Statistics)
	})

	t.Run("no tasks", func(t *testing.T) {
		t.Parallel()
		svc := NewTaskService(&fixedTaskStore{}, discardLogger())

		page, err := svc.List(ctx, 1, ListTasksParams{Page: 1, Limit: 10})
		require.NoError(t, err)

		assert.Empty(t, page.Tasks)
		assert.Equal(t, Pagination{
			CurrentPage: 1,
			TotalPages:  0,
			TotalTasks:  0,
			HasNextPage: false,
			HasPrevPage: false,
		}, page.Pagination)
		assert.Equal(t, 0, page.Statistics.CompletionRate)
	})
}

func TestTaskServiceStatistics(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	t.Run("priority partition sums to total", func(t *testing.T) {
		t.Parallel()
		st := &fixedTaskStore{tasks: []*domain.Task{
			fixedTask(1, 1, "a", false, domain.PriorityHigh, now),
			fixedTask(2, 1, "b", false, domain.PriorityHigh, now),
			fixedTask(3, 1, "c", false, domain.PriorityMedium, now),
			fixedTask(4, 1, "d", false, domain.PriorityLow, now),
		}}
		svc := NewTaskService(st, discardLogger())
		svc.now = func() time.Time { return now }

		stats, err := svc.Statistics(ctx, 1)
		require.NoError(t, err)

		assert.Equal(t, 4, stats.Overview.Total)
		assert.Equal(t, PriorityCounts{High: 2, Medium: 1, Low: 1}, stats.Priority)
		assert.Equal(t, stats.Overview.Total,
			stats.Priority.High+stats.Priority.Medium+stats.Priority.Low)
	})

	t.Run("completion rate rounds to nearest integer", func(t *testing.T) {
		t.Parallel()
		st := &fixedTaskStore{tasks: []*domain.Task{
			fixedTask(1, 1, "a", true, domain.PriorityMedium, now),
			fixedTask(2, 1, "b", false, domain.PriorityMedium, now),
			fixedTask(3, 1, "c", false, domain.PriorityMedium, now),
		}}
		svc := NewTaskService(st, discardLogger())
		svc.now = func() time.Time { return now }

		stats, err := svc.Statistics(ctx, 1)
		require.NoError(t, err)

		assert.Equal(t, 33, stats.Overview.CompletionRate)
		assert.Equal(t, 1, stats.Overview.Completed)
		assert.Equal(t, 2, stats.Overview.Pending)
	})

	t.Run("empty set has zero rate", func(t *testing.T) {
		t.Parallel()
		svc := NewTaskService(&fixedTaskStore{}, discardLogger())
		svc.now = func() time.Time { return now }

		stats, err := svc.Statistics(ctx, 1)
		require.NoError(t, err)

		assert.Equal(t, 0, stats.Overview.Total)
		assert.Equal(t, 0, stats.Overview.CompletionRate)
	})

	t.Run("recent window boundary is inclusive at exactly 7 days", func(t *testing.T) {
		t.Parallel()
		st := &fixedTaskStore{tasks: []*domain.Task{
			fixedTask(1, 1, "today", false, domain.PriorityMedium, now),
			fixedTask(2, 1, "six days ago", false, domain.PriorityMedium, now.Add(-6*24*time.Hour)),
			fixedTask(3, 1, "exactly seven days ago", false, domain.PriorityMedium, now.Add(-7*24*time.Hour)),
			fixedTask(4, 1, "eight days ago", false, domain.PriorityMedium, now.Add(-8*24*time.Hour)),
		}}
		svc := NewTaskService(st, discardLogger())
		svc.now = func() time.Time { return now }

		stats, err := svc.Statistics(ctx, 1)
		require.NoError(t, err)

		assert.Equal(t, 3, stats.Recent.Last7Days)
	})
}

func TestTaskServiceOwnership(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	st := &fixedTaskStore{tasks: []*domain.Task{
		fixedTask(1, 2, "someone else's task", false, domain.PriorityMedium, now),
	}}
	svc := NewTaskService(st, discardLogger())

	t.Run("unknown task is not found", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Get(ctx, 1, 999)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})

	t.Run("foreign task is denied, not hidden", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Get(ctx, 1, 1)
		assert.ErrorIs(t, err, ErrTaskNotOwned)
	})

	t.Run("foreign task never appears in lists", func(t *testing.T) {
		t.Parallel()
		page, err := svc.List(ctx, 1, ListTasksParams{Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Empty(t, page.Tasks)
	})

	t.Run("mutations are denied too", func(t *testing.T) {
		t.Parallel()

		title := "hijacked"
		_, err := svc.Update(ctx, 1, 1, store.TaskUpdate{Title: &title})
		assert.ErrorIs(t, err, ErrTaskNotOwned)

		_, err = svc.Toggle(ctx, 1, 1)
		assert.ErrorIs(t, err, ErrTaskNotOwned)

		err = svc.Delete(ctx, 1, 1)
		assert.ErrorIs(t, err, ErrTaskNotOwned)
	})
}

func TestTaskServiceCreateAndToggle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewTaskService(memstore.NewTaskStore(), discardLogger())

	task, err := svc.Create(ctx, 1, CreateTaskParams{Title: "flip me"})
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityMedium, task.Priority)
	assert.False(t, task.Completed)

	// Toggle is a pure flip: a pair of toggles restores the flag.
	toggled, err := svc.Toggle(ctx, 1, task.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	toggled, err = svc.Toggle(ctx, 1, task.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)
}

func TestTaskServiceCreateValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewTaskService(memstore.NewTaskStore(), discardLogger())

	_, err := svc.Create(ctx, 1, CreateTaskParams{Title: ""})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)

	_, err = svc.Create(ctx, 1, CreateTaskParams{Title: "ok", Priority: domain.Priority("urgent")})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}
