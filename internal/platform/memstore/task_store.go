package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/store"
)

// TaskStore is an in-memory implementation of store.TaskStore.
type TaskStore struct {
	mu     sync.Mutex
	tasks  map[int64]domain.Task
	nextID int64
	now    func() time.Time
}

// Ensure TaskStore implements the store interface
var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates an empty in-memory task store. The ID sequence is
// independent of the user ID sequence.
func NewTaskStore() *TaskStore {
	return &TaskStore{
		tasks:  make(map[int64]domain.Task),
		nextID: 1,
		now:    time.Now,
	}
}

// Create implements store.TaskStore.Create.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	task.ID = s.nextID
	task.CreatedAt = now
	task.UpdatedAt = now
	s.nextID++

	s.tasks[task.ID] = *task
	return nil
}

// GetByID implements store.TaskStore.GetByID.
func (s *TaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return &task, nil
}

// ListByUser implements store.TaskStore.ListByUser. Results are ordered by
// creation time descending; same-instant creations are ordered by
// descending ID so the newest task always comes first.
func (s *TaskStore) ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*domain.Task, 0)
	for _, task := range s.tasks {
		if task.UserID == userID {
			t := task
			result = append(result, &t)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})

	return result, nil
}

// Update implements store.TaskStore.Update.
func (s *TaskStore) Update(ctx context.Context, id int64, update store.TaskUpdate) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}

	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.Priority != nil {
		task.Priority = *update.Priority
	}
	if update.Completed != nil {
		task.Completed = *update.Completed
	}

	if err := task.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	task.UpdatedAt = s.now().UTC()
	s.tasks[id] = task
	return &task, nil
}

// Delete implements store.TaskStore.Delete.
func (s *TaskStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}

// DeleteByUser implements store.TaskStore.DeleteByUser.
func (s *TaskStore) DeleteByUser(ctx context.Context, userID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, task := range s.tasks {
		if task.UserID == userID {
			delete(s.tasks, id)
			removed++
		}
	}
	return removed, nil
}
