package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		task, err := NewTask(1, "Buy milk", "", "")
		require.NoError(t, err)

		assert.Equal(t, PriorityMedium, task.Priority)
		assert.False(t, task.Completed)
		assert.Equal(t, int64(1), task.UserID)
	})

	t.Run("explicit priority", func(t *testing.T) {
		t.Parallel()

		task, err := NewTask(1, "Buy milk", "from the corner shop", PriorityHigh)
		require.NoError(t, err)

		assert.Equal(t, PriorityHigh, task.Priority)
		assert.Equal(t, "from the corner shop", task.Description)
	})

	tests := []struct {
		name        string
		userID      int64
		title       string
		description string
		priority    Priority
		wantErr     error
	}{
		{
			name:    "empty title",
			userID:  1,
			title:   "",
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "title too long",
			userID:  1,
			title:   strings.Repeat("x", 101),
			wantErr: ErrTitleTooLong,
		},
		{
			name:        "description too long",
			userID:      1,
			title:       "Buy milk",
			description: strings.Repeat("x", 501),
			wantErr:     ErrDescriptionTooLong,
		},
		{
			name:     "unknown priority",
			userID:   1,
			title:    "Buy milk",
			priority: Priority("urgent"),
			wantErr:  ErrInvalidPriority,
		},
		{
			name:    "missing owner",
			userID:  0,
			title:   "Buy milk",
			wantErr: ErrEmptyTaskUserID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			task, err := NewTask(tt.userID, tt.title, tt.description, tt.priority)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, task)
		})
	}
}

func TestPriorityIsValid(t *testing.T) {
	t.Parallel()

	for _, p := range Priorities() {
		assert.True(t, p.IsValid(), "priority %q should be valid", p)
	}

	assert.False(t, Priority("").IsValid())
	assert.False(t, Priority("urgent").IsValid())
	assert.False(t, Priority("HIGH").IsValid())
}
