package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/todo-tracker/domain/apperr"
)

func TestNew_Defaults(t *testing.T) {
	task := New("Buy milk", "")

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, StatusPending, task.Status)
	assert.Equal(t, PriorityMedium, task.Priority)
	assert.False(t, task.Starred)
	assert.Nil(t, task.DueDate)
	assert.Empty(t, task.CategoryID)
}

func TestTransitions_BumpUpdatedAt(t *testing.T) {
	tests := []struct {
		name   string
		apply  func(*Task)
		status Status
	}{
		{"complete", (*Task).Complete, StatusCompleted},
		{"start", (*Task).Start, StatusInProgress},
		{"cancel", (*Task).Cancel, StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := New("t", "")
			before := task.UpdatedAt

			tt.apply(task)

			assert.Equal(t, tt.status, task.Status)
			assert.True(t, task.UpdatedAt.After(before))
		})
	}
}

func TestTransitions_AreUnconditional(t *testing.T) {
	task := New("t", "")
	task.Cancel()
	task.Complete()
	assert.Equal(t, StatusCompleted, task.Status)
	assert.True(t, task.IsCompleted())
}

func TestToggleStarred(t *testing.T) {
	task := New("t", "")
	task.ToggleStarred()
	assert.True(t, task.Starred)
	task.ToggleStarred()
	assert.False(t, task.Starred)
}

func TestSetDueDate_CopiesAndClears(t *testing.T) {
	task := New("t", "")
	due := time.Date(2030, 1, 2, 3, 4, 5, 0, time.Local)

	task.SetDueDate(&due)
	require.NotNil(t, task.DueDate)
	due = due.Add(time.Hour)
	assert.Equal(t, 3, task.DueDate.Hour())

	task.SetDueDate(nil)
	assert.Nil(t, task.DueDate)
}

func TestIsOverdueAt(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name   string
		due    *time.Time
		status Status
		want   bool
	}{
		{"no due date", nil, StatusPending, false},
		{"past pending", &past, StatusPending, true},
		{"past in progress", &past, StatusInProgress, true},
		{"past completed", &past, StatusCompleted, false},
		{"past cancelled", &past, StatusCancelled, false},
		{"future pending", &future, StatusPending, false},
		{"exactly now", &now, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := New("t", "")
			task.DueDate = tt.due
			task.Status = tt.status
			assert.Equal(t, tt.want, task.IsOverdueAt(now))
		})
	}
}

func TestAssignAndClearCategory(t *testing.T) {
	task := New("t", "")
	task.AssignCategory("c-1")
	assert.Equal(t, "c-1", task.CategoryID)
	task.ClearCategory()
	assert.Empty(t, task.CategoryID)
}

func TestParseStatus(t *testing.T) {
	for _, in := range []string{"IN_PROGRESS", "in_progress", "In Progress", "in progress"} {
		s, err := ParseStatus(in)
		require.NoError(t, err, in)
		assert.Equal(t, StatusInProgress, s)
	}

	_, err := ParseStatus("DONE")
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
	_, err = ParseStatus("")
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority("critical")
	require.NoError(t, err)
	assert.Equal(t, PriorityCritical, p)

	_, err = ParsePriority("URGENT")
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestPriorityOrdering(t *testing.T) {
	for i, p := range Priorities {
		assert.Equal(t, i+1, p.Level())
	}
	assert.True(t, PriorityHigh.IsHigherThan(PriorityMedium))
	assert.True(t, PriorityLow.IsLowerThan(PriorityCritical))
	assert.False(t, PriorityMedium.IsHigherThan(PriorityMedium))
	assert.Equal(t, 0, Priority("BOGUS").Level())
}

func TestStatusInfo(t *testing.T) {
	assert.Equal(t, "In Progress", StatusInProgress.DisplayName())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, Status("").IsValid())
}
