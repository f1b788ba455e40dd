package task

import (
	"time"

	"github.com/example/todo-tracker/domain/entity"
)

// Task is the core domain entity representing a todo item.
// CategoryID is a weak reference: the category may be deleted independently.
type Task struct {
	entity.Base
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CategoryID  string     `json:"category_id,omitempty"`
	Starred     bool       `json:"starred"`
}

// New creates a pending, medium-priority, unstarred task.
func New(title, description string) *Task {
	return &Task{
		Base:        entity.NewBase(),
		Title:       title,
		Description: description,
		Status:      StatusPending,
		Priority:    PriorityMedium,
	}
}

// Complete marks the task as completed.
func (t *Task) Complete() { t.SetStatus(StatusCompleted) }

// Start marks the task as in progress.
func (t *Task) Start() { t.SetStatus(StatusInProgress) }

// Cancel marks the task as cancelled.
func (t *Task) Cancel() { t.SetStatus(StatusCancelled) }

// ToggleStarred flips the starred flag.
func (t *Task) ToggleStarred() {
	t.Starred = !t.Starred
	t.Touch()
}

func (t *Task) SetTitle(title string) {
	t.Title = title
	t.Touch()
}

func (t *Task) SetDescription(description string) {
	t.Description = description
	t.Touch()
}

func (t *Task) SetStatus(status Status) {
	t.Status = status
	t.Touch()
}

func (t *Task) SetPriority(priority Priority) {
	t.Priority = priority
	t.Touch()
}

func (t *Task) SetStarred(starred bool) {
	t.Starred = starred
	t.Touch()
}

// SetDueDate sets the due date; nil clears it.
func (t *Task) SetDueDate(due *time.Time) {
	if due == nil {
		t.DueDate = nil
	} else {
		d := *due
		t.DueDate = &d
	}
	t.Touch()
}

// Detach gives the task its own copy of the due date.
func (t *Task) Detach() {
	if t.DueDate != nil {
		d := *t.DueDate
		t.DueDate = &d
	}
}

// AssignCategory points the task at a category ID.
func (t *Task) AssignCategory(categoryID string) {
	t.CategoryID = categoryID
	t.Touch()
}

// ClearCategory drops the category reference.
func (t *Task) ClearCategory() {
	t.CategoryID = ""
	t.Touch()
}

// IsCompleted reports whether the task is completed.
func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// IsOverdueAt reports whether the due date is strictly before now and the
// task is neither completed nor cancelled.
func (t *Task) IsOverdueAt(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	if t.Status == StatusCompleted || t.Status == StatusCancelled {
		return false
	}
	return t.DueDate.Before(now)
}

// IsOverdue is IsOverdueAt(time.Now()). It is derived, never stored.
func (t *Task) IsOverdue() bool {
	return t.IsOverdueAt(time.Now())
}
