package validation

import (
	"fmt"
	"time"

	"github.com/go-monolith/mono/pkg/types"

	"github.com/example/todo-tracker/domain/task"
)

// Task field limits.
const (
	MaxTaskTitleLength       = 200
	MaxTaskDescriptionLength = 1000
)

// NewTaskValidator builds the validator for tasks.
func NewTaskValidator(logger types.Logger) *Validator[task.Task] {
	return New("Task", TaskRules(logger, time.Now), logger)
}

// TaskRules returns the task rule set. now is consulted by the business
// phase, which only logs and never reports a violation.
func TaskRules(logger types.Logger, now func() time.Time) Rules[task.Task] {
	return Rules[task.Task]{
		Required: []Check[task.Task]{taskTitleRequired, taskStatusRequired, taskPriorityRequired},
		Format:   []Check[task.Task]{taskEnumsKnown},
		Length:   []Check[task.Task]{taskLengths},
		Business: []Check[task.Task]{taskDueDateObservations(logger, now)},
	}
}

func taskTitleRequired(t *task.Task) []string {
	if isBlank(t.Title) {
		return []string{"Task title is required and cannot be empty"}
	}
	return nil
}

func taskStatusRequired(t *task.Task) []string {
	if t.Status == "" {
		return []string{"Task status cannot be null"}
	}
	return nil
}

func taskPriorityRequired(t *task.Task) []string {
	if t.Priority == "" {
		return []string{"Task priority cannot be null"}
	}
	return nil
}

func taskEnumsKnown(t *task.Task) []string {
	var errs []string
	if t.Status != "" && !t.Status.IsValid() {
		errs = append(errs, fmt.Sprintf("Task status is invalid: %s", t.Status))
	}
	if t.Priority != "" && !t.Priority.IsValid() {
		errs = append(errs, fmt.Sprintf("Task priority is invalid: %s", t.Priority))
	}
	return errs
}

func taskLengths(t *task.Task) []string {
	var errs []string
	if exceedsMaxLength(t.Title, MaxTaskTitleLength) {
		errs = append(errs, fmt.Sprintf("Task title cannot exceed %d characters (current: %d)",
			MaxTaskTitleLength, length(t.Title)))
	}
	if exceedsMaxLength(t.Description, MaxTaskDescriptionLength) {
		errs = append(errs, fmt.Sprintf("Task description cannot exceed %d characters (current: %d)",
			MaxTaskDescriptionLength, length(t.Description)))
	}
	return errs
}

func taskDueDateObservations(logger types.Logger, now func() time.Time) Check[task.Task] {
	return func(t *task.Task) []string {
		if t.DueDate == nil {
			return nil
		}
		current := now()
		if t.DueDate.Before(current) {
			logger.Warn("Task has due date in the past", "id", t.ID, "due_date", *t.DueDate)
		}
		if t.IsCompleted() && t.DueDate.After(current) {
			logger.Debug("Completed task has future due date", "id", t.ID)
		}
		return nil
	}
}

// IsValidTitle reports whether title would pass the title rules.
func IsValidTitle(title string) bool {
	return !isBlank(title) && !exceedsMaxLength(title, MaxTaskTitleLength)
}

// IsValidDueDate always holds: due dates are optional and may lie in the past.
func IsValidDueDate(_ *time.Time) bool {
	return true
}
