package task

import (
	"strings"

	"github.com/example/todo-tracker/domain/apperr"
)

// Status represents the state of a task.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

// Statuses lists every status in lifecycle order.
var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled}

var statusInfo = map[Status]struct{ display, description string }{
	StatusPending:    {"Pending", "Task is waiting to be started"},
	StatusInProgress: {"In Progress", "Task is currently being worked on"},
	StatusCompleted:  {"Completed", "Task has been completed"},
	StatusCancelled:  {"Cancelled", "Task has been cancelled"},
}

// IsValid reports whether s is one of the four known statuses.
func (s Status) IsValid() bool {
	_, ok := statusInfo[s]
	return ok
}

// DisplayName returns the human readable name, e.g. "In Progress".
func (s Status) DisplayName() string {
	return statusInfo[s].display
}

// Description returns a one-line explanation of the status.
func (s Status) Description() string {
	return statusInfo[s].description
}

// ParseStatus accepts the token ("IN_PROGRESS") or the display name
// ("in progress"), case-insensitively.
func ParseStatus(value string) (Status, error) {
	if value == "" {
		return "", apperr.InvalidArgument("Status value cannot be empty")
	}
	for _, s := range Statuses {
		if strings.EqualFold(string(s), value) || strings.EqualFold(s.DisplayName(), value) {
			return s, nil
		}
	}
	return "", apperr.InvalidArgument("Invalid task status: %s", value)
}

// Priority represents the urgency of a task.
type Priority string

const (
	PriorityLow      Priority = "LOW"
	PriorityMedium   Priority = "MEDIUM"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

// Priorities lists every priority from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

var priorityInfo = map[Priority]struct {
	level                int
	display, description string
}{
	PriorityLow:      {1, "Low", "Low priority task"},
	PriorityMedium:   {2, "Medium", "Medium priority task"},
	PriorityHigh:     {3, "High", "High priority task"},
	PriorityCritical: {4, "Critical", "Critical priority - requires immediate attention"},
}

// IsValid reports whether p is one of the four known priorities.
func (p Priority) IsValid() bool {
	_, ok := priorityInfo[p]
	return ok
}

// Level returns 1 (LOW) through 4 (CRITICAL); 0 for an unknown priority.
func (p Priority) Level() int {
	return priorityInfo[p].level
}

func (p Priority) DisplayName() string {
	return priorityInfo[p].display
}

func (p Priority) Description() string {
	return priorityInfo[p].description
}

func (p Priority) IsHigherThan(other Priority) bool {
	return p.Level() > other.Level()
}

func (p Priority) IsLowerThan(other Priority) bool {
	return p.Level() < other.Level()
}

// ParsePriority accepts the token or the display name, case-insensitively.
func ParsePriority(value string) (Priority, error) {
	if value == "" {
		return "", apperr.InvalidArgument("Priority value cannot be empty")
	}
	for _, p := range Priorities {
		if strings.EqualFold(string(p), value) || strings.EqualFold(p.DisplayName(), value) {
			return p, nil
		}
	}
	return "", apperr.InvalidArgument("Invalid task priority: %s", value)
}
