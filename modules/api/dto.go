package api

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/example/todo-tracker/domain/apperr"
	"github.com/example/todo-tracker/modules/activity"
	"github.com/example/todo-tracker/modules/category"
	"github.com/example/todo-tracker/modules/task"
)

// DateTimeLayout is the wire format of every date: ISO-8601 local date-time.
const DateTimeLayout = "2006-01-02T15:04:05"

// Accepted on input, tried in order.
var dateTimeInputLayouts = []string{DateTimeLayout, "2006-01-02T15:04", time.RFC3339}

// LocalDateTime is a timestamp rendered without zone information.
type LocalDateTime struct {
	time.Time
}

func (d LocalDateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Local().Format(DateTimeLayout))
}

func (d *LocalDateTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := ParseDateTime(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ParseDateTime parses a local date-time (or RFC 3339) string.
func ParseDateTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateTimeInputLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperr.InvalidArgument("Invalid date-time format: %s (expected yyyy-MM-ddTHH:mm:ss)", value)
}

func localDateTime(t *time.Time) *LocalDateTime {
	if t == nil {
		return nil
	}
	return &LocalDateTime{Time: *t}
}

func (d *LocalDateTime) timePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

// CreateTaskRequest is the HTTP request for creating a task.
type CreateTaskRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Priority    string         `json:"priority"`
	DueDate     *LocalDateTime `json:"dueDate"`
	CategoryID  string         `json:"categoryId"`
}

// UpdateTaskRequest is the HTTP request for a partial task update.
type UpdateTaskRequest struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Status      *string        `json:"status"`
	Priority    *string        `json:"priority"`
	DueDate     *LocalDateTime `json:"dueDate"`
	CategoryID  *string        `json:"categoryId"`
	Starred     *bool          `json:"starred"`
}

// PriorityRequest is the body of PUT /tasks/:id/priority.
type PriorityRequest struct {
	Priority string `json:"priority"`
}

// DueDateRequest is the body of PUT /tasks/:id/due-date. A null date clears it.
type DueDateRequest struct {
	DueDate *LocalDateTime `json:"dueDate"`
}

// CreateCategoryRequest is the HTTP request for creating a category.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// UpdateCategoryRequest is the HTTP request for updating a category.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

// TaskResponse is the HTTP response for a single task.
type TaskResponse struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Status        string         `json:"status"`
	Priority      string         `json:"priority"`
	PriorityLevel int            `json:"priorityLevel"`
	DueDate       *LocalDateTime `json:"dueDate"`
	CategoryID    string         `json:"categoryId,omitempty"`
	CategoryName  string         `json:"categoryName,omitempty"`
	Starred       bool           `json:"starred"`
	Overdue       bool           `json:"overdue"`
	CreatedAt     LocalDateTime  `json:"createdAt"`
	UpdatedAt     LocalDateTime  `json:"updatedAt"`
}

// ListTasksResponse is the HTTP response for listing tasks.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// CountResponse is the HTTP response for GET /tasks/count.
type CountResponse struct {
	Status string `json:"status,omitempty"`
	Count  int    `json:"count"`
}

// CategoryResponse is the HTTP response for a single category.
type CategoryResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Color       string        `json:"color,omitempty"`
	CreatedAt   LocalDateTime `json:"createdAt"`
	UpdatedAt   LocalDateTime `json:"updatedAt"`
}

// ListCategoriesResponse is the HTTP response for listing categories.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Total      int                `json:"total"`
}

// ExistsResponse is the HTTP response for GET /categories/exists.
type ExistsResponse struct {
	Name   string `json:"name"`
	Exists bool   `json:"exists"`
}

// ActivityEntry is one activity log line.
type ActivityEntry struct {
	Type      string        `json:"type"`
	EntityID  string        `json:"entityId"`
	Message   string        `json:"message"`
	Timestamp LocalDateTime `json:"timestamp"`
}

// ActivityResponse is the HTTP response for GET /activity.
type ActivityResponse struct {
	Entries []ActivityEntry `json:"entries"`
	Total   int             `json:"total"`
}

// HealthResponse is the HTTP response for health check.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

// ErrorResponse is the HTTP response for errors.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Details []string `json:"details"`
}

func toTaskResponse(v *task.TaskView) TaskResponse {
	return TaskResponse{
		ID:            v.ID,
		Title:         v.Title,
		Description:   v.Description,
		Status:        v.Status,
		Priority:      v.Priority,
		PriorityLevel: v.PriorityLevel,
		DueDate:       localDateTime(v.DueDate),
		CategoryID:    v.CategoryID,
		CategoryName:  v.CategoryName,
		Starred:       v.Starred,
		Overdue:       v.Overdue,
		CreatedAt:     LocalDateTime{Time: v.CreatedAt},
		UpdatedAt:     LocalDateTime{Time: v.UpdatedAt},
	}
}

func toListTasksResponse(views []task.TaskView) ListTasksResponse {
	tasks := make([]TaskResponse, 0, len(views))
	for i := range views {
		tasks = append(tasks, toTaskResponse(&views[i]))
	}
	return ListTasksResponse{Tasks: tasks, Total: len(tasks)}
}

func toCategoryResponse(v *category.CategoryView) CategoryResponse {
	return CategoryResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Color:       v.Color,
		CreatedAt:   LocalDateTime{Time: v.CreatedAt},
		UpdatedAt:   LocalDateTime{Time: v.UpdatedAt},
	}
}

func toActivityResponse(resp *activity.ListActivityResponse) ActivityResponse {
	entries := make([]ActivityEntry, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		entries = append(entries, ActivityEntry{
			Type:      e.Type,
			EntityID:  e.EntityID,
			Message:   e.Message,
			Timestamp: LocalDateTime{Time: e.Timestamp},
		})
	}
	return ActivityResponse{Entries: entries, Total: len(entries)}
}
