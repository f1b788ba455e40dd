package task

import (
	"context"
	"time"

	"github.com/example/todo-tracker/domain/apperr"
)

// Service names registered by the task module.
const (
	ServiceCreateTask       = "create-task"
	ServiceGetTask          = "get-task"
	ServiceUpdateTask       = "update-task"
	ServiceDeleteTask       = "delete-task"
	ServiceListTasks        = "list-tasks"
	ServiceCountTasks       = "count-tasks"
	ServiceTransitionTask   = "transition-task"
	ServiceSetTaskPriority  = "set-task-priority"
	ServiceSetTaskDueDate   = "set-task-due-date"
	ServiceAssignCategory   = "assign-task-category"
	ServiceUnassignCategory = "unassign-task-category"
)

// Transition actions accepted by the transition-task service.
const (
	ActionComplete   = "complete"
	ActionStart      = "start"
	ActionCancel     = "cancel"
	ActionToggleStar = "star"
)

// TaskView is the read model of a task. CategoryName and Overdue are
// computed when the view is built.
type TaskView struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	Priority      string     `json:"priority"`
	PriorityLevel int        `json:"priority_level"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	CategoryID    string     `json:"category_id,omitempty"`
	CategoryName  string     `json:"category_name,omitempty"`
	Starred       bool       `json:"starred"`
	Overdue       bool       `json:"overdue"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// CreateTaskRequest is the request for creating a task. Priority defaults to MEDIUM.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CategoryID  string     `json:"category_id,omitempty"`
}

// GetTaskRequest is the request for getting a task.
type GetTaskRequest struct {
	TaskID string `json:"task_id"`
}

// UpdateTaskRequest is a partial update: nil fields are left unchanged.
// An empty CategoryID clears the category.
type UpdateTaskRequest struct {
	TaskID      string     `json:"task_id"`
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CategoryID  *string    `json:"category_id,omitempty"`
	Starred     *bool      `json:"starred,omitempty"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	TaskID string `json:"task_id"`
}

// DeleteTaskResponse is the response for deleting a task.
type DeleteTaskResponse struct {
	Deleted bool            `json:"deleted"`
	Error   *apperr.Payload `json:"error,omitempty"`
}

// ListTasksRequest filters the task list. At most one filter applies, checked
// in field order; with none set every task is returned.
type ListTasksRequest struct {
	Status     string     `json:"status,omitempty"`
	Priority   string     `json:"priority,omitempty"`
	CategoryID string     `json:"category_id,omitempty"`
	Starred    bool       `json:"starred,omitempty"`
	Overdue    bool       `json:"overdue,omitempty"`
	Query      string     `json:"query,omitempty"`
	DueFrom    *time.Time `json:"due_from,omitempty"`
	DueTo      *time.Time `json:"due_to,omitempty"`
}

// ListTasksResponse is the response for listing tasks.
type ListTasksResponse struct {
	Tasks []TaskView      `json:"tasks"`
	Total int             `json:"total"`
	Error *apperr.Payload `json:"error,omitempty"`
}

// CountTasksRequest counts tasks in Status, or all tasks when Status is empty.
type CountTasksRequest struct {
	Status string `json:"status,omitempty"`
}

// CountTasksResponse is the response for counting tasks.
type CountTasksResponse struct {
	Count int             `json:"count"`
	Error *apperr.Payload `json:"error,omitempty"`
}

// TransitionTaskRequest applies one of the Action* transitions.
type TransitionTaskRequest struct {
	TaskID string `json:"task_id"`
	Action string `json:"action"`
}

// SetPriorityRequest is the request for changing a task's priority.
type SetPriorityRequest struct {
	TaskID   string `json:"task_id"`
	Priority string `json:"priority"`
}

// SetDueDateRequest sets the due date; a nil DueDate clears it.
type SetDueDateRequest struct {
	TaskID  string     `json:"task_id"`
	DueDate *time.Time `json:"due_date,omitempty"`
}

// AssignCategoryRequest links a task to a category.
type AssignCategoryRequest struct {
	TaskID     string `json:"task_id"`
	CategoryID string `json:"category_id"`
}

// UnassignCategoryRequest removes a task's category link.
type UnassignCategoryRequest struct {
	TaskID string `json:"task_id"`
}

// TaskResponse carries a single task or the error that prevented it.
type TaskResponse struct {
	Task  *TaskView       `json:"task,omitempty"`
	Error *apperr.Payload `json:"error,omitempty"`
}

// TaskPort defines the task operations available to driving adapters such
// as the HTTP API.
type TaskPort interface {
	CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskView, error)
	GetTask(ctx context.Context, taskID string) (*TaskView, error)
	UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*TaskView, error)
	DeleteTask(ctx context.Context, taskID string) error
	ListTasks(ctx context.Context, req *ListTasksRequest) (*ListTasksResponse, error)
	CountTasks(ctx context.Context, status string) (int, error)
	TransitionTask(ctx context.Context, taskID, action string) (*TaskView, error)
	SetPriority(ctx context.Context, taskID, priority string) (*TaskView, error)
	SetDueDate(ctx context.Context, taskID string, dueDate *time.Time) (*TaskView, error)
	AssignCategory(ctx context.Context, taskID, categoryID string) (*TaskView, error)
	UnassignCategory(ctx context.Context, taskID string) (*TaskView, error)
}
