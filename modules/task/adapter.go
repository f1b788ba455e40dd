package task

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// taskAdapter wraps ServiceContainer for type-safe cross-module communication.
// This is the adapter that implements the TaskPort interface.
type taskAdapter struct {
	container mono.ServiceContainer
}

// NewTaskAdapter creates a new adapter for task services.
// container is the ServiceContainer from the task module received via SetDependencyServiceContainer.
func NewTaskAdapter(container mono.ServiceContainer) TaskPort {
	if container == nil {
		panic("task adapter requires non-nil ServiceContainer")
	}
	return &taskAdapter{container: container}
}

// CreateTask creates a task via the create-task service.
func (a *taskAdapter) CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskView, error) {
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		ServiceCreateTask,
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("%s service call failed: %w", ServiceCreateTask, err)
	}
	return resp.Task, resp.Error.Err()
}

// GetTask retrieves a task by ID via the get-task service.
func (a *taskAdapter) GetTask(ctx context.Context, taskID string) (*TaskView, error) {
	req := GetTaskRequest{TaskID: taskID}
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		ServiceGetTask,
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("%s service call failed: %w", ServiceGetTask, err)
	}
	return resp.Task, resp.Error.Err()
}

// UpdateTask applies a partial update via the update-task service.
func (a *taskAdapter) UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*TaskView, error) {
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		ServiceUpdateTask,
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("%s service call failed: %w", ServiceUpdateTask, err)
	}
	return resp.Task, resp.Error.Err()
}

// DeleteTask deletes a task via the delete-task service.
func (a *taskAdapter) DeleteTask(ctx context.Context, taskID string) error {
	req := DeleteTaskRequest{TaskID: taskID}
	var resp DeleteTaskResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		ServiceDeleteTask,
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return fmt.Errorf("%s service call failed: %w", ServiceDeleteTask, err)
	}
	return resp.Error.Err()
}

// ListTasks lists tasks matching the filter via the list-tasks service.
func (a *taskAdapter) ListTasks(ctx context.Context, req *ListTasksRequest) (*ListTasksResponse, error) {
	var resp ListTasksResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		ServiceListTasks,
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("%s service call failed: %w", ServiceListTasks, err)
	}
	if err := resp.Error.Err(); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CountTasks counts tasks, optionally by status, via the count-tasks service.
func (a *taskAdapter) CountTasks(ctx context.Context, status string) (int, error) {
	req := CountTasksRequest{Status: status}
	var resp CountTasksResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		ServiceCountTasks,
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return 0, fmt.Errorf("%s service call failed: %w", ServiceCountTasks, err)
	}
	return resp.Count, resp.Error.Err()
}

// TransitionTask applies a status or star transition via the transition-task service.
func (a *taskAdapter) TransitionTask(ctx context.Context, taskID, action string) (*TaskView, error) {
	req := TransitionTaskRequest{TaskID: taskID, Action: action}
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		ServiceTransitionTask,
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("%s service call failed: %w", ServiceTransitionTask, err)
	}
	return resp.Task, resp.Error.Err()
}

// SetPriority changes the priority via the set-task-priority service.
func (a *taskAdapter) SetPriority(ctx context.Context, taskID, priority string) (*TaskView, error) {
	req := SetPriorityRequest{TaskID: taskID, Priority: priority}
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		ServiceSetTaskPriority,
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("%s service call failed: %w", ServiceSetTaskPriority, err)
	}
	return resp.Task, resp.Error.Err()
}

// SetDueDate sets or clears the due date via the set-task-due-date service.
func (a *taskAdapter) SetDueDate(ctx context.Context, taskID string, dueDate *time.Time) (*TaskView, error) {
	req := SetDueDateRequest{TaskID: taskID, DueDate: dueDate}
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		ServiceSetTaskDueDate,
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("%s service call failed: %w", ServiceSetTaskDueDate, err)
	}
	return resp.Task, resp.Error.Err()
}

// AssignCategory links a task to a category via the assign-task-category service.
func (a *taskAdapter) AssignCategory(ctx context.Context, taskID, categoryID string) (*TaskView, error) {
	req := AssignCategoryRequest{TaskID: taskID, CategoryID: categoryID}
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		ServiceAssignCategory,
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("%s service call failed: %w", ServiceAssignCategory, err)
	}
	return resp.Task, resp.Error.Err()
}

// UnassignCategory removes a task's category via the unassign-task-category service.
func (a *taskAdapter) UnassignCategory(ctx context.Context, taskID string) (*TaskView, error) {
	req := UnassignCategoryRequest{TaskID: taskID}
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		ServiceUnassignCategory,
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("%s service call failed: %w", ServiceUnassignCategory, err)
	}
	return resp.Task, resp.Error.Err()
}
