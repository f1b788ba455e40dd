package task

import (
	"context"
	"time"

	"github.com/go-monolith/mono"

	"github.com/example/todo-tracker/domain/apperr"
	domain "github.com/example/todo-tracker/domain/task"
	"github.com/example/todo-tracker/events"
)

// createTask handles the create-task service request.
func (m *TaskModule) createTask(_ context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	t := domain.New(req.Title, req.Description)
	if req.Priority != "" {
		priority, err := domain.ParsePriority(req.Priority)
		if err != nil {
			return TaskResponse{Error: apperr.ToPayload(err)}, nil
		}
		t.Priority = priority
	}
	if req.DueDate != nil {
		t.SetDueDate(req.DueDate)
	}

	categoryName := ""
	if req.CategoryID != "" {
		c, err := m.service.ResolveCategory(req.CategoryID)
		if err != nil {
			return TaskResponse{Error: apperr.ToPayload(err)}, nil
		}
		t.AssignCategory(c.ID)
		categoryName = c.Name
	}

	created, err := m.service.CreateTask(t)
	if err != nil {
		return TaskResponse{Error: apperr.ToPayload(err)}, nil
	}

	m.publish("TaskCreated", created.ID, func(bus mono.EventBus) error {
		return events.TaskCreatedV1.Publish(bus, events.TaskCreatedEvent{
			TaskID:     created.ID,
			Title:      created.Title,
			Priority:   string(created.Priority),
			CategoryID: created.CategoryID,
			CreatedAt:  created.CreatedAt,
		}, nil)
	})
	if created.CategoryID != "" {
		m.publishCategoryAssigned(created, categoryName)
	}

	return m.taskResponse(created), nil
}

// getTask handles the get-task service request.
func (m *TaskModule) getTask(_ context.Context, req GetTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	t, err := m.service.GetTaskByID(req.TaskID)
	if err != nil {
		return TaskResponse{Error: apperr.ToPayload(err)}, nil
	}
	return m.taskResponse(t), nil
}

// updateTask handles the update-task service request.
func (m *TaskModule) updateTask(_ context.Context, req UpdateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	t, err := m.service.GetTaskByID(req.TaskID)
	if err != nil {
		return TaskResponse{Error: apperr.ToPayload(err)}, nil
	}
	wasCompleted := t.IsCompleted()
	previousCategory := t.CategoryID

	if req.Title != nil {
		t.SetTitle(*req.Title)
	}
	if req.Description != nil {
		t.SetDescription(*req.Description)
	}
	if req.Status != nil {
		status, err := domain.ParseStatus(*req.Status)
		if err != nil {
			return TaskResponse{Error: apperr.ToPayload(err)}, nil
		}
		t.SetStatus(status)
	}
	if req.Priority != nil {
		priority, err := domain.ParsePriority(*req.Priority)
		if err != nil {
			return TaskResponse{Error: apperr.ToPayload(err)}, nil
		}
		t.SetPriority(priority)
	}
	if req.DueDate != nil {
		t.SetDueDate(req.DueDate)
	}
	if req.Starred != nil {
		t.SetStarred(*req.Starred)
	}
	categoryName := ""
	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			t.ClearCategory()
		} else {
			c, err := m.service.ResolveCategory(*req.CategoryID)
			if err != nil {
				return TaskResponse{Error: apperr.ToPayload(err)}, nil
			}
			t.AssignCategory(c.ID)
			categoryName = c.Name
		}
	}

	updated, err := m.service.UpdateTask(t)
	if err != nil {
		return TaskResponse{Error: apperr.ToPayload(err)}, nil
	}

	if !wasCompleted && updated.IsCompleted() {
		m.publishCompleted(updated)
	}
	if updated.CategoryID != "" && updated.CategoryID != previousCategory {
		m.publishCategoryAssigned(updated, categoryName)
	}
	return m.taskResponse(updated), nil
}

// deleteTask handles the delete-task service request.
func (m *TaskModule) deleteTask(_ context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	deleted, err := m.service.DeleteTask(req.TaskID)
	if err != nil {
		return DeleteTaskResponse{Error: apperr.ToPayload(err)}, nil
	}

	m.publish("TaskDeleted", deleted.ID, func(bus mono.EventBus) error {
		return events.TaskDeletedV1.Publish(bus, events.TaskDeletedEvent{
			TaskID:    deleted.ID,
			Title:     deleted.Title,
			DeletedAt: time.Now(),
		}, nil)
	})

	return DeleteTaskResponse{Deleted: true}, nil
}

// listTasks handles the list-tasks service request.
func (m *TaskModule) listTasks(_ context.Context, req ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	tasks, err := m.filterTasks(req)
	if err != nil {
		return ListTasksResponse{Tasks: []TaskView{}, Error: apperr.ToPayload(err)}, nil
	}

	resp := ListTasksResponse{
		Tasks: make([]TaskView, 0, len(tasks)),
		Total: len(tasks),
	}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, m.service.toView(t))
	}
	return resp, nil
}

func (m *TaskModule) filterTasks(req ListTasksRequest) ([]*domain.Task, error) {
	switch {
	case req.Status != "":
		status, err := domain.ParseStatus(req.Status)
		if err != nil {
			return nil, err
		}
		return m.service.GetTasksByStatus(status), nil
	case req.Priority != "":
		priority, err := domain.ParsePriority(req.Priority)
		if err != nil {
			return nil, err
		}
		return m.service.GetTasksByPriority(priority), nil
	case req.CategoryID != "":
		return m.service.GetTasksByCategory(req.CategoryID), nil
	case req.Starred:
		return m.service.GetStarredTasks(), nil
	case req.Overdue:
		return m.service.GetOverdueTasks(), nil
	case req.Query != "":
		return m.service.SearchTasks(req.Query), nil
	case req.DueFrom != nil || req.DueTo != nil:
		if req.DueFrom == nil || req.DueTo == nil {
			return nil, apperr.InvalidArgument("Both dueFrom and dueTo are required")
		}
		if req.DueTo.Before(*req.DueFrom) {
			return nil, apperr.InvalidArgument("dueFrom must not be after dueTo")
		}
		return m.service.GetTasksDueBetween(*req.DueFrom, *req.DueTo), nil
	default:
		return m.service.GetAllTasks(), nil
	}
}

// countTasks handles the count-tasks service request.
func (m *TaskModule) countTasks(_ context.Context, req CountTasksRequest, _ *mono.Msg) (CountTasksResponse, error) {
	if req.Status == "" {
		return CountTasksResponse{Count: m.service.GetTotalCount()}, nil
	}
	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		return CountTasksResponse{Error: apperr.ToPayload(err)}, nil
	}
	return CountTasksResponse{Count: m.service.CountByStatus(status)}, nil
}

// transitionTask handles the transition-task service request.
func (m *TaskModule) transitionTask(_ context.Context, req TransitionTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	var (
		t   *domain.Task
		err error
	)
	switch req.Action {
	case ActionComplete:
		t, err = m.service.CompleteTask(req.TaskID)
		if err == nil {
			m.publishCompleted(t)
		}
	case ActionStart:
		t, err = m.service.StartTask(req.TaskID)
	case ActionCancel:
		t, err = m.service.CancelTask(req.TaskID)
	case ActionToggleStar:
		t, err = m.service.ToggleStarred(req.TaskID)
	default:
		err = apperr.InvalidArgument("Unknown task action: %s", req.Action)
	}
	if err != nil {
		return TaskResponse{Error: apperr.ToPayload(err)}, nil
	}
	return m.taskResponse(t), nil
}

// setTaskPriority handles the set-task-priority service request.
func (m *TaskModule) setTaskPriority(_ context.Context, req SetPriorityRequest, _ *mono.Msg) (TaskResponse, error) {
	var priority domain.Priority
	if req.Priority != "" {
		parsed, err := domain.ParsePriority(req.Priority)
		if err != nil {
			return TaskResponse{Error: apperr.ToPayload(err)}, nil
		}
		priority = parsed
	}
	t, err := m.service.SetPriority(req.TaskID, priority)
	if err != nil {
		return TaskResponse{Error: apperr.ToPayload(err)}, nil
	}
	return m.taskResponse(t), nil
}

// setTaskDueDate handles the set-task-due-date service request.
func (m *TaskModule) setTaskDueDate(_ context.Context, req SetDueDateRequest, _ *mono.Msg) (TaskResponse, error) {
	t, err := m.service.SetDueDate(req.TaskID, req.DueDate)
	if err != nil {
		return TaskResponse{Error: apperr.ToPayload(err)}, nil
	}
	return m.taskResponse(t), nil
}

// assignCategory handles the assign-task-category service request.
func (m *TaskModule) assignCategory(_ context.Context, req AssignCategoryRequest, _ *mono.Msg) (TaskResponse, error) {
	t, err := m.service.AssignCategory(req.TaskID, req.CategoryID)
	if err != nil {
		return TaskResponse{Error: apperr.ToPayload(err)}, nil
	}
	m.publishCategoryAssigned(t, m.service.CategoryName(t))
	return m.taskResponse(t), nil
}

// unassignCategory handles the unassign-task-category service request.
func (m *TaskModule) unassignCategory(_ context.Context, req UnassignCategoryRequest, _ *mono.Msg) (TaskResponse, error) {
	t, err := m.service.UnassignCategory(req.TaskID)
	if err != nil {
		return TaskResponse{Error: apperr.ToPayload(err)}, nil
	}
	return m.taskResponse(t), nil
}

// handleCategoryDeleted clears references to a category that no longer exists.
func (m *TaskModule) handleCategoryDeleted(_ context.Context, event events.CategoryDeletedEvent, _ *mono.Msg) error {
	cleared := m.service.ClearCategoryReferences(event.CategoryID)
	m.logger.Debug("Processed CategoryDeleted", "categoryId", event.CategoryID, "cleared", cleared)
	return nil
}

func (m *TaskModule) taskResponse(t *domain.Task) TaskResponse {
	view := m.service.toView(t)
	return TaskResponse{Task: &view}
}

func (m *TaskModule) publishCompleted(t *domain.Task) {
	m.publish("TaskCompleted", t.ID, func(bus mono.EventBus) error {
		return events.TaskCompletedV1.Publish(bus, events.TaskCompletedEvent{
			TaskID:      t.ID,
			Title:       t.Title,
			CompletedAt: t.UpdatedAt,
		}, nil)
	})
}

func (m *TaskModule) publishCategoryAssigned(t *domain.Task, categoryName string) {
	m.publish("TaskCategoryAssigned", t.ID, func(bus mono.EventBus) error {
		return events.TaskCategoryAssignedV1.Publish(bus, events.TaskCategoryAssignedEvent{
			TaskID:       t.ID,
			CategoryID:   t.CategoryID,
			CategoryName: categoryName,
			AssignedAt:   t.UpdatedAt,
		}, nil)
	})
}

// publish sends an event best-effort; the operation itself has already
// succeeded, so failures are only logged.
func (m *TaskModule) publish(event, taskID string, send func(bus mono.EventBus) error) {
	if m.eventBus == nil {
		return
	}
	if err := send(m.eventBus); err != nil {
		m.logger.Warn("Failed to publish event", "event", event, "taskId", taskID, "error", err)
	}
}
