package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/go-monolith/mono"

	"github.com/example/todo-tracker/events"
)

func (m *ActivityModule) handleTaskCreated(_ context.Context, event events.TaskCreatedEvent, _ *mono.Msg) error {
	m.record("task_created", event.TaskID, fmt.Sprintf("Task '%s' created with priority %s", event.Title, event.Priority), event.CreatedAt)
	return nil
}

func (m *ActivityModule) handleTaskCompleted(_ context.Context, event events.TaskCompletedEvent, _ *mono.Msg) error {
	m.record("task_completed", event.TaskID, fmt.Sprintf("Task '%s' completed", event.Title), event.CompletedAt)
	return nil
}

func (m *ActivityModule) handleTaskDeleted(_ context.Context, event events.TaskDeletedEvent, _ *mono.Msg) error {
	m.record("task_deleted", event.TaskID, fmt.Sprintf("Task '%s' deleted", event.Title), event.DeletedAt)
	return nil
}

func (m *ActivityModule) handleTaskCategoryAssigned(_ context.Context, event events.TaskCategoryAssignedEvent, _ *mono.Msg) error {
	m.record("task_category_assigned", event.TaskID, fmt.Sprintf("Task assigned to category '%s'", event.CategoryName), event.AssignedAt)
	return nil
}

func (m *ActivityModule) handleCategoryCreated(_ context.Context, event events.CategoryCreatedEvent, _ *mono.Msg) error {
	m.record("category_created", event.CategoryID, fmt.Sprintf("Category '%s' created", event.Name), event.CreatedAt)
	return nil
}

func (m *ActivityModule) handleCategoryDeleted(_ context.Context, event events.CategoryDeletedEvent, _ *mono.Msg) error {
	m.record("category_deleted", event.CategoryID, fmt.Sprintf("Category '%s' deleted", event.Name), event.DeletedAt)
	return nil
}

// listActivity handles the list-activity service request.
func (m *ActivityModule) listActivity(_ context.Context, req ListActivityRequest, _ *mono.Msg) (ListActivityResponse, error) {
	entries := m.log.Recent(req.Limit)
	return ListActivityResponse{Entries: entries, Total: len(entries)}, nil
}

func (m *ActivityModule) record(kind, entityID, message string, at time.Time) {
	m.logger.Debug("Activity recorded", "type", kind, "id", entityID)
	m.log.Append(Entry{
		Type:      kind,
		EntityID:  entityID,
		Message:   message,
		Timestamp: at,
	})
}
