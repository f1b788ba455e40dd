package task

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"

	"github.com/example/todo-tracker/events"
)

// TaskModule provides task management services (core domain).
type TaskModule struct {
	store    *Store
	service  *Service
	eventBus mono.EventBus
	logger   types.Logger
}

var (
	_ mono.Module                = (*TaskModule)(nil)
	_ mono.ServiceProviderModule = (*TaskModule)(nil)
	_ mono.EventEmitterModule    = (*TaskModule)(nil)
	_ mono.EventConsumerModule   = (*TaskModule)(nil)
	_ mono.HealthCheckableModule = (*TaskModule)(nil)
)

// NewModule creates the task module over the task store. Category references
// are resolved through categories.
func NewModule(tasks *Store, categories CategoryLookup, logger types.Logger) *TaskModule {
	return &TaskModule{
		store:   tasks,
		service: NewService(tasks, categories, logger),
		logger:  logger,
	}
}

func (m *TaskModule) Name() string {
	return "task"
}

func (m *TaskModule) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

func (m *TaskModule) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.TaskCreatedV1.ToBase(),
		events.TaskCompletedV1.ToBase(),
		events.TaskDeletedV1.ToBase(),
		events.TaskCategoryAssignedV1.ToBase(),
	}
}

func (m *TaskModule) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.CategoryDeletedV1, m.handleCategoryDeleted, m); err != nil {
		return fmt.Errorf("failed to register CategoryDeleted consumer: %w", err)
	}
	m.logger.Info("Registered event consumers", "events", []string{"CategoryDeleted.v1"})
	return nil
}

func (m *TaskModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceCreateTask, json.Unmarshal, json.Marshal, m.createTask,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceCreateTask, err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceGetTask, json.Unmarshal, json.Marshal, m.getTask,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceGetTask, err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceUpdateTask, json.Unmarshal, json.Marshal, m.updateTask,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceUpdateTask, err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceDeleteTask, json.Unmarshal, json.Marshal, m.deleteTask,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceDeleteTask, err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceListTasks, json.Unmarshal, json.Marshal, m.listTasks,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceListTasks, err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceCountTasks, json.Unmarshal, json.Marshal, m.countTasks,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceCountTasks, err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceTransitionTask, json.Unmarshal, json.Marshal, m.transitionTask,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceTransitionTask, err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceSetTaskPriority, json.Unmarshal, json.Marshal, m.setTaskPriority,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceSetTaskPriority, err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceSetTaskDueDate, json.Unmarshal, json.Marshal, m.setTaskDueDate,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceSetTaskDueDate, err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceAssignCategory, json.Unmarshal, json.Marshal, m.assignCategory,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceAssignCategory, err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceUnassignCategory, json.Unmarshal, json.Marshal, m.unassignCategory,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceUnassignCategory, err)
	}

	m.logger.Info("Registered services", "count", 11)
	return nil
}

func (m *TaskModule) Start(_ context.Context) error {
	if m.eventBus == nil {
		m.logger.Warn("eventBus not set, task events will not be published")
	}
	m.logger.Info("Task module started", "tasks", m.store.Count())
	return nil
}

func (m *TaskModule) Stop(_ context.Context) error {
	m.logger.Info("Task module stopped")
	return nil
}

// Health reports the module healthy with task counts per status.
func (m *TaskModule) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"tasks":       m.store.Count(),
			"pending":     len(m.store.FindPending()),
			"in_progress": len(m.store.FindInProgress()),
			"completed":   len(m.store.FindCompleted()),
		},
	}
}

// Service returns the task service.
func (m *TaskModule) Service() *Service {
	return m.service
}
