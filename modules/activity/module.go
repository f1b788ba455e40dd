package activity

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"

	"github.com/example/todo-tracker/events"
)

// ServiceListActivity is the request-reply service serving the log.
const ServiceListActivity = "list-activity"

// ActivityModule records task and category events as a driven adapter.
type ActivityModule struct {
	log    *Log
	logger types.Logger
}

var (
	_ mono.Module                = (*ActivityModule)(nil)
	_ mono.EventConsumerModule   = (*ActivityModule)(nil)
	_ mono.ServiceProviderModule = (*ActivityModule)(nil)
)

func NewModule(capacity int, logger types.Logger) *ActivityModule {
	return &ActivityModule{
		log:    NewLog(capacity),
		logger: logger,
	}
}

func (m *ActivityModule) Name() string {
	return "activity"
}

func (m *ActivityModule) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskCreatedV1, m.handleTaskCreated, m); err != nil {
		return fmt.Errorf("failed to register TaskCreated consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskCompletedV1, m.handleTaskCompleted, m); err != nil {
		return fmt.Errorf("failed to register TaskCompleted consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskDeletedV1, m.handleTaskDeleted, m); err != nil {
		return fmt.Errorf("failed to register TaskDeleted consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskCategoryAssignedV1, m.handleTaskCategoryAssigned, m); err != nil {
		return fmt.Errorf("failed to register TaskCategoryAssigned consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.CategoryCreatedV1, m.handleCategoryCreated, m); err != nil {
		return fmt.Errorf("failed to register CategoryCreated consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.CategoryDeletedV1, m.handleCategoryDeleted, m); err != nil {
		return fmt.Errorf("failed to register CategoryDeleted consumer: %w", err)
	}

	m.logger.Info("Registered event consumers", "events", []string{
		"TaskCreated", "TaskCompleted", "TaskDeleted", "TaskCategoryAssigned",
		"CategoryCreated", "CategoryDeleted",
	})
	return nil
}

func (m *ActivityModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceListActivity, json.Unmarshal, json.Marshal, m.listActivity,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceListActivity, err)
	}
	m.logger.Info("Registered services", "services", []string{ServiceListActivity})
	return nil
}

func (m *ActivityModule) Start(_ context.Context) error {
	m.logger.Info("Activity module started - listening for task and category events", "capacity", m.log.capacity)
	return nil
}

func (m *ActivityModule) Stop(_ context.Context) error {
	m.logger.Info("Activity module stopped", "entries", m.log.Len())
	return nil
}

// Log returns the activity log.
func (m *ActivityModule) Log() *Log {
	return m.log
}
