package category

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"

	domain "github.com/example/todo-tracker/domain/category"
	"github.com/example/todo-tracker/events"
)

// CategoryModule owns categories and exposes them as request-reply services.
type CategoryModule struct {
	store    *Store
	service  *Service
	eventBus mono.EventBus
	logger   types.Logger
}

var (
	_ mono.Module                = (*CategoryModule)(nil)
	_ mono.ServiceProviderModule = (*CategoryModule)(nil)
	_ mono.EventEmitterModule    = (*CategoryModule)(nil)
	_ mono.HealthCheckableModule = (*CategoryModule)(nil)
)

// NewModule creates the category module over an existing store.
func NewModule(categories *Store, logger types.Logger) *CategoryModule {
	return &CategoryModule{
		store:   categories,
		service: NewService(categories, logger),
		logger:  logger,
	}
}

func (m *CategoryModule) Name() string {
	return "category"
}

func (m *CategoryModule) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

func (m *CategoryModule) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.CategoryCreatedV1.ToBase(),
		events.CategoryDeletedV1.ToBase(),
	}
}

func (m *CategoryModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceCreateCategory, json.Unmarshal, json.Marshal, m.createCategory,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceCreateCategory, err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceGetCategory, json.Unmarshal, json.Marshal, m.getCategory,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceGetCategory, err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceUpdateCategory, json.Unmarshal, json.Marshal, m.updateCategory,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceUpdateCategory, err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceDeleteCategory, json.Unmarshal, json.Marshal, m.deleteCategory,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceDeleteCategory, err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceListCategories, json.Unmarshal, json.Marshal, m.listCategories,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceListCategories, err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceCategoryExists, json.Unmarshal, json.Marshal, m.categoryExists,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceCategoryExists, err)
	}

	m.logger.Info("Registered services", "services", []string{
		ServiceCreateCategory, ServiceGetCategory, ServiceUpdateCategory,
		ServiceDeleteCategory, ServiceListCategories, ServiceCategoryExists,
	})
	return nil
}

func (m *CategoryModule) Start(_ context.Context) error {
	if m.eventBus == nil {
		m.logger.Warn("eventBus not set, category events will not be published")
	}
	m.logger.Info("Category module started", "categories", m.store.Count())
	return nil
}

func (m *CategoryModule) Stop(_ context.Context) error {
	m.logger.Info("Category module stopped")
	return nil
}

// Health reports the module healthy with the current category count.
func (m *CategoryModule) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{"categories": m.store.Count()},
	}
}

// Service returns the category service.
func (m *CategoryModule) Service() *Service {
	return m.service
}

// defaultCategories are created by SeedDefaults.
var defaultCategories = []struct{ name, description, color string }{
	{"Work", "Tasks related to work and career", "#3498DB"},
	{"Personal", "Personal errands and goals", "#2ECC71"},
	{"Shopping", "Things to buy", "#E67E22"},
}

// SeedDefaults creates the default categories. Names already taken are skipped.
func (m *CategoryModule) SeedDefaults() {
	for _, d := range defaultCategories {
		if m.service.ExistsByName(d.name) {
			continue
		}
		created, err := m.service.CreateCategory(domain.New(d.name, d.description, d.color))
		if err != nil {
			m.logger.Warn("Failed to seed category", "name", d.name, "error", err)
			continue
		}
		m.publishCreated(created)
	}
	m.logger.Info("Seeded default categories", "count", m.store.Count())
}
