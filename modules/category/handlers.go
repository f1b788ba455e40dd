package category

import (
	"context"
	"time"

	"github.com/go-monolith/mono"

	"github.com/example/todo-tracker/domain/apperr"
	domain "github.com/example/todo-tracker/domain/category"
	"github.com/example/todo-tracker/events"
)

// createCategory handles the create-category service request.
func (m *CategoryModule) createCategory(_ context.Context, req CreateCategoryRequest, _ *mono.Msg) (CategoryResponse, error) {
	created, err := m.service.CreateCategory(domain.New(req.Name, req.Description, req.Color))
	if err != nil {
		return CategoryResponse{Error: apperr.ToPayload(err)}, nil
	}

	m.publishCreated(created)
	view := ToView(created)
	return CategoryResponse{Category: &view}, nil
}

// getCategory handles the get-category service request.
func (m *CategoryModule) getCategory(_ context.Context, req GetCategoryRequest, _ *mono.Msg) (CategoryResponse, error) {
	var (
		found *domain.Category
		err   error
	)
	if req.CategoryID == "" && req.Name != "" {
		found, err = m.service.GetCategoryByName(req.Name)
	} else {
		found, err = m.service.GetCategoryByID(req.CategoryID)
	}
	if err != nil {
		return CategoryResponse{Error: apperr.ToPayload(err)}, nil
	}
	view := ToView(found)
	return CategoryResponse{Category: &view}, nil
}

// updateCategory handles the update-category service request.
func (m *CategoryModule) updateCategory(_ context.Context, req UpdateCategoryRequest, _ *mono.Msg) (CategoryResponse, error) {
	existing, err := m.service.GetCategoryByID(req.CategoryID)
	if err != nil {
		return CategoryResponse{Error: apperr.ToPayload(err)}, nil
	}

	if req.Name != nil {
		existing.SetName(*req.Name)
	}
	if req.Description != nil {
		existing.SetDescription(*req.Description)
	}
	if req.Color != nil {
		existing.SetColor(*req.Color)
	}

	updated, err := m.service.UpdateCategory(existing)
	if err != nil {
		return CategoryResponse{Error: apperr.ToPayload(err)}, nil
	}
	view := ToView(updated)
	return CategoryResponse{Category: &view}, nil
}

// deleteCategory handles the delete-category service request.
func (m *CategoryModule) deleteCategory(_ context.Context, req DeleteCategoryRequest, _ *mono.Msg) (DeleteCategoryResponse, error) {
	deleted, err := m.service.DeleteCategory(req.CategoryID)
	if err != nil {
		return DeleteCategoryResponse{Error: apperr.ToPayload(err)}, nil
	}

	m.publishDeleted(deleted)
	return DeleteCategoryResponse{Deleted: true}, nil
}

// listCategories handles the list-categories service request.
func (m *CategoryModule) listCategories(_ context.Context, _ ListCategoriesRequest, _ *mono.Msg) (ListCategoriesResponse, error) {
	categories := m.service.GetAllCategories()
	resp := ListCategoriesResponse{
		Categories: make([]CategoryView, 0, len(categories)),
		Total:      len(categories),
	}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, ToView(c))
	}
	return resp, nil
}

// categoryExists handles the category-exists service request.
func (m *CategoryModule) categoryExists(_ context.Context, req CategoryExistsRequest, _ *mono.Msg) (CategoryExistsResponse, error) {
	return CategoryExistsResponse{Exists: m.service.ExistsByName(req.Name)}, nil
}

func (m *CategoryModule) publishCreated(c *domain.Category) {
	if m.eventBus == nil {
		return
	}
	event := events.CategoryCreatedEvent{
		CategoryID: c.ID,
		Name:       c.Name,
		CreatedAt:  c.CreatedAt,
	}
	if err := events.CategoryCreatedV1.Publish(m.eventBus, event, nil); err != nil {
		// Best-effort; the category is already stored.
		m.logger.Warn("Failed to publish CategoryCreated event", "id", c.ID, "error", err)
	}
}

func (m *CategoryModule) publishDeleted(c *domain.Category) {
	if m.eventBus == nil {
		return
	}
	event := events.CategoryDeletedEvent{
		CategoryID: c.ID,
		Name:       c.Name,
		DeletedAt:  time.Now(),
	}
	if err := events.CategoryDeletedV1.Publish(m.eventBus, event, nil); err != nil {
		m.logger.Warn("Failed to publish CategoryDeleted event", "id", c.ID, "error", err)
	}
}
