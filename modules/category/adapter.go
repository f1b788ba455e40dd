package category

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// categoryAdapter wraps ServiceContainer for type-safe cross-module communication.
type categoryAdapter struct {
	container mono.ServiceContainer
}

// NewCategoryAdapter creates a CategoryPort over the category module's
// ServiceContainer, received via SetDependencyServiceContainer.
func NewCategoryAdapter(container mono.ServiceContainer) CategoryPort {
	if container == nil {
		panic("category adapter requires non-nil ServiceContainer")
	}
	return &categoryAdapter{container: container}
}

// CreateCategory creates a category via the create-category service.
func (a *categoryAdapter) CreateCategory(ctx context.Context, req *CreateCategoryRequest) (*CategoryView, error) {
	var resp CategoryResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, ServiceCreateCategory, json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, fmt.Errorf("%s service call failed: %w", ServiceCreateCategory, err)
	}
	return resp.Category, resp.Error.Err()
}

// GetCategory retrieves a category by ID via the get-category service.
func (a *categoryAdapter) GetCategory(ctx context.Context, categoryID string) (*CategoryView, error) {
	req := GetCategoryRequest{CategoryID: categoryID}
	var resp CategoryResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, ServiceGetCategory, json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("%s service call failed: %w", ServiceGetCategory, err)
	}
	return resp.Category, resp.Error.Err()
}

// GetCategoryByName retrieves a category by exact name via the get-category service.
func (a *categoryAdapter) GetCategoryByName(ctx context.Context, name string) (*CategoryView, error) {
	req := GetCategoryRequest{Name: name}
	var resp CategoryResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, ServiceGetCategory, json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("%s service call failed: %w", ServiceGetCategory, err)
	}
	return resp.Category, resp.Error.Err()
}

// UpdateCategory updates a category via the update-category service.
func (a *categoryAdapter) UpdateCategory(ctx context.Context, req *UpdateCategoryRequest) (*CategoryView, error) {
	var resp CategoryResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, ServiceUpdateCategory, json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, fmt.Errorf("%s service call failed: %w", ServiceUpdateCategory, err)
	}
	return resp.Category, resp.Error.Err()
}

// DeleteCategory deletes a category via the delete-category service.
func (a *categoryAdapter) DeleteCategory(ctx context.Context, categoryID string) error {
	req := DeleteCategoryRequest{CategoryID: categoryID}
	var resp DeleteCategoryResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, ServiceDeleteCategory, json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return fmt.Errorf("%s service call failed: %w", ServiceDeleteCategory, err)
	}
	return resp.Error.Err()
}

// ListCategories lists all categories via the list-categories service.
func (a *categoryAdapter) ListCategories(ctx context.Context) (*ListCategoriesResponse, error) {
	var resp ListCategoriesResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, ServiceListCategories, json.Marshal, json.Unmarshal, &ListCategoriesRequest{}, &resp,
	); err != nil {
		return nil, fmt.Errorf("%s service call failed: %w", ServiceListCategories, err)
	}
	return &resp, nil
}

// CategoryExists checks a name via the category-exists service.
func (a *categoryAdapter) CategoryExists(ctx context.Context, name string) (bool, error) {
	req := CategoryExistsRequest{Name: name}
	var resp CategoryExistsResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, ServiceCategoryExists, json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return false, fmt.Errorf("%s service call failed: %w", ServiceCategoryExists, err)
	}
	return resp.Exists, nil
}
