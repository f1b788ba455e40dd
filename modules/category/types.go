package category

import (
	"context"
	"time"

	"github.com/example/todo-tracker/domain/apperr"
	domain "github.com/example/todo-tracker/domain/category"
)

// Service names registered by the category module.
const (
	ServiceCreateCategory = "create-category"
	ServiceGetCategory    = "get-category"
	ServiceUpdateCategory = "update-category"
	ServiceDeleteCategory = "delete-category"
	ServiceListCategories = "list-categories"
	ServiceCategoryExists = "category-exists"
)

// CategoryView is the read model of a category returned across the service boundary.
type CategoryView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateCategoryRequest is the request for creating a category.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

// UpdateCategoryRequest is the request for updating a category. Nil fields
// are left unchanged.
type UpdateCategoryRequest struct {
	CategoryID  string  `json:"category_id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
}

// GetCategoryRequest looks a category up by ID, or by exact name when
// CategoryID is empty.
type GetCategoryRequest struct {
	CategoryID string `json:"category_id,omitempty"`
	Name       string `json:"name,omitempty"`
}

// DeleteCategoryRequest is the request for deleting a category.
type DeleteCategoryRequest struct {
	CategoryID string `json:"category_id"`
}

// ListCategoriesRequest is the request for listing categories.
type ListCategoriesRequest struct{}

// CategoryExistsRequest asks whether a category name is taken.
type CategoryExistsRequest struct {
	Name string `json:"name"`
}

// CategoryResponse carries a single category or the error that prevented it.
type CategoryResponse struct {
	Category *CategoryView  `json:"category,omitempty"`
	Error    *apperr.Payload `json:"error,omitempty"`
}

// DeleteCategoryResponse is the response for deleting a category.
type DeleteCategoryResponse struct {
	Deleted bool            `json:"deleted"`
	Error   *apperr.Payload `json:"error,omitempty"`
}

// ListCategoriesResponse is the response for listing categories.
type ListCategoriesResponse struct {
	Categories []CategoryView `json:"categories"`
	Total      int            `json:"total"`
}

// CategoryExistsResponse is the response for a name existence check.
type CategoryExistsResponse struct {
	Exists bool `json:"exists"`
}

// CategoryPort defines the category operations available to other modules
// and driving adapters.
type CategoryPort interface {
	CreateCategory(ctx context.Context, req *CreateCategoryRequest) (*CategoryView, error)
	GetCategory(ctx context.Context, categoryID string) (*CategoryView, error)
	GetCategoryByName(ctx context.Context, name string) (*CategoryView, error)
	UpdateCategory(ctx context.Context, req *UpdateCategoryRequest) (*CategoryView, error)
	DeleteCategory(ctx context.Context, categoryID string) error
	ListCategories(ctx context.Context) (*ListCategoriesResponse, error)
	CategoryExists(ctx context.Context, name string) (bool, error)
}

// ToView converts a domain category to its read model.
func ToView(c *domain.Category) CategoryView {
	return CategoryView{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
