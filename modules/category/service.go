package category

import (
	"strings"

	"github.com/go-monolith/mono/pkg/types"

	"github.com/example/todo-tracker/domain/apperr"
	domain "github.com/example/todo-tracker/domain/category"
	"github.com/example/todo-tracker/validation"
)

// Service enforces category validation and name uniqueness on top of Store.
type Service struct {
	categories *Store
	validator  *validation.Validator[domain.Category]
	logger     types.Logger
}

// NewService creates a category service over the given store.
func NewService(categories *Store, logger types.Logger) *Service {
	if categories == nil {
		panic("category service requires non-nil Store")
	}
	return &Service{
		categories: categories,
		validator:  validation.NewCategoryValidator(logger),
		logger:     logger,
	}
}

// CreateCategory validates and stores a new category. The name must be unused.
func (s *Service) CreateCategory(c *domain.Category) (*domain.Category, error) {
	if err := s.validator.Validate(c); err != nil {
		return nil, err
	}
	if s.categories.ExistsByName(c.Name) {
		s.logger.Warn("Attempted to create category with duplicate name", "name", c.Name)
		return nil, apperr.Duplicate(apperr.EntityCategory, c.Name)
	}

	saved, conflict, err := s.categories.SaveExclusive(c, sameName)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		s.logger.Warn("Lost race creating category with duplicate name", "name", c.Name)
		return nil, apperr.Duplicate(apperr.EntityCategory, c.Name)
	}

	s.logger.Info("Category created", "id", saved.ID, "name", saved.Name)
	return saved, nil
}

// UpdateCategory validates and stores an existing category. The name may not
// be held by a different category.
func (s *Service) UpdateCategory(c *domain.Category) (*domain.Category, error) {
	if err := s.validator.Validate(c); err != nil {
		return nil, err
	}
	if !s.categories.ExistsByID(c.ID) {
		s.logger.Warn("Attempted to update non-existent category", "id", c.ID)
		return nil, apperr.CategoryNotFound(c.ID)
	}
	if existing, found := s.categories.FindByName(c.Name); found && existing.ID != c.ID {
		s.logger.Warn("Attempted to update category to duplicate name", "id", c.ID, "name", c.Name)
		return nil, apperr.Duplicate(apperr.EntityCategory, c.Name)
	}

	saved, conflict, found, err := s.categories.ReplaceExclusive(c, sameName)
	if err != nil {
		return nil, err
	}
	if !found {
		s.logger.Warn("Category deleted while being updated", "id", c.ID)
		return nil, apperr.CategoryNotFound(c.ID)
	}
	if conflict != nil {
		return nil, apperr.Duplicate(apperr.EntityCategory, c.Name)
	}

	s.logger.Info("Category updated", "id", saved.ID, "name", saved.Name)
	return saved, nil
}

// GetCategoryByID returns the category or a not-found error.
func (s *Service) GetCategoryByID(id string) (*domain.Category, error) {
	if strings.TrimSpace(id) == "" {
		s.logger.Error("getCategoryById called with empty ID")
		return nil, apperr.InvalidArgument("Category ID cannot be null or empty")
	}
	c, found, err := s.categories.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !found {
		s.logger.Warn("Category not found", "id", id)
		return nil, apperr.CategoryNotFound(id)
	}
	s.logger.Debug("Category found", "id", id)
	return c, nil
}

// GetCategoryByName returns the category with exactly this name.
func (s *Service) GetCategoryByName(name string) (*domain.Category, error) {
	if strings.TrimSpace(name) == "" {
		s.logger.Error("getCategoryByName called with empty name")
		return nil, apperr.InvalidArgument("Category name cannot be null or empty")
	}
	c, found := s.categories.FindByName(name)
	if !found {
		s.logger.Warn("Category not found with name", "name", name)
		return nil, apperr.CategoryNameNotFound(name)
	}
	return c, nil
}

// DeleteCategory removes a category. Tasks referencing it are not touched
// here; see the task module's category-deleted consumer.
func (s *Service) DeleteCategory(id string) (*domain.Category, error) {
	if strings.TrimSpace(id) == "" {
		s.logger.Error("deleteCategory called with empty ID")
		return nil, apperr.InvalidArgument("Category ID cannot be null or empty")
	}
	existing, found, err := s.categories.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !found {
		s.logger.Warn("Attempted to delete non-existent category", "id", id)
		return nil, apperr.CategoryNotFound(id)
	}

	deleted, err := s.categories.DeleteByID(id)
	if err != nil {
		return nil, err
	}
	if !deleted {
		// Removed concurrently between the lookup and the delete.
		return nil, apperr.CategoryNotFound(id)
	}

	s.logger.Info("Category deleted", "id", id, "name", existing.Name)
	return existing, nil
}

// ExistsByName reports whether the name is taken. Blank names report false.
func (s *Service) ExistsByName(name string) bool {
	if strings.TrimSpace(name) == "" {
		s.logger.Warn("existsByName called with empty name")
		return false
	}
	return s.categories.ExistsByName(name)
}

// GetAllCategories returns every category in unspecified order.
func (s *Service) GetAllCategories() []*domain.Category {
	return s.categories.FindAll()
}

// GetTotalCount returns the number of categories.
func (s *Service) GetTotalCount() int {
	return s.categories.Count()
}
