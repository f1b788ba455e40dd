package category

import (
	"strings"

	"github.com/example/todo-tracker/domain/apperr"
	domain "github.com/example/todo-tracker/domain/category"
	"github.com/example/todo-tracker/store"
)

// Store provides in-memory category storage with name lookups.
type Store struct {
	*store.Store[domain.Category, *domain.Category]
}

// NewStore creates an empty category store.
func NewStore() *Store {
	return &Store{Store: store.New[domain.Category](apperr.EntityCategory)}
}

// FindByName finds the category with exactly this name (case-sensitive).
// Blank names never match.
func (s *Store) FindByName(name string) (*domain.Category, bool) {
	if strings.TrimSpace(name) == "" {
		return nil, false
	}
	return s.FindFirst(func(c *domain.Category) bool { return c.Name == name })
}

// ExistsByName reports whether a category holds this name.
func (s *Store) ExistsByName(name string) bool {
	_, found := s.FindByName(name)
	return found
}

// sameName is the uniqueness rule for category names.
func sameName(existing, candidate *domain.Category) bool {
	return existing.Name == candidate.Name
}
