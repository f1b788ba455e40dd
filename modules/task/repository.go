package task

import (
	"errors"
	"strings"
	"time"

	"github.com/example/todo-tracker/domain/apperr"
	domain "github.com/example/todo-tracker/domain/task"
	"github.com/example/todo-tracker/store"
)

// errUnchanged aborts an Update without writing.
var errUnchanged = errors.New("task unchanged")

// Store provides in-memory task storage with the task query set. All
// queries are linear scans returning copies.
type Store struct {
	*store.Store[domain.Task, *domain.Task]
	now func() time.Time
}

// NewStore creates an empty task store using the wall clock for overdue checks.
func NewStore() *Store {
	return &Store{
		Store: store.New[domain.Task](apperr.EntityTask),
		now:   time.Now,
	}
}

// FindByStatus returns tasks in the given status. An empty status matches nothing.
func (s *Store) FindByStatus(status domain.Status) []*domain.Task {
	if status == "" {
		return []*domain.Task{}
	}
	return s.Filter(func(t *domain.Task) bool { return t.Status == status })
}

// FindByPriority returns tasks with the given priority. An empty priority matches nothing.
func (s *Store) FindByPriority(priority domain.Priority) []*domain.Task {
	if priority == "" {
		return []*domain.Task{}
	}
	return s.Filter(func(t *domain.Task) bool { return t.Priority == priority })
}

// FindByCategory returns tasks referencing the category. Blank IDs match nothing.
func (s *Store) FindByCategory(categoryID string) []*domain.Task {
	if strings.TrimSpace(categoryID) == "" {
		return []*domain.Task{}
	}
	return s.Filter(func(t *domain.Task) bool { return t.CategoryID == categoryID })
}

func (s *Store) FindStarred() []*domain.Task {
	return s.Filter(func(t *domain.Task) bool { return t.Starred })
}

// FindOverdue evaluates overdue-ness at call time.
func (s *Store) FindOverdue() []*domain.Task {
	now := s.now()
	return s.Filter(func(t *domain.Task) bool { return t.IsOverdueAt(now) })
}

// FindByDueDateBetween returns tasks due within [start, end], both inclusive.
// Tasks without a due date never match.
func (s *Store) FindByDueDateBetween(start, end time.Time) []*domain.Task {
	return s.Filter(func(t *domain.Task) bool {
		if t.DueDate == nil {
			return false
		}
		return !t.DueDate.Before(start) && !t.DueDate.After(end)
	})
}

// SearchByTitle matches keyword as a case-insensitive substring of the title.
// A blank keyword matches every task.
func (s *Store) SearchByTitle(keyword string) []*domain.Task {
	if strings.TrimSpace(keyword) == "" {
		return s.FindAll()
	}
	needle := strings.ToLower(keyword)
	return s.Filter(func(t *domain.Task) bool {
		return strings.Contains(strings.ToLower(t.Title), needle)
	})
}

func (s *Store) FindCompleted() []*domain.Task  { return s.FindByStatus(domain.StatusCompleted) }
func (s *Store) FindPending() []*domain.Task    { return s.FindByStatus(domain.StatusPending) }
func (s *Store) FindInProgress() []*domain.Task { return s.FindByStatus(domain.StatusInProgress) }

// ClearCategory removes the category reference from every task that still
// points at categoryID and returns how many tasks were changed.
func (s *Store) ClearCategory(categoryID string) int {
	cleared := 0
	for _, t := range s.FindByCategory(categoryID) {
		_, found, err := s.Update(t.ID, func(cur *domain.Task) error {
			if cur.CategoryID != categoryID {
				return errUnchanged
			}
			cur.ClearCategory()
			return nil
		})
		if found && err == nil {
			cleared++
		}
	}
	return cleared
}
