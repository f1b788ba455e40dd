package task

import (
	"strings"
	"time"

	"github.com/go-monolith/mono/pkg/types"

	"github.com/example/todo-tracker/domain/apperr"
	"github.com/example/todo-tracker/domain/category"
	domain "github.com/example/todo-tracker/domain/task"
	"github.com/example/todo-tracker/validation"
)

// CategoryLookup is the read side of the category store the task service
// needs to resolve weak category references.
type CategoryLookup interface {
	FindByID(id string) (*category.Category, bool, error)
}

// Service implements task business rules over the task and category stores.
type Service struct {
	tasks      *Store
	categories CategoryLookup
	validator  *validation.Validator[domain.Task]
	logger     types.Logger
}

// NewService creates a task service. Both stores are required.
func NewService(tasks *Store, categories CategoryLookup, logger types.Logger) *Service {
	if tasks == nil || categories == nil {
		panic("task service requires non-nil task and category stores")
	}
	return &Service{
		tasks:      tasks,
		categories: categories,
		validator:  validation.NewTaskValidator(logger),
		logger:     logger,
	}
}

// CreateTask validates and stores a new task.
func (s *Service) CreateTask(t *domain.Task) (*domain.Task, error) {
	if err := s.validator.Validate(t); err != nil {
		return nil, err
	}
	saved, err := s.tasks.Save(t)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Task created", "id", saved.ID, "title", saved.Title)
	return saved, nil
}

// UpdateTask validates and replaces an existing task.
func (s *Service) UpdateTask(t *domain.Task) (*domain.Task, error) {
	if err := s.validator.Validate(t); err != nil {
		return nil, err
	}
	updated, found, err := s.tasks.Update(t.ID, func(cur *domain.Task) error {
		*cur = *t
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		s.logger.Warn("Attempted to update non-existent task", "id", t.ID)
		return nil, apperr.TaskNotFound(t.ID)
	}
	s.logger.Info("Task updated", "id", updated.ID)
	return updated, nil
}

// GetTaskByID returns the task or a not-found error.
func (s *Service) GetTaskByID(id string) (*domain.Task, error) {
	if strings.TrimSpace(id) == "" {
		s.logger.Error("getTaskById called with empty ID")
		return nil, apperr.InvalidArgument("Task ID cannot be null or empty")
	}
	t, found, err := s.tasks.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !found {
		s.logger.Warn("Task not found", "id", id)
		return nil, apperr.TaskNotFound(id)
	}
	s.logger.Debug("Task found", "id", id)
	return t, nil
}

// DeleteTask removes a task and returns what was removed.
func (s *Service) DeleteTask(id string) (*domain.Task, error) {
	existing, err := s.GetTaskByID(id)
	if err != nil {
		return nil, err
	}
	deleted, err := s.tasks.DeleteByID(id)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, apperr.TaskNotFound(id)
	}
	s.logger.Info("Task deleted", "id", id)
	return existing, nil
}

func (s *Service) CompleteTask(id string) (*domain.Task, error) {
	return s.transition(id, "completed", (*domain.Task).Complete)
}

func (s *Service) StartTask(id string) (*domain.Task, error) {
	return s.transition(id, "started", (*domain.Task).Start)
}

func (s *Service) CancelTask(id string) (*domain.Task, error) {
	return s.transition(id, "cancelled", (*domain.Task).Cancel)
}

func (s *Service) ToggleStarred(id string) (*domain.Task, error) {
	return s.transition(id, "star toggled", (*domain.Task).ToggleStarred)
}

// SetPriority sets the priority. An empty or unknown priority is rejected.
func (s *Service) SetPriority(id string, priority domain.Priority) (*domain.Task, error) {
	if priority == "" {
		s.logger.Error("setPriority called with empty priority", "id", id)
		return nil, apperr.InvalidArgument("Priority cannot be null")
	}
	if !priority.IsValid() {
		return nil, apperr.InvalidArgument("Invalid task priority: %s", priority)
	}
	return s.transition(id, "priority set", func(t *domain.Task) { t.SetPriority(priority) })
}

// SetDueDate sets or, with nil, clears the due date.
func (s *Service) SetDueDate(id string, due *time.Time) (*domain.Task, error) {
	return s.transition(id, "due date set", func(t *domain.Task) { t.SetDueDate(due) })
}

// AssignCategory links the task to an existing category. The category is
// checked again while the task is locked for writing, so a category deleted
// before that check is rejected and one deleted after it is cleared by the
// category-deleted consumer, which must wait for the write.
func (s *Service) AssignCategory(taskID, categoryID string) (*domain.Task, error) {
	if strings.TrimSpace(taskID) == "" {
		s.logger.Error("assignCategory called with empty task ID")
		return nil, apperr.InvalidArgument("Task ID cannot be null or empty")
	}
	if strings.TrimSpace(categoryID) == "" {
		s.logger.Error("assignCategory called with empty category ID")
		return nil, apperr.InvalidArgument("Category ID cannot be null or empty")
	}

	c, err := s.ResolveCategory(categoryID)
	if err != nil {
		return nil, err
	}

	t, found, err := s.tasks.Update(taskID, func(cur *domain.Task) error {
		if _, err := s.ResolveCategory(c.ID); err != nil {
			return err
		}
		cur.AssignCategory(c.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		s.logger.Warn("Task not found", "id", taskID, "action", "category assigned")
		return nil, apperr.TaskNotFound(taskID)
	}
	s.logger.Info("Category assigned to task", "id", taskID, "category", c.Name)
	return t, nil
}

// UnassignCategory clears the task's category reference.
func (s *Service) UnassignCategory(taskID string) (*domain.Task, error) {
	return s.transition(taskID, "category unassigned", (*domain.Task).ClearCategory)
}

// ClearCategoryReferences drops references to a deleted category.
func (s *Service) ClearCategoryReferences(categoryID string) int {
	cleared := s.tasks.ClearCategory(categoryID)
	if cleared > 0 {
		s.logger.Info("Cleared category references", "categoryId", categoryID, "tasks", cleared)
	}
	return cleared
}

// CategoryName resolves the name of the task's category, or "" when the task
// has none or the reference dangles.
func (s *Service) CategoryName(t *domain.Task) string {
	if t == nil || t.CategoryID == "" {
		return ""
	}
	c, found, err := s.categories.FindByID(t.CategoryID)
	if err != nil || !found {
		return ""
	}
	return c.Name
}

func (s *Service) GetAllTasks() []*domain.Task {
	return s.tasks.FindAll()
}

// GetTasksByStatus returns tasks in status; an empty status returns all tasks.
func (s *Service) GetTasksByStatus(status domain.Status) []*domain.Task {
	if status == "" {
		return s.tasks.FindAll()
	}
	return s.tasks.FindByStatus(status)
}

// GetTasksByPriority returns tasks with priority; an empty priority returns all tasks.
func (s *Service) GetTasksByPriority(priority domain.Priority) []*domain.Task {
	if priority == "" {
		return s.tasks.FindAll()
	}
	return s.tasks.FindByPriority(priority)
}

// GetTasksByCategory returns tasks referencing categoryID. A blank ID returns
// all tasks; an unknown ID returns none.
func (s *Service) GetTasksByCategory(categoryID string) []*domain.Task {
	if strings.TrimSpace(categoryID) == "" {
		return s.tasks.FindAll()
	}
	return s.tasks.FindByCategory(categoryID)
}

func (s *Service) GetStarredTasks() []*domain.Task {
	return s.tasks.FindStarred()
}

func (s *Service) GetOverdueTasks() []*domain.Task {
	return s.tasks.FindOverdue()
}

// GetTasksDueBetween returns tasks due within [start, end].
func (s *Service) GetTasksDueBetween(start, end time.Time) []*domain.Task {
	return s.tasks.FindByDueDateBetween(start, end)
}

func (s *Service) SearchTasks(keyword string) []*domain.Task {
	return s.tasks.SearchByTitle(keyword)
}

// CountByStatus counts tasks in status; an empty status counts as zero.
func (s *Service) CountByStatus(status domain.Status) int {
	if status == "" {
		return 0
	}
	return len(s.tasks.FindByStatus(status))
}

func (s *Service) GetTotalCount() int {
	return s.tasks.Count()
}

// ResolveCategory returns the category with id or a not-found error.
func (s *Service) ResolveCategory(id string) (*category.Category, error) {
	c, found, err := s.categories.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !found {
		s.logger.Warn("Category not found for assignment", "categoryId", id)
		return nil, apperr.CategoryNotFound(id)
	}
	return c, nil
}

// toView builds the read model, resolving the category name on demand.
func (s *Service) toView(t *domain.Task) TaskView {
	return TaskView{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Status:        string(t.Status),
		Priority:      string(t.Priority),
		PriorityLevel: t.Priority.Level(),
		DueDate:       t.DueDate,
		CategoryID:    t.CategoryID,
		CategoryName:  s.CategoryName(t),
		Starred:       t.Starred,
		Overdue:       t.IsOverdue(),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

// transition applies mutate to one task atomically.
func (s *Service) transition(id, action string, mutate func(*domain.Task)) (*domain.Task, error) {
	if strings.TrimSpace(id) == "" {
		s.logger.Error("Task operation called with empty ID", "action", action)
		return nil, apperr.InvalidArgument("Task ID cannot be null or empty")
	}
	t, found, err := s.tasks.Update(id, func(cur *domain.Task) error {
		mutate(cur)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		s.logger.Warn("Task not found", "id", id, "action", action)
		return nil, apperr.TaskNotFound(id)
	}
	s.logger.Info("Task "+action, "id", id, "status", t.Status)
	return t, nil
}
