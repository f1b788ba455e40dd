package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/todo-tracker/modules/task"
)

// setupRoutes configures all HTTP routes. Fixed task paths are registered
// before /:id so they are not captured as IDs.
func (m *APIModule) setupRoutes(app *fiber.App) {
	app.Get("/health", m.healthHandler)

	api := app.Group("/api/v1")
	api.Get("/health", m.healthHandler)
	api.Get("/activity", m.listActivity)

	tasks := api.Group("/tasks")
	tasks.Get("/", m.listTasks)
	tasks.Post("/", m.createTask)
	tasks.Get("/status/:status", m.tasksByStatus)
	tasks.Get("/priority/:priority", m.tasksByPriority)
	tasks.Get("/starred", m.starredTasks)
	tasks.Get("/overdue", m.overdueTasks)
	tasks.Get("/search", m.searchTasks)
	tasks.Get("/count", m.countTasks)
	tasks.Get("/:id", m.getTask)
	tasks.Put("/:id", m.updateTask)
	tasks.Delete("/:id", m.deleteTask)
	tasks.Post("/:id/complete", m.transition(task.ActionComplete))
	tasks.Post("/:id/start", m.transition(task.ActionStart))
	tasks.Post("/:id/cancel", m.transition(task.ActionCancel))
	tasks.Post("/:id/star", m.transition(task.ActionToggleStar))
	tasks.Put("/:id/priority", m.setPriority)
	tasks.Put("/:id/due-date", m.setDueDate)
	tasks.Put("/:id/category/:categoryId", m.assignCategory)
	tasks.Delete("/:id/category", m.unassignCategory)

	categories := api.Group("/categories")
	categories.Get("/", m.listCategories)
	categories.Post("/", m.createCategory)
	categories.Get("/exists", m.categoryExists)
	categories.Get("/name/:name", m.getCategoryByName)
	categories.Get("/:id", m.getCategory)
	categories.Put("/:id", m.updateCategory)
	categories.Delete("/:id", m.deleteCategory)
}

// healthHandler handles GET /health.
func (m *APIModule) healthHandler(c *fiber.Ctx) error {
	ctx, cancel := m.requestContext(c)
	defer cancel()

	details := map[string]any{
		"module": "api",
		"port":   m.cfg.Port,
	}
	status := "healthy"
	if total, err := m.tasks.CountTasks(ctx, ""); err == nil {
		details["tasks"] = total
	} else {
		status = "degraded"
		details["tasks_error"] = err.Error()
	}
	if resp, err := m.categories.ListCategories(ctx); err == nil {
		details["categories"] = resp.Total
	} else {
		status = "degraded"
		details["categories_error"] = err.Error()
	}

	return c.JSON(HealthResponse{Status: status, Details: details})
}

// listActivity handles GET /api/v1/activity.
func (m *APIModule) listActivity(c *fiber.Ctx) error {
	ctx, cancel := m.requestContext(c)
	defer cancel()

	resp, err := m.activity.ListActivity(ctx, c.QueryInt("limit", 0))
	if err != nil {
		return m.writeError(c, err)
	}
	return c.JSON(toActivityResponse(resp))
}
