package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/todo-tracker/modules/task"
)

// createTask handles POST /api/v1/tasks.
func (m *APIModule) createTask(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return m.badRequest(c, err)
	}

	ctx, cancel := m.requestContext(c)
	defer cancel()

	view, err := m.tasks.CreateTask(ctx, &task.CreateTaskRequest{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate.timePtr(),
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return m.writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toTaskResponse(view))
}

// getTask handles GET /api/v1/tasks/:id.
func (m *APIModule) getTask(c *fiber.Ctx) error {
	ctx, cancel := m.requestContext(c)
	defer cancel()

	view, err := m.tasks.GetTask(ctx, c.Params("id"))
	if err != nil {
		return m.writeError(c, err)
	}
	return c.JSON(toTaskResponse(view))
}

// updateTask handles PUT /api/v1/tasks/:id.
func (m *APIModule) updateTask(c *fiber.Ctx) error {
	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return m.badRequest(c, err)
	}

	ctx, cancel := m.requestContext(c)
	defer cancel()

	view, err := m.tasks.UpdateTask(ctx, &task.UpdateTaskRequest{
		TaskID:      c.Params("id"),
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate.timePtr(),
		CategoryID:  req.CategoryID,
		Starred:     req.Starred,
	})
	if err != nil {
		return m.writeError(c, err)
	}
	return c.JSON(toTaskResponse(view))
}

// deleteTask handles DELETE /api/v1/tasks/:id.
func (m *APIModule) deleteTask(c *fiber.Ctx) error {
	ctx, cancel := m.requestContext(c)
	defer cancel()

	if err := m.tasks.DeleteTask(ctx, c.Params("id")); err != nil {
		return m.writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// listTasks handles GET /api/v1/tasks with optional filters.
func (m *APIModule) listTasks(c *fiber.Ctx) error {
	req := task.ListTasksRequest{
		Status:     c.Query("status"),
		Priority:   c.Query("priority"),
		CategoryID: c.Query("categoryId"),
		Starred:    c.QueryBool("starred", false),
		Overdue:    c.QueryBool("overdue", false),
		Query:      c.Query("q"),
	}
	if from := c.Query("dueFrom"); from != "" {
		t, err := ParseDateTime(from)
		if err != nil {
			return m.writeError(c, err)
		}
		req.DueFrom = &t
	}
	if to := c.Query("dueTo"); to != "" {
		t, err := ParseDateTime(to)
		if err != nil {
			return m.writeError(c, err)
		}
		req.DueTo = &t
	}
	return m.respondWithTasks(c, &req)
}

// tasksByStatus handles GET /api/v1/tasks/status/:status.
func (m *APIModule) tasksByStatus(c *fiber.Ctx) error {
	return m.respondWithTasks(c, &task.ListTasksRequest{Status: c.Params("status")})
}

// tasksByPriority handles GET /api/v1/tasks/priority/:priority.
func (m *APIModule) tasksByPriority(c *fiber.Ctx) error {
	return m.respondWithTasks(c, &task.ListTasksRequest{Priority: c.Params("priority")})
}

// starredTasks handles GET /api/v1/tasks/starred.
func (m *APIModule) starredTasks(c *fiber.Ctx) error {
	return m.respondWithTasks(c, &task.ListTasksRequest{Starred: true})
}

// overdueTasks handles GET /api/v1/tasks/overdue.
func (m *APIModule) overdueTasks(c *fiber.Ctx) error {
	return m.respondWithTasks(c, &task.ListTasksRequest{Overdue: true})
}

// searchTasks handles GET /api/v1/tasks/search?q=. An empty query lists all tasks.
func (m *APIModule) searchTasks(c *fiber.Ctx) error {
	return m.respondWithTasks(c, &task.ListTasksRequest{Query: c.Query("q")})
}

func (m *APIModule) respondWithTasks(c *fiber.Ctx, req *task.ListTasksRequest) error {
	ctx, cancel := m.requestContext(c)
	defer cancel()

	resp, err := m.tasks.ListTasks(ctx, req)
	if err != nil {
		return m.writeError(c, err)
	}
	return c.JSON(toListTasksResponse(resp.Tasks))
}

// countTasks handles GET /api/v1/tasks/count?status=.
func (m *APIModule) countTasks(c *fiber.Ctx) error {
	ctx, cancel := m.requestContext(c)
	defer cancel()

	status := c.Query("status")
	count, err := m.tasks.CountTasks(ctx, status)
	if err != nil {
		return m.writeError(c, err)
	}
	return c.JSON(CountResponse{Status: status, Count: count})
}

// transition handles POST /api/v1/tasks/:id/{complete,start,cancel,star}.
func (m *APIModule) transition(action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := m.requestContext(c)
		defer cancel()

		view, err := m.tasks.TransitionTask(ctx, c.Params("id"), action)
		if err != nil {
			return m.writeError(c, err)
		}
		return c.JSON(toTaskResponse(view))
	}
}

// setPriority handles PUT /api/v1/tasks/:id/priority.
func (m *APIModule) setPriority(c *fiber.Ctx) error {
	var req PriorityRequest
	if err := c.BodyParser(&req); err != nil {
		return m.badRequest(c, err)
	}

	ctx, cancel := m.requestContext(c)
	defer cancel()

	view, err := m.tasks.SetPriority(ctx, c.Params("id"), req.Priority)
	if err != nil {
		return m.writeError(c, err)
	}
	return c.JSON(toTaskResponse(view))
}

// setDueDate handles PUT /api/v1/tasks/:id/due-date.
func (m *APIModule) setDueDate(c *fiber.Ctx) error {
	var req DueDateRequest
	if err := c.BodyParser(&req); err != nil {
		return m.badRequest(c, err)
	}

	ctx, cancel := m.requestContext(c)
	defer cancel()

	view, err := m.tasks.SetDueDate(ctx, c.Params("id"), req.DueDate.timePtr())
	if err != nil {
		return m.writeError(c, err)
	}
	return c.JSON(toTaskResponse(view))
}

// assignCategory handles PUT /api/v1/tasks/:id/category/:categoryId.
func (m *APIModule) assignCategory(c *fiber.Ctx) error {
	ctx, cancel := m.requestContext(c)
	defer cancel()

	view, err := m.tasks.AssignCategory(ctx, c.Params("id"), c.Params("categoryId"))
	if err != nil {
		return m.writeError(c, err)
	}
	return c.JSON(toTaskResponse(view))
}

// unassignCategory handles DELETE /api/v1/tasks/:id/category.
func (m *APIModule) unassignCategory(c *fiber.Ctx) error {
	ctx, cancel := m.requestContext(c)
	defer cancel()

	view, err := m.tasks.UnassignCategory(ctx, c.Params("id"))
	if err != nil {
		return m.writeError(c, err)
	}
	return c.JSON(toTaskResponse(view))
}
