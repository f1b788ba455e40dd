package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/todo-tracker/modules/category"
)

// createCategory handles POST /api/v1/categories.
func (m *APIModule) createCategory(c *fiber.Ctx) error {
	var req CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return m.badRequest(c, err)
	}

	ctx, cancel := m.requestContext(c)
	defer cancel()

	view, err := m.categories.CreateCategory(ctx, &category.CreateCategoryRequest{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		return m.writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toCategoryResponse(view))
}

// listCategories handles GET /api/v1/categories.
func (m *APIModule) listCategories(c *fiber.Ctx) error {
	ctx, cancel := m.requestContext(c)
	defer cancel()

	resp, err := m.categories.ListCategories(ctx)
	if err != nil {
		return m.writeError(c, err)
	}

	categories := make([]CategoryResponse, 0, len(resp.Categories))
	for i := range resp.Categories {
		categories = append(categories, toCategoryResponse(&resp.Categories[i]))
	}
	return c.JSON(ListCategoriesResponse{Categories: categories, Total: len(categories)})
}

// getCategory handles GET /api/v1/categories/:id.
func (m *APIModule) getCategory(c *fiber.Ctx) error {
	ctx, cancel := m.requestContext(c)
	defer cancel()

	view, err := m.categories.GetCategory(ctx, c.Params("id"))
	if err != nil {
		return m.writeError(c, err)
	}
	return c.JSON(toCategoryResponse(view))
}

// getCategoryByName handles GET /api/v1/categories/name/:name.
func (m *APIModule) getCategoryByName(c *fiber.Ctx) error {
	ctx, cancel := m.requestContext(c)
	defer cancel()

	view, err := m.categories.GetCategoryByName(ctx, c.Params("name"))
	if err != nil {
		return m.writeError(c, err)
	}
	return c.JSON(toCategoryResponse(view))
}

// categoryExists handles GET /api/v1/categories/exists?name=.
func (m *APIModule) categoryExists(c *fiber.Ctx) error {
	ctx, cancel := m.requestContext(c)
	defer cancel()

	name := c.Query("name")
	exists, err := m.categories.CategoryExists(ctx, name)
	if err != nil {
		return m.writeError(c, err)
	}
	return c.JSON(ExistsResponse{Name: name, Exists: exists})
}

// updateCategory handles PUT /api/v1/categories/:id.
func (m *APIModule) updateCategory(c *fiber.Ctx) error {
	var req UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return m.badRequest(c, err)
	}

	ctx, cancel := m.requestContext(c)
	defer cancel()

	view, err := m.categories.UpdateCategory(ctx, &category.UpdateCategoryRequest{
		CategoryID:  c.Params("id"),
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		return m.writeError(c, err)
	}
	return c.JSON(toCategoryResponse(view))
}

// deleteCategory handles DELETE /api/v1/categories/:id.
func (m *APIModule) deleteCategory(c *fiber.Ctx) error {
	ctx, cancel := m.requestContext(c)
	defer cancel()

	if err := m.categories.DeleteCategory(ctx, c.Params("id")); err != nil {
		return m.writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
