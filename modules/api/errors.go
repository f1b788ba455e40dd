package api

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/todo-tracker/domain/apperr"
)

// statusFor maps an error kind to its HTTP status.
func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindInvalidArgument, apperr.KindValidation:
		return fiber.StatusBadRequest
	case apperr.KindNotFound:
		return fiber.StatusNotFound
	case apperr.KindDuplicate:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// writeError renders err as an ErrorResponse.
func (m *APIModule) writeError(c *fiber.Ctx, err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		details := appErr.Reasons
		if details == nil {
			details = []string{}
		}
		status := statusFor(appErr.Kind)
		switch status {
		case fiber.StatusNotFound, fiber.StatusConflict:
			m.logger.Warn("Request rejected", "method", c.Method(), "path", c.Path(), "kind", appErr.Kind, "message", appErr.Message)
		case fiber.StatusBadRequest:
			m.logger.Info("Invalid request", "method", c.Method(), "path", c.Path(), "kind", appErr.Kind, "message", appErr.Message)
		default:
			m.logger.Error("Request failed", "method", c.Method(), "path", c.Path(), "message", appErr.Message)
		}
		return c.Status(status).JSON(ErrorResponse{
			Error:   string(appErr.Kind),
			Message: appErr.Message,
			Details: details,
		})
	}

	if errors.Is(err, context.DeadlineExceeded) {
		m.logger.Error("Request timed out", "method", c.Method(), "path", c.Path())
		return c.Status(fiber.StatusGatewayTimeout).JSON(ErrorResponse{
			Error:   "timeout",
			Message: "Request timed out",
			Details: []string{},
		})
	}

	m.logger.Error("Request failed", "method", c.Method(), "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   string(apperr.KindInternal),
		Message: err.Error(),
		Details: []string{},
	})
}

// badRequest reports an unparseable request body.
func (m *APIModule) badRequest(c *fiber.Ctx, err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return m.writeError(c, appErr)
	}
	return m.writeError(c, apperr.InvalidArgument("Invalid request body: %v", err))
}

// errorHandler handles errors returned by handlers and Fiber itself.
func (m *APIModule) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(ErrorResponse{
		Error:   "server_error",
		Message: message,
		Details: []string{},
	})
}
