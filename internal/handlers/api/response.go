package api

import (
	"github.com/gofiber/fiber/v3"
)

// All view endpoints answer in a uniform envelope so the rendering
// collaborator can switch on a single status field.

// jsonSuccess wraps a derived-view payload in the success envelope.
func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"data":   data,
	})
}

// jsonError writes the error envelope with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}
