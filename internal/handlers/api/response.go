// Package api is the JSON layer under /api/v1. Every response uses the
// {status, data|error} envelope.
package api

import "github.com/gofiber/fiber/v3"

// jsonSuccess wraps data in the success envelope.
func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"data":   data,
	})
}

// jsonError wraps a message in the error envelope with the given status.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}
