package middleware

import (
	"github.com/gofiber/fiber/v2"

	"tasktrack/pkg/logger"
)

// ErrorHandler is the app-level fiber error handler. The app serves HTML
// pages, so failures that escape the handlers come back as a plain-text
// status body rather than a rendered page.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		logger.ErrorContext(c.UserContext(), "Request failed",
			"method", c.Method(),
			"path", c.Path(),
			"status", code,
			"error", err,
		)

		return c.Status(code).SendString(message)
	}
}
