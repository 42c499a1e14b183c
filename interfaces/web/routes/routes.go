package routes

import (
	"github.com/gofiber/fiber/v2"

	"tasktrack/interfaces/web/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers) {
	// Label routes first: "/label" must win over the "/:id" wildcard.
	SetupLabelRoutes(app, h)
	SetupTaskRoutes(app, h)
}
