package routes

import (
	"github.com/gofiber/fiber/v2"

	"tasktrack/interfaces/web/handlers"
)

func SetupTaskRoutes(app *fiber.App, h *handlers.Handlers) {
	app.Get("/", h.TaskHandler.Index)
	app.Post("/", h.TaskHandler.Create)
	app.Get("/:id", h.TaskHandler.Detail)
	app.Post("/:id", h.TaskHandler.Update)
	app.Post("/:id/date", h.TaskHandler.TouchDate)
	app.Get("/:id/confirm", h.TaskHandler.Confirm)
	app.Delete("/:id", h.TaskHandler.Delete)
}
