package routes

import (
	"github.com/gofiber/fiber/v2"

	"tasktrack/interfaces/web/handlers"
)

func SetupLabelRoutes(app *fiber.App, h *handlers.Handlers) {
	labels := app.Group("/label")
	labels.Get("/", h.LabelHandler.Index)
	labels.Post("/", h.LabelHandler.Create)
	labels.Get("/:id", h.TaskHandler.TasksByLabel)
	labels.Post("/:id", h.LabelHandler.Update)
	labels.Get("/:id/edit", h.LabelHandler.Edit)
	labels.Get("/:id/confirm", h.LabelHandler.Confirm)
	labels.Delete("/:id", h.LabelHandler.Delete)
}
