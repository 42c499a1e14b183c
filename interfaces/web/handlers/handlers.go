package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"tasktrack/domain/services"
)

// Services contains all the services needed for handlers.
type Services struct {
	TaskService  services.TaskService
	LabelService services.LabelService
}

// Handlers contains all HTTP handlers.
type Handlers struct {
	TaskHandler  *TaskHandler
	LabelHandler *LabelHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies.
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		TaskHandler:  NewTaskHandler(services.TaskService, services.LabelService),
		LabelHandler: NewLabelHandler(services.LabelService),
	}
}

// parseIDParam reads the :id route parameter. A non-numeric id never
// matches a row, so it reports not found rather than bad request.
func parseIDParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.ErrNotFound
	}
	return id, nil
}

// hasFormFields reports whether every key is present in the posted form
// body. A key that is absent entirely (as opposed to present but empty)
// is a structural error, handled as 422 without a flash message.
func hasFormFields(c *fiber.Ctx, keys ...string) bool {
	args := c.Request().PostArgs()
	for _, key := range keys {
		if !args.Has(key) {
			return false
		}
	}
	return true
}
