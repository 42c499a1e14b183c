package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"tasktrack/domain/dto"
	"tasktrack/domain/repositories"
	"tasktrack/domain/services"
	"tasktrack/pkg/flash"
	"tasktrack/pkg/logger"
	"tasktrack/pkg/utils"
)

type TaskHandler struct {
	taskService  services.TaskService
	labelService services.LabelService
}

func NewTaskHandler(taskService services.TaskService, labelService services.LabelService) *TaskHandler {
	return &TaskHandler{
		taskService:  taskService,
		labelService: labelService,
	}
}

// Index renders the task list: all tasks oldest-worked-on first, all
// labels, and any pending flash message.
func (h *TaskHandler) Index(c *fiber.Ctx) error {
	ctx := c.UserContext()
	msg := flash.Pop(c)

	tasks, err := h.taskService.List(ctx)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	labels, err := h.labelService.List(ctx)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("index", dto.TaskIndexData{
		Msg:    msg,
		Tasks:  tasks,
		Labels: labels,
	})
}

// Create adds a new task from the index page form.
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if !hasFormFields(c, "name") {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "task name field is missing")
	}

	var form dto.TaskCreateForm
	if err := c.BodyParser(&form); err != nil {
		logger.WarnContext(ctx, "Malformed task form", "error", err)
		return fiber.NewError(fiber.StatusUnprocessableEntity, "malformed form body")
	}

	if err := utils.ValidateStruct(&form); err != nil {
		flash.Set(c, flash.Warning("Please input task name."))
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	if _, err := h.taskService.Create(ctx, form.Name); err != nil {
		flash.Set(c, flash.Warning("The server failed."))
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	flash.Set(c, flash.Success("New task added."))
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Detail renders the task edit form.
func (h *TaskHandler) Detail(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	msg := flash.Pop(c)

	task, err := h.taskService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return fiber.ErrInternalServerError
	}

	labels, err := h.labelService.List(ctx)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("detail", dto.TaskDetailData{
		Msg:    msg,
		Task:   task,
		Labels: labels,
	})
}

// Update edits a task's name, description and label from the detail form.
// The form posts updated_at as a hidden field but the value is ignored;
// only the explicit date action moves that column.
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	target := fmt.Sprintf("/%d", id)

	if !hasFormFields(c, "name", "description", "updated_at") {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "task form fields are missing")
	}

	var form dto.TaskUpdateForm
	if err := c.BodyParser(&form); err != nil {
		logger.WarnContext(ctx, "Malformed task form", "task_id", id, "error", err)
		return fiber.NewError(fiber.StatusUnprocessableEntity, "malformed form body")
	}

	// Empty label_id clears the reference; anything else must be numeric.
	var labelID *int64
	if form.LabelID != "" {
		parsed, err := strconv.ParseInt(form.LabelID, 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "label_id must be an integer")
		}
		labelID = &parsed
	}

	if err := utils.ValidateStruct(&form); err != nil {
		flash.Set(c, flash.Warning("Please input task name."))
		return c.Redirect(target, fiber.StatusSeeOther)
	}

	if err := h.taskService.Update(ctx, id, form.Name, form.Description, labelID); err != nil {
		flash.Set(c, flash.Warning("The server failed."))
		return c.Redirect(target, fiber.StatusSeeOther)
	}

	flash.Set(c, flash.Success("Your task was updated."))
	return c.Redirect(target, fiber.StatusSeeOther)
}

// TouchDate marks a task as worked on today.
func (h *TaskHandler) TouchDate(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.taskService.TouchToToday(ctx, id); err != nil {
		flash.Set(c, flash.Warning("The server failed."))
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	flash.Set(c, flash.Success("\"Last updated\" date is updated to today."))
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Confirm renders the task delete confirmation page.
func (h *TaskHandler) Confirm(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return fiber.ErrInternalServerError
	}

	labels, err := h.labelService.List(ctx)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("confirm", dto.TaskDetailData{
		Task:   task,
		Labels: labels,
	})
}

// Delete removes a task. A store failure re-renders the detail page with
// an inline warning instead of redirecting; this failure channel is
// deliberately different from the create/update flash pattern.
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.taskService.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fiber.ErrNotFound
		}

		task, getErr := h.taskService.Get(ctx, id)
		if getErr != nil {
			return fiber.ErrInternalServerError
		}
		labels, _ := h.labelService.List(ctx)

		msg := flash.Warning("Couldn't delete task.")
		return c.Render("detail", dto.TaskDetailData{
			Msg:    &msg,
			Task:   task,
			Labels: labels,
		})
	}

	flash.Set(c, flash.Success("Your task was deleted."))
	return c.Redirect("/", fiber.StatusSeeOther)
}

// TasksByLabel renders the tasks carrying one label, ordered by name.
// Filtering by a label that does not exist is a 404, not an empty page.
func (h *TaskHandler) TasksByLabel(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	label, tasks, err := h.taskService.ListByLabel(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return fiber.ErrInternalServerError
	}

	return c.Render("tasksbylabel", dto.TasksByLabelData{
		Tasks: tasks,
		Label: label,
	})
}
