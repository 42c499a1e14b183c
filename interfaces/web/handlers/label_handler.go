package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"tasktrack/domain/dto"
	"tasktrack/domain/repositories"
	"tasktrack/domain/services"
	"tasktrack/pkg/flash"
	"tasktrack/pkg/logger"
	"tasktrack/pkg/utils"
)

type LabelHandler struct {
	labelService services.LabelService
}

func NewLabelHandler(labelService services.LabelService) *LabelHandler {
	return &LabelHandler{
		labelService: labelService,
	}
}

// validateLabelForm runs the label business rules in order and returns
// the single warning to surface, or "" when the form is valid. Name is
// checked before color; only the first failure is ever reported.
func validateLabelForm(form *dto.LabelForm) string {
	err := utils.ValidateStruct(form)
	if err == nil {
		return ""
	}

	verrs := utils.GetValidationErrors(err)
	if _, ok := verrs["Name"]; ok {
		return "Please input label name."
	}
	if _, ok := verrs["Color"]; ok {
		return "Please input label color with hex format."
	}
	return "Please input label name."
}

// Index renders the label list with any pending flash message.
func (h *LabelHandler) Index(c *fiber.Ctx) error {
	ctx := c.UserContext()
	msg := flash.Pop(c)

	labels, err := h.labelService.List(ctx)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("labellist", dto.LabelIndexData{
		Msg:    msg,
		Labels: labels,
	})
}

// Create adds a new label from the label list form.
func (h *LabelHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if !hasFormFields(c, "name", "color") {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "label form fields are missing")
	}

	var form dto.LabelForm
	if err := c.BodyParser(&form); err != nil {
		logger.WarnContext(ctx, "Malformed label form", "error", err)
		return fiber.NewError(fiber.StatusUnprocessableEntity, "malformed form body")
	}

	if warning := validateLabelForm(&form); warning != "" {
		flash.Set(c, flash.Warning(warning))
		return c.Redirect("/label", fiber.StatusSeeOther)
	}

	if _, err := h.labelService.Create(ctx, form.Name, form.Color); err != nil {
		flash.Set(c, flash.Warning("The server failed."))
		return c.Redirect("/label", fiber.StatusSeeOther)
	}

	flash.Set(c, flash.Success("New label added."))
	return c.Redirect("/label", fiber.StatusSeeOther)
}

// Edit renders the label edit form.
func (h *LabelHandler) Edit(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	msg := flash.Pop(c)

	label, err := h.labelService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return fiber.ErrInternalServerError
	}

	return c.Render("labeledit", dto.LabelEditData{
		Msg:   msg,
		Label: label,
	})
}

// Update edits a label's name and color from the edit form.
func (h *LabelHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	target := fmt.Sprintf("/label/%d/edit", id)

	if !hasFormFields(c, "name", "color") {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "label form fields are missing")
	}

	var form dto.LabelForm
	if err := c.BodyParser(&form); err != nil {
		logger.WarnContext(ctx, "Malformed label form", "label_id", id, "error", err)
		return fiber.NewError(fiber.StatusUnprocessableEntity, "malformed form body")
	}

	if warning := validateLabelForm(&form); warning != "" {
		flash.Set(c, flash.Warning(warning))
		return c.Redirect(target, fiber.StatusSeeOther)
	}

	if err := h.labelService.Update(ctx, id, form.Name, form.Color); err != nil {
		flash.Set(c, flash.Warning("The server failed."))
		return c.Redirect(target, fiber.StatusSeeOther)
	}

	flash.Set(c, flash.Success("Label is updated."))
	return c.Redirect(target, fiber.StatusSeeOther)
}

// Confirm renders the label delete confirmation page.
func (h *LabelHandler) Confirm(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	label, err := h.labelService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return fiber.ErrInternalServerError
	}

	return c.Render("labelconfirm", dto.LabelConfirmData{
		Label: label,
	})
}

// Delete removes a label. Tasks referencing it keep existing and simply
// lose the label. A store failure re-renders the edit page with an inline
// warning, mirroring the task delete channel.
func (h *LabelHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.labelService.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fiber.ErrNotFound
		}

		label, getErr := h.labelService.Get(ctx, id)
		if getErr != nil {
			return fiber.ErrInternalServerError
		}

		msg := flash.Warning("Couldn't delete label.")
		return c.Render("labeledit", dto.LabelEditData{
			Msg:   &msg,
			Label: label,
		})
	}

	flash.Set(c, flash.Success("Your label was deleted."))
	return c.Redirect("/label", fiber.StatusSeeOther)
}
