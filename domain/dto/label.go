package dto

import (
	"tasktrack/domain/models"
	"tasktrack/pkg/flash"
)

// === Forms ===

// LabelForm serves both label creation and update.
type LabelForm struct {
	Name  string `form:"name" validate:"required"`
	Color string `form:"color" validate:"required,colorhex"`
}

// === Page data ===

// LabelIndexData is the bag for the label index page.
type LabelIndexData struct {
	Msg    *flash.Message
	Labels []models.Label
}

// LabelEditData is the bag for the label edit form.
type LabelEditData struct {
	Msg   *flash.Message
	Label *models.Label
}

// LabelConfirmData is the bag for the label delete confirmation page.
type LabelConfirmData struct {
	Label *models.Label
}
