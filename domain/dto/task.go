package dto

import (
	"tasktrack/domain/models"
	"tasktrack/pkg/flash"
)

// === Forms ===

type TaskCreateForm struct {
	Name string `form:"name" validate:"required"`
}

// TaskUpdateForm still posts updated_at (the detail page carries it as a
// hidden field) but the value is ignored: editing a task never moves its
// last-worked-on date.
type TaskUpdateForm struct {
	Name        string `form:"name" validate:"required"`
	Description string `form:"description"`
	UpdatedAt   string `form:"updated_at"`
	LabelID     string `form:"label_id"`
}

// === Page data ===

// TaskIndexData is the bag for the task index page.
type TaskIndexData struct {
	Msg    *flash.Message
	Tasks  []models.Task
	Labels []models.Label
}

// LabelByID resolves a task's label reference against the page's label
// list, for display next to the task.
func (d TaskIndexData) LabelByID(id *int64) *models.Label {
	if id == nil {
		return nil
	}
	for i := range d.Labels {
		if d.Labels[i].ID == *id {
			return &d.Labels[i]
		}
	}
	return nil
}

// TaskDetailData is the bag for the task detail/edit and delete
// confirmation pages.
type TaskDetailData struct {
	Msg    *flash.Message
	Task   *models.Task
	Labels []models.Label
}

// IsSelected reports whether the task currently carries labelID, for
// preselecting the label dropdown.
func (d TaskDetailData) IsSelected(labelID int64) bool {
	return d.Task != nil && d.Task.LabelID != nil && *d.Task.LabelID == labelID
}

// TasksByLabelData is the bag for the label-filtered task listing.
type TasksByLabelData struct {
	Tasks []models.Task
	Label *models.Label
}
