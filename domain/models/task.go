package models

// TimeLayout is the storage format of Task.UpdatedAt. Local time, second
// precision; lexicographic order equals chronological order.
const TimeLayout = "2006-01-02 15:04:05"

// Task is a trackable to-do item. UpdatedAt means "last worked on", not a
// modification audit stamp: it only moves on creation and on the explicit
// mark-done-today action. LabelID is a weak reference to a Label, nil when
// the task carries no label.
type Task struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	UpdatedAt   string `db:"updated_at"`
	LabelID     *int64 `db:"label_id"`
}

func (Task) TableName() string {
	return "tasks"
}
