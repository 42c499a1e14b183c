package services

import (
	"context"

	"tasktrack/domain/models"
)

type TaskService interface {
	// List returns all tasks, oldest-worked-on first.
	List(ctx context.Context) ([]models.Task, error)

	// ListByID returns all tasks in insertion order.
	ListByID(ctx context.Context) ([]models.Task, error)

	// Get fetches a single task.
	Get(ctx context.Context, id int64) (*models.Task, error)

	// ListByLabel resolves the label first, then returns it together with
	// its tasks ordered by name. A nonexistent label is an error, not an
	// empty list.
	ListByLabel(ctx context.Context, labelID int64) (*models.Label, []models.Task, error)

	// Create inserts a new task with defaults for everything but the name.
	Create(ctx context.Context, name string) (*models.Task, error)

	// Update edits name, description and label reference without moving
	// updated_at.
	Update(ctx context.Context, id int64, name, description string, labelID *int64) error

	// TouchToToday records that the task was worked on today.
	TouchToToday(ctx context.Context, id int64) error

	// Delete removes a task.
	Delete(ctx context.Context, id int64) error
}
