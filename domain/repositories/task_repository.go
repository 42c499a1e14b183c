package repositories

import (
	"context"

	"tasktrack/domain/models"
)

type TaskRepository interface {
	// List returns every task ordered by updated_at ascending, so the
	// tasks untouched for the longest time come first.
	List(ctx context.Context) ([]models.Task, error)
	// ListByID returns every task in insertion (id) order.
	ListByID(ctx context.Context) ([]models.Task, error)
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	// ListByLabel returns the tasks carrying labelID, ordered by name.
	// Label existence is the caller's concern.
	ListByLabel(ctx context.Context, labelID int64) ([]models.Task, error)
	// Insert creates a task with an empty description, the current local
	// time as updated_at, and no label.
	Insert(ctx context.Context, name string) (*models.Task, error)
	// Update rewrites name, description and label reference. It never
	// touches updated_at: editing metadata is not doing the task.
	Update(ctx context.Context, id int64, name, description string, labelID *int64) error
	// TouchToToday sets updated_at to the current local time and nothing
	// else.
	TouchToToday(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}
