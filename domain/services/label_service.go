package services

import (
	"context"

	"tasktrack/domain/models"
)

type LabelService interface {
	// List returns all labels ordered by name.
	List(ctx context.Context) ([]models.Label, error)

	// Get fetches a single label.
	Get(ctx context.Context, id int64) (*models.Label, error)

	// Create inserts a new label.
	Create(ctx context.Context, name, colorHex string) (*models.Label, error)

	// Update edits name and color in place.
	Update(ctx context.Context, id int64, name, colorHex string) error

	// Delete removes a label; referencing tasks lose their label.
	Delete(ctx context.Context, id int64) error
}
