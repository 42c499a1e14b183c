package repositories

import (
	"context"

	"tasktrack/domain/models"
)

type LabelRepository interface {
	// List returns every label ordered by name, id as tiebreak.
	List(ctx context.Context) ([]models.Label, error)
	GetByID(ctx context.Context, id int64) (*models.Label, error)
	// Insert stores a label and assigns a fresh id. Name and color format
	// validation is the caller's responsibility.
	Insert(ctx context.Context, name, colorHex string) (*models.Label, error)
	Update(ctx context.Context, id int64, name, colorHex string) error
	// Delete removes the label. Tasks still referencing it have their
	// label reference cleared by the store.
	Delete(ctx context.Context, id int64) error
}
