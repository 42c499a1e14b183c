package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tasktrack/domain/models"
	"tasktrack/domain/repositories"
)

type LabelRepositoryImpl struct {
	db *sqlx.DB
}

func NewLabelRepository(db *sqlx.DB) repositories.LabelRepository {
	return &LabelRepositoryImpl{db: db}
}

func (r *LabelRepositoryImpl) List(ctx context.Context) ([]models.Label, error) {
	labels := []models.Label{}
	err := r.db.SelectContext(ctx, &labels,
		`SELECT id, name, color_hex FROM labels ORDER BY name ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing labels: %w", err)
	}
	return labels, nil
}

func (r *LabelRepositoryImpl) GetByID(ctx context.Context, id int64) (*models.Label, error) {
	var label models.Label
	err := r.db.GetContext(ctx, &label,
		`SELECT id, name, color_hex FROM labels WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting label %d: %w", id, err)
	}
	return &label, nil
}

func (r *LabelRepositoryImpl) Insert(ctx context.Context, name, colorHex string) (*models.Label, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO labels (name, color_hex) VALUES (?, ?)`, name, colorHex)
	if err != nil {
		return nil, fmt.Errorf("inserting label: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading inserted label id: %w", err)
	}

	return &models.Label{
		ID:       id,
		Name:     name,
		ColorHex: colorHex,
	}, nil
}

func (r *LabelRepositoryImpl) Update(ctx context.Context, id int64, name, colorHex string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE labels SET name = ?, color_hex = ? WHERE id = ?`,
		name, colorHex, id)
	if err != nil {
		return fmt.Errorf("updating label %d: %w", id, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating label %d: %w", id, err)
	}
	if n == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// Delete removes the label row. The tasks table declares
// ON DELETE SET NULL on label_id, so referencing tasks drop the reference
// in the same statement.
func (r *LabelRepositoryImpl) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM labels WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting label %d: %w", id, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting label %d: %w", id, err)
	}
	if n == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
