package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"tasktrack/domain/models"
	"tasktrack/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *sqlx.DB
}

func NewTaskRepository(db *sqlx.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) List(ctx context.Context) ([]models.Task, error) {
	tasks := []models.Task{}
	err := r.db.SelectContext(ctx, &tasks,
		`SELECT id, name, description, updated_at, label_id
		 FROM tasks ORDER BY updated_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepositoryImpl) ListByID(ctx context.Context) ([]models.Task, error) {
	tasks := []models.Task{}
	err := r.db.SelectContext(ctx, &tasks,
		`SELECT id, name, description, updated_at, label_id
		 FROM tasks ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing tasks by id: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	var task models.Task
	err := r.db.GetContext(ctx, &task,
		`SELECT id, name, description, updated_at, label_id
		 FROM tasks WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting task %d: %w", id, err)
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) ListByLabel(ctx context.Context, labelID int64) ([]models.Task, error) {
	tasks := []models.Task{}
	err := r.db.SelectContext(ctx, &tasks,
		`SELECT id, name, description, updated_at, label_id
		 FROM tasks WHERE label_id = ? ORDER BY name ASC`, labelID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks for label %d: %w", labelID, err)
	}
	return tasks, nil
}

func (r *TaskRepositoryImpl) Insert(ctx context.Context, name string) (*models.Task, error) {
	now := time.Now().Format(models.TimeLayout)

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (name, description, updated_at, label_id)
		 VALUES (?, '', ?, NULL)`, name, now)
	if err != nil {
		return nil, fmt.Errorf("inserting task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading inserted task id: %w", err)
	}

	return &models.Task{
		ID:          id,
		Name:        name,
		Description: "",
		UpdatedAt:   now,
	}, nil
}

// Update deliberately leaves updated_at alone: the column orders the index
// page by "last worked on" and editing metadata is not working on the task.
func (r *TaskRepositoryImpl) Update(ctx context.Context, id int64, name, description string, labelID *int64) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET name = ?, description = ?, label_id = ? WHERE id = ?`,
		name, description, labelID, id)
	if err != nil {
		return fmt.Errorf("updating task %d: %w", id, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating task %d: %w", id, err)
	}
	if n == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *TaskRepositoryImpl) TouchToToday(ctx context.Context, id int64) error {
	now := time.Now().Format(models.TimeLayout)

	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET updated_at = ? WHERE id = ?`, now, id)
	if err != nil {
		return fmt.Errorf("touching task %d: %w", id, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("touching task %d: %w", id, err)
	}
	if n == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task %d: %w", id, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting task %d: %w", id, err)
	}
	if n == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
