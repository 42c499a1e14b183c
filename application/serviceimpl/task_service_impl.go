package serviceimpl

import (
	"context"

	"tasktrack/domain/models"
	"tasktrack/domain/repositories"
	"tasktrack/domain/services"
	"tasktrack/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo  repositories.TaskRepository
	labelRepo repositories.LabelRepository
}

// NewTaskService wires the task service. The label repository is only
// read from, never mutated: labels are owned by the label service.
func NewTaskService(taskRepo repositories.TaskRepository, labelRepo repositories.LabelRepository) services.TaskService {
	return &TaskServiceImpl{
		taskRepo:  taskRepo,
		labelRepo: labelRepo,
	}
}

func (s *TaskServiceImpl) List(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return nil, err
	}
	return tasks, nil
}

func (s *TaskServiceImpl) ListByID(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByID(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks by id", "error", err)
		return nil, err
	}
	return tasks, nil
}

func (s *TaskServiceImpl) Get(ctx context.Context, id int64) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Task not found", "task_id", id, "error", err)
		return nil, err
	}
	return task, nil
}

// ListByLabel resolves the label before touching the tasks table: a filter
// request for a label that does not exist is an error, not an empty list.
func (s *TaskServiceImpl) ListByLabel(ctx context.Context, labelID int64) (*models.Label, []models.Task, error) {
	label, err := s.labelRepo.GetByID(ctx, labelID)
	if err != nil {
		logger.WarnContext(ctx, "Label not found for task filter", "label_id", labelID, "error", err)
		return nil, nil, err
	}

	tasks, err := s.taskRepo.ListByLabel(ctx, label.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks by label", "label_id", labelID, "error", err)
		return nil, nil, err
	}

	return label, tasks, nil
}

func (s *TaskServiceImpl) Create(ctx context.Context, name string) (*models.Task, error) {
	task, err := s.taskRepo.Insert(ctx, name)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "name", task.Name)
	return task, nil
}

func (s *TaskServiceImpl) Update(ctx context.Context, id int64, name, description string, labelID *int64) error {
	if err := s.taskRepo.Update(ctx, id, name, description, labelID); err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", id, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", id)
	return nil
}

func (s *TaskServiceImpl) TouchToToday(ctx context.Context, id int64) error {
	if err := s.taskRepo.TouchToToday(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to touch task", "task_id", id, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task touched to today", "task_id", id)
	return nil
}

func (s *TaskServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", id, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", id)
	return nil
}
