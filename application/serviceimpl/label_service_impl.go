package serviceimpl

import (
	"context"

	"tasktrack/domain/models"
	"tasktrack/domain/repositories"
	"tasktrack/domain/services"
	"tasktrack/pkg/logger"
)

type LabelServiceImpl struct {
	labelRepo repositories.LabelRepository
}

func NewLabelService(labelRepo repositories.LabelRepository) services.LabelService {
	return &LabelServiceImpl{
		labelRepo: labelRepo,
	}
}

func (s *LabelServiceImpl) List(ctx context.Context) ([]models.Label, error) {
	labels, err := s.labelRepo.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list labels", "error", err)
		return nil, err
	}
	return labels, nil
}

func (s *LabelServiceImpl) Get(ctx context.Context, id int64) (*models.Label, error) {
	label, err := s.labelRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Label not found", "label_id", id, "error", err)
		return nil, err
	}
	return label, nil
}

func (s *LabelServiceImpl) Create(ctx context.Context, name, colorHex string) (*models.Label, error) {
	label, err := s.labelRepo.Insert(ctx, name, colorHex)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create label", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Label created", "label_id", label.ID, "name", label.Name)
	return label, nil
}

func (s *LabelServiceImpl) Update(ctx context.Context, id int64, name, colorHex string) error {
	if err := s.labelRepo.Update(ctx, id, name, colorHex); err != nil {
		logger.ErrorContext(ctx, "Failed to update label", "label_id", id, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Label updated", "label_id", id)
	return nil
}

func (s *LabelServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.labelRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete label", "label_id", id, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Label deleted", "label_id", id)
	return nil
}
