package repository

import (
	"context"
	"errors"

	"pediatric-gastro-api/internal/domain/entity"
	domainRepo "pediatric-gastro-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type evaluationRepository struct {
	db *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) domainRepo.EvaluationRepository {
	return &evaluationRepository{db: db}
}

func (r *evaluationRepository) Create(ctx context.Context, evaluation *entity.Evaluation) error {
	// Lab exam files are created through the association in the same insert.
	return r.db.WithContext(ctx).Create(evaluation).Error
}

func (r *evaluationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Evaluation, error) {
	var evaluation entity.Evaluation
	err := r.db.WithContext(ctx).
		Preload("LabExams", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Where("id = ?", id).
		First(&evaluation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &evaluation, nil
}

func (r *evaluationRepository) FindAll(ctx context.Context) ([]entity.Evaluation, error) {
	var evaluations []entity.Evaluation
	err := r.db.WithContext(ctx).
		Preload("LabExams", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Order("created_at asc").
		Find(&evaluations).Error
	return evaluations, err
}
