package repository

import (
	"context"

	"pediatric-gastro-api/internal/domain/entity"
	domainRepo "pediatric-gastro-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type labExamRepository struct {
	db *gorm.DB
}

func NewLabExamRepository(db *gorm.DB) domainRepo.LabExamRepository {
	return &labExamRepository{db: db}
}

func (r *labExamRepository) Create(ctx context.Context, exam *entity.LabExamFile) error {
	return r.db.WithContext(ctx).Create(exam).Error
}

func (r *labExamRepository) FindAll(ctx context.Context) ([]entity.LabExamFile, error) {
	var exams []entity.LabExamFile
	err := r.db.WithContext(ctx).Order("uploaded_at asc, position asc").Find(&exams).Error
	return exams, err
}

func (r *labExamRepository) FindByEvaluationID(ctx context.Context, evaluationID uuid.UUID) ([]entity.LabExamFile, error) {
	var exams []entity.LabExamFile
	err := r.db.WithContext(ctx).
		Where("evaluation_id = ?", evaluationID).
		Order("position asc").
		Find(&exams).Error
	return exams, err
}

func (r *labExamRepository) NextPosition(ctx context.Context, evaluationID uuid.UUID) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.LabExamFile{}).
		Where("evaluation_id = ?", evaluationID).
		Count(&count).Error
	return int(count), err
}
