package repository

import (
	"context"

	"pediatric-gastro-api/internal/domain/entity"

	"github.com/google/uuid"
)

type LabExamRepository interface {
	Create(ctx context.Context, exam *entity.LabExamFile) error
	// FindAll returns every uploaded exam across evaluations, oldest first.
	FindAll(ctx context.Context) ([]entity.LabExamFile, error)
	// FindByEvaluationID returns the exams of one evaluation in upload order.
	FindByEvaluationID(ctx context.Context, evaluationID uuid.UUID) ([]entity.LabExamFile, error)
	// NextPosition returns the position for the next upload of an evaluation.
	NextPosition(ctx context.Context, evaluationID uuid.UUID) (int, error)
}
