package repository

import (
	"context"

	"pediatric-gastro-api/internal/domain/entity"

	"github.com/google/uuid"
)

type EvaluationRepository interface {
	// Create persists the evaluation together with its lab exam files.
	Create(ctx context.Context, evaluation *entity.Evaluation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Evaluation, error)
	FindAll(ctx context.Context) ([]entity.Evaluation, error)
}
