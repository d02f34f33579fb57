package repository

import (
	"context"

	"pediatric-gastro-api/internal/domain/entity"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindByID(ctx context.Context, id string) (*entity.Patient, error)
	FindByIdentificationNumber(ctx context.Context, identificationNumber string) (*entity.Patient, error)
	FindAll(ctx context.Context) ([]entity.Patient, error)
	// SearchByName matches the term case-insensitively against the full and
	// last names.
	SearchByName(ctx context.Context, term string) ([]entity.Patient, error)
	Update(ctx context.Context, patient *entity.Patient) error
}
