package repository

import (
	"context"
	"errors"

	"pediatric-gastro-api/internal/domain/entity"
	domainRepo "pediatric-gastro-api/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) domainRepo.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	return r.db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) FindByID(ctx context.Context, id string) (*entity.Patient, error) {
	var patient entity.Patient
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByIdentificationNumber(ctx context.Context, identificationNumber string) (*entity.Patient, error) {
	var patient entity.Patient
	err := r.db.WithContext(ctx).Where("identification_number = ?", identificationNumber).First(&patient).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := r.db.WithContext(ctx).Order("created_at asc").Find(&patients).Error
	return patients, err
}

func (r *patientRepository) SearchByName(ctx context.Context, term string) ([]entity.Patient, error) {
	var patients []entity.Patient
	pattern := "%" + term + "%"
	err := r.db.WithContext(ctx).
		Where("full_name ILIKE ? OR last_name ILIKE ?", pattern, pattern).
		Order("full_name asc").
		Find(&patients).Error
	return patients, err
}

func (r *patientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	return r.db.WithContext(ctx).Save(patient).Error
}
