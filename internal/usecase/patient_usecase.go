package usecase

import (
	"context"
	"strings"

	"pediatric-gastro-api/internal/converter"
	"pediatric-gastro-api/internal/delivery/dto"
	"pediatric-gastro-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type PatientUsecase interface {
	GetPatient(ctx context.Context, id string) (*dto.PatientResponse, error)
	GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error)
	SearchPatients(ctx context.Context, term string) (*dto.PatientListResponse, error)
}

type patientUsecase struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(log *logrus.Logger, patientRepo repository.PatientRepository) PatientUsecase {
	return &patientUsecase{
		log:         log,
		patientRepo: patientRepo,
	}
}

func (u *patientUsecase) GetPatient(ctx context.Context, id string) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

// SearchPatients backs the certificate form patient picker. A blank term
// returns the whole directory.
func (u *patientUsecase) SearchPatients(ctx context.Context, term string) (*dto.PatientListResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return u.GetAllPatients(ctx)
	}

	patients, err := u.patientRepo.SearchByName(ctx, term)
	if err != nil {
		u.log.Warnf("Failed to search patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}
