package memory

import (
	"context"
	"strings"
	"sync"

	"pediatric-gastro-api/internal/domain/entity"
	domainRepo "pediatric-gastro-api/internal/domain/repository"
)

type PatientStore struct {
	mu       sync.Mutex
	patients []entity.Patient
}

func NewPatientStore() *PatientStore {
	return &PatientStore{}
}

var _ domainRepo.PatientRepository = (*PatientStore)(nil)

func (s *PatientStore) Create(ctx context.Context, patient *entity.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patients = append(s.patients, *patient)
	return nil
}

func (s *PatientStore) FindByID(ctx context.Context, id string) (*entity.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.patients {
		if s.patients[i].ID == id {
			patient := s.patients[i]
			return &patient, nil
		}
	}
	return nil, nil
}

func (s *PatientStore) FindByIdentificationNumber(ctx context.Context, identificationNumber string) (*entity.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.patients {
		if s.patients[i].IdentificationNumber == identificationNumber {
			patient := s.patients[i]
			return &patient, nil
		}
	}
	return nil, nil
}

func (s *PatientStore) FindAll(ctx context.Context) ([]entity.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Patient, len(s.patients))
	copy(out, s.patients)
	return out, nil
}

func (s *PatientStore) SearchByName(ctx context.Context, term string) ([]entity.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	term = strings.ToLower(term)
	var out []entity.Patient
	for i := range s.patients {
		if strings.Contains(strings.ToLower(s.patients[i].FullName), term) ||
			strings.Contains(strings.ToLower(s.patients[i].LastName), term) {
			out = append(out, s.patients[i])
		}
	}
	return out, nil
}

func (s *PatientStore) Update(ctx context.Context, patient *entity.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.patients {
		if s.patients[i].ID == patient.ID {
			s.patients[i] = *patient
			return nil
		}
	}
	s.patients = append(s.patients, *patient)
	return nil
}
