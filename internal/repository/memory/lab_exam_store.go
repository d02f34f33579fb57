package memory

import (
	"context"
	"sync"

	"pediatric-gastro-api/internal/domain/entity"
	domainRepo "pediatric-gastro-api/internal/domain/repository"

	"github.com/google/uuid"
)

type LabExamStore struct {
	mu    sync.Mutex
	exams []entity.LabExamFile
}

func NewLabExamStore() *LabExamStore {
	return &LabExamStore{}
}

var _ domainRepo.LabExamRepository = (*LabExamStore)(nil)

func (s *LabExamStore) Create(ctx context.Context, exam *entity.LabExamFile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exams = append(s.exams, *exam)
	return nil
}

func (s *LabExamStore) FindAll(ctx context.Context) ([]entity.LabExamFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.LabExamFile, len(s.exams))
	copy(out, s.exams)
	return out, nil
}

func (s *LabExamStore) FindByEvaluationID(ctx context.Context, evaluationID uuid.UUID) ([]entity.LabExamFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.LabExamFile
	for i := range s.exams {
		if s.exams[i].EvaluationID == evaluationID {
			out = append(out, s.exams[i])
		}
	}
	return out, nil
}

func (s *LabExamStore) NextPosition(ctx context.Context, evaluationID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for i := range s.exams {
		if s.exams[i].EvaluationID == evaluationID {
			count++
		}
	}
	return count, nil
}
