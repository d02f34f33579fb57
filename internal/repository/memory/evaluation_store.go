package memory

import (
	"context"
	"sync"

	"pediatric-gastro-api/internal/domain/entity"
	domainRepo "pediatric-gastro-api/internal/domain/repository"

	"github.com/google/uuid"
)

type EvaluationStore struct {
	mu          sync.Mutex
	evaluations []entity.Evaluation
}

func NewEvaluationStore() *EvaluationStore {
	return &EvaluationStore{}
}

var _ domainRepo.EvaluationRepository = (*EvaluationStore)(nil)

func (s *EvaluationStore) Create(ctx context.Context, evaluation *entity.Evaluation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *evaluation
	stored.LabExams = make([]entity.LabExamFile, len(evaluation.LabExams))
	copy(stored.LabExams, evaluation.LabExams)
	s.evaluations = append(s.evaluations, stored)
	return nil
}

func (s *EvaluationStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Evaluation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.evaluations {
		if s.evaluations[i].ID == id {
			evaluation := s.evaluations[i]
			evaluation.LabExams = make([]entity.LabExamFile, len(s.evaluations[i].LabExams))
			copy(evaluation.LabExams, s.evaluations[i].LabExams)
			return &evaluation, nil
		}
	}
	return nil, nil
}

func (s *EvaluationStore) FindAll(ctx context.Context) ([]entity.Evaluation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Evaluation, len(s.evaluations))
	copy(out, s.evaluations)
	return out, nil
}
