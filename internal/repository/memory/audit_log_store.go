package memory

import (
	"context"
	"sync"

	"pediatric-gastro-api/internal/domain/entity"
	domainRepo "pediatric-gastro-api/internal/domain/repository"
)

type AuditLogStore struct {
	mu   sync.Mutex
	logs []entity.AuditLog
	seq  int64
}

func NewAuditLogStore() *AuditLogStore {
	return &AuditLogStore{}
}

var _ domainRepo.AuditLogRepository = (*AuditLogStore)(nil)

func (s *AuditLogStore) Create(ctx context.Context, log *entity.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	log.ID = s.seq
	s.logs = append(s.logs, *log)
	return nil
}

func (s *AuditLogStore) FindAll(ctx context.Context, limit, offset int) ([]entity.AuditLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Newest first
	reversed := make([]entity.AuditLog, 0, len(s.logs))
	for i := len(s.logs) - 1; i >= 0; i-- {
		reversed = append(reversed, s.logs[i])
	}

	if offset >= len(reversed) {
		return nil, nil
	}
	reversed = reversed[offset:]
	if limit > 0 && limit < len(reversed) {
		reversed = reversed[:limit]
	}
	return reversed, nil
}
