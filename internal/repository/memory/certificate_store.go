package memory

import (
	"context"
	"sync"

	"pediatric-gastro-api/internal/domain/entity"
	domainRepo "pediatric-gastro-api/internal/domain/repository"
)

type CertificateStore struct {
	mu           sync.Mutex
	certificates []entity.Certificate
}

func NewCertificateStore() *CertificateStore {
	return &CertificateStore{}
}

var _ domainRepo.CertificateRepository = (*CertificateStore)(nil)

func (s *CertificateStore) Create(ctx context.Context, certificate *entity.Certificate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.certificates = append(s.certificates, *certificate)
	return nil
}

func (s *CertificateStore) FindByAttentionID(ctx context.Context, attentionID string) (*entity.Certificate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.certificates {
		if s.certificates[i].AttentionID == attentionID {
			certificate := s.certificates[i]
			return &certificate, nil
		}
	}
	return nil, nil
}

func (s *CertificateStore) FindAll(ctx context.Context) ([]entity.Certificate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Certificate, len(s.certificates))
	copy(out, s.certificates)
	return out, nil
}

func (s *CertificateStore) Update(ctx context.Context, certificate *entity.Certificate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.certificates {
		if s.certificates[i].AttentionID == certificate.AttentionID {
			s.certificates[i] = *certificate
			return nil
		}
	}
	s.certificates = append(s.certificates, *certificate)
	return nil
}

func (s *CertificateStore) Delete(ctx context.Context, attentionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.certificates {
		if s.certificates[i].AttentionID == attentionID {
			s.certificates = append(s.certificates[:i], s.certificates[i+1:]...)
			return nil
		}
	}
	return nil
}
