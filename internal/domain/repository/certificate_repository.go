package repository

import (
	"context"

	"pediatric-gastro-api/internal/domain/entity"
)

type CertificateRepository interface {
	Create(ctx context.Context, certificate *entity.Certificate) error
	FindByAttentionID(ctx context.Context, attentionID string) (*entity.Certificate, error)
	// FindAll returns certificates in insertion order.
	FindAll(ctx context.Context) ([]entity.Certificate, error)
	Update(ctx context.Context, certificate *entity.Certificate) error
	// Delete is idempotent: removing an absent attention id is not an error.
	Delete(ctx context.Context, attentionID string) error
}
