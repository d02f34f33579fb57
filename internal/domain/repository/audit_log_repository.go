package repository

import (
	"context"

	"pediatric-gastro-api/internal/domain/entity"
)

type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	// FindAll returns entries newest first.
	FindAll(ctx context.Context, limit, offset int) ([]entity.AuditLog, error)
}
