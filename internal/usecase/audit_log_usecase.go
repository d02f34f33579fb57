package usecase

import (
	"context"

	"pediatric-gastro-api/internal/converter"
	"pediatric-gastro-api/internal/delivery/dto"
	"pediatric-gastro-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

const (
	defaultAuditLogLimit = 50
	maxAuditLogLimit     = 200
)

type AuditLogUsecase interface {
	GetAuditLogs(ctx context.Context, limit, offset int) (*dto.AuditLogListResponse, error)
}

type auditLogUsecase struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditLogUsecase {
	return &auditLogUsecase{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (u *auditLogUsecase) GetAuditLogs(ctx context.Context, limit, offset int) (*dto.AuditLogListResponse, error) {
	if limit <= 0 {
		limit = defaultAuditLogLimit
	}
	if limit > maxAuditLogLimit {
		limit = maxAuditLogLimit
	}
	if offset < 0 {
		offset = 0
	}

	logs, err := u.auditRepo.FindAll(ctx, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}, nil
}
