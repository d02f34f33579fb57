package service

import (
	"context"

	"pediatric-gastro-api/internal/domain/entity"
	"pediatric-gastro-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type AuditService interface {
	LogCreate(ctx context.Context, userID *string, action string, entityName string, entityID string, newValue interface{}) error
	LogUpdate(ctx context.Context, userID *string, action string, entityName string, entityID string, oldValue, newValue interface{}) error
	LogDelete(ctx context.Context, userID *string, action string, entityName string, entityID string, oldValue interface{}) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) LogCreate(ctx context.Context, userID *string, action string, entityName string, entityID string, newValue interface{}) error {
	return s.write(ctx, userID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": nil,
		"new_value": newValue,
	})
}

func (s *auditService) LogUpdate(ctx context.Context, userID *string, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return s.write(ctx, userID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": newValue,
	})
}

func (s *auditService) LogDelete(ctx context.Context, userID *string, action string, entityName string, entityID string, oldValue interface{}) error {
	return s.write(ctx, userID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": nil,
	})
}

func (s *auditService) write(ctx context.Context, userID *string, action string, metadata entity.JSON) error {
	auditLog := &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(ctx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
