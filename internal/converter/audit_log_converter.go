package converter

import (
	"pediatric-gastro-api/internal/delivery/dto"
	"pediatric-gastro-api/internal/domain/entity"
)

func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	response := &dto.AuditLogResponse{
		ID:        log.ID,
		Action:    log.Action,
		Metadata:  log.Metadata,
		CreatedAt: log.CreatedAt,
	}
	if log.UserID != nil {
		response.UserID = *log.UserID
	}
	return response
}

func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, *AuditLogToResponse(&logs[i]))
	}
	return responses
}
