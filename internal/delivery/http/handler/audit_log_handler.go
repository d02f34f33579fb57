package handler

import (
	"net/http"
	"strconv"

	"pediatric-gastro-api/internal/usecase"
	"pediatric-gastro-api/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{auditLogUsecase: auditLogUsecase}
}

// List handles listing audit log entries
// @Summary List audit logs
// @Description List audit log entries newest first
// @Tags AuditLogs
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} response.Response
// @Router /audit-logs [get]
func (h *AuditLogHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	logs, err := h.auditLogUsecase.GetAuditLogs(r.Context(), limit, offset)
	if err != nil {
		response.InternalServerError(w, "Failed to list audit logs")
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", logs)
}
