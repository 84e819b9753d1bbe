package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mvr-resolver/internal/domain/dto"
	"github.com/guttosm/mvr-resolver/internal/domain/model"
	"github.com/guttosm/mvr-resolver/internal/i18n"
	"github.com/guttosm/mvr-resolver/internal/service"
)

// AuditHandler serves the resolution audit log.
type AuditHandler struct {
	audit service.AuditService
}

// NewAuditHandler creates an audit handler. A nil service makes every
// request answer 503.
func NewAuditHandler(audit service.AuditService) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// List handles GET /api/v1/audit.
//
// @Summary      Query the audit log
// @Description  Returns audit entries newest first, filtered by the given parameters, with the total number of matches.
// @Tags         Audit
// @Produce      json
// @Param        request_id query string false "Request ID"
// @Param        action     query string false "Action" Enums(resolve_package, resolve_type, resolve_packages, resolve_types, resolve_target, cache_cleanup, cache_clear, issue_token)
// @Param        subject    query string false "Caller subject"
// @Param        name       query string false "Resolved name"
// @Param        level      query string false "Level" Enums(info, warn, error)
// @Param        start      query string false "Window start (RFC3339)"
// @Param        end        query string false "Window end (RFC3339)"
// @Param        limit      query int    false "Page size (default 50, max 500)"
// @Param        skip       query int    false "Entries to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.AuditListResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid query"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Audit log disabled"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/v1/audit [get]
func (h *AuditHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.audit == nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyAuditUnavailable, nil)
		return
	}

	var req dto.AuditQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Detail("reason", err.Error()).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	opts := model.AuditQueryOptions{
		RequestID: req.RequestID,
		Action:    req.Action,
		Subject:   req.Subject,
		Name:      req.Name,
		Level:     req.Level,
		StartTime: req.Start,
		EndTime:   req.End,
		Limit:     req.Limit,
		Skip:      req.Skip,
	}

	ctx := c.Request.Context()
	entries, err := h.audit.Query(ctx, opts)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	total, err := h.audit.Count(ctx, opts)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(dto.AuditListResponse{
		Entries: entries,
		Total:   total,
		Limit:   req.Limit,
		Skip:    req.Skip,
	})
}
