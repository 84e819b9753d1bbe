package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mvr-resolver/internal/domain/model"
	"github.com/guttosm/mvr-resolver/internal/i18n"
	"github.com/guttosm/mvr-resolver/internal/middleware"
	"github.com/guttosm/mvr-resolver/internal/service"
)

// AuthHandler exchanges API keys for access tokens.
type AuthHandler struct {
	tokens service.TokenService
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(tokens service.TokenService) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

// IssueToken handles POST /api/v1/auth/token.
//
// @Summary      Issue an access token
// @Description  Exchanges the API key presented in X-API-Key for a short-lived bearer token.
// @Tags         Auth
// @Produce      json
// @Param        X-API-Key header string true "API key"
// @Success      200 {object} dto.SuccessResponse{data=dto.TokenResponse}
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/v1/auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	builder := NewResponseBuilder(c)
	middleware.SetAuditAction(c, model.ActionIssueToken)

	token, err := h.tokens.IssueToken(middleware.GetAPIKey(c))
	if err != nil {
		middleware.SetAuditError(c, err)
		if errors.Is(err, service.ErrInvalidAPIKey) {
			builder.Error(http.StatusUnauthorized, i18n.ErrKeyInvalidAPIKey, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(token)
}
