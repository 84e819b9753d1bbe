package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/mvr-resolver/internal/middleware"
)

// PublicRouteGroup defines routes that don't require authentication.
type PublicRouteGroup interface {
	// RegisterPublicRoutes registers public routes to the given router group.
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ProtectedRouteGroup defines routes that require authentication.
type ProtectedRouteGroup interface {
	// RegisterProtectedRoutes registers protected routes to the given router group.
	RegisterProtectedRoutes(rg *gin.RouterGroup)
}

var (
	_ PublicRouteGroup    = (*ResolverRoutes)(nil)
	_ ProtectedRouteGroup = (*ResolverRoutes)(nil)
	_ ProtectedRouteGroup = (*AuditRoutes)(nil)
	_ PublicRouteGroup    = (*AuthRoutes)(nil)
)

// ResolverRoutes registers resolution and cache routes.
type ResolverRoutes struct {
	handler *Handler
}

// NewResolverRoutes creates a new ResolverRoutes instance.
func NewResolverRoutes(handler *Handler) *ResolverRoutes {
	return &ResolverRoutes{handler: handler}
}

// RegisterPublicRoutes registers the read-only resolver routes.
func (r *ResolverRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	resolve := rg.Group("/resolve")
	{
		resolve.GET("/package", r.handler.ResolvePackage)
		resolve.GET("/type", r.handler.ResolveType)
		resolve.POST("/packages", r.handler.ResolvePackages)
		resolve.POST("/types", r.handler.ResolveTypes)
		resolve.POST("/target", r.handler.ResolveTarget)
	}
	rg.GET("/cache/stats", r.handler.CacheStats)
	rg.GET("/config", r.handler.Config)
}

// RegisterProtectedRoutes registers the cache maintenance routes.
func (r *ResolverRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/cache/cleanup", r.handler.CleanupCache)
	rg.DELETE("/cache", r.handler.ClearCache)
}

// AuditRoutes registers the audit log routes.
type AuditRoutes struct {
	handler *AuditHandler
}

// NewAuditRoutes creates a new AuditRoutes instance.
func NewAuditRoutes(handler *AuditHandler) *AuditRoutes {
	return &AuditRoutes{handler: handler}
}

// RegisterProtectedRoutes registers the audit query route.
func (r *AuditRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/audit", r.handler.List)
}

// AuthRoutes registers the token exchange route.
type AuthRoutes struct {
	handler *AuthHandler
	apiKeys map[string]bool
}

// NewAuthRoutes creates a new AuthRoutes instance.
func NewAuthRoutes(handler *AuthHandler, apiKeys map[string]bool) *AuthRoutes {
	return &AuthRoutes{handler: handler, apiKeys: apiKeys}
}

// RegisterPublicRoutes registers POST /auth/token. The route itself checks
// the API key being exchanged.
func (r *AuthRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/token", middleware.APIKeyAuth(r.apiKeys), r.handler.IssueToken)
}
