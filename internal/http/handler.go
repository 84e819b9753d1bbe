package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mvr-resolver/internal/domain/dto"
	"github.com/guttosm/mvr-resolver/internal/domain/model"
	"github.com/guttosm/mvr-resolver/internal/i18n"
	"github.com/guttosm/mvr-resolver/internal/middleware"
	"github.com/guttosm/mvr-resolver/internal/resolver"
)

// NameResolver is the resolver surface the HTTP API needs.
type NameResolver interface {
	ResolvePackage(ctx context.Context, name string) (string, error)
	ResolveType(ctx context.Context, name string) (string, error)
	ResolvePackages(ctx context.Context, names []string) (map[string]string, error)
	ResolveTypes(ctx context.Context, names []string) (map[string]string, error)
	ResolveTarget(ctx context.Context, target string) (string, error)
	CleanupExpiredCache() (int, error)
	ClearCache() error
	CacheStats() (model.CacheStats, error)
	Config() model.ResolverConfig
	InFlight() int
}

var _ NameResolver = (*resolver.Resolver)(nil)

// Handler provides HTTP handlers for resolution and cache routes.
type Handler struct {
	resolver NameResolver
	retry    resolver.RetryPolicy
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithRetryPolicy retries single resolutions that fail with a retryable error.
func WithRetryPolicy(policy resolver.RetryPolicy) HandlerOption {
	return func(h *Handler) {
		h.retry = policy
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(r NameResolver, opts ...HandlerOption) *Handler {
	h := &Handler{resolver: r}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ResolvePackage handles GET /api/v1/resolve/package.
//
// @Summary      Resolve a package name
// @Description  Resolves "@namespace/package" to its on-chain address. Overrides win over the cache, the cache wins over the registry.
// @Tags         Resolve
// @Produce      json
// @Param        name query string true "Package name" example(@suifrens/core)
// @Success      200 {object} dto.SuccessResponse{data=dto.ResolutionResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid package name"
// @Failure      404 {object} dto.ErrorResponse "Package not found"
// @Failure      429 {object} dto.ErrorResponse "Registry rate limit"
// @Failure      502 {object} dto.ErrorResponse "Registry failure"
// @Failure      503 {object} dto.ErrorResponse "Too many concurrent requests"
// @Failure      504 {object} dto.ErrorResponse "Registry timeout"
// @Router       /api/v1/resolve/package [get]
func (h *Handler) ResolvePackage(c *gin.Context) {
	h.resolveOne(c, model.KindPackage, model.ActionResolvePackage, h.resolver.ResolvePackage)
}

// ResolveType handles GET /api/v1/resolve/type.
//
// @Summary      Resolve a type name
// @Description  Resolves "@namespace/package::module::Type" to a full type signature.
// @Tags         Resolve
// @Produce      json
// @Param        name query string true "Type name" example(@suifrens/core::suifren::SuiFren)
// @Success      200 {object} dto.SuccessResponse{data=dto.ResolutionResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid type name"
// @Failure      404 {object} dto.ErrorResponse "Type not found"
// @Failure      429 {object} dto.ErrorResponse "Registry rate limit"
// @Failure      502 {object} dto.ErrorResponse "Registry failure"
// @Failure      503 {object} dto.ErrorResponse "Too many concurrent requests"
// @Failure      504 {object} dto.ErrorResponse "Registry timeout"
// @Router       /api/v1/resolve/type [get]
func (h *Handler) ResolveType(c *gin.Context) {
	h.resolveOne(c, model.KindType, model.ActionResolveType, h.resolver.ResolveType)
}

func (h *Handler) resolveOne(c *gin.Context, kind model.Kind, action string, resolve func(context.Context, string) (string, error)) {
	name := c.Query("name")
	middleware.SetAuditAction(c, action, name)

	value, err := resolver.Retry(c.Request.Context(), h.retry, func(ctx context.Context) (string, error) {
		return resolve(ctx, name)
	})
	if err != nil {
		writeResolverError(c, err)
		return
	}

	NewResponseBuilder(c).SuccessOK(dto.ResolutionResponse{
		Name:  name,
		Value: value,
		Kind:  string(kind),
	})
}

// ResolvePackages handles POST /api/v1/resolve/packages.
//
// @Summary      Resolve several package names
// @Description  Resolves a batch of package names with at most one registry round trip. The batch fails as a whole if any name fails.
// @Tags         Resolve
// @Accept       json
// @Produce      json
// @Param        request body dto.ResolveNamesRequest true "Package names"
// @Success      200 {object} dto.SuccessResponse{data=dto.BatchResolutionResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid request or package name"
// @Failure      429 {object} dto.ErrorResponse "Registry rate limit"
// @Failure      502 {object} dto.ErrorResponse "Registry failure"
// @Failure      503 {object} dto.ErrorResponse "Too many concurrent requests"
// @Failure      504 {object} dto.ErrorResponse "Registry timeout"
// @Router       /api/v1/resolve/packages [post]
func (h *Handler) ResolvePackages(c *gin.Context) {
	h.resolveMany(c, model.KindPackage, model.ActionResolvePackages, h.resolver.ResolvePackages)
}

// ResolveTypes handles POST /api/v1/resolve/types.
//
// @Summary      Resolve several type names
// @Description  Resolves a batch of type names with at most one registry round trip.
// @Tags         Resolve
// @Accept       json
// @Produce      json
// @Param        request body dto.ResolveNamesRequest true "Type names"
// @Success      200 {object} dto.SuccessResponse{data=dto.BatchResolutionResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid request or type name"
// @Failure      429 {object} dto.ErrorResponse "Registry rate limit"
// @Failure      502 {object} dto.ErrorResponse "Registry failure"
// @Failure      503 {object} dto.ErrorResponse "Too many concurrent requests"
// @Failure      504 {object} dto.ErrorResponse "Registry timeout"
// @Router       /api/v1/resolve/types [post]
func (h *Handler) ResolveTypes(c *gin.Context) {
	h.resolveMany(c, model.KindType, model.ActionResolveTypes, h.resolver.ResolveTypes)
}

func (h *Handler) resolveMany(c *gin.Context, kind model.Kind, action string, resolve func(context.Context, []string) (map[string]string, error)) {
	builder := NewResponseBuilder(c)
	middleware.SetAuditAction(c, action)

	req, err := BuildRequestAndValidate[dto.ResolveNamesRequest](c)
	if err != nil {
		middleware.SetAuditError(c, err)
		builder.Detail("reason", err.Error()).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	middleware.SetAuditAction(c, action, req.Names...)

	results, err := resolve(c.Request.Context(), req.Names)
	if err != nil {
		writeResolverError(c, err)
		return
	}

	builder.SuccessOK(dto.BatchResolutionResponse{
		Kind:    string(kind),
		Results: results,
	})
}

// ResolveTarget handles POST /api/v1/resolve/target.
//
// @Summary      Resolve a move-call target
// @Description  Replaces the package name of "@namespace/package::module::function" with its address. Targets that do not start with "@" are returned unchanged.
// @Tags         Resolve
// @Accept       json
// @Produce      json
// @Param        request body dto.ResolveTargetRequest true "Move-call target"
// @Success      200 {object} dto.SuccessResponse{data=dto.TargetResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid target"
// @Failure      404 {object} dto.ErrorResponse "Package not found"
// @Failure      502 {object} dto.ErrorResponse "Registry failure"
// @Router       /api/v1/resolve/target [post]
func (h *Handler) ResolveTarget(c *gin.Context) {
	builder := NewResponseBuilder(c)
	middleware.SetAuditAction(c, model.ActionResolveTarget)

	req, err := BuildRequestAndValidate[dto.ResolveTargetRequest](c)
	if err != nil {
		middleware.SetAuditError(c, err)
		builder.Detail("reason", err.Error()).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	middleware.SetAuditAction(c, model.ActionResolveTarget, req.Target)

	resolved, err := resolver.Retry(c.Request.Context(), h.retry, func(ctx context.Context) (string, error) {
		return h.resolver.ResolveTarget(ctx, req.Target)
	})
	if err != nil {
		writeResolverError(c, err)
		return
	}

	builder.SuccessOK(dto.TargetResponse{Target: req.Target, Resolved: resolved})
}

// CacheStats handles GET /api/v1/cache/stats.
//
// @Summary      Cache statistics
// @Description  Returns entry counts, hit totals, utilization and hit rate of the resolution cache, plus in-flight registry requests.
// @Tags         Cache
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.CacheStatsResponse}
// @Failure      500 {object} dto.ErrorResponse "Cache unavailable"
// @Router       /api/v1/cache/stats [get]
func (h *Handler) CacheStats(c *gin.Context) {
	stats, err := h.resolver.CacheStats()
	if err != nil {
		writeResolverError(c, err)
		return
	}

	NewResponseBuilder(c).SuccessOK(dto.CacheStatsResponse{
		TotalEntries:   stats.TotalEntries,
		ValidEntries:   stats.ValidEntries,
		ExpiredEntries: stats.ExpiredEntries,
		TotalHits:      stats.TotalHits,
		MaxSize:        stats.MaxSize,
		Utilization:    stats.Utilization(),
		HitRate:        stats.HitRate(),
		InFlight:       int64(h.resolver.InFlight()),
	})
}

// CleanupCache handles POST /api/v1/cache/cleanup.
//
// @Summary      Remove expired cache entries
// @Tags         Cache
// @Produce      json
// @Param        X-API-Key header string false "API key (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse{data=dto.CleanupResponse}
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Cache unavailable"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/v1/cache/cleanup [post]
func (h *Handler) CleanupCache(c *gin.Context) {
	middleware.SetAuditAction(c, model.ActionCacheCleanup)

	removed, err := h.resolver.CleanupExpiredCache()
	if err != nil {
		writeResolverError(c, err)
		return
	}

	NewResponseBuilder(c).SuccessOK(dto.CleanupResponse{Removed: removed})
}

// ClearCache handles DELETE /api/v1/cache.
//
// @Summary      Clear the cache
// @Tags         Cache
// @Param        X-API-Key header string false "API key (required if auth enabled)"
// @Success      204 "Cache cleared"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Cache unavailable"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/v1/cache [delete]
func (h *Handler) ClearCache(c *gin.Context) {
	middleware.SetAuditAction(c, model.ActionCacheClear)

	if err := h.resolver.ClearCache(); err != nil {
		writeResolverError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Config handles GET /api/v1/config.
//
// @Summary      Active resolver configuration
// @Tags         Config
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.ConfigResponse}
// @Router       /api/v1/config [get]
func (h *Handler) Config(c *gin.Context) {
	cfg := h.resolver.Config()

	resp := dto.ConfigResponse{
		EndpointURL:           cfg.EndpointURL,
		CacheTTLSeconds:       cfg.CacheTTL.Seconds(),
		CacheSize:             cfg.CacheSize,
		TimeoutSeconds:        cfg.Timeout.Seconds(),
		MaxConcurrentRequests: cfg.MaxConcurrentRequests,
	}
	if cfg.Overrides != nil {
		overrides := cfg.Overrides.Clone()
		resp.PackageOverrides = overrides.Packages
		resp.TypeOverrides = overrides.Types
	}

	NewResponseBuilder(c).SuccessOK(resp)
}
