// Package resolver resolves Move Registry package and type names to on-chain identifiers.
//
// A Resolver answers from static overrides first, then from its cache, and
// only then from the registry. Registry fetches pass through an admission
// controller that bounds how many are in flight and each one runs under the
// configured timeout. Successful fetches populate the cache.
package resolver

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/mvr-resolver/internal/cache"
	"github.com/guttosm/mvr-resolver/internal/domain/model"
	"github.com/guttosm/mvr-resolver/internal/logger"
	"github.com/guttosm/mvr-resolver/internal/metrics"
	"github.com/rs/zerolog"
)

// Fetcher retrieves resolutions from the registry.
// Implementations should return *Error values; anything else is treated as a
// transport failure.
type Fetcher interface {
	FetchPackage(ctx context.Context, name string) (string, error)
	FetchType(ctx context.Context, name string) (string, error)
	FetchBatch(ctx context.Context, req model.BatchRequest) (*model.BatchResponse, error)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithCache replaces the cache built from the configuration.
func WithCache(store cache.Store) Option {
	return func(r *Resolver) {
		r.cache = store
	}
}

// WithLogger sets the resolver logger.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Resolver) {
		r.log = l
	}
}

// Resolver resolves names through overrides, cache and registry.
// It is safe for concurrent use.
type Resolver struct {
	cfg       model.ResolverConfig
	overrides *model.Overrides
	cache     cache.Store
	admission *Admission
	fetcher   Fetcher
	log       zerolog.Logger
}

// New builds a Resolver. The configuration is validated and copied; later
// changes to cfg or its overrides do not affect the resolver.
func New(cfg model.ResolverConfig, fetcher Fetcher, opts ...Option) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, ConfigError(err)
	}
	if fetcher == nil {
		return nil, ConfigError(errors.New("fetcher is required"))
	}

	r := &Resolver{
		cfg:       cfg,
		admission: NewAdmission(cfg.MaxConcurrentRequests),
		fetcher:   fetcher,
		log:       logger.Component("resolver"),
	}
	if cfg.Overrides != nil {
		o := cfg.Overrides.Clone()
		r.overrides = &o
		r.cfg.Overrides = &o
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.cache == nil {
		r.cache = cache.New(cfg.CacheTTL, cfg.CacheSize, cache.WithCleanupInterval(cfg.CleanupInterval))
	}

	r.log.Info().
		Str("endpoint", cfg.EndpointURL).
		Dur("cache_ttl", cfg.CacheTTL).
		Int("cache_size", cfg.CacheSize).
		Dur("timeout", cfg.Timeout).
		Int("max_concurrent_requests", cfg.MaxConcurrentRequests).
		Int("overrides", r.overrides.Len()).
		Msg("Resolver initialized")

	return r, nil
}

// kindSpec captures what differs between package and type resolution.
type kindSpec struct {
	kind     model.Kind
	validate func(string) error
	override func(*model.Overrides, string) (string, bool)
	key      func(string) string
	fetchOne func(Fetcher, context.Context, string) (string, error)
	request  func([]string) model.BatchRequest
	response func(*model.BatchResponse) map[string]string
}

var packageSpec = kindSpec{
	kind:     model.KindPackage,
	validate: ValidatePackageName,
	override: (*model.Overrides).Package,
	key:      cache.PackageKey,
	fetchOne: Fetcher.FetchPackage,
	request:  func(names []string) model.BatchRequest { return model.BatchRequest{Packages: names} },
	response: func(resp *model.BatchResponse) map[string]string { return resp.Packages },
}

var typeSpec = kindSpec{
	kind:     model.KindType,
	validate: ValidateTypeName,
	override: (*model.Overrides).Type,
	key:      cache.TypeKey,
	fetchOne: Fetcher.FetchType,
	request:  func(names []string) model.BatchRequest { return model.BatchRequest{Types: names} },
	response: func(resp *model.BatchResponse) map[string]string { return resp.Types },
}

// ResolvePackage resolves "@namespace/package" to a package address.
func (r *Resolver) ResolvePackage(ctx context.Context, name string) (string, error) {
	return r.resolve(ctx, packageSpec, name)
}

// ResolveType resolves "@namespace/package::module::Type" to a type signature.
func (r *Resolver) ResolveType(ctx context.Context, name string) (string, error) {
	return r.resolve(ctx, typeSpec, name)
}

// ResolvePackages resolves several package names with at most one registry round trip.
func (r *Resolver) ResolvePackages(ctx context.Context, names []string) (map[string]string, error) {
	return r.resolveBatch(ctx, packageSpec, names)
}

// ResolveTypes resolves several type names with at most one registry round trip.
func (r *Resolver) ResolveTypes(ctx context.Context, names []string) (map[string]string, error) {
	return r.resolveBatch(ctx, typeSpec, names)
}

func (r *Resolver) resolve(ctx context.Context, spec kindSpec, name string) (string, error) {
	if err := spec.validate(name); err != nil {
		r.recordError(spec.kind, err)
		return "", err
	}

	if v, ok := spec.override(r.overrides, name); ok {
		metrics.RecordResolution(string(spec.kind), string(model.SourceOverride), 1)
		return v, nil
	}

	key := spec.key(name)
	if v, ok := r.cache.Get(key); ok {
		metrics.RecordResolution(string(spec.kind), string(model.SourceCache), 1)
		return v, nil
	}

	var value string
	err := r.fetch(ctx, string(spec.kind), func(fctx context.Context) error {
		var err error
		value, err = spec.fetchOne(r.fetcher, fctx, name)
		return err
	})
	if err != nil {
		r.recordError(spec.kind, err)
		return "", err
	}

	r.store(key, value)
	metrics.RecordResolution(string(spec.kind), string(model.SourceRegistry), 1)
	r.log.Debug().Str("kind", string(spec.kind)).Str("name", name).Msg("Resolved from registry")
	return value, nil
}

func (r *Resolver) resolveBatch(ctx context.Context, spec kindSpec, names []string) (map[string]string, error) {
	results := make(map[string]string, len(names))
	if len(names) == 0 {
		return results, nil
	}

	for _, name := range names {
		if err := spec.validate(name); err != nil {
			r.recordError(spec.kind, err)
			return nil, err
		}
	}

	seen := make(map[string]struct{}, len(names))
	var remaining []string
	var fromOverride, fromCache int
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		if v, ok := spec.override(r.overrides, name); ok {
			results[name] = v
			fromOverride++
			continue
		}
		if v, ok := r.cache.Get(spec.key(name)); ok {
			results[name] = v
			fromCache++
			continue
		}
		remaining = append(remaining, name)
	}
	metrics.RecordResolution(string(spec.kind), string(model.SourceOverride), fromOverride)
	metrics.RecordResolution(string(spec.kind), string(model.SourceCache), fromCache)

	if len(remaining) == 0 {
		return results, nil
	}

	var resp *model.BatchResponse
	err := r.fetch(ctx, "batch", func(fctx context.Context) error {
		var err error
		resp, err = r.fetcher.FetchBatch(fctx, spec.request(remaining))
		return err
	})
	if err != nil {
		r.recordError(spec.kind, err)
		return nil, err
	}
	if resp == nil {
		return results, nil
	}

	fetched := spec.response(resp)
	resolved := 0
	for _, name := range remaining {
		v, ok := fetched[name]
		if !ok {
			continue
		}
		r.store(spec.key(name), v)
		results[name] = v
		resolved++
	}
	metrics.RecordResolution(string(spec.kind), string(model.SourceRegistry), resolved)

	if len(resp.Errors) > 0 {
		r.log.Debug().
			Str("kind", string(spec.kind)).
			Interface("errors", resp.Errors).
			Msg("Registry reported per-name batch errors")
	}
	if unresolved := len(remaining) - resolved; unresolved > 0 {
		r.log.Debug().
			Str("kind", string(spec.kind)).
			Int("unresolved", unresolved).
			Msg("Registry omitted names from batch response")
	}

	return results, nil
}

// fetch runs fn while holding an admission permit and under the configured timeout.
func (r *Resolver) fetch(ctx context.Context, operation string, fn func(context.Context) error) error {
	if err := r.admission.Acquire(ctx); err != nil {
		return err
	}
	defer r.admission.Release()

	fctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	start := time.Now()
	err := r.normalize(ctx, fctx, fn(fctx))

	outcome := "success"
	if err != nil {
		outcome = KindOf(err).String()
	}
	metrics.ObserveRegistryFetch(operation, outcome, time.Since(start))
	return err
}

// normalize maps fetch failures onto resolver errors. A fetch that ran into
// the configured timeout is reported as a timeout whatever the fetcher
// returned. When the caller's context ended first its error is returned as is.
func (r *Resolver) normalize(ctx, fctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if parentErr := ctx.Err(); parentErr != nil {
		return parentErr
	}
	if errors.Is(fctx.Err(), context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, TimeoutSecs: int(r.cfg.Timeout / time.Second), Err: err}
	}
	if _, ok := AsError(err); ok {
		return err
	}
	return TransportError(err)
}

// store writes a fetched value to the cache. Failures are logged, never returned.
func (r *Resolver) store(key, value string) {
	if err := r.cache.Insert(key, value); err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("Failed to cache resolution")
	}
}

func (r *Resolver) recordError(kind model.Kind, err error) {
	metrics.RecordResolutionError(string(kind), KindOf(err).String())
}

// CleanupExpiredCache removes expired cache entries and returns how many were removed.
func (r *Resolver) CleanupExpiredCache() (int, error) {
	n, err := r.cache.CleanupExpired()
	if err != nil {
		return 0, CacheError(err)
	}
	if n > 0 {
		r.log.Debug().Int("removed", n).Msg("Expired cache entries removed")
	}
	return n, nil
}

// ClearCache drops every cached resolution. Overrides are unaffected.
func (r *Resolver) ClearCache() error {
	if err := r.cache.Clear(); err != nil {
		return CacheError(err)
	}
	r.log.Info().Msg("Resolver cache cleared")
	return nil
}

// CacheStats returns a snapshot of the cache.
func (r *Resolver) CacheStats() (model.CacheStats, error) {
	stats, err := r.cache.Stats()
	if err != nil {
		return model.CacheStats{}, CacheError(err)
	}
	return stats, nil
}

// Config returns a copy of the active configuration.
func (r *Resolver) Config() model.ResolverConfig {
	cfg := r.cfg
	if r.overrides != nil {
		cfg = cfg.WithOverrides(*r.overrides)
	}
	return cfg
}

// InFlight returns the number of registry fetches currently holding a permit.
func (r *Resolver) InFlight() int {
	return r.admission.InFlight()
}

// Close stops background cache maintenance. Resolution keeps working after
// Close but nothing is cached any more.
func (r *Resolver) Close() {
	r.cache.Close()
}
