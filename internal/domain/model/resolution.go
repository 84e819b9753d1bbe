package model

// Kind identifies what a name resolves to.
type Kind string

const (
	// KindPackage resolves a package name to an address.
	KindPackage Kind = "package"
	// KindType resolves a type name to a type signature.
	KindType Kind = "type"
)

// Source identifies where a resolution was answered from.
type Source string

const (
	SourceOverride Source = "override"
	SourceCache    Source = "cache"
	SourceRegistry Source = "registry"
)

// CacheStats is a point-in-time view of the resolution cache.
type CacheStats struct {
	TotalEntries   int    `json:"total_entries"`
	ValidEntries   int    `json:"valid_entries"`
	ExpiredEntries int    `json:"expired_entries"`
	TotalHits      uint64 `json:"total_hits"`
	MaxSize        int    `json:"max_size"`
}

// Utilization returns TotalEntries / MaxSize, or 0 when MaxSize is 0.
func (s CacheStats) Utilization() float64 {
	if s.MaxSize == 0 {
		return 0
	}
	return float64(s.TotalEntries) / float64(s.MaxSize)
}

// HitRate returns TotalHits / (TotalHits + TotalEntries), or 0 without hits.
//
// This is a lifetime hit-accounting ratio over resident entries, not a
// per-request hit/miss ratio. Monitoring relies on this exact denominator.
func (s CacheStats) HitRate() float64 {
	if s.TotalHits == 0 {
		return 0
	}
	return float64(s.TotalHits) / float64(s.TotalHits+uint64(s.TotalEntries))
}

// BatchRequest asks the registry to resolve several names in one round trip.
type BatchRequest struct {
	Packages []string `json:"packages,omitempty"`
	Types    []string `json:"types,omitempty"`
}

// BatchResponse carries the registry answer to a BatchRequest.
// Errors maps names that failed within the batch to a reason.
type BatchResponse struct {
	Packages map[string]string `json:"packages,omitempty"`
	Types    map[string]string `json:"types,omitempty"`
	Errors   map[string]string `json:"errors,omitempty"`
}
