package cache

import "github.com/guttosm/mvr-resolver/internal/domain/model"

// Store defines the cache operations the resolver depends on.
type Store interface {
	Get(key string) (string, bool)
	Insert(key, value string) error
	Remove(key string) (string, bool, error)
	Clear() error
	CleanupExpired() (int, error)
	Stats() (model.CacheStats, error)
	Len() int
	Close()
}

var _ Store = (*Cache)(nil)
