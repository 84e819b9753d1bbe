// Package cache provides the in-memory resolution cache with TTL expiry and LRU eviction.
package cache

import (
	"errors"
	"sync"
	"time"

	"github.com/guttosm/mvr-resolver/internal/domain/model"
	"github.com/guttosm/mvr-resolver/internal/metrics"
)

const (
	packagePrefix = "pkg:"
	typePrefix    = "type:"
)

// ErrClosed is returned by operations on a cache that has been closed.
var ErrClosed = errors.New("cache is closed")

// PackageKey returns the cache key for a package resolution.
func PackageKey(name string) string {
	return packagePrefix + name
}

// TypeKey returns the cache key for a type resolution.
func TypeKey(name string) string {
	return typePrefix + name
}

// Option configures a Cache.
type Option func(*Cache)

// WithCleanupInterval starts a background sweep of expired entries.
func WithCleanupInterval(interval time.Duration) Option {
	return func(c *Cache) {
		c.cleanupInterval = interval
	}
}

// WithClock replaces the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// Cache is a thread-safe TTL cache with least-recently-used eviction.
//
// All state lives behind a single mutex; every operation takes it once and
// releases it before returning. Entries are kept in a doubly linked list
// ordered by last access, most recent at the head, so the tail is always the
// entry with the smallest lastAccessed timestamp.
type Cache struct {
	mu              sync.Mutex
	items           map[string]*entry
	head            *entry
	tail            *entry
	defaultTTL      time.Duration
	maxSize         int
	now             func() time.Time
	cleanupInterval time.Duration
	closed          bool
	stopCh          chan struct{}
	stopOnce        sync.Once
}

// entry is a single cached value with access bookkeeping.
type entry struct {
	key          string
	value        string
	expiresAt    time.Time
	hitCount     uint64
	lastAccessed time.Time
	prev         *entry
	next         *entry
}

func (e *entry) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// New creates a cache holding at most maxSize entries that expire after defaultTTL.
// A maxSize of zero disables storage entirely.
func New(defaultTTL time.Duration, maxSize int, opts ...Option) *Cache {
	if maxSize < 0 {
		maxSize = 0
	}
	c := &Cache{
		items:      make(map[string]*entry, maxSize),
		defaultTTL: defaultTTL,
		maxSize:    maxSize,
		now:        time.Now,
		stopCh:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cleanupInterval > 0 {
		go c.startCleanup()
	}
	metrics.UpdateCacheMetrics(0, maxSize)
	return c
}

// Get returns the value stored under key if present and unexpired.
// A hit increments the entry's hit count and refreshes its last access time.
// An expired entry is removed as a side effect.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return "", false
	}

	e, ok := c.items[key]
	if !ok {
		metrics.RecordCacheOperation("get", "miss")
		return "", false
	}

	now := c.now()
	if e.expired(now) {
		c.removeEntry(e)
		c.publishSize()
		metrics.RecordCacheOperation("get", "expired")
		return "", false
	}

	e.hitCount++
	e.lastAccessed = now
	c.moveToFront(e)
	metrics.RecordCacheOperation("get", "hit")
	return e.value, true
}

// Insert stores value under key with the default TTL.
func (c *Cache) Insert(key, value string) error {
	return c.InsertWithTTL(key, value, c.defaultTTL)
}

// InsertWithTTL stores value under key with the given TTL.
//
// Overwriting a key refreshes its expiry and resets its hit count. Inserting a
// new key into a full cache first evicts exactly one entry, the least recently
// accessed.
func (c *Cache) InsertWithTTL(key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if c.maxSize == 0 {
		return nil
	}

	now := c.now()
	if e, ok := c.items[key]; ok {
		e.value = value
		e.expiresAt = now.Add(ttl)
		e.hitCount = 0
		e.lastAccessed = now
		c.moveToFront(e)
		metrics.RecordCacheOperation("insert", "overwrite")
		return nil
	}

	if len(c.items) >= c.maxSize {
		c.evictLRU()
	}

	e := &entry{
		key:          key,
		value:        value,
		expiresAt:    now.Add(ttl),
		lastAccessed: now,
	}
	c.items[key] = e
	c.addToFront(e)
	c.publishSize()
	metrics.RecordCacheOperation("insert", "success")
	return nil
}

// Remove deletes key and returns the value it held, if any.
func (c *Cache) Remove(key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return "", false, ErrClosed
	}

	e, ok := c.items[key]
	if !ok {
		return "", false, nil
	}
	c.removeEntry(e)
	c.publishSize()
	metrics.RecordCacheOperation("remove", "success")
	return e.value, true, nil
}

// Clear drops every entry.
func (c *Cache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}

	c.items = make(map[string]*entry, c.maxSize)
	c.head = nil
	c.tail = nil
	c.publishSize()
	metrics.RecordCacheOperation("clear", "success")
	return nil
}

// CleanupExpired removes every expired entry and returns how many were removed.
func (c *Cache) CleanupExpired() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return 0, ErrClosed
	}

	now := c.now()
	removed := 0
	for _, e := range c.items {
		if e.expired(now) {
			c.removeEntry(e)
			removed++
		}
	}
	if removed > 0 {
		c.publishSize()
	}
	metrics.RecordCacheOperation("cleanup", "success")
	return removed, nil
}

// Stats returns a snapshot of the cache. Expired entries that have not yet
// been swept are still counted in TotalEntries and reported as ExpiredEntries.
func (c *Cache) Stats() (model.CacheStats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return model.CacheStats{}, ErrClosed
	}

	now := c.now()
	stats := model.CacheStats{
		TotalEntries: len(c.items),
		MaxSize:      c.maxSize,
	}
	for _, e := range c.items {
		if e.expired(now) {
			stats.ExpiredEntries++
		}
		stats.TotalHits += e.hitCount
	}
	stats.ValidEntries = stats.TotalEntries - stats.ExpiredEntries
	return stats, nil
}

// Len returns the number of resident entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Close stops the background sweep and rejects further operations.
func (c *Cache) Close() {
	c.stopOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		c.mu.Unlock()
		close(c.stopCh)
	})
}

// startCleanup periodically sweeps expired entries until Close is called.
func (c *Cache) startCleanup() {
	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_, _ = c.CleanupExpired()
		case <-c.stopCh:
			return
		}
	}
}

// evictLRU removes the tail entry. Caller must hold the lock.
func (c *Cache) evictLRU() {
	if c.tail == nil {
		return
	}
	c.removeEntry(c.tail)
	metrics.RecordCacheOperation("evict", "capacity")
}

// removeEntry removes an entry from both the map and the linked list.
func (c *Cache) removeEntry(e *entry) {
	delete(c.items, e.key)
	c.unlink(e)
}

// moveToFront moves an existing entry to the front of the LRU list.
func (c *Cache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.unlink(e)
	c.addToFront(e)
}

// addToFront adds an entry to the front of the LRU list.
func (c *Cache) addToFront(e *entry) {
	e.prev = nil
	e.next = c.head
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

// unlink removes an entry from the linked list without touching the map.
func (c *Cache) unlink(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
	e.prev = nil
	e.next = nil
}

func (c *Cache) publishSize() {
	metrics.UpdateCacheMetrics(len(c.items), c.maxSize)
}
