// Package cache provides a small thread-safe LRU used to memoize parse
// results by content digest.
package cache

import (
	"sync"

	"github.com/golang/groupcache/lru"
)

// Stats contains cache statistics.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	MaxSize   int
}

// LRU is a fixed-capacity least-recently-used cache. It adds type safety,
// locking and statistics to groupcache's lru.Cache.
type LRU[K comparable, V any] struct {
	mu      sync.Mutex
	maxSize int
	cache   *lru.Cache
	stats   Stats
}

// New creates an LRU holding at most maxSize entries (0 = unlimited).
func New[K comparable, V any](maxSize int) *LRU[K, V] {
	c := &LRU[K, V]{maxSize: max(maxSize, 0)}
	c.cache = c.newCache()
	return c
}

func (c *LRU[K, V]) newCache() *lru.Cache {
	l := lru.New(c.maxSize)
	// Called with c.mu held, from Add.
	l.OnEvicted = func(lru.Key, any) { c.stats.Evictions++ }
	return l
}

// Get retrieves a value and marks it most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.cache.Get(key)
	if !ok {
		c.stats.Misses++
		var zero V
		return zero, false
	}
	c.stats.Hits++
	return v.(V), true
}

// Put stores a value, evicting the oldest entry when full.
func (c *LRU[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Add(key, value)
}

// Clear removes all entries. Statistics are kept and the removed entries
// are not counted as evictions.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = c.newCache()
}

// Len returns the number of entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Len()
}

// Stats returns cache statistics.
func (c *LRU[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.stats
	s.Size = c.cache.Len()
	s.MaxSize = c.maxSize
	return s
}
