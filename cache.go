package musicxml

import (
	"fmt"

	"github.com/simonhull/musicxml/internal/cache"
)

// CacheStats is an alias to the statistics of the underlying LRU.
type CacheStats = cache.Stats

// Cache memoizes parse results by the digest of the MusicXML payload, so a
// raw document and an MXL archive holding it share one entry.
//
// A Cache is safe for concurrent use. Cached scores are shared between
// callers and must be treated as read-only.
type Cache struct {
	lru *cache.LRU[string, *cacheEntry]
}

// cacheEntry is the payload-dependent part of a parse: the score and the
// diagnostics recorded while building it, unfiltered. Diagnostics of the
// container (archive resolution) are not part of it.
type cacheEntry struct {
	score       *Score
	diagnostics []Diagnostic
}

// NewCache returns a cache holding at most size results (0 = unlimited).
func NewCache(size int) *Cache {
	return &Cache{lru: cache.New[string, *cacheEntry](size)}
}

// Stats returns hit, miss and eviction counts.
func (c *Cache) Stats() CacheStats {
	return c.lru.Stats()
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Clear empties the cache.
func (c *Cache) Clear() {
	c.lru.Clear()
}

// cacheKey combines the payload digest with every option that changes the
// assembled score. Strict and ignore are applied after a lookup, so they
// are not part of it. Parses with a seed or a custom layout parser are not
// cached.
func (o *parseOptions) cacheKey(digest string) (string, bool) {
	if o.seed != (Context{}) || o.layout != nil {
		return "", false
	}
	return fmt.Sprintf("%s|duration=%s", digest, o.durationCheck), true
}
