package refs

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// firstHeadingSentinel keys lookups that target a document's first top-level
// heading rather than a named fragment. The NUL byte keeps it from colliding
// with any real fragment.
const firstHeadingSentinel = "\x00first-heading"

// CacheKey identifies one resolution outcome: a target file plus either a
// fragment or the first-heading sentinel.
type CacheKey struct {
	Path     string
	Fragment string
}

// Cache memoizes resolution outcomes for the lifetime of a run.
//
// Contract: populated once per key, read many; never invalidated within a
// run. Negative outcomes ("no label found") are cached too, so a missing
// target file costs one stat no matter how many links point at it.
type Cache struct {
	entries *lru.Cache[CacheKey, string]
}

// cacheSize bounds the cache. One entry per (file, fragment) pair; even large
// documentation trees stay well under this.
const cacheSize = 4096

// NewCache creates an empty resolution cache.
func NewCache() *Cache {
	entries, err := lru.New[CacheKey, string](cacheSize)
	if err != nil {
		// lru.New only fails for a non-positive size.
		panic(err)
	}
	return &Cache{entries: entries}
}

// Get returns the cached label for key. The second return distinguishes a
// cached negative outcome (ok=true, label="") from an absent entry.
func (c *Cache) Get(key CacheKey) (string, bool) {
	return c.entries.Get(key)
}

// Put records an outcome for key. An empty label records "not found".
func (c *Cache) Put(key CacheKey, label string) {
	c.entries.Add(key, label)
}

// Len returns the number of cached outcomes.
func (c *Cache) Len() int {
	return c.entries.Len()
}
