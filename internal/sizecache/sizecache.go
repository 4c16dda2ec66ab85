// Package sizecache memoizes fitting-size queries.
//
// A Cache maps a query size to the size computed for it. It is bounded: once
// full, inserting a new key evicts the least recently used entry, where both
// inserts and read hits count as a use.
package sizecache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/grindlemire/go-grid/internal/layout"
)

// DefaultCapacity is the number of entries a Cache holds when created with a
// non-positive capacity.
const DefaultCapacity = 10

// Cache is a bounded least-recently-used map from query size to result size.
// The zero value is not usable; use New.
type Cache struct {
	capacity int
	entries  *lru.Cache[layout.Size, layout.Size]
}

// New creates a Cache holding at most capacity entries.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	entries, err := lru.New[layout.Size, layout.Size](capacity)
	if err != nil {
		// lru.New only fails for a non-positive size.
		panic("sizecache: " + err.Error())
	}
	return &Cache{capacity: capacity, entries: entries}
}

// Get returns the cached result for key and promotes it to most recently used.
func (c *Cache) Get(key layout.Size) (layout.Size, bool) {
	return c.entries.Get(key)
}

// Put stores value under key, evicting the least recently used entry when the
// cache is full. Storing an existing key replaces its value and promotes it.
func (c *Cache) Put(key, value layout.Size) {
	c.entries.Add(key, value)
}

// Contains reports whether key is cached without promoting it.
func (c *Cache) Contains(key layout.Size) bool {
	return c.entries.Contains(key)
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.entries.Purge()
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Capacity returns the maximum number of entries.
func (c *Cache) Capacity() int {
	return c.capacity
}
