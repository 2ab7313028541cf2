package symcache

import (
	"github.com/golang/groupcache/lru"

	"github.com/katalvlaran/polytri/polygon"
)

// Stats counts cache traffic since construction.
type Stats struct {
	Hits   int
	Misses int
	Stores int
}

// Cache maps polygon shapes to triangulation counts.
type Cache struct {
	entries *lru.Cache
	keys    map[polygon.Key]struct{} // mirrors entries; read without touching recency
	stats   Stats
}

// New returns an empty cache holding at most capacity shapes (0 = unbounded).
func New(capacity int) *Cache {
	if capacity < 0 {
		panic("symcache: negative capacity")
	}

	c := &Cache{entries: lru.New(capacity), keys: make(map[polygon.Key]struct{})}
	c.entries.OnEvicted = func(k lru.Key, _ interface{}) { delete(c.keys, k.(polygon.Key)) }

	return c
}

// Store records value for p's shape, replacing any value stored for an
// equivalent polygon.
func (c *Cache) Store(p polygon.Polygon, value uint64) {
	c.stats.Stores++
	k := p.Canonical()
	c.keys[k] = struct{}{}
	c.entries.Add(k, value)
}

// Lookup returns the value stored for any rotation or reflection of p.
func (c *Cache) Lookup(p polygon.Polygon) (uint64, bool) {
	v, ok := c.entries.Get(p.Canonical())
	if !ok {
		c.stats.Misses++

		return 0, false
	}
	c.stats.Hits++

	return v.(uint64), true
}

// Contains reports whether Lookup would hit. It touches neither the stats nor
// the eviction order.
func (c *Cache) Contains(p polygon.Polygon) bool {
	_, ok := c.keys[p.Canonical()]

	return ok
}

// Len returns the number of stored shapes.
func (c *Cache) Len() int { return c.entries.Len() }

// Stats returns a snapshot of the hit, miss and store counters.
func (c *Cache) Stats() Stats { return c.stats }

// Clear drops every entry and keeps the counters.
func (c *Cache) Clear() { c.entries.Clear() }
