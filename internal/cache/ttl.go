// Package cache provides the bounded TTL cache injected into the payment
// resolver. Upstream reservations are effectively immutable once created, so
// entries are trusted until they expire or get evicted for capacity.
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// TTLCache is a capacity-bounded cache keyed by int64 IDs. When full, the
// oldest entry is evicted. Expired entries are treated as misses on Get and
// physically removed by Sweep.
type TTLCache[V any] struct {
	mu       sync.Mutex
	ttl      time.Duration
	capacity int
	entries  map[int64]entry[V]

	now func() time.Time
}

// New creates a cache holding at most capacity entries, each valid for ttl.
// A non-positive ttl disables expiry; a non-positive capacity disables the
// size bound.
func New[V any](capacity int, ttl time.Duration) *TTLCache[V] {
	return &TTLCache[V]{
		ttl:      ttl,
		capacity: capacity,
		entries:  make(map[int64]entry[V]),
		now:      time.Now,
	}
}

// Get returns the cached value if present and unexpired.
func (c *TTLCache[V]) Get(key int64) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || c.expired(e) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Put stores the value, evicting the oldest entry if the cache is full.
func (c *TTLCache[V]) Put(key int64, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && c.capacity > 0 && len(c.entries) >= c.capacity {
		c.evictOldestLocked()
	}
	c.entries[key] = entry[V]{value: value, storedAt: c.now()}
}

// Len returns the number of stored entries, expired ones included.
func (c *TTLCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Sweep removes expired entries and returns how many were dropped.
func (c *TTLCache[V]) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, e := range c.entries {
		if c.expired(e) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

func (c *TTLCache[V]) expired(e entry[V]) bool {
	return c.ttl > 0 && c.now().Sub(e.storedAt) > c.ttl
}

func (c *TTLCache[V]) evictOldestLocked() {
	var oldestKey int64
	var oldestAt time.Time
	first := true
	for key, e := range c.entries {
		if first || e.storedAt.Before(oldestAt) {
			oldestKey, oldestAt = key, e.storedAt
			first = false
		}
	}
	if !first {
		delete(c.entries, oldestKey)
	}
}
