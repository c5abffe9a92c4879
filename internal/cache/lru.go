// Package cache provides an LRU cache for computed alias sets.
package cache

import (
	"container/list"
	"sync"
	"sync/atomic"
)

const (
	// DefaultCapacity is the default maximum number of cached entries.
	DefaultCapacity = 1000
)

// LRU stores values by string key with least-recently-used eviction.
// It is safe for concurrent use.
type LRU[V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	lruList  *list.List

	// Metrics using atomic for lock-free access.
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type entry[V any] struct {
	key   string
	value V
}

// New creates an LRU cache with default capacity.
func New[V any]() *LRU[V] {
	return NewWithCapacity[V](DefaultCapacity)
}

// NewWithCapacity creates an LRU cache holding at most capacity entries.
// A non-positive capacity selects DefaultCapacity.
func NewWithCapacity[V any](capacity int) *LRU[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &LRU[V]{
		capacity: capacity,
		items:    make(map[string]*list.Element, capacity),
		lruList:  list.New(),
	}
}

// Get returns the value stored under key and marks it most recently used.
func (c *LRU[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}

	c.lruList.MoveToFront(elem)
	c.hits.Add(1)
	return elem.Value.(*entry[V]).value, true
}

// Set stores value under key, evicting the least recently used entry
// when the cache is full.
func (c *LRU[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.lruList.MoveToFront(elem)
		elem.Value.(*entry[V]).value = value
		return
	}

	if c.lruList.Len() >= c.capacity {
		c.evictOldest()
	}

	elem := c.lruList.PushFront(&entry[V]{key: key, value: value})
	c.items[key] = elem
}

// evictOldest removes the least recently used entry.
// Must be called with lock held.
func (c *LRU[V]) evictOldest() {
	elem := c.lruList.Back()
	if elem == nil {
		return
	}

	c.lruList.Remove(elem)
	delete(c.items, elem.Value.(*entry[V]).key)
	c.evictions.Add(1)
}

// Clear removes all entries. Metrics are kept.
func (c *LRU[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element, c.capacity)
	c.lruList.Init()
}

// Stats holds cache performance metrics.
type Stats struct {
	Size      int     // Current number of cached entries.
	Capacity  int     // Maximum capacity.
	Hits      uint64  // Number of successful lookups.
	Misses    uint64  // Number of failed lookups.
	Evictions uint64  // Number of evicted entries.
	HitRate   float64 // Hits / (hits + misses).
}

// Stats returns cache statistics.
func (c *LRU[V]) Stats() Stats {
	c.mu.Lock()
	size := c.lruList.Len()
	c.mu.Unlock()

	hits := c.hits.Load()
	misses := c.misses.Load()

	hitRate := 0.0
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Size:      size,
		Capacity:  c.capacity,
		Hits:      hits,
		Misses:    misses,
		Evictions: c.evictions.Load(),
		HitRate:   hitRate,
	}
}
