package lru

import "errors"

// ErrInvalidCapacity is returned by New when capacity is below one.
// A cache that can never hold an entry signals a caller misconfiguration,
// so it is rejected at construction instead of silently clamped.
var ErrInvalidCapacity = errors.New("lru: capacity must be at least 1")

// Cache is a fixed-capacity key–value cache with LRU eviction.
//
// The core design is intentionally explicit and "mechanical":
// a map gives O(1) key lookup, and an arena-backed doubly-linked order
// maintains recency. The map binds keys to arena indices only; the value
// lives exactly once, in the slot.
//
// Cache is not safe for concurrent use. Wrap it in Synced (or an external
// mutex) when shared between goroutines; the recency links cannot be locked
// at finer grain because promotion and eviction touch neighbor slots.
//
// The zero value is not valid, instances must be created with New.
type Cache[K comparable, V any] struct {
	capacity int
	items    map[K]int32
	ord      order[K, V]
}

// New constructs a cache holding at most capacity entries.
//
// New returns ErrInvalidCapacity for capacities below one.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]int32, capacity),
		ord:      newOrder[K, V](capacity),
	}, nil
}

// Get reads a key and, on a hit, promotes it to most recently used.
//
// A miss returns the zero value and false with no state change.
// A hit mutates the recency order even though the value is unchanged, so
// Get is not idempotent with respect to which entry gets evicted next.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	i, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.ord.moveToFront(i)
	return c.ord.slots[i].value, true
}

// Peek reads a key without touching the recency order.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	i, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	return c.ord.slots[i].value, true
}

// Contains reports whether key is present, without promoting it.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.items[key]
	return ok
}

// Put writes/overwrites a key and marks it most recently used.
//
// An existing key is updated in place; a new key is inserted at the front
// of the recency order. If the insertion overflows capacity, the least
// recently used entry is evicted. Put adds at most one entry, so a single
// eviction always restores the bound.
//
// Complexity: O(1) to locate/insert, O(1) per eviction.
func (c *Cache[K, V]) Put(key K, value V) {
	if i, ok := c.items[key]; ok {
		c.ord.slots[i].value = value
		c.ord.moveToFront(i)
		return
	}

	i := c.ord.alloc(key, value)
	c.ord.pushFront(i)
	c.items[key] = i

	if len(c.items) > c.capacity {
		c.evict()
	}
}

// Remove deletes a key if present and reports whether it was.
// The freed slot is recycled by a later Put.
func (c *Cache[K, V]) Remove(key K) bool {
	i, ok := c.items[key]
	if !ok {
		return false
	}
	delete(c.items, key)
	c.ord.unlink(i)
	c.ord.release(i)
	return true
}

// Purge drops every entry while keeping the configured capacity.
func (c *Cache[K, V]) Purge() {
	clear(c.items)
	c.ord = newOrder[K, V](c.capacity)
}

// Len returns the number of currently stored entries.
func (c *Cache[K, V]) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the cache holds no entries.
func (c *Cache[K, V]) IsEmpty() bool {
	return len(c.items) == 0
}

// Capacity returns the maximum number of entries the cache can hold.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Keys returns the present keys in MRU -> LRU order.
//
// This is a debug/teaching helper used by the demo.
func (c *Cache[K, V]) Keys() []K {
	out := make([]K, 0, len(c.items))
	for i := c.ord.head; i != noSlot; i = c.ord.slots[i].next {
		out = append(out, c.ord.slots[i].key)
	}
	return out
}

// evict removes the tail of the recency order together with its map binding.
// The order and the map are always updated as a pair; no public operation
// touches one without reconciling the other.
func (c *Cache[K, V]) evict() {
	i := c.ord.popBack()
	if i == noSlot {
		return
	}
	delete(c.items, c.ord.slots[i].key)
	c.ord.release(i)
}
