package lru

import "sync"

// Synced wraps a Cache in a single mutex, making it safe for concurrent use.
//
// Every method holds the lock for its full duration, so the index map, the
// recency order, and the size change as one atomic unit from the point of
// view of any other goroutine.
type Synced[K comparable, V any] struct {
	mu    sync.Mutex
	cache *Cache[K, V]
}

// NewSynced constructs a concurrency-safe cache holding at most capacity
// entries. It returns ErrInvalidCapacity for capacities below one.
func NewSynced[K comparable, V any](capacity int) (*Synced[K, V], error) {
	c, err := New[K, V](capacity)
	if err != nil {
		return nil, err
	}
	return &Synced[K, V]{cache: c}, nil
}

// Get reads a key and, on a hit, promotes it to most recently used.
func (s *Synced[K, V]) Get(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Get(key)
}

// Peek reads a key without touching the recency order.
func (s *Synced[K, V]) Peek(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Peek(key)
}

// Contains reports whether key is present, without promoting it.
func (s *Synced[K, V]) Contains(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Contains(key)
}

// Put writes/overwrites a key and marks it most recently used.
func (s *Synced[K, V]) Put(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Put(key, value)
}

// Remove deletes a key if present and reports whether it was.
func (s *Synced[K, V]) Remove(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Remove(key)
}

// Purge drops every entry while keeping the configured capacity.
func (s *Synced[K, V]) Purge() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Purge()
}

// Len returns the number of currently stored entries.
func (s *Synced[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}

// IsEmpty reports whether the cache holds no entries.
func (s *Synced[K, V]) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.IsEmpty()
}

// Capacity returns the maximum number of entries the cache can hold.
func (s *Synced[K, V]) Capacity() int {
	return s.cache.Capacity()
}

// Keys returns the present keys in MRU -> LRU order.
func (s *Synced[K, V]) Keys() []K {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Keys()
}
