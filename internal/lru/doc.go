// Package lru implements a fixed-capacity, generically-typed key–value cache
// with least-recently-used eviction.
//
// Goals for this package:
//   - Make the core data structures explicit (index map + slot arena)
//   - Provide O(1) Get/Put/Remove via map lookup + recency links
//   - Keep recency links as arena indices, never pointers, so no operation
//     can dangle or alias a slot across a mutation
//   - Leave locking to the caller; Synced wraps a Cache in a single mutex
package lru
