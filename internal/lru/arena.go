package lru

// noSlot is the sentinel arena index standing in for a nil link.
const noSlot int32 = -1

// slot holds one cached entry: the key (needed when eviction starts from the
// recency order), the single copy of the value, and the entry's links.
// Links are arena indices, never pointers.
type slot[K comparable, V any] struct {
	key        K
	value      V
	prev, next int32
}

// order maintains the recency sequence over a flat arena of slots,
// most-recently-used at the head, eviction candidate at the tail.
//
// All list surgery is index rewrites within the arena. The arena owns every
// slot for the lifetime of the order; evicted indices go on a free list and
// are recycled by the next alloc, so the backing array never grows past
// capacity+1 slots (Put allocates before it evicts).
type order[K comparable, V any] struct {
	slots []slot[K, V]
	free  []int32
	head  int32
	tail  int32
	count int
}

func newOrder[K comparable, V any](capacity int) order[K, V] {
	return order[K, V]{
		slots: make([]slot[K, V], 0, capacity),
		head:  noSlot,
		tail:  noSlot,
	}
}

// alloc places a new entry in a slot and returns its index.
// It prefers recycling a freed index over growing the arena.
// The returned slot is not yet linked into the order.
func (o *order[K, V]) alloc(key K, value V) int32 {
	if n := len(o.free); n > 0 {
		i := o.free[n-1]
		o.free = o.free[:n-1]
		o.slots[i] = slot[K, V]{key: key, value: value, prev: noSlot, next: noSlot}
		return i
	}
	o.slots = append(o.slots, slot[K, V]{key: key, value: value, prev: noSlot, next: noSlot})
	return int32(len(o.slots) - 1)
}

// release returns an unlinked slot to the free list.
// The slot is zeroed so evicted keys and values do not pin caller memory.
func (o *order[K, V]) release(i int32) {
	o.slots[i] = slot[K, V]{prev: noSlot, next: noSlot}
	o.free = append(o.free, i)
}

// pushFront links slot i as the most recently used.
func (o *order[K, V]) pushFront(i int32) {
	s := &o.slots[i]
	s.prev = noSlot
	s.next = o.head
	if o.head != noSlot {
		o.slots[o.head].prev = i
	}
	o.head = i
	if o.tail == noSlot {
		o.tail = i
	}
	o.count++
}

// unlink detaches slot i from the order, patching neighbor links.
// Handles head, tail, interior, and singleton positions uniformly:
// a noSlot neighbor means the head/tail field is the one to patch.
func (o *order[K, V]) unlink(i int32) {
	s := &o.slots[i]
	if s.prev != noSlot {
		o.slots[s.prev].next = s.next
	} else {
		o.head = s.next
	}
	if s.next != noSlot {
		o.slots[s.next].prev = s.prev
	} else {
		o.tail = s.prev
	}
	s.prev, s.next = noSlot, noSlot
	o.count--
}

// moveToFront promotes slot i to most recently used.
// No-op when i is already the head, which also covers the singleton case.
func (o *order[K, V]) moveToFront(i int32) {
	if o.head == i {
		return
	}
	o.unlink(i)
	o.pushFront(i)
}

// popBack unlinks and returns the least recently used slot index,
// or noSlot when the order is empty.
func (o *order[K, V]) popBack() int32 {
	i := o.tail
	if i == noSlot {
		return noSlot
	}
	o.unlink(i)
	return i
}

func (o *order[K, V]) len() int { return o.count }
