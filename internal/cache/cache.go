package cache

import "sync"

// Cache is a generic thread-safe LRU cache with a hard capacity.
//
// Cache is safe for concurrent use.
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*cacheEntry[K, V]
	order    *lruList[K]
	capacity int
	onEvict  func(K, V)
}

// cacheEntry holds a cached value with its position in the LRU list.
type cacheEntry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// New creates a new cache holding at most capacity entries.
// A capacity below 1 is raised to 1.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache[K, V]{
		entries:  make(map[K]*cacheEntry[K, V]),
		order:    newLRUList[K](),
		capacity: capacity,
	}
}

// OnEvict registers a callback invoked (under the cache lock) for every
// entry removed because of the capacity bound.
func (c *Cache[K, V]) OnEvict(fn func(K, V)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvict = fn
}

// GetOrCreate returns the cached value or creates it, marking the entry
// most recently used. Inserting may evict the least recently used entry.
// create is called under lock to prevent duplicate creation.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		c.order.MoveToFront(entry.node)
		return entry.value
	}

	value := create()
	c.entries[key] = &cacheEntry[K, V]{
		value: value,
		node:  c.order.PushFront(key),
	}
	c.evictLocked()
	return value
}

// Delete removes an entry from the cache.
// Returns true if the entry was found and removed.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return false
	}
	c.order.Remove(entry.node)
	delete(c.entries, key)
	return true
}

// Clear removes all entries from the cache.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*cacheEntry[K, V])
	c.order.Clear()
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Capacity returns the maximum number of entries.
func (c *Cache[K, V]) Capacity() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.capacity
}

// SetCapacity changes the capacity, evicting least recently used entries
// if the cache is now over the bound. A capacity below 1 is raised to 1.
func (c *Cache[K, V]) SetCapacity(capacity int) {
	if capacity < 1 {
		capacity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.capacity = capacity
	c.evictLocked()
}

// evictLocked removes least recently used entries until within capacity.
// Caller must hold c.mu.
func (c *Cache[K, V]) evictLocked() {
	for len(c.entries) > c.capacity {
		key, ok := c.order.RemoveOldest()
		if !ok {
			return
		}
		entry := c.entries[key]
		delete(c.entries, key)
		if c.onEvict != nil {
			c.onEvict(key, entry.value)
		}
	}
}
