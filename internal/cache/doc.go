// Package cache provides a generic, thread-safe LRU cache with a hard
// capacity bound.
//
//	c := cache.New[string, int](10)
//	c.OnEvict(func(key string, _ int) { log.Println("evicted", key) })
//	value := c.GetOrCreate("key", func() int { return 42 })
//
// When an insertion pushes the cache over capacity, the least recently
// used entry is evicted. Every GetOrCreate counts as a use.
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
