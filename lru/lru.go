package lru

import (
	"sync"

	"github.com/raniellyferreira/adaptive-cache/internal/list"
)

// Option configures a Cache.
type Option[K comparable, V any] func(*Cache[K, V])

// WithOnEvicted sets a callback invoked with every entry the cache evicts
// on overflow. The callback runs while the cache lock is held and must not
// call back into the cache.
func WithOnEvicted[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.onEvicted = fn
	}
}

// Cache is a capacity-bounded LRU cache. It is safe for concurrent use.
type Cache[K comparable, V any] struct {
	mu        sync.Mutex
	capacity  int
	entries   *list.List[K, V]
	index     map[K]*list.Element[K, V]
	onEvicted func(key K, value V)
}

// New creates an LRU cache holding at most capacity entries. A capacity of
// zero or less yields a cache that stores nothing.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *Cache[K, V] {
	c := &Cache[K, V]{
		capacity: capacity,
		entries:  list.New[K, V](),
		index:    make(map[K]*list.Element[K, V]),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Put inserts or updates a value. Updating an existing key counts as an
// access. If the cache is full the least-recently-used entry is evicted
// first.
func (c *Cache[K, V]) Put(key K, value V) {
	if c.capacity <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.index[key]; ok {
		e.Value = value
		e.Count++
		c.entries.MoveToBack(e)
		return
	}

	if len(c.index) >= c.capacity {
		c.evictOldest()
	}
	e := &list.Element[K, V]{Key: key, Value: value, Count: 1}
	c.entries.PushBack(e)
	c.index[key] = e
}

// Get looks up a key, marking it most-recently used on a hit.
func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.index[key]
	if !ok {
		return value, false
	}
	e.Count++
	c.entries.MoveToBack(e)
	return e.Value, true
}

// Remove deletes a key, reporting whether it was present.
func (c *Cache[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.index[key]
	if !ok {
		return false
	}
	c.entries.Remove(e)
	delete(c.index, key)
	return true
}

// Len returns the number of resident entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.index)
}

// Oldest returns the least-recently-used entry without touching its
// position. ok is false when the cache is empty.
func (c *Cache[K, V]) Oldest() (key K, value V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entries.Front()
	if e == nil {
		return key, value, false
	}
	return e.Key, e.Value, true
}

func (c *Cache[K, V]) evictOldest() {
	e := c.entries.PopFront()
	if e == nil {
		return
	}
	delete(c.index, e.Key)
	if c.onEvicted != nil {
		c.onEvicted(e.Key, e.Value)
	}
}
