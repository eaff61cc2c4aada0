package lru

import "sync"

const (
	defaultPromoteAfter = 2
	defaultHistoryRatio = 2.5
)

type kConfig struct {
	promoteAfter int
	historyRatio float64
}

// KOption configures a KCache.
type KOption func(*kConfig)

// WithPromoteAfter sets how many times a key must be seen before it is
// admitted to the main cache. Values below 1 are ignored.
func WithPromoteAfter(k int) KOption {
	return func(c *kConfig) {
		if k >= 1 {
			c.promoteAfter = k
		}
	}
}

// WithHistoryRatio sets the history cache capacity as a multiple of the
// main capacity. Non-positive ratios are ignored.
func WithHistoryRatio(ratio float64) KOption {
	return func(c *kConfig) {
		if ratio > 0 {
			c.historyRatio = ratio
		}
	}
}

// KCache admits a key to its main LRU only after the key has been seen
// promoteAfter times. Candidate keys live in a history LRU holding their
// access counts; the most recent value seen for a candidate is stashed so
// promotion can install it. It is safe for concurrent use.
type KCache[K comparable, V any] struct {
	mu           sync.Mutex
	capacity     int
	promoteAfter int

	main    *Cache[K, V]
	history *Cache[K, int]
	pending map[K]V
}

// NewK creates a K-promotion LRU cache. The defaults are promotion after
// 2 accesses and a history sized at 2.5x the main capacity.
func NewK[K comparable, V any](capacity int, opts ...KOption) *KCache[K, V] {
	cfg := kConfig{promoteAfter: defaultPromoteAfter, historyRatio: defaultHistoryRatio}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	c := &KCache[K, V]{
		capacity:     capacity,
		promoteAfter: cfg.promoteAfter,
		main:         New[K, V](capacity),
		pending:      make(map[K]V),
	}
	// When the history forgets a candidate its stashed value goes with it.
	c.history = New[K, int](int(float64(capacity)*cfg.historyRatio), WithOnEvicted[K, int](func(key K, _ int) {
		delete(c.pending, key)
	}))
	return c
}

// Put inserts or updates a value. A key already in the main cache is
// updated in place; otherwise the access is recorded in the history and
// the key is promoted once it reaches the threshold.
func (c *KCache[K, V]) Put(key K, value V) {
	if c.capacity <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.main.Get(key); ok {
		c.main.Put(key, value)
		return
	}

	count, _ := c.history.Get(key)
	count++
	c.history.Put(key, count)
	c.pending[key] = value

	if count >= c.promoteAfter {
		c.promote(key)
	}
}

// Get consults the main cache first. On a main miss the access still
// counts toward promotion; a key that crosses the threshold here is
// promoted with its stashed value and reported as a hit.
func (c *KCache[K, V]) Get(key K) (value V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.main.Get(key); ok {
		return v, true
	}

	count, _ := c.history.Get(key)
	count++
	c.history.Put(key, count)

	if count >= c.promoteAfter {
		if v, stashed := c.pending[key]; stashed {
			c.promote(key)
			return v, true
		}
	}
	return value, false
}

// Remove deletes a key from the main cache and forgets any promotion
// history for it. It reports whether the key was resident in main.
func (c *KCache[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.history.Remove(key)
	delete(c.pending, key)
	return c.main.Remove(key)
}

// Len returns the number of entries resident in the main cache.
func (c *KCache[K, V]) Len() int {
	return c.main.Len()
}

// promote moves a candidate into the main cache with its stashed value.
// Caller holds c.mu and has verified the stash exists or does not care.
func (c *KCache[K, V]) promote(key K) {
	value, ok := c.pending[key]
	if !ok {
		return
	}
	c.history.Remove(key)
	delete(c.pending, key)
	c.main.Put(key, value)
}
