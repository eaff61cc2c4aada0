package arc

import "sync"

const defaultPromoteThreshold = 2

// Option configures a Cache.
type Option func(*config)

type config struct {
	promoteThreshold int
}

// WithPromoteThreshold sets the access count at which an entry in the
// recency half is copied into the frequency half. Values below 1 are
// ignored.
func WithPromoteThreshold(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.promoteThreshold = n
		}
	}
}

// Cache is an adaptive replacement cache. Both halves start with the full
// engine capacity and trade it one unit at a time on ghost hits. It is
// safe for concurrent use.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int

	recent   *recencyHalf[K, V]
	frequent *frequencyHalf[K, V]
}

// New creates an ARC cache with the given capacity.
func New[K comparable, V any](capacity int, opts ...Option) *Cache[K, V] {
	cfg := config{promoteThreshold: defaultPromoteThreshold}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Cache[K, V]{
		capacity: capacity,
		recent:   newRecencyHalf[K, V](capacity, cfg.promoteThreshold),
		frequent: newFrequencyHalf[K, V](capacity),
	}
}

// Put inserts or updates a value. The entry always lands in the recency
// half; a copy already promoted to the frequency half is refreshed too.
func (c *Cache[K, V]) Put(key K, value V) {
	if c.capacity <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.arbitrate(key)
	inFrequent := c.frequent.contains(key)
	c.recent.put(key, value)
	if inFrequent {
		c.frequent.put(key, value)
	}
}

// Get looks up a key in the recency half first, promoting it into the
// frequency half when its access count crosses the threshold, then falls
// back to the frequency half.
func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	if c.capacity <= 0 {
		return value, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.arbitrate(key)
	if v, promote, ok := c.recent.get(key); ok {
		if promote {
			c.frequent.put(key, v)
		}
		return v, true
	}
	return c.frequent.get(key)
}

// Remove deletes a key from both halves, ghosts included.
func (c *Cache[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := c.recent.remove(key)
	if c.frequent.remove(key) {
		removed = true
	}
	return removed
}

// Len returns the number of entries resident across both halves. An
// entry promoted but not yet evicted from the recency half is counted in
// each.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recent.size() + c.frequent.size()
}

// arbitrate consumes at most one ghost record for the key and shifts one
// unit of capacity toward the half that recently lost it.
func (c *Cache[K, V]) arbitrate(key K) {
	if c.frequent.checkGhost(key) {
		if c.recent.decreaseCapacity() {
			c.frequent.increaseCapacity()
		}
	} else if c.recent.checkGhost(key) {
		if c.frequent.decreaseCapacity() {
			c.recent.increaseCapacity()
		}
	}
}
