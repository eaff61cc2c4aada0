package tinylfu

import (
	"sync"

	"github.com/raniellyferreira/adaptive-cache/lru"
)

const (
	defaultWindowRatio = 0.01
	decayInterval      = 1000
	minSketchWidth     = 256
)

// Option configures a Cache.
type Option func(*config)

type config struct {
	windowRatio float64
}

// WithWindowRatio sets the fraction of capacity given to the window
// segment. Ratios outside (0, 1) are ignored.
func WithWindowRatio(ratio float64) Option {
	return func(c *config) {
		if ratio > 0 && ratio < 1 {
			c.windowRatio = ratio
		}
	}
}

// Cache is a W-TinyLFU cache: a window LRU for newly-seen keys in front
// of a victim LRU guarded by a frequency-based admission filter. It is
// safe for concurrent use.
type Cache[K comparable, V any] struct {
	mu sync.Mutex

	capacity  int
	windowCap int
	victimCap int

	window *lru.Cache[K, V]
	victim *lru.Cache[K, V]
	sketch *Sketch[K]

	// admissions counts calls into the admission procedure and drives
	// sketch decay.
	admissions int

	statsMu         sync.Mutex
	accesses        int
	hits            int
	windowHits      int
	victimHits      int
	admissionWins   int
	admissionLosses int
}

// New creates a W-TinyLFU cache with the given total capacity. The window
// takes capacity*windowRatio slots (at least one); the victim takes the
// rest. The sketch is sized at max(256, 4*capacity) counters per row.
func New[K comparable, V any](capacity int, opts ...Option) *Cache[K, V] {
	cfg := config{windowRatio: defaultWindowRatio}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	windowCap := int(float64(capacity) * cfg.windowRatio)
	if windowCap < 1 {
		windowCap = 1
	}
	victimCap := capacity - windowCap
	if victimCap < 1 {
		victimCap = capacity - 1
	}

	width := capacity * 4
	if width < minSketchWidth {
		width = minSketchWidth
	}

	return &Cache[K, V]{
		capacity:  capacity,
		windowCap: windowCap,
		victimCap: victimCap,
		window:    lru.New[K, V](windowCap),
		victim:    lru.New[K, V](victimCap),
		sketch:    NewSketch[K](width, defaultDepth, capacity),
	}
}

// Put inserts or updates a value. A key resident in either segment is
// updated in place; a new key enters the window, possibly pushing the
// window's oldest entry through the admission filter.
func (c *Cache[K, V]) Put(key K, value V) {
	if c.capacity <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sketch.Increment(key)

	if _, ok := c.window.Get(key); ok {
		c.window.Put(key, value)
		return
	}
	if _, ok := c.victim.Get(key); ok {
		// Stays in the victim segment; no migration to the window.
		c.victim.Put(key, value)
		return
	}

	c.ensureWindowRoom()
	c.window.Put(key, value)
}

// Get looks up a key in the window, then the victim. Hits refresh the
// entry's position inside its own segment only.
func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	if c.capacity <= 0 {
		return value, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sketch.Increment(key)

	if v, ok := c.window.Get(key); ok {
		c.recordAccess(true, true)
		return v, true
	}
	if v, ok := c.victim.Get(key); ok {
		c.recordAccess(true, false)
		return v, true
	}
	c.recordAccess(false, false)
	return value, false
}

// Remove deletes a key from whichever segment holds it.
func (c *Cache[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := c.window.Remove(key)
	if c.victim.Remove(key) {
		removed = true
	}
	return removed
}

// Len returns the number of resident entries across both segments.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.window.Len() + c.victim.Len()
}

// Reset drops every entry, zeroes the sketch and clears the statistics.
func (c *Cache[K, V]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.window = lru.New[K, V](c.windowCap)
	c.victim = lru.New[K, V](c.victimCap)
	c.sketch.Reset()
	c.admissions = 0
	c.ResetStats()
}

// ensureWindowRoom evicts the window's oldest entry into the admission
// procedure when the window is full.
func (c *Cache[K, V]) ensureWindowRoom() {
	if c.window.Len() < c.windowCap {
		return
	}
	key, value, ok := c.window.Oldest()
	if !ok {
		return
	}
	c.window.Remove(key)
	c.admit(key, value)
}

// admit decides whether a window evictee displaces the victim segment's
// oldest entry, comparing sketch estimates. Every 1000 admissions the
// sketch decays.
func (c *Cache[K, V]) admit(key K, value V) {
	c.admissions++
	if c.admissions%decayInterval == 0 {
		c.sketch.Decay()
	}

	if c.victim.Len() < c.victimCap {
		c.victim.Put(key, value)
		return
	}

	candidate, _, ok := c.victim.Oldest()
	if !ok {
		c.victim.Put(key, value)
		return
	}

	if c.sketch.Estimate(key) >= c.sketch.Estimate(candidate) {
		c.victim.Remove(candidate)
		c.victim.Put(key, value)
		c.statsMu.Lock()
		c.admissionWins++
		c.statsMu.Unlock()
	} else {
		c.statsMu.Lock()
		c.admissionLosses++
		c.statsMu.Unlock()
	}
}

func (c *Cache[K, V]) recordAccess(hit, window bool) {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()

	c.accesses++
	if hit {
		c.hits++
		if window {
			c.windowHits++
		} else {
			c.victimHits++
		}
	}
}

// HitRate returns the fraction of Get calls that hit.
func (c *Cache[K, V]) HitRate() float64 {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	if c.accesses == 0 {
		return 0
	}
	return float64(c.hits) / float64(c.accesses)
}

// WindowHitRate returns the fraction of hits served by the window.
func (c *Cache[K, V]) WindowHitRate() float64 {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	if c.hits == 0 {
		return 0
	}
	return float64(c.windowHits) / float64(c.hits)
}

// VictimHitRate returns the fraction of hits served by the victim segment.
func (c *Cache[K, V]) VictimHitRate() float64 {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	if c.hits == 0 {
		return 0
	}
	return float64(c.victimHits) / float64(c.hits)
}

// Accesses returns the number of Get calls observed.
func (c *Cache[K, V]) Accesses() int {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	return c.accesses
}

// AdmissionWins returns how many window evictees displaced a victim entry.
func (c *Cache[K, V]) AdmissionWins() int {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	return c.admissionWins
}

// AdmissionLosses returns how many window evictees the filter rejected.
func (c *Cache[K, V]) AdmissionLosses() int {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	return c.admissionLosses
}

// AdmissionWinRate returns wins / (wins + losses).
func (c *Cache[K, V]) AdmissionWinRate() float64 {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	total := c.admissionWins + c.admissionLosses
	if total == 0 {
		return 0
	}
	return float64(c.admissionWins) / float64(total)
}

// ResetStats clears the hit and admission counters.
func (c *Cache[K, V]) ResetStats() {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()

	c.accesses = 0
	c.hits = 0
	c.windowHits = 0
	c.victimHits = 0
	c.admissionWins = 0
	c.admissionLosses = 0
}

// WindowCapacity returns the window segment's capacity.
func (c *Cache[K, V]) WindowCapacity() int { return c.windowCap }

// VictimCapacity returns the victim segment's capacity.
func (c *Cache[K, V]) VictimCapacity() int { return c.victimCap }
