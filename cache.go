package adaptivecache

import (
	"github.com/raniellyferreira/adaptive-cache/arc"
	"github.com/raniellyferreira/adaptive-cache/lfu"
	"github.com/raniellyferreira/adaptive-cache/lru"
	"github.com/raniellyferreira/adaptive-cache/tinylfu"
)

// Cache is the contract shared by every eviction engine in this module.
//
// Implementations are safe for concurrent use and resolve capacity
// overflow before returning, so Len never exceeds the configured
// capacity bound of the engine. Put of an existing key updates the value
// and counts as one access for the engine's ordering.
type Cache[K comparable, V any] interface {
	// Put inserts or updates a value, evicting one entry first when the
	// cache is full.
	Put(key K, value V)

	// Get looks up a key with the engine's usual side effects on
	// recency or frequency metadata.
	Get(key K) (value V, ok bool)

	// Remove deletes a key, reporting whether it was resident. Removing
	// an absent key is a no-op.
	Remove(key K) bool

	// Len returns the current number of resident entries.
	Len() int
}

// Every engine in the module satisfies the contract.
var (
	_ Cache[int, int]    = (*lru.Cache[int, int])(nil)
	_ Cache[int, int]    = (*lru.KCache[int, int])(nil)
	_ Cache[int, int]    = (*lfu.Cache[int, int])(nil)
	_ Cache[int, int]    = (*arc.Cache[int, int])(nil)
	_ Cache[int, int]    = (*tinylfu.Cache[int, int])(nil)
	_ Cache[int, int]    = (*Adaptive[int, int])(nil)
	_ Cache[string, int] = (*Sharded[int])(nil)
)
