// Package lru provides the least-recently-used eviction engine and its
// K-times-before-promotion variant.
//
// The plain engine keeps a single recency-ordered list with a hash index;
// every operation is O(1). The K variant admits a key to the main cache
// only after it has been seen K times, tracking candidates in a history
// cache sized as a multiple of the main capacity.
//
// Basic usage:
//
//	c := lru.New[string, int](128)
//	c.Put("answer", 42)
//	v, ok := c.Get("answer")
//
// Both caches are safe for concurrent use.
package lru
