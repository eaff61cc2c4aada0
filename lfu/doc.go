// Package lfu provides the least-frequently-used eviction engine with
// frequency aging.
//
// Entries are grouped into frequency buckets; within a bucket the
// least-recent entry is the eviction victim. Two aging mechanisms keep
// historically hot but currently cold keys from pinning the cache: a
// proportional decay pass every agingThreshold operations, and a
// shift-down pass when the mean frequency exceeds maxAverageFreq.
//
// Basic usage:
//
//	c := lfu.New[string, int](128)
//	c.Put("answer", 42)
//	v, ok := c.Get("answer")
//
// The cache is safe for concurrent use.
package lfu
