// Package tinylfu provides the W-TinyLFU eviction engine and its
// Count-Min sketch frequency estimator.
//
// The engine splits capacity into a small window LRU, which absorbs
// newly-seen keys, and a large victim LRU protected by an admission
// filter: a key evicted from the window displaces the victim's oldest
// entry only when the sketch estimates it to be at least as frequent.
// Sketch counters saturate at 255 and are halved every 1000 admissions so
// the estimate tracks the recent workload.
//
// Basic usage:
//
//	c := tinylfu.New[string, int](1000)
//	c.Put("answer", 42)
//	v, ok := c.Get("answer")
//
// The cache is safe for concurrent use.
package tinylfu
