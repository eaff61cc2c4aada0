// Package adaptivecache provides a family of in-memory key-value caches
// sharing one eviction-engine contract, plus the coordination layers that
// sit above them.
//
// The engines live in subpackages: lru (plain LRU and the K-promotion
// variant), lfu (LFU with frequency aging), arc (adaptive replacement
// cache) and tinylfu (W-TinyLFU with a Count-Min sketch admission
// filter). This package defines the shared Cache contract, the Adaptive
// coordinator that runs several engines in parallel and serves from the
// one with the best measured hit-rate, and a hash-sharded wrapper for
// high-concurrency string-keyed workloads.
//
// Basic usage:
//
//	cache, err := adaptivecache.NewAdaptive[string, string](1000)
//	if err != nil {
//		log.Fatal(err)
//	}
//	cache.Put("key", "value")
//	v, ok := cache.Get("key")
//	fmt.Println(v, ok, cache.CurrentStrategy())
//
// The library supports:
//
//   - A uniform Put/Get/Remove/Len contract across all engines
//   - Self-tuning eviction (ARC ghost lists, W-TinyLFU admission)
//   - Hit-rate driven strategy switching with shadow engines
//   - Hash-sharded wrapping for concurrent string-keyed workloads
//   - Structured logging and pluggable metrics collection
//
// Every engine is safe for concurrent use; data-plane operations never
// fail. A missed Get reports ok=false, a Put into a zero-capacity cache
// is a no-op and removing an absent key does nothing.
package adaptivecache
