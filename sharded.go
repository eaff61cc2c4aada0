package adaptivecache

import (
	"github.com/cespare/xxhash/v2"

	"github.com/raniellyferreira/adaptive-cache/lru"
)

const defaultShardCount = 16

// shardedConfig holds the configuration for a Sharded cache
type shardedConfig[V any] struct {
	shards  int
	factory func(capacity int) Cache[string, V]
}

// ShardedOption is a function that configures a Sharded cache
type ShardedOption[V any] func(*shardedConfig[V])

// WithShardCount sets the number of shards.
// The number is automatically rounded up to the next power of 2 for optimal performance
func WithShardCount[V any](count int) ShardedOption[V] {
	return func(c *shardedConfig[V]) {
		if count > 0 {
			c.shards = count
		}
	}
}

// WithShardEngine sets the factory used to build each shard. The factory
// receives the per-shard capacity. The default builds plain LRU shards.
func WithShardEngine[V any](factory func(capacity int) Cache[string, V]) ShardedOption[V] {
	return func(c *shardedConfig[V]) {
		if factory != nil {
			c.factory = factory
		}
	}
}

// Sharded spreads a string-keyed cache over several independently locked
// engine instances so concurrent callers rarely contend. Total capacity
// is divided evenly; keys are routed by xxhash.
type Sharded[V any] struct {
	shards    []Cache[string, V]
	shardMask uint64
}

// NewSharded creates a sharded cache with the given total capacity and
// default number of shards (16)
func NewSharded[V any](capacity int, opts ...ShardedOption[V]) *Sharded[V] {
	cfg := shardedConfig[V]{
		shards: defaultShardCount,
		factory: func(capacity int) Cache[string, V] {
			return lru.New[string, V](capacity)
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	shards := nextPowerOf2(cfg.shards)
	perShard := (capacity + shards - 1) / shards

	s := &Sharded[V]{
		shards:    make([]Cache[string, V], shards),
		shardMask: uint64(shards - 1),
	}
	for i := range s.shards {
		s.shards[i] = cfg.factory(perShard)
	}
	return s
}

// nextPowerOf2 returns the next power of 2 >= n
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// keyHash computes the hash for a key and returns the shard index
func (s *Sharded[V]) keyHash(key string) uint64 {
	return xxhash.Sum64String(key) & s.shardMask
}

// Put inserts or updates a value in the key's shard.
func (s *Sharded[V]) Put(key string, value V) {
	s.shards[s.keyHash(key)].Put(key, value)
}

// Get looks up a key in its shard.
func (s *Sharded[V]) Get(key string) (V, bool) {
	return s.shards[s.keyHash(key)].Get(key)
}

// Remove deletes a key from its shard.
func (s *Sharded[V]) Remove(key string) bool {
	return s.shards[s.keyHash(key)].Remove(key)
}

// Len returns the total resident count across shards.
func (s *Sharded[V]) Len() int {
	total := 0
	for _, shard := range s.shards {
		total += shard.Len()
	}
	return total
}
