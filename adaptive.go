package adaptivecache

import (
	"sync"

	"github.com/raniellyferreira/adaptive-cache/arc"
	"github.com/raniellyferreira/adaptive-cache/lfu"
	"github.com/raniellyferreira/adaptive-cache/lru"
)

// Strategy identifies one of the wrapped eviction engines.
type Strategy int

const (
	// StrategyLRU evicts the least-recently-used entry.
	StrategyLRU Strategy = iota

	// StrategyLFU evicts the least-frequently-used entry, with the
	// default mild aging.
	StrategyLFU

	// StrategyLFUAging is LFU with aggressive frequency decay, suited to
	// workloads whose hot set drifts.
	StrategyLFUAging

	// StrategyARC partitions capacity between recency and frequency
	// halves, re-balancing on ghost hits.
	StrategyARC
)

// String returns the strategy name
func (s Strategy) String() string {
	switch s {
	case StrategyLRU:
		return "lru"
	case StrategyLFU:
		return "lfu"
	case StrategyLFUAging:
		return "lfu-aging"
	case StrategyARC:
		return "arc"
	default:
		return "unknown"
	}
}

// Tuning of the aggressive LFU shadow.
const (
	agingMaxAverageFreq = 8000
	agingThreshold      = 1000
	agingFactor         = 0.5
)

// shadow pairs a wrapped engine with its running hit statistics.
type shadow[K comparable, V any] struct {
	strategy Strategy
	cache    Cache[K, V]
	hits     int64
	total    int64
}

func (s *shadow[K, V]) hitRate() float64 {
	if s.total == 0 {
		return 0
	}
	return float64(s.hits) / float64(s.total)
}

// Adaptive runs four shadow engines in lockstep and serves every request
// from the one with the best measured hit-rate. Writes are broadcast so
// all shadows stay warm; reads touch every shadow to keep the per-engine
// statistics comparable, and only the serving engine's answer is
// returned. It is safe for concurrent use.
type Adaptive[K comparable, V any] struct {
	mu      sync.Mutex
	cfg     *adaptiveConfig
	shadows []*shadow[K, V]
	serving int

	// gets counts Get calls and gates re-evaluation.
	gets int
}

// NewAdaptive creates a coordinator over LRU, LFU, LFU-aging and ARC
// shadows of the given capacity. The LFU-aging shadow serves first.
//
// Example:
//
//	cache, err := adaptivecache.NewAdaptive[string, int](1000,
//		adaptivecache.WithSwitchThreshold(0.05),
//	)
func NewAdaptive[K comparable, V any](capacity int, opts ...AdaptiveOption) (*Adaptive[K, V], error) {
	cfg := defaultAdaptiveConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	a := &Adaptive[K, V]{
		cfg: cfg,
		shadows: []*shadow[K, V]{
			{strategy: StrategyLRU, cache: lru.New[K, V](capacity)},
			{strategy: StrategyLFU, cache: lfu.New[K, V](capacity)},
			{strategy: StrategyLFUAging, cache: lfu.New[K, V](capacity,
				lfu.WithMaxAverageFrequency(agingMaxAverageFreq),
				lfu.WithAging(agingThreshold, agingFactor),
			)},
			{strategy: StrategyARC, cache: arc.New[K, V](capacity)},
		},
	}
	a.serving = int(cfg.initialStrategy)
	return a, nil
}

// Put broadcasts the write to every shadow engine.
func (a *Adaptive[K, V]) Put(key K, value V) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, s := range a.shadows {
		s.cache.Put(key, value)
	}
}

// Get reads through every shadow engine, recording per-engine hits, and
// returns the serving engine's answer. Every evalPeriod calls the
// hit-rates are compared and the serving engine may change.
func (a *Adaptive[K, V]) Get(key K) (value V, ok bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, s := range a.shadows {
		v, hit := s.cache.Get(key)
		s.total++
		if hit {
			s.hits++
		}
		if i == a.serving {
			value, ok = v, hit
		}
	}

	if m := a.cfg.metrics; m != nil {
		if ok {
			m.RecordHit(Strategy(a.serving))
		} else {
			m.RecordMiss(Strategy(a.serving))
		}
	}

	a.gets++
	if a.gets%a.cfg.evalPeriod == 0 {
		a.evaluate()
	}
	return value, ok
}

// Remove broadcasts the deletion, reporting whether any shadow held the
// key.
func (a *Adaptive[K, V]) Remove(key K) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	removed := false
	for _, s := range a.shadows {
		if s.cache.Remove(key) {
			removed = true
		}
	}
	return removed
}

// Len returns the serving engine's resident count.
func (a *Adaptive[K, V]) Len() int {
	a.mu.Lock()
	s := a.shadows[a.serving]
	a.mu.Unlock()
	return s.cache.Len()
}

// CurrentStrategy returns the strategy currently serving reads.
func (a *Adaptive[K, V]) CurrentStrategy() Strategy {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.shadows[a.serving].strategy
}

// StrategyHitRates returns each shadow engine's running hit-rate.
func (a *Adaptive[K, V]) StrategyHitRates() map[Strategy]float64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	rates := make(map[Strategy]float64, len(a.shadows))
	for _, s := range a.shadows {
		rates[s.strategy] = s.hitRate()
	}
	return rates
}

// evaluate switches to the best shadow when its advantage over the
// serving engine exceeds the threshold. Counters are kept across the
// switch so transient noise cannot flap the selection. Caller holds a.mu.
func (a *Adaptive[K, V]) evaluate() {
	best := a.serving
	for i, s := range a.shadows {
		if s.hitRate() > a.shadows[best].hitRate() {
			best = i
		}
	}
	if best == a.serving {
		return
	}
	if a.shadows[best].hitRate()-a.shadows[a.serving].hitRate() <= a.cfg.switchThreshold {
		return
	}

	from := a.shadows[a.serving].strategy
	to := a.shadows[best].strategy
	a.serving = best

	a.cfg.logger.Debug("switching cache strategy",
		Field{Key: "from", Value: from.String()},
		Field{Key: "to", Value: to.String()},
		Field{Key: "hitRate", Value: a.shadows[best].hitRate()},
	)
	if m := a.cfg.metrics; m != nil {
		m.RecordStrategySwitch(from, to)
	}
}
