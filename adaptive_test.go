package adaptivecache_test

import (
	"sync"
	"testing"

	adaptivecache "github.com/raniellyferreira/adaptive-cache"
)

func TestAdaptivePutGet(t *testing.T) {
	c, err := adaptivecache.NewAdaptive[string, string](10)
	if err != nil {
		t.Fatalf("NewAdaptive() error = %v", err)
	}

	c.Put("key1", "value1")
	v, ok := c.Get("key1")
	if !ok {
		t.Fatal("Expected key to exist")
	}
	if v != "value1" {
		t.Errorf("Get() = %s, want value1", v)
	}

	_, ok = c.Get("nonexistent")
	if ok {
		t.Fatal("Expected key to not exist")
	}
}

func TestAdaptiveInitialStrategy(t *testing.T) {
	c, err := adaptivecache.NewAdaptive[int, int](10)
	if err != nil {
		t.Fatalf("NewAdaptive() error = %v", err)
	}
	if got := c.CurrentStrategy(); got != adaptivecache.StrategyLFUAging {
		t.Errorf("CurrentStrategy() = %v, want %v", got, adaptivecache.StrategyLFUAging)
	}

	c, err = adaptivecache.NewAdaptive[int, int](10,
		adaptivecache.WithInitialStrategy(adaptivecache.StrategyARC))
	if err != nil {
		t.Fatalf("NewAdaptive() error = %v", err)
	}
	if got := c.CurrentStrategy(); got != adaptivecache.StrategyARC {
		t.Errorf("CurrentStrategy() = %v, want %v", got, adaptivecache.StrategyARC)
	}
}

func TestAdaptiveOptionValidation(t *testing.T) {
	for name, opt := range map[string]adaptivecache.AdaptiveOption{
		"eval period": adaptivecache.WithEvalPeriod(0),
		"threshold":   adaptivecache.WithSwitchThreshold(1.5),
		"strategy":    adaptivecache.WithInitialStrategy(adaptivecache.Strategy(99)),
		"nil logger":  adaptivecache.WithLogger(nil),
	} {
		if _, err := adaptivecache.NewAdaptive[int, int](10, opt); err == nil {
			t.Errorf("NewAdaptive() with invalid %s: expected error", name)
		}
	}
}

// A shadow engine whose measured hit-rate beats the serving engine by
// more than the threshold takes over at the evaluation tick, and not
// before.
func TestAdaptiveSwitchesAtEvaluationTick(t *testing.T) {
	const capacity = 30
	c, err := adaptivecache.NewAdaptive[int, int](capacity)
	if err != nil {
		t.Fatalf("NewAdaptive() error = %v", err)
	}

	// Warm every shadow with the same resident set and 900 hitting reads.
	for k := 0; k < capacity; k++ {
		c.Put(k, k)
	}
	for round := 0; round < 30; round++ {
		for k := 0; k < capacity; k++ {
			c.Get(k)
		}
	}

	// Shift the working set: recency-biased engines follow, the
	// frequency-biased serving engine keeps the old hot set.
	for k := 100; k < 100+capacity; k++ {
		c.Put(k, k)
	}

	// 99 more reads of the new set bring the total to 999: one short of
	// the evaluation tick, so the serving engine must be unchanged.
	for i := 0; i < 99; i++ {
		c.Get(100 + i%capacity)
	}
	if got := c.CurrentStrategy(); got != adaptivecache.StrategyLFUAging {
		t.Fatalf("CurrentStrategy() before tick = %v, want %v", got, adaptivecache.StrategyLFUAging)
	}

	// The 1000th read evaluates: LRU has been hitting the shifted set
	// while LFU-aging missed it, a gap far above the 0.02 threshold.
	c.Get(100 + 99%capacity)
	if got := c.CurrentStrategy(); got != adaptivecache.StrategyLRU {
		t.Fatalf("CurrentStrategy() after tick = %v, want %v", got, adaptivecache.StrategyLRU)
	}

	rates := c.StrategyHitRates()
	if rates[adaptivecache.StrategyLRU] <= rates[adaptivecache.StrategyLFUAging] {
		t.Errorf("hit rates = %v, want LRU above LFU-aging", rates)
	}
}

// Reads keep returning the broadcast value across several evaluation
// ticks; every shadow hits, so the serving engine never changes.
func TestAdaptiveServesAcrossEvaluations(t *testing.T) {
	c, err := adaptivecache.NewAdaptive[int, int](4,
		adaptivecache.WithEvalPeriod(10),
		adaptivecache.WithInitialStrategy(adaptivecache.StrategyLRU))
	if err != nil {
		t.Fatalf("NewAdaptive() error = %v", err)
	}

	c.Put(1, 100)
	for i := 0; i < 50; i++ {
		if v, ok := c.Get(1); !ok || v != 100 {
			t.Fatalf("Get() = (%d, %v) at read %d, want (100, true)", v, ok, i)
		}
	}
}

type recordingCollector struct {
	mu       sync.Mutex
	hits     int
	misses   int
	switches [][2]adaptivecache.Strategy
}

func (r *recordingCollector) RecordHit(adaptivecache.Strategy) {
	r.mu.Lock()
	r.hits++
	r.mu.Unlock()
}

func (r *recordingCollector) RecordMiss(adaptivecache.Strategy) {
	r.mu.Lock()
	r.misses++
	r.mu.Unlock()
}

func (r *recordingCollector) RecordStrategySwitch(from, to adaptivecache.Strategy) {
	r.mu.Lock()
	r.switches = append(r.switches, [2]adaptivecache.Strategy{from, to})
	r.mu.Unlock()
}

func TestAdaptiveMetrics(t *testing.T) {
	col := &recordingCollector{}
	c, err := adaptivecache.NewAdaptive[int, int](4, adaptivecache.WithCollector(col))
	if err != nil {
		t.Fatalf("NewAdaptive() error = %v", err)
	}

	c.Put(1, 1)
	c.Get(1)
	c.Get(2)

	col.mu.Lock()
	defer col.mu.Unlock()
	if col.hits != 1 {
		t.Errorf("hits = %d, want 1", col.hits)
	}
	if col.misses != 1 {
		t.Errorf("misses = %d, want 1", col.misses)
	}
}

func TestAdaptiveRemove(t *testing.T) {
	c, err := adaptivecache.NewAdaptive[int, int](4)
	if err != nil {
		t.Fatalf("NewAdaptive() error = %v", err)
	}

	c.Put(1, 1)
	if !c.Remove(1) {
		t.Error("Remove() = false, want true")
	}
	if _, ok := c.Get(1); ok {
		t.Error("Expected removed key to not exist")
	}
	if c.Remove(1) {
		t.Error("Remove() of absent key = true, want false")
	}
}

func TestAdaptiveConcurrentAccess(t *testing.T) {
	c, err := adaptivecache.NewAdaptive[int, int](64)
	if err != nil {
		t.Fatalf("NewAdaptive() error = %v", err)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				c.Put(i%100, i)
				c.Get(i % 100)
			}
		}(g)
	}
	wg.Wait()

	if got := c.Len(); got > 128 {
		t.Errorf("Len() = %d, want <= 128", got)
	}
}
