package adaptivecache_test

import (
	"fmt"
	"sync"
	"testing"

	adaptivecache "github.com/raniellyferreira/adaptive-cache"
	"github.com/raniellyferreira/adaptive-cache/lfu"
)

func TestShardedPutGet(t *testing.T) {
	c := adaptivecache.NewSharded[string](256)

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

func TestShardedRouting(t *testing.T) {
	c := adaptivecache.NewSharded[int](256, adaptivecache.WithShardCount[int](8))

	for i := 0; i < 100; i++ {
		c.Put(fmt.Sprintf("key-%d", i), i)
	}
	for i := 0; i < 100; i++ {
		v, ok := c.Get(fmt.Sprintf("key-%d", i))
		if !ok || v != i {
			t.Fatalf("Get(key-%d) = (%d, %v), want (%d, true)", i, v, ok, i)
		}
	}
	if c.Len() != 100 {
		t.Errorf("Len() = %d, want 100", c.Len())
	}
}

func TestShardedRemove(t *testing.T) {
	c := adaptivecache.NewSharded[int](64)

	c.Put("key", 1)
	if !c.Remove("key") {
		t.Error("Remove() = false, want true")
	}
	if _, ok := c.Get("key"); ok {
		t.Error("Expected removed key to not exist")
	}
	if c.Remove("key") {
		t.Error("Remove() of absent key = true, want false")
	}
}

func TestShardedCustomEngine(t *testing.T) {
	c := adaptivecache.NewSharded[int](64,
		adaptivecache.WithShardCount[int](4),
		adaptivecache.WithShardEngine(func(capacity int) adaptivecache.Cache[string, int] {
			return lfu.New[string, int](capacity)
		}),
	)

	c.Put("key", 7)
	if v, ok := c.Get("key"); !ok || v != 7 {
		t.Errorf("Get() = (%d, %v), want (7, true)", v, ok)
	}
}

func TestShardedConcurrentAccess(t *testing.T) {
	c := adaptivecache.NewSharded[int](1024, adaptivecache.WithShardCount[int](32))

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				key := fmt.Sprintf("key-%d-%d", g, i%200)
				c.Put(key, i)
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()

	if c.Len() > 1024 {
		t.Errorf("Len() = %d, want <= 1024", c.Len())
	}
}
