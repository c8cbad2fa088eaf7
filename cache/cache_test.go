package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](4)

	if _, ok := c.Get("a"); ok {
		t.Error("Get on empty cache reported a hit")
	}

	c.Set("a", 1)
	c.Set("b", 2)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v; want 1, true", v, ok)
	}
	if v, ok := c.Get("b"); !ok || v != 2 {
		t.Errorf("Get(b) = %d, %v; want 2, true", v, ok)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}

	// Updating an existing key does not grow the cache.
	c.Set("a", 10)
	if v, _ := c.Get("a"); v != 10 {
		t.Errorf("Get(a) after update = %d, want 10", v)
	}
	if c.Len() != 2 {
		t.Errorf("Len() after update = %d, want 2", c.Len())
	}
}

func TestCacheEviction(t *testing.T) {
	c := New[int, int](2)

	c.Set(1, 1)
	c.Set(2, 2)
	c.Set(3, 3) // evicts 1, the least recently used

	if _, ok := c.Get(1); ok {
		t.Error("oldest entry survived eviction")
	}
	if _, ok := c.Get(2); !ok {
		t.Error("entry 2 evicted prematurely")
	}
	if _, ok := c.Get(3); !ok {
		t.Error("entry 3 evicted prematurely")
	}
}

func TestCacheLRUOrder(t *testing.T) {
	c := New[int, int](2)

	c.Set(1, 1)
	c.Set(2, 2)
	c.Get(1)    // 1 becomes most recently used
	c.Set(3, 3) // evicts 2

	if _, ok := c.Get(1); !ok {
		t.Error("recently used entry evicted")
	}
	if _, ok := c.Get(2); ok {
		t.Error("least recently used entry survived")
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](4)

	calls := 0
	create := func() int {
		calls++
		return 42
	}

	if v := c.GetOrCreate("k", create); v != 42 {
		t.Errorf("GetOrCreate = %d, want 42", v)
	}
	if v := c.GetOrCreate("k", create); v != 42 {
		t.Errorf("GetOrCreate = %d, want 42", v)
	}
	if calls != 1 {
		t.Errorf("create ran %d times, want 1", calls)
	}
}

func TestCacheDeleteClear(t *testing.T) {
	c := New[string, int](4)
	c.Set("a", 1)
	c.Set("b", 2)

	if !c.Delete("a") {
		t.Error("Delete(a) = false, want true")
	}
	if c.Delete("a") {
		t.Error("Delete(a) twice = true, want false")
	}
	if _, ok := c.Get("a"); ok {
		t.Error("deleted entry still present")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	if _, ok := c.Get("b"); ok {
		t.Error("cleared entry still present")
	}
}

func TestCacheDefaultCapacity(t *testing.T) {
	c := New[int, int](0)
	if c.Capacity() != DefaultCapacity {
		t.Errorf("Capacity() = %d, want %d", c.Capacity(), DefaultCapacity)
	}
}

func TestCacheStats(t *testing.T) {
	c := New[string, int](4)
	c.Set("a", 1)

	c.Get("a") // hit
	c.Get("b") // miss
	c.Get("a") // hit

	stats := c.Stats()
	if stats.Hits != 2 || stats.Misses != 1 {
		t.Errorf("Stats = %+v, want 2 hits, 1 miss", stats)
	}
	if stats.HitRate < 0.66 || stats.HitRate > 0.67 {
		t.Errorf("HitRate = %v, want ~0.67", stats.HitRate)
	}
	if stats.Len != 1 || stats.Capacity != 4 {
		t.Errorf("Stats = %+v, want len 1, capacity 4", stats)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[string, int](64)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				key := fmt.Sprintf("k%d", j%32)
				c.Set(key, n)
				c.Get(key)
				c.GetOrCreate(key, func() int { return n })
			}
		}(i)
	}
	wg.Wait()

	if c.Len() > 64 {
		t.Errorf("Len() = %d exceeds capacity", c.Len())
	}
}
