package llm

import (
	"fmt"
	"testing"
	"time"
)

func TestResponseCache_BasicOperations(t *testing.T) {
	cache := NewResponseCache(10, time.Minute)

	if cache.Size() != 0 {
		t.Errorf("expected size 0, got %d", cache.Size())
	}

	cache.Put("translate:find dy/dx", "d/dx(x^2)")
	if cache.Size() != 1 {
		t.Errorf("expected size 1, got %d", cache.Size())
	}

	got, ok := cache.Get("translate:find dy/dx")
	if !ok {
		t.Fatal("expected to find cached entry")
	}
	if got != "d/dx(x^2)" {
		t.Errorf("expected 'd/dx(x^2)', got '%s'", got)
	}

	if _, ok := cache.Get("translate:missing"); ok {
		t.Error("expected miss for absent key")
	}

	hits, misses := cache.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("expected 1 hit and 1 miss, got %d and %d", hits, misses)
	}
}

func TestResponseCache_LRUEviction(t *testing.T) {
	cache := NewResponseCache(3, time.Minute)

	for i := 1; i <= 3; i++ {
		cache.Put(fmt.Sprintf("key-%d", i), "value")
	}
	// Touch key-1 so key-2 becomes the eviction candidate.
	cache.Get("key-1")

	cache.Put("key-4", "value")
	if cache.Size() != 3 {
		t.Errorf("expected size 3 after eviction, got %d", cache.Size())
	}
	if _, ok := cache.Get("key-2"); ok {
		t.Error("expected key-2 to be evicted")
	}
	if _, ok := cache.Get("key-1"); !ok {
		t.Error("expected key-1 to survive eviction")
	}
}

func TestResponseCache_TTLExpiry(t *testing.T) {
	cache := NewResponseCache(10, 10*time.Millisecond)

	cache.Put("key", "value")
	time.Sleep(20 * time.Millisecond)

	if _, ok := cache.Get("key"); ok {
		t.Error("expected expired entry to miss")
	}
	if cache.Size() != 0 {
		t.Errorf("expected expired entry to be dropped, size %d", cache.Size())
	}
}

func TestResponseCache_Clear(t *testing.T) {
	cache := NewResponseCache(10, time.Minute)
	cache.Put("key", "value")
	cache.Clear()
	if cache.Size() != 0 {
		t.Errorf("expected empty cache, got %d", cache.Size())
	}
}
