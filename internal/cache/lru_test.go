package cache

import (
	"strconv"
	"testing"
	"time"
)

func TestLRUCacheGetSet(t *testing.T) {
	c := NewLRUCache[int](2, time.Minute)

	if _, ok := c.Get("a"); ok {
		t.Fatal("empty cache should miss")
	}

	c.Set("a", 1)
	c.Set("b", 2)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("expected hit for a=1, got %d ok=%v", v, ok)
	}

	// "a" was just touched, so adding "c" evicts "b".
	c.Set("c", 3)
	if _, ok := c.Get("b"); ok {
		t.Fatal("least recently used entry should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Fatal("recently used entry should survive eviction")
	}
	if c.Size() != 2 {
		t.Fatalf("expected size 2, got %d", c.Size())
	}
}

func TestLRUCacheTTL(t *testing.T) {
	c := NewLRUCache[string](8, 20*time.Millisecond)
	c.Set("k", "v")
	if _, ok := c.Get("k"); !ok {
		t.Fatal("fresh entry should hit")
	}
	time.Sleep(40 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Fatal("expired entry should miss")
	}
}

func TestCleanExpired(t *testing.T) {
	c := NewLRUCache[int](16, 10*time.Millisecond)
	for i := 0; i < 5; i++ {
		c.Set(strconv.Itoa(i), i)
	}
	time.Sleep(30 * time.Millisecond)
	c.Set("fresh", 1)

	if removed := c.CleanExpired(); removed != 5 {
		t.Fatalf("expected 5 expired entries removed, got %d", removed)
	}
	if c.Size() != 1 {
		t.Fatalf("expected only the fresh entry to remain, got %d", c.Size())
	}
}
