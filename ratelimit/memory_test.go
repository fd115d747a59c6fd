package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStore_EvictsLeastRecentlyUsed(t *testing.T) {
	store, err := NewMemoryStore(2)
	if err != nil {
		t.Fatalf("NewMemoryStore() error = %v", err)
	}
	ctx := context.Background()
	now := time.Now()

	store.Take(ctx, "a", 1, time.Minute, now)
	store.Take(ctx, "b", 1, time.Minute, now)
	// touch a so b becomes the eviction candidate
	store.Take(ctx, "a", 1, time.Minute, now)
	store.Take(ctx, "c", 1, time.Minute, now)

	if got := store.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	if got := store.Evicted(); got != 1 {
		t.Errorf("Evicted() = %d, want 1", got)
	}
	if _, ok, _ := store.Take(ctx, "a", 1, time.Minute, now); ok {
		t.Error("a should still be tracked and exhausted")
	}
	if _, ok, _ := store.Take(ctx, "b", 1, time.Minute, now); !ok {
		t.Error("b was evicted, so it should start a fresh window")
	}
}

func TestMemoryStore_Sweep(t *testing.T) {
	store, err := NewMemoryStore(10)
	if err != nil {
		t.Fatalf("NewMemoryStore() error = %v", err)
	}
	ctx := context.Background()
	now := time.Now()

	store.Take(ctx, "old", 5, time.Second, now)
	store.Take(ctx, "fresh", 5, time.Hour, now)

	if removed := store.Sweep(now.Add(2 * time.Second)); removed != 1 {
		t.Errorf("Sweep() removed %d entries, want 1", removed)
	}
	if got := store.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
	if got := store.Evicted(); got != 0 {
		t.Errorf("sweeping should not count as eviction, Evicted() = %d", got)
	}
}

func TestMemoryStore_Janitor(t *testing.T) {
	store, err := NewMemoryStore(10)
	if err != nil {
		t.Fatalf("NewMemoryStore() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store.Take(ctx, "k", 1, time.Millisecond, time.Now())
	store.StartJanitor(ctx, 5*time.Millisecond)

	deadline := time.Now().Add(time.Second)
	for store.Len() > 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if store.Len() != 0 {
		t.Error("janitor did not sweep the expired entry")
	}
}

func TestNewMemoryStore_RejectsNonPositiveSize(t *testing.T) {
	if _, err := NewMemoryStore(0); err == nil {
		t.Error("expected an error for size 0")
	}
}
