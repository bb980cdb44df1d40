package memory

import (
	"context"
	"testing"
	"time"
)

func TestKVStore_GetSetDelete(t *testing.T) {
	s := NewKVStore()
	ctx := context.Background()

	if _, found, err := s.Get(ctx, "missing"); err != nil || found {
		t.Fatalf("expected miss, got found=%v err=%v", found, err)
	}

	value := []byte(`{"a":1}`)
	if err := s.Set(ctx, "k", value, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value[0] = 'X'

	got, found, err := s.Get(ctx, "k")
	if err != nil || !found || string(got) != `{"a":1}` {
		t.Fatalf("Get = %q, %v, %v", got, found, err)
	}

	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found, _ := s.Get(ctx, "k"); found {
		t.Fatal("deleted key still present")
	}
}

func TestKVStore_Expiry(t *testing.T) {
	s := NewKVStore()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	_ = s.Set(ctx, "short", []byte("1"), time.Minute)
	_ = s.Set(ctx, "forever", []byte("2"), 0)

	now = now.Add(59 * time.Second)
	if _, found, _ := s.Get(ctx, "short"); !found {
		t.Fatal("key expired early")
	}

	now = now.Add(time.Second)
	if _, found, _ := s.Get(ctx, "short"); found {
		t.Fatal("key outlived its ttl")
	}
	if _, found, _ := s.Get(ctx, "forever"); !found {
		t.Fatal("key without ttl expired")
	}
	if len(s.entries) != 1 {
		t.Fatalf("expired entry not dropped, %d entries left", len(s.entries))
	}
}
