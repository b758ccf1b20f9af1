package cache

import (
	"testing"
	"time"
)

func TestTTLCacheExpiry(t *testing.T) {
	now := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	c := NewTTLCache[int](time.Minute, clock)
	c.Set("leaderboard:Gen 30", 42)

	if v, ok := c.Get("leaderboard:Gen 30"); !ok || v != 42 {
		t.Fatalf("Get fresh: v=%d ok=%v", v, ok)
	}

	now = now.Add(59 * time.Second)
	if _, ok := c.Get("leaderboard:Gen 30"); !ok {
		t.Fatalf("entry expired too early")
	}

	now = now.Add(2 * time.Second)
	if _, ok := c.Get("leaderboard:Gen 30"); ok {
		t.Fatalf("entry should have expired")
	}
	if c.Len() != 0 {
		t.Fatalf("expired entry not evicted on Get, len=%d", c.Len())
	}
}

func TestTTLCacheExplicitEviction(t *testing.T) {
	now := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	c := NewTTLCache[string](time.Minute, clock)
	c.Set("a", "1")
	c.Set("b", "2")

	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Fatalf("Delete did not evict")
	}

	now = now.Add(2 * time.Minute)
	c.Set("c", "3") // fresh after the clock moved

	if dropped := c.PurgeExpired(); dropped != 1 {
		t.Fatalf("PurgeExpired dropped=%d, want 1", dropped)
	}
	if _, ok := c.Get("c"); !ok {
		t.Fatalf("fresh entry purged")
	}
}
