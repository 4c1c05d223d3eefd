package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(c *LRUCache, clock *fakeClock, t *testing.T)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, clock *fakeClock, t *testing.T) {
				c.Set("order-1", []byte("1"))
				clock.advance(time.Second)
				if v, ok := c.Get("order-1"); !ok || string(v) != "1" {
					t.Errorf("expected value=1, got=%v, ok=%v", v, ok)
				}
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, clock *fakeClock, t *testing.T) {
				c.Set("order-1", []byte("1"))
				clock.advance(time.Second + time.Nanosecond)
				if _, ok := c.Get("order-1"); ok {
					t.Errorf("expected key to be expired")
				}
				if c.Size() != 0 {
					t.Errorf("expected expired key to be dropped on read, size=%d", c.Size())
				}
			},
		},
		{
			name:     "evict least recently used",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, _ *fakeClock, t *testing.T) {
				c.Set("a", []byte("1"))
				c.Set("b", []byte("2"))
				c.Get("a")
				c.Set("c", []byte("3"))
				if _, ok := c.Get("b"); ok {
					t.Errorf("expected key 'b' to be evicted")
				}
				if v, ok := c.Get("a"); !ok || string(v) != "1" {
					t.Errorf("expected a=1, got %v", v)
				}
				if c.Size() != 2 {
					t.Errorf("expected size 2, got %d", c.Size())
				}
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, clock *fakeClock, t *testing.T) {
				c.Set("a", []byte("1"))
				clock.advance(600 * time.Millisecond)
				c.Set("a", []byte("2"))
				clock.advance(600 * time.Millisecond)
				if v, ok := c.Get("a"); !ok || string(v) != "2" {
					t.Errorf("expected updated value=2, got=%v", v)
				}
			},
		},
		{
			name:     "delete",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, _ *fakeClock, t *testing.T) {
				c.Set("a", []byte("1"))
				c.Delete("a")
				c.Delete("missing")
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected key 'a' to be deleted")
				}
			},
		},
		{
			name:     "cleanup removes only expired",
			capacity: 3,
			ttl:      time.Second,
			actions: func(c *LRUCache, clock *fakeClock, t *testing.T) {
				c.Set("old", []byte("1"))
				clock.advance(600 * time.Millisecond)
				c.Set("fresh", []byte("2"))
				clock.advance(600 * time.Millisecond)
				c.cleanup()
				if c.Size() != 1 {
					t.Errorf("expected one live key, size=%d", c.Size())
				}
				if _, ok := c.Get("fresh"); !ok {
					t.Errorf("expected 'fresh' to survive cleanup")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
			c := NewLRUCache("test", tt.capacity, tt.ttl)
			c.now = clock.now
			tt.actions(c, clock, t)
		})
	}
}

func TestLRUCache_Janitor(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := NewLRUCache("test", 2, 20*time.Millisecond)
	c.interval = 10 * time.Millisecond
	if err := c.Start(ctx); err != nil {
		t.Fatal(err)
	}

	c.Set("a", []byte("1"))
	time.Sleep(100 * time.Millisecond)

	if c.Size() != 0 {
		t.Errorf("expected janitor to remove expired key, size=%d", c.Size())
	}
}

func TestLRUCache_Collect(t *testing.T) {
	c := NewLRUCache("orders", 1, time.Minute)
	c.Set("a", []byte("1"))
	c.Get("a")
	c.Get("missing")
	c.Set("b", []byte("2"))

	expected := `
# HELP cache_entries Entries currently held.
# TYPE cache_entries gauge
cache_entries{cache="orders"} 1
# HELP cache_evictions_total Entries evicted by capacity.
# TYPE cache_evictions_total counter
cache_evictions_total{cache="orders"} 1
# HELP cache_hits_total Cache lookups that found a live entry.
# TYPE cache_hits_total counter
cache_hits_total{cache="orders"} 1
# HELP cache_misses_total Cache lookups that found nothing or an expired entry.
# TYPE cache_misses_total counter
cache_misses_total{cache="orders"} 1
`
	if err := testutil.CollectAndCompare(c, strings.NewReader(expected)); err != nil {
		t.Error(err)
	}
}
