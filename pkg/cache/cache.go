package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const janitorInterval = 2 * time.Minute

type entry struct {
	key        string
	value      []byte
	expiration time.Time
}

// LRUCache кэш с вытеснением давно неиспользуемых ключей и TTL на запись.
// Реализует prometheus.Collector: попадания, промахи, вытеснения и размер.
type LRUCache struct {
	capacity int
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time

	mu      sync.Mutex
	ll      *list.List
	entries map[string]*list.Element

	hits, misses, evictions uint64

	hitsDesc, missesDesc, evictionsDesc, sizeDesc *prometheus.Desc
}

// NewLRUCache создает кэш; name попадает в метки метрик.
func NewLRUCache(name string, capacity int, ttl time.Duration) *LRUCache {
	labels := prometheus.Labels{"cache": name}
	return &LRUCache{
		capacity: capacity,
		ttl:      ttl,
		interval: janitorInterval,
		now:      time.Now,
		ll:       list.New(),
		entries:  make(map[string]*list.Element),

		hitsDesc:      prometheus.NewDesc("cache_hits_total", "Cache lookups that found a live entry.", nil, labels),
		missesDesc:    prometheus.NewDesc("cache_misses_total", "Cache lookups that found nothing or an expired entry.", nil, labels),
		evictionsDesc: prometheus.NewDesc("cache_evictions_total", "Entries evicted by capacity.", nil, labels),
		sizeDesc:      prometheus.NewDesc("cache_entries", "Entries currently held.", nil, labels),
	}
}

func (c *LRUCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ele, ok := c.entries[key]
	if !ok {
		c.misses++
		return nil, false
	}
	ent := ele.Value.(*entry)
	if c.now().After(ent.expiration) {
		c.removeElement(ele)
		c.misses++
		return nil, false
	}
	c.ll.MoveToFront(ele)
	c.hits++
	return ent.value, true
}

func (c *LRUCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiration := c.now().Add(c.ttl)
	if ele, ok := c.entries[key]; ok {
		c.ll.MoveToFront(ele)
		ent := ele.Value.(*entry)
		ent.value = value
		ent.expiration = expiration
		return
	}

	c.entries[key] = c.ll.PushFront(&entry{key: key, value: value, expiration: expiration})

	if c.ll.Len() > c.capacity {
		if oldest := c.ll.Back(); oldest != nil {
			c.removeElement(oldest)
			c.evictions++
		}
	}
}

func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ele, ok := c.entries[key]; ok {
		c.removeElement(ele)
	}
}

func (c *LRUCache) removeElement(e *list.Element) {
	c.ll.Remove(e)
	delete(c.entries, e.Value.(*entry).key)
}

func (c *LRUCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// Start запускает очистку просроченных записей до отмены ctx.
func (c *LRUCache) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.cleanup()
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (c *LRUCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for e := c.ll.Back(); e != nil; {
		prev := e.Prev()
		if now.After(e.Value.(*entry).expiration) {
			c.removeElement(e)
		}
		e = prev
	}
}

func (c *LRUCache) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hitsDesc
	ch <- c.missesDesc
	ch <- c.evictionsDesc
	ch <- c.sizeDesc
}

func (c *LRUCache) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	hits, misses, evictions, size := c.hits, c.misses, c.evictions, c.ll.Len()
	c.mu.Unlock()

	ch <- prometheus.MustNewConstMetric(c.hitsDesc, prometheus.CounterValue, float64(hits))
	ch <- prometheus.MustNewConstMetric(c.missesDesc, prometheus.CounterValue, float64(misses))
	ch <- prometheus.MustNewConstMetric(c.evictionsDesc, prometheus.CounterValue, float64(evictions))
	ch <- prometheus.MustNewConstMetric(c.sizeDesc, prometheus.GaugeValue, float64(size))
}
