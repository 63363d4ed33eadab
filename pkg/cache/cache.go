package cache

import (
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache is a TTL key/value store for values of type V
type Cache[V any] interface {
	// Get returns the value and true if present and not expired
	Get(key string) (V, bool)

	// Set stores a value with the given TTL
	Set(key string, value V, ttl time.Duration)

	// GetOrSet returns the cached value or computes and stores it.
	// Concurrent misses on one key share a single compute call, which
	// runs without the lock held; errors are not cached.
	GetOrSet(key string, ttl time.Duration, compute func() (V, error)) (V, error)

	// Delete removes one key
	Delete(key string)

	// DeletePrefix removes every key starting with prefix and returns how many were removed
	DeletePrefix(prefix string) int

	Clear()

	// Size includes expired items that have not been swept yet
	Size() int

	Stats() Stats

	// Stop ends the cleanup goroutine. Safe to call more than once.
	Stop()
}

// Stats counts lookups since the cache was created
type Stats struct {
	Hits   uint64
	Misses uint64
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// InMemoryCache is a mutex-guarded map with a background sweeper
type InMemoryCache[V any] struct {
	mu    sync.RWMutex
	items map[string]entry[V]
	now   func() time.Time

	hits   atomic.Uint64
	misses atomic.Uint64
	group  singleflight.Group

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewInMemoryCache starts a cache that sweeps expired items every cleanupInterval.
// A non-positive interval disables the sweeper.
func NewInMemoryCache[V any](cleanupInterval time.Duration) *InMemoryCache[V] {
	c := &InMemoryCache[V]{
		items: make(map[string]entry[V]),
		now:   time.Now,
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go c.sweep(cleanupInterval)
	} else {
		close(c.done)
	}
	return c
}

func (c *InMemoryCache[V]) Get(key string) (V, bool) {
	v, ok := c.lookup(key)
	if !ok {
		c.misses.Add(1)
		return v, false
	}
	c.hits.Add(1)
	return v, true
}

// lookup reads key without touching the hit and miss counters
func (c *InMemoryCache[V]) lookup(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.items[key]
	now := c.now()
	c.mu.RUnlock()

	if !ok || now.After(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

func (c *InMemoryCache[V]) Set(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = entry[V]{value: value, expiresAt: c.now().Add(ttl)}
}

func (c *InMemoryCache[V]) GetOrSet(key string, ttl time.Duration, compute func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	shared, err, _ := c.group.Do(key, func() (interface{}, error) {
		// a flight that finished just before this one may have filled the key
		if v, ok := c.lookup(key); ok {
			return v, nil
		}
		v, err := compute()
		if err != nil {
			return nil, err
		}
		c.Set(key, v, ttl)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return shared.(V), nil
}

func (c *InMemoryCache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

func (c *InMemoryCache[V]) DeletePrefix(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for key := range c.items {
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
			n++
		}
	}
	return n
}

func (c *InMemoryCache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]entry[V])
}

func (c *InMemoryCache[V]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *InMemoryCache[V]) Stats() Stats {
	return Stats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}

func (c *InMemoryCache[V]) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
	<-c.done
}

func (c *InMemoryCache[V]) sweep(interval time.Duration) {
	defer close(c.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stop:
			return
		}
	}
}

func (c *InMemoryCache[V]) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for key, e := range c.items {
		if now.After(e.expiresAt) {
			delete(c.items, key)
		}
	}
}
