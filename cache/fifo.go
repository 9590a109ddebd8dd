package cache

import (
	"container/list"
	"sync"
	"sync/atomic"
)

const (
	// DefaultMaxSize is the capacity of a cache created with a non-positive size.
	DefaultMaxSize = 4000

	// KeySeparator joins algorithm name and serialized value in a cache key.
	KeySeparator = ":"
)

// Key builds the cache key for a digest of serialized produced by algorithm.
func Key(algorithm, serialized string) string {
	return algorithm + KeySeparator + serialized
}

// FIFO is a fixed-capacity string cache with first-in-first-out eviction.
// It is safe for concurrent use.
type FIFO struct {
	mu      sync.Mutex
	maxSize int
	enabled bool
	items   map[string]*list.Element
	order   *list.List

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

type entry struct {
	key   string
	value string
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	MaxSize   int
	Enabled   bool
}

// NewFIFO creates an enabled cache holding at most maxSize entries.
// If maxSize <= 0, DefaultMaxSize is used.
func NewFIFO(maxSize int) *FIFO {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &FIFO{
		maxSize: maxSize,
		enabled: true,
		items:   make(map[string]*list.Element),
		order:   list.New(),
	}
}

// Get returns the cached value. A disabled cache always misses.
func (c *FIFO) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.enabled {
		if el, ok := c.items[key]; ok {
			c.hits.Add(1)
			return el.Value.(*entry).value, true
		}
	}
	c.misses.Add(1)
	return "", false
}

// Has reports whether key is cached and retrievable.
func (c *FIFO) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.enabled {
		return false
	}
	_, ok := c.items[key]
	return ok
}

// Set stores value under key. It is a no-op on a disabled cache.
func (c *FIFO) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.enabled {
		return
	}

	// Overwrite in place; queue position is unchanged.
	if el, ok := c.items[key]; ok {
		el.Value.(*entry).value = value
		return
	}

	if len(c.items) >= c.maxSize {
		if front := c.order.Front(); front != nil {
			c.removeElement(front)
			c.evictions.Add(1)
		}
	}

	c.items[key] = c.order.PushBack(&entry{key: key, value: value})
}

// Delete removes key and reports whether it was present.
func (c *FIFO) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return false
	}
	c.removeElement(el)
	return true
}

// Clear drops all entries. Counters are kept.
func (c *FIFO) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.order.Init()
}

// Len returns the number of stored entries, including ones hidden while the
// cache is disabled.
func (c *FIFO) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Keys returns the stored keys in eviction order (oldest first).
func (c *FIFO) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, 0, c.order.Len())
	for el := c.order.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Value.(*entry).key)
	}
	return keys
}

// MaxSize returns the capacity.
func (c *FIFO) MaxSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.maxSize
}

// SetMaxSize changes the capacity. Shrinking below the current size does not
// evict anything; eviction only happens on Set. Values < 1 are clamped to 1.
func (c *FIFO) SetMaxSize(n int) {
	if n < 1 {
		n = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.maxSize = n
}

// Enabled reports whether the cache admits and serves entries.
func (c *FIFO) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// SetEnabled toggles the cache. Stored entries survive a disable/enable cycle.
func (c *FIFO) SetEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = enabled
}

// Stats returns a snapshot of the cache counters.
func (c *FIFO) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Size:      len(c.items),
		MaxSize:   c.maxSize,
		Enabled:   c.enabled,
	}
}

func (c *FIFO) removeElement(el *list.Element) {
	c.order.Remove(el)
	delete(c.items, el.Value.(*entry).key)
}
