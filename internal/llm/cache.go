package llm

import (
	"sync"
	"time"
)

// ResponseCache memoizes bridge responses keyed by prompt. LRU eviction
// bounds memory, a TTL keeps stale tutoring text from sticking around.
type ResponseCache struct {
	cache   map[string]*cachedResponse
	order   []string
	maxSize int
	ttl     time.Duration
	mu      sync.RWMutex
	hits    int64
	misses  int64
}

type cachedResponse struct {
	text      string
	createdAt time.Time
}

func NewResponseCache(maxSize int, ttl time.Duration) *ResponseCache {
	if maxSize <= 0 {
		maxSize = 100
	}
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &ResponseCache{
		cache:   make(map[string]*cachedResponse),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		ttl:     ttl,
	}
}

// Get returns the cached text for a key, or "" and false on a miss or an
// expired entry.
func (c *ResponseCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.cache[key]
	if !ok {
		c.misses++
		return "", false
	}
	if time.Since(entry.createdAt) > c.ttl {
		delete(c.cache, key)
		c.removeFromOrder(key)
		c.misses++
		return "", false
	}

	c.hits++
	c.moveToFront(key)
	return entry.text, true
}

// Put stores a response.
func (c *ResponseCache) Put(key, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.cache[key]; exists {
		c.cache[key] = &cachedResponse{text: text, createdAt: time.Now()}
		c.moveToFront(key)
		return
	}

	if len(c.cache) >= c.maxSize {
		c.evictOldest()
	}

	c.cache[key] = &cachedResponse{text: text, createdAt: time.Now()}
	c.order = append([]string{key}, c.order...)
}

// Clear removes all entries.
func (c *ResponseCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache = make(map[string]*cachedResponse)
	c.order = make([]string, 0, c.maxSize)
	c.hits = 0
	c.misses = 0
}

// Size returns the current number of cached entries.
func (c *ResponseCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// Stats returns hit/miss counters.
func (c *ResponseCache) Stats() (hits, misses int64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

func (c *ResponseCache) moveToFront(key string) {
	c.removeFromOrder(key)
	c.order = append([]string{key}, c.order...)
}

func (c *ResponseCache) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *ResponseCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[len(c.order)-1]
	c.order = c.order[:len(c.order)-1]
	delete(c.cache, oldest)
}
