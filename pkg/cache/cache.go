package cache

import (
	"sync"
	"time"

	"coinwagon/models"
)

type entry struct {
	value     models.ResolvedValue
	fetchedAt time.Time
}

// Stats reports cache effectiveness, logged by the engine in verbose mode.
type Stats struct {
	Entries int
	Hits    uint64
	Misses  uint64
}

// Cache is a TTL-bounded key/value store for resolved values. Entries are
// never swept eagerly: a stale entry behaves as a miss on Get and is
// overwritten by the next Put. The cache knows nothing about providers and
// never performs I/O.
type Cache struct {
	mu     sync.Mutex
	data   map[string]entry
	ttl    time.Duration
	hits   uint64
	misses uint64
}

func New(ttl time.Duration) *Cache {
	return &Cache{
		data: make(map[string]entry),
		ttl:  ttl,
	}
}

// Get returns the cached value for key if it is still fresh, i.e. stored
// no longer than the TTL ago. A stale or absent entry is a plain miss.
func (c *Cache) Get(key string) (models.ResolvedValue, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.data[key]
	if !ok || time.Since(e.fetchedAt) > c.ttl {
		c.misses++
		return models.ResolvedValue{}, false
	}

	c.hits++
	return e.value, true
}

// Put unconditionally stores value under key with the current timestamp,
// overwriting any prior entry.
func (c *Cache) Put(key string, value models.ResolvedValue) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = entry{value: value, fetchedAt: time.Now()}
}

func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{Entries: len(c.data), Hits: c.hits, Misses: c.misses}
}
