package yze

import (
	"sync"

	"github.com/google/uuid"
)

// Cache holds pushable pools between a roll and its push, keyed by pool ID.
// It replaces the ambient process-wide registry a host engine would
// otherwise keep: the caller owns the Cache, creates it explicitly, and
// decides when entries are evicted.
//
// All methods are safe for concurrent use.
type Cache struct {
	mu    sync.RWMutex
	pools map[uuid.UUID]*Pool
}

// NewCache creates an empty pool Cache.
func NewCache() *Cache {
	return &Cache{pools: make(map[uuid.UUID]*Pool)}
}

// Put stores pool under its ID. Re-putting the same pool is harmless;
// a different pool with the same ID replaces the old entry.
//
// Precondition: pool must be non-nil.
func (c *Cache) Put(pool *Pool) {
	if pool == nil {
		panic("yze: Cache.Put requires a non-nil pool")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pools[pool.ID] = pool
}

// Get returns the pool stored under id.
//
// Postcondition: returns the pool and true, or nil and false when absent.
func (c *Cache) Get(id uuid.UUID) (*Pool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.pools[id]
	return p, ok
}

// Evict removes the pool stored under id, reporting whether it was present.
func (c *Cache) Evict(id uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.pools[id]; !ok {
		return false
	}
	delete(c.pools, id)
	return true
}

// EvictUnpushable drops every cached pool that can no longer be pushed and
// returns how many were removed. Frozen pools have no reason to stay cached;
// their read model lives with whoever built them.
func (c *Cache) EvictUnpushable() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	evicted := 0
	for id, p := range c.pools {
		if !p.Pushable() {
			delete(c.pools, id)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of cached pools.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pools)
}
