package cache

import (
	"sync"
	"time"

	"github.com/alexraskin/linkcraft/internal/models"
)

type Cache struct {
	mu       sync.RWMutex
	state    *models.State
	stateExp time.Time
	// bumped by every invalidation
	gen uint64
	ttl time.Duration
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl}
}

// GetState returns a copy of the cached state, so callers may edit it freely.
func (c *Cache) GetState() (models.State, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.state == nil || time.Now().After(c.stateExp) {
		return models.State{}, false
	}
	return c.state.Clone(), true
}

// Generation identifies the current cache contents. Read it before fetching
// the state from the store and pass it to SetState.
func (c *Cache) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gen
}

// SetState caches s unless the cache was invalidated after gen was read, in
// which case s may predate the latest write and is dropped. It reports
// whether s was stored.
func (c *Cache) SetState(s models.State, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return false
	}
	s = s.Clone()
	c.state = &s
	c.stateExp = time.Now().Add(c.ttl)
	return true
}

func (c *Cache) InvalidateState() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = nil
	c.gen++
}
