package monitor

import (
	"sync"

	"github.com/lixenwraith/cchooks/world"
)

// Cache holds the client monitors of one session keyed by origin block
type Cache struct {
	mu       sync.RWMutex
	monitors map[world.BlockPos]*ClientMonitor
}

// NewCache creates an empty monitor cache
func NewCache() *Cache {
	return &Cache{monitors: make(map[world.BlockPos]*ClientMonitor)}
}

// Name implements service.Registry
func (c *Cache) Name() string {
	return "monitors"
}

// Get returns the monitor at pos
func (c *Cache) Get(pos world.BlockPos) (*ClientMonitor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.monitors[pos]
	return m, ok
}

// GetOrCreate returns the monitor at pos, creating it on first use
func (c *Cache) GetOrCreate(pos world.BlockPos) *ClientMonitor {
	// Fast path: RLock check
	c.mu.RLock()
	m, ok := c.monitors[pos]
	c.mu.RUnlock()
	if ok {
		return m
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if m, ok := c.monitors[pos]; ok {
		return m
	}
	m = &ClientMonitor{pos: pos}
	c.monitors[pos] = m
	return m
}

// Remove destroys and forgets the monitor at pos
func (c *Cache) Remove(pos world.BlockPos) {
	c.mu.Lock()
	m, ok := c.monitors[pos]
	delete(c.monitors, pos)
	c.mu.Unlock()

	if ok {
		m.Destroy()
	}
}

// Len returns the number of cached monitors
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.monitors)
}

// DestroyAll destroys every cached monitor and empties the cache
func (c *Cache) DestroyAll() {
	c.mu.Lock()
	monitors := c.monitors
	c.monitors = make(map[world.BlockPos]*ClientMonitor)
	c.mu.Unlock()

	for _, m := range monitors {
		m.Destroy()
	}
}

// Reset implements service.Registry
func (c *Cache) Reset() error {
	c.DestroyAll()
	return nil
}
