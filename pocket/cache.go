package pocket

import (
	"sync"

	"github.com/google/uuid"
)

// Cache holds the client pocket computers of one session
type Cache struct {
	mu        sync.RWMutex
	computers map[uuid.UUID]*Computer
}

// NewCache creates an empty pocket computer cache
func NewCache() *Cache {
	return &Cache{computers: make(map[uuid.UUID]*Computer)}
}

// Name implements service.Registry
func (c *Cache) Name() string {
	return "pocket computers"
}

// Get returns the computer for instance
func (c *Cache) Get(instance uuid.UUID) (*Computer, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	pc, ok := c.computers[instance]
	return pc, ok
}

// GetOrCreate returns the computer for instance, creating it with its light off
func (c *Cache) GetOrCreate(instance uuid.UUID) *Computer {
	c.mu.Lock()
	defer c.mu.Unlock()

	if pc, ok := c.computers[instance]; ok {
		return pc
	}
	pc := &Computer{instance: instance, state: State{Light: NoLight}}
	c.computers[instance] = pc
	return pc
}

// Remove forgets the computer for instance
func (c *Cache) Remove(instance uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.computers, instance)
}

// Len returns the number of cached computers
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.computers)
}

// Reset implements service.Registry
func (c *Cache) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.computers)
	return nil
}
