package pocket

import (
	"sync"

	"github.com/google/uuid"
)

// NoLight is the light colour of a pocket computer with its light off
const NoLight = -1

// State is the server-synced state of a pocket computer
type State struct {
	ComputerID int
	Label      string
	On         bool
	Light      int // RGB colour, NoLight when off
}

// Computer is the client copy of one pocket computer instance
type Computer struct {
	instance uuid.UUID

	mu    sync.RWMutex
	state State
}

// Instance returns the pocket computer's instance id
func (c *Computer) Instance() uuid.UUID {
	return c.instance
}

// Update replaces the synced state
func (c *Computer) Update(s State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s
}

// State returns a copy of the synced state
func (c *Computer) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}
