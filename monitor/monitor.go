package monitor

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/cchooks/world"
)

// ClientMonitor is the client copy of a monitor's terminal
type ClientMonitor struct {
	pos world.BlockPos

	mu                      sync.RWMutex
	termWidth, termHeight   int
	blockWidth, blockHeight int

	destroyed atomic.Bool
}

// Pos returns the origin block of the monitor
func (m *ClientMonitor) Pos() world.BlockPos {
	return m.pos
}

// Resize sets the terminal size in characters and the monitor size in blocks
func (m *ClientMonitor) Resize(termWidth, termHeight, blockWidth, blockHeight int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.termWidth, m.termHeight = termWidth, termHeight
	m.blockWidth, m.blockHeight = blockWidth, blockHeight
}

// TermSize returns the terminal size in characters
func (m *ClientMonitor) TermSize() (int, int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.termWidth, m.termHeight
}

// BlockSize returns the monitor size in blocks
func (m *ClientMonitor) BlockSize() (int, int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.blockWidth, m.blockHeight
}

// Destroy marks the monitor as released; renderers must drop their buffers for it
func (m *ClientMonitor) Destroy() {
	m.destroyed.Store(true)
}

// Destroyed reports whether Destroy was called
func (m *ClientMonitor) Destroyed() bool {
	return m.destroyed.Load()
}
