package render

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Highlight stage names
const (
	HighlightCable   = "cable"
	HighlightMonitor = "monitor"
)

// DefaultHighlightOrder is the stage order used when configuration does not override it
var DefaultHighlightOrder = []string{HighlightCable, HighlightMonitor}

var (
	ErrUnknownRenderer   = errors.New("unknown highlight renderer")
	ErrDuplicateRenderer = errors.New("highlight renderer listed twice")
)

// Registry maps names to highlight renderers so order can come from configuration
type Registry struct {
	mu         sync.RWMutex
	highlights map[string]HighlightRenderer
}

// NewRegistry creates an empty renderer registry
func NewRegistry() *Registry {
	return &Registry{highlights: make(map[string]HighlightRenderer)}
}

// RegisterHighlight adds or replaces the renderer for name
func (r *Registry) RegisterHighlight(name string, h HighlightRenderer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.highlights[name] = h
}

// Highlight returns the renderer registered for name
func (r *Registry) Highlight(name string) (HighlightRenderer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.highlights[name]
	return h, ok
}

// HighlightNames returns all registered names, sorted
func (r *Registry) HighlightNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.highlights))
	for name := range r.highlights {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Chain builds a HighlightChain in the given order
// Every name must be registered and appear once
func (r *Registry) Chain(order []string) (*HighlightChain, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chain := NewHighlightChain()
	seen := make(map[string]bool, len(order))
	for _, name := range order {
		if seen[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRenderer, name)
		}
		seen[name] = true

		h, ok := r.highlights[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRenderer, name)
		}
		chain.Append(name, h)
	}
	return chain, nil
}
