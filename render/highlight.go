package render

import (
	"github.com/lixenwraith/cchooks/event"
)

// HighlightRenderer draws a custom block outline
// Returns true if it drew, which suppresses the host's default outline
type HighlightRenderer interface {
	DrawHighlight(ev event.DrawHighlight) bool
}

// HighlightFunc adapts a function to HighlightRenderer
type HighlightFunc func(ev event.DrawHighlight) bool

// DrawHighlight implements HighlightRenderer
func (f HighlightFunc) DrawHighlight(ev event.DrawHighlight) bool {
	return f(ev)
}

type highlightStage struct {
	name     string
	renderer HighlightRenderer
}

// HighlightChain tries renderers in order and stops at the first that draws
// Only one highlight is ever drawn per call
type HighlightChain struct {
	stages []highlightStage
}

// NewHighlightChain creates an empty chain
func NewHighlightChain() *HighlightChain {
	return &HighlightChain{stages: make([]highlightStage, 0, 2)}
}

// Append adds a renderer after the existing stages; nil renderers are skipped
func (c *HighlightChain) Append(name string, r HighlightRenderer) *HighlightChain {
	if r != nil {
		c.stages = append(c.stages, highlightStage{name: name, renderer: r})
	}
	return c
}

// Draw runs the chain and returns the name of the stage that drew
// drawn is false if no stage claimed the event
func (c *HighlightChain) Draw(ev event.DrawHighlight) (by string, drawn bool) {
	if c == nil {
		return "", false
	}
	for _, s := range c.stages {
		if s.renderer.DrawHighlight(ev) {
			return s.name, true
		}
	}
	return "", false
}

// Names returns the stage names in evaluation order
func (c *HighlightChain) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.stages))
	for i, s := range c.stages {
		names[i] = s.name
	}
	return names
}

// Len returns the number of stages
func (c *HighlightChain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.stages)
}
