package render

import (
	"github.com/lixenwraith/cchooks/event"
)

// HeldItemRenderer draws an item in first person
type HeldItemRenderer interface {
	RenderFirstPerson(ev event.RenderHeldItem)
}

// FrameItemRenderer draws an item inside an item frame
type FrameItemRenderer interface {
	RenderInFrame(ev event.RenderItemInFrame)
}

// HeldItemFunc adapts a function to HeldItemRenderer
type HeldItemFunc func(ev event.RenderHeldItem)

// RenderFirstPerson implements HeldItemRenderer
func (f HeldItemFunc) RenderFirstPerson(ev event.RenderHeldItem) {
	f(ev)
}

// FrameItemFunc adapts a function to FrameItemRenderer
type FrameItemFunc func(ev event.RenderItemInFrame)

// RenderInFrame implements FrameItemRenderer
func (f FrameItemFunc) RenderInFrame(ev event.RenderItemInFrame) {
	f(ev)
}

// ItemRenderers groups the custom item renderers
// A nil field means that renderer is unavailable and its items fall back to default rendering
type ItemRenderers struct {
	PocketHeld    HeldItemRenderer
	PrintoutHeld  HeldItemRenderer
	PrintoutFrame FrameItemRenderer
}
