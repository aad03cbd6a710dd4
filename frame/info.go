package frame

import "sync/atomic"

// blinkTicks is the number of game ticks per cursor blink phase
const blinkTicks = 8

// Info counts game ticks and rendered frames for the whole process
// Renderers read it to animate cursors and to detect a new frame
type Info struct {
	tick        atomic.Int64
	renderFrame atomic.Int64
}

// NewInfo creates zeroed frame counters
func NewInfo() *Info {
	return &Info{}
}

// OnTick advances the game tick counter
func (i *Info) OnTick() {
	i.tick.Add(1)
}

// OnRenderTick advances the render frame counter
func (i *Info) OnRenderTick() {
	i.renderFrame.Add(1)
}

// Tick returns the number of game ticks seen
func (i *Info) Tick() int64 {
	return i.tick.Load()
}

// RenderFrame returns the number of frames rendered
func (i *Info) RenderFrame() int64 {
	return i.renderFrame.Load()
}

// CursorBlink reports whether terminal cursors are in their visible phase
func (i *Info) CursorBlink() bool {
	return (i.tick.Load()/blinkTicks)%2 == 0
}
