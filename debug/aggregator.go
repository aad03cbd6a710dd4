// Package debug contributes targeted-block details to the host's debug overlay
package debug

import (
	"fmt"

	"github.com/lixenwraith/cchooks/world"
)

// Host exposes the client state the aggregator reads on each call
type Host interface {
	// DebugEnabled reports whether the debug overlay is visible
	DebugEnabled() bool
	// Level returns the loaded level, false when no world is loaded
	Level() (world.Level, bool)
	// HitResult returns the crosshair target, false when there is none
	HitResult() (world.HitResult, bool)
}

// Aggregator emits overlay lines for the block under the crosshair
// It keeps no state; the target is resolved again on every call
type Aggregator struct {
	host Host
}

// NewAggregator creates an aggregator reading from host
func NewAggregator(host Host) *Aggregator {
	return &Aggregator{host: host}
}

// Collect emits the lines for the current target in display order
func (a *Aggregator) Collect(emit func(line string)) {
	if a == nil || a.host == nil || emit == nil || !a.host.DebugEnabled() {
		return
	}
	level, ok := a.host.Level()
	if !ok || level == nil {
		return
	}
	hit, ok := a.host.HitResult()
	if !ok || hit.Kind != world.HitBlock {
		return
	}

	entity, ok := level.BlockEntity(hit.Pos)
	if !ok {
		return
	}

	switch e := entity.(type) {
	case *world.Monitor:
		emit("")
		emit(fmt.Sprintf("Targeted monitor: (%d, %d), %d x %d", e.XIndex, e.YIndex, e.Width, e.Height))
	case *world.Turtle:
		emit("")
		emit("Targeted turtle:")
		emit(fmt.Sprintf("Id: %d", e.ComputerID))
		for _, side := range world.Sides() {
			if u := e.Upgrade(side); u != nil {
				emit(fmt.Sprintf("Upgrade[%s]: %s", side, u.ID))
			}
		}
	}
}

// Lines returns the collected lines as a slice, nil when nothing applies
func (a *Aggregator) Lines() []string {
	var lines []string
	a.Collect(func(line string) { lines = append(lines, line) })
	return lines
}
