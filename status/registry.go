package status

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/cchooks/event"
)

type outcome struct {
	et       event.EventType
	consumed bool
}

// Registry holds the dispatch counters of one dispatcher
// Counters are created on first record and updated lock-free afterwards
type Registry struct {
	counters sync.Map // outcome -> *atomic.Int64
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Record counts one dispatch of et as consumed or ignored
func (r *Registry) Record(et event.EventType, consumed bool) {
	if r == nil {
		return
	}
	key := outcome{et, consumed}
	c, ok := r.counters.Load(key)
	if !ok {
		c, _ = r.counters.LoadOrStore(key, new(atomic.Int64))
	}
	c.(*atomic.Int64).Add(1)
}

// Count returns the recorded dispatches of et with the given outcome
func (r *Registry) Count(et event.EventType, consumed bool) int64 {
	if r == nil {
		return 0
	}
	c, ok := r.counters.Load(outcome{et, consumed})
	if !ok {
		return 0
	}
	return c.(*atomic.Int64).Load()
}

// Has reports whether et was ever recorded with the given outcome
func (r *Registry) Has(et event.EventType, consumed bool) bool {
	if r == nil {
		return false
	}
	_, ok := r.counters.Load(outcome{et, consumed})
	return ok
}

// Lines formats every counter as "key: value" in key order, for the debug overlay
func (r *Registry) Lines() []string {
	if r == nil {
		return nil
	}
	var lines []string
	r.counters.Range(func(k, v any) bool {
		o := k.(outcome)
		lines = append(lines, fmt.Sprintf("%s: %d", Key(o.et, o.consumed), v.(*atomic.Int64).Load()))
		return true
	})
	sort.Strings(lines)
	return lines
}

// Key returns the counter name for an event type and outcome
func Key(et event.EventType, consumed bool) string {
	if consumed {
		return event.GetEventName(et) + ".consumed"
	}
	return event.GetEventName(et) + ".ignored"
}
