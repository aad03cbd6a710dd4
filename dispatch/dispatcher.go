// Package dispatch routes host events to the client subsystems
//
// Architecture:
//   - Single-threaded: every entry point runs on the caller's thread and returns without blocking
//   - One entry point per event variant; Dispatch routes a generic event.Event to it
//   - Renderer stages are tried in a configured order; the first to claim an event wins
//   - Session state is reached only through the attached session.Context
//
// Usage:
//  1. Create: dispatch.New(host, dispatch.WithHighlights(chain), ...)
//  2. World load: d.Attach(session.New(storageDir))
//  3. Per host event: consumed := d.Dispatch(ev), or call the typed entry point
//  4. World unload: d.OnWorldUnload() resets and detaches the session
package dispatch

import (
	"sync/atomic"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/lixenwraith/cchooks/command"
	"github.com/lixenwraith/cchooks/event"
	"github.com/lixenwraith/cchooks/frame"
	"github.com/lixenwraith/cchooks/render"
	"github.com/lixenwraith/cchooks/session"
	"github.com/lixenwraith/cchooks/status"
	"github.com/lixenwraith/cchooks/world"
)

// Host exposes the host state the dispatcher reads
type Host interface {
	IsPaused() bool
}

// Dispatcher routes host events to subsystems and reports whether each event was consumed
type Dispatcher struct {
	host Host

	session atomic.Pointer[session.Context]

	interceptor *command.Interceptor
	opener      command.Opener
	highlights  *render.HighlightChain
	items       render.ItemRenderers

	frames *frame.Info
	timer  *frame.PauseAwareTimer

	metrics *status.Registry
	log     *zap.Logger
}

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithLogger sets the dispatcher logger
func WithLogger(log *zap.Logger) Option {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log
		}
	}
}

// WithOpener sets the opener used by the chat command; defaults to command.PlatformOpener
func WithOpener(o command.Opener) Option {
	return func(d *Dispatcher) { d.opener = o }
}

// WithHighlights sets the ordered highlight chain
func WithHighlights(c *render.HighlightChain) Option {
	return func(d *Dispatcher) { d.highlights = c }
}

// WithItemRenderers sets the custom item renderers
func WithItemRenderers(r render.ItemRenderers) Option {
	return func(d *Dispatcher) { d.items = r }
}

// WithFrameInfo shares frame counters with the host's renderers
func WithFrameInfo(info *frame.Info) Option {
	return func(d *Dispatcher) {
		if info != nil {
			d.frames = info
		}
	}
}

// WithTimer shares the pause-aware timer with the host's renderers
func WithTimer(t *frame.PauseAwareTimer) Option {
	return func(d *Dispatcher) {
		if t != nil {
			d.timer = t
		}
	}
}

// WithMetrics sets the dispatch counter registry
func WithMetrics(m *status.Registry) Option {
	return func(d *Dispatcher) {
		if m != nil {
			d.metrics = m
		}
	}
}

// New creates a dispatcher with no session attached
func New(host Host, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		host:    host,
		frames:  frame.NewInfo(),
		metrics: status.NewRegistry(),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.timer == nil {
		d.timer = frame.NewPauseAwareTimer(nil)
	}
	if d.opener == nil {
		d.opener = command.NewPlatformOpener(d.log)
	}
	d.interceptor = command.NewInterceptor(
		command.StorageFunc(d.storageDir),
		d.opener,
		command.WithLogger(d.log),
	)
	return d
}

// Attach makes s the active session, replacing any previous one without resetting it
func (d *Dispatcher) Attach(s *session.Context) {
	d.session.Store(s)
	if s != nil {
		d.log.Debug("session attached", zap.Stringer("session", s.ID()))
	}
}

// Session returns the active session, nil between worlds
func (d *Dispatcher) Session() *session.Context {
	return d.session.Load()
}

// Frames returns the frame counters
func (d *Dispatcher) Frames() *frame.Info {
	return d.frames
}

// Timer returns the pause-aware timer
func (d *Dispatcher) Timer() *frame.PauseAwareTimer {
	return d.timer
}

// Metrics returns the dispatch counters
func (d *Dispatcher) Metrics() *status.Registry {
	return d.metrics
}

func (d *Dispatcher) storageDir() (string, bool) {
	return d.session.Load().StorageDir()
}

// OnTick handles the game tick
func (d *Dispatcher) OnTick() {
	d.frames.OnTick()
	d.metrics.Record(event.EventTick, false)
}

// OnRenderTick handles the render frame tick
func (d *Dispatcher) OnRenderTick() {
	paused := d.host != nil && d.host.IsPaused()
	d.timer.Tick(paused)
	d.frames.OnRenderTick()
	d.metrics.Record(event.EventRenderTick, false)
}

// OnWorldUnload resets every session registry and detaches the session
// Reset failures are logged; the host is never interrupted by them
func (d *Dispatcher) OnWorldUnload() {
	d.metrics.Record(event.EventWorldUnload, false)

	s := d.session.Swap(nil)
	if s == nil {
		return
	}
	if err := s.Reset(); err != nil {
		for _, e := range multierr.Errors(err) {
			d.log.Warn("session registry reset failed", zap.Stringer("session", s.ID()), zap.Error(e))
		}
	}
	d.log.Debug("session detached", zap.Stringer("session", s.ID()))
}

// OnChatMessage returns true if text was the hidden open-computer command
// A consumed message must not be sent to the server
func (d *Dispatcher) OnChatMessage(text string) bool {
	consumed := d.interceptor.TryHandle(text)
	d.metrics.Record(event.EventChatMessage, consumed)
	return consumed
}

// DrawHighlight tries each highlight stage in order; at most one draws
func (d *Dispatcher) DrawHighlight(ev event.DrawHighlight) bool {
	by, drawn := d.highlights.Draw(ev)
	if drawn {
		d.log.Debug("highlight drawn", zap.String("by", by), zap.Stringer("pos", ev.Hit.Pos))
	}
	d.metrics.Record(event.EventDrawHighlight, drawn)
	return drawn
}

// OnRenderHeldItem renders pocket computers and printouts in first person
// An empty hand is left to the host
func (d *Dispatcher) OnRenderHeldItem(ev event.RenderHeldItem) bool {
	var r render.HeldItemRenderer
	if !ev.Stack.Empty() {
		switch ev.Stack.Item.Kind {
		case world.ItemPocketComputer:
			r = d.items.PocketHeld
		case world.ItemPrintout:
			r = d.items.PrintoutHeld
		}
	}

	consumed := r != nil
	if consumed {
		r.RenderFirstPerson(ev)
	}
	d.metrics.Record(event.EventRenderHeldItem, consumed)
	return consumed
}

// OnRenderItemInFrame renders printouts placed in item frames
func (d *Dispatcher) OnRenderItemInFrame(ev event.RenderItemInFrame) bool {
	consumed := !ev.Stack.Empty() && ev.Stack.Item.Kind == world.ItemPrintout && d.items.PrintoutFrame != nil
	if consumed {
		d.items.PrintoutFrame.RenderInFrame(ev)
	}
	d.metrics.Record(event.EventRenderItemInFrame, consumed)
	return consumed
}

// OnPlayAudioStream hands the stream to the session's speakers
func (d *Dispatcher) OnPlayAudioStream(ev event.PlayAudioStream) {
	bound := false
	if s := d.session.Load(); s != nil {
		bound = s.Speakers.OnPlayStreaming(ev.Engine, ev.Channel, ev.Stream)
	}
	d.metrics.Record(event.EventPlayAudioStream, bound)
}

// Dispatch routes ev to its entry point and returns whether it was consumed
// Notification events always return false
func (d *Dispatcher) Dispatch(ev event.Event) bool {
	if ev == nil {
		return false
	}
	return ev.Accept(router{d})
}
