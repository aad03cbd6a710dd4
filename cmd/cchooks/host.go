package main

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/cchooks/dispatch"
	"github.com/lixenwraith/cchooks/event"
	"github.com/lixenwraith/cchooks/render"
	"github.com/lixenwraith/cchooks/world"
)

// cliHost is a static host: one loaded level and a fixed crosshair target
type cliHost struct {
	overlay bool
	level   world.MapLevel
	hit     world.HitResult
	hasHit  bool
}

func (h *cliHost) IsPaused() bool     { return false }
func (h *cliHost) DebugEnabled() bool { return h.overlay }

func (h *cliHost) Level() (world.Level, bool) {
	if h.level == nil {
		return nil, false
	}
	return h.level, true
}

func (h *cliHost) HitResult() (world.HitResult, bool) {
	return h.hit, h.hasHit
}

// loggingHighlight stands in for a real outline renderer; it claims hits on matching entities
func loggingHighlight(name string, level world.Level, match func(world.BlockEntity) bool) render.HighlightRenderer {
	return render.HighlightFunc(func(ev event.DrawHighlight) bool {
		if ev.Hit.Kind != world.HitBlock || level == nil {
			return false
		}
		e, ok := level.BlockEntity(ev.Hit.Pos)
		if !ok || !match(e) {
			return false
		}
		logger.Debug("highlight", zap.String("renderer", name), zap.Stringer("pos", ev.Hit.Pos))
		return true
	})
}

// newDispatcher wires a dispatcher for h using the configured highlight order
func newDispatcher(h *cliHost, opts ...dispatch.Option) (*dispatch.Dispatcher, error) {
	reg := render.NewRegistry()
	reg.RegisterHighlight(render.HighlightCable, loggingHighlight(render.HighlightCable, h.level, func(e world.BlockEntity) bool {
		g, ok := e.(*world.Generic)
		return ok && g.Kind == "cable"
	}))
	reg.RegisterHighlight(render.HighlightMonitor, loggingHighlight(render.HighlightMonitor, h.level, func(e world.BlockEntity) bool {
		_, ok := e.(*world.Monitor)
		return ok
	}))

	chain, err := reg.Chain(cfg.Render.HighlightOrder)
	if err != nil {
		return nil, err
	}

	opts = append([]dispatch.Option{
		dispatch.WithLogger(logger),
		dispatch.WithHighlights(chain),
	}, opts...)
	return dispatch.New(h, opts...), nil
}
