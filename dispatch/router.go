package dispatch

import "github.com/lixenwraith/cchooks/event"

// router adapts the typed entry points to event.Visitor
type router struct {
	d *Dispatcher
}

var _ event.Visitor = router{}

func (r router) VisitTick(event.Tick) bool {
	r.d.OnTick()
	return false
}

func (r router) VisitRenderTick(event.RenderTick) bool {
	r.d.OnRenderTick()
	return false
}

func (r router) VisitWorldUnload(event.WorldUnload) bool {
	r.d.OnWorldUnload()
	return false
}

func (r router) VisitChatMessage(ev event.ChatMessage) bool {
	return r.d.OnChatMessage(ev.Text)
}

func (r router) VisitDrawHighlight(ev event.DrawHighlight) bool {
	return r.d.DrawHighlight(ev)
}

func (r router) VisitRenderHeldItem(ev event.RenderHeldItem) bool {
	return r.d.OnRenderHeldItem(ev)
}

func (r router) VisitRenderItemInFrame(ev event.RenderItemInFrame) bool {
	return r.d.OnRenderItemInFrame(ev)
}

func (r router) VisitPlayAudioStream(ev event.PlayAudioStream) bool {
	r.d.OnPlayAudioStream(ev)
	return false
}
