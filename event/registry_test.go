package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventNamesRoundTrip(t *testing.T) {
	for _, et := range Types() {
		name := GetEventName(et)
		assert.NotEqual(t, "Unknown", name, "type %d has no name", et)

		got, ok := GetEventType(name)
		assert.True(t, ok, name)
		assert.Equal(t, et, got, name)
	}
}

func TestUnknownEvent(t *testing.T) {
	assert.Equal(t, "Unknown", GetEventName(eventTypeCount))
	_, ok := GetEventType("tick")
	assert.False(t, ok, "lookup is case-sensitive")
}

// typeVisitor records which method was called
type typeVisitor struct{ got EventType }

func (v *typeVisitor) VisitTick(Tick) bool                           { v.got = EventTick; return false }
func (v *typeVisitor) VisitRenderTick(RenderTick) bool               { v.got = EventRenderTick; return false }
func (v *typeVisitor) VisitWorldUnload(WorldUnload) bool             { v.got = EventWorldUnload; return false }
func (v *typeVisitor) VisitChatMessage(ChatMessage) bool             { v.got = EventChatMessage; return true }
func (v *typeVisitor) VisitDrawHighlight(DrawHighlight) bool         { v.got = EventDrawHighlight; return true }
func (v *typeVisitor) VisitRenderHeldItem(RenderHeldItem) bool       { v.got = EventRenderHeldItem; return true }
func (v *typeVisitor) VisitRenderItemInFrame(RenderItemInFrame) bool { v.got = EventRenderItemInFrame; return true }
func (v *typeVisitor) VisitPlayAudioStream(PlayAudioStream) bool     { v.got = EventPlayAudioStream; return false }

func TestAcceptRoutesToMatchingVisit(t *testing.T) {
	events := []Event{
		Tick{}, RenderTick{}, WorldUnload{}, ChatMessage{Text: "hi"},
		DrawHighlight{}, RenderHeldItem{}, RenderItemInFrame{}, PlayAudioStream{},
	}
	assert.Len(t, events, int(eventTypeCount))

	for _, ev := range events {
		v := &typeVisitor{got: -1}
		ev.Accept(v)
		assert.Equal(t, ev.Type(), v.got, ev.Type().String())
	}
}
