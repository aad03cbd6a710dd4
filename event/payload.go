package event

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/cchooks/audio"
	"github.com/lixenwraith/cchooks/world"
)

// Transform, Buffers and Camera are host render handles
// They are passed through to renderers untouched
type (
	Transform any
	Buffers   any
	Camera    any
)

// Event is a host event
// The variant set is closed; each variant routes itself through a Visitor
type Event interface {
	Type() EventType
	Accept(v Visitor) bool
	sealed()
}

// Visitor handles every Event variant
// Adding a variant adds a method here, so every visitor fails to compile until it handles it
// Notification variants return false
type Visitor interface {
	VisitTick(Tick) bool
	VisitRenderTick(RenderTick) bool
	VisitWorldUnload(WorldUnload) bool
	VisitChatMessage(ChatMessage) bool
	VisitDrawHighlight(DrawHighlight) bool
	VisitRenderHeldItem(RenderHeldItem) bool
	VisitRenderItemInFrame(RenderItemInFrame) bool
	VisitPlayAudioStream(PlayAudioStream) bool
}

// Tick is the game tick notification
type Tick struct{}

// RenderTick is the render frame notification
type RenderTick struct{}

// WorldUnload signals the client left the level
type WorldUnload struct{}

// ChatMessage is outgoing chat text
type ChatMessage struct {
	Text string
}

// DrawHighlight requests a block outline for Hit
type DrawHighlight struct {
	Transform Transform
	Buffers   Buffers
	Camera    Camera
	Hit       world.HitResult
}

// RenderHeldItem requests first-person rendering of Stack in Hand
type RenderHeldItem struct {
	Transform     Transform
	Buffers       Buffers
	Light         int
	Hand          world.Hand
	Pitch         float32
	EquipProgress float32
	SwingProgress float32
	Stack         world.ItemStack
}

// RenderItemInFrame requests rendering of Stack inside Frame
type RenderItemInFrame struct {
	Transform Transform
	Buffers   Buffers
	Frame     world.ItemFrame
	Stack     world.ItemStack
	Light     int
}

// PlayAudioStream reports a streaming sound starting on Channel
type PlayAudioStream struct {
	Engine  audio.Engine
	Channel audio.Channel
	Stream  beep.Streamer
}

func (Tick) Type() EventType              { return EventTick }
func (RenderTick) Type() EventType        { return EventRenderTick }
func (WorldUnload) Type() EventType       { return EventWorldUnload }
func (ChatMessage) Type() EventType       { return EventChatMessage }
func (DrawHighlight) Type() EventType     { return EventDrawHighlight }
func (RenderHeldItem) Type() EventType    { return EventRenderHeldItem }
func (RenderItemInFrame) Type() EventType { return EventRenderItemInFrame }
func (PlayAudioStream) Type() EventType   { return EventPlayAudioStream }

func (e Tick) Accept(v Visitor) bool              { return v.VisitTick(e) }
func (e RenderTick) Accept(v Visitor) bool        { return v.VisitRenderTick(e) }
func (e WorldUnload) Accept(v Visitor) bool       { return v.VisitWorldUnload(e) }
func (e ChatMessage) Accept(v Visitor) bool       { return v.VisitChatMessage(e) }
func (e DrawHighlight) Accept(v Visitor) bool     { return v.VisitDrawHighlight(e) }
func (e RenderHeldItem) Accept(v Visitor) bool    { return v.VisitRenderHeldItem(e) }
func (e RenderItemInFrame) Accept(v Visitor) bool { return v.VisitRenderItemInFrame(e) }
func (e PlayAudioStream) Accept(v Visitor) bool   { return v.VisitPlayAudioStream(e) }

func (Tick) sealed()              {}
func (RenderTick) sealed()        {}
func (WorldUnload) sealed()       {}
func (ChatMessage) sealed()       {}
func (DrawHighlight) sealed()     {}
func (RenderHeldItem) sealed()    {}
func (RenderItemInFrame) sealed() {}
func (PlayAudioStream) sealed()   {}
