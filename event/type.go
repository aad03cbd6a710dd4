package event

// EventType represents the type of host event
type EventType int

const (
	// EventTick is the once-per-game-tick notification
	// Consumer: frame.Info | Result: none
	EventTick EventType = iota

	// EventRenderTick is the once-per-rendered-frame notification
	// Consumer: frame.PauseAwareTimer, frame.Info | Result: none
	EventRenderTick

	// EventWorldUnload signals the client left the current world
	// Consumer: session registries (monitors, speakers, pocket computers) | Result: none
	EventWorldUnload

	// EventChatMessage carries outgoing chat text before it is sent
	// Consumer: command.Interceptor | Result: consumed suppresses sending
	EventChatMessage

	// EventDrawHighlight asks for a custom block outline under the crosshair
	// Consumer: render.HighlightChain | Result: consumed suppresses the default outline
	EventDrawHighlight

	// EventRenderHeldItem asks for custom first-person rendering of a held item
	// Consumer: pocket and printout item renderers | Result: consumed suppresses default rendering
	EventRenderHeldItem

	// EventRenderItemInFrame asks for custom rendering of an item inside an item frame
	// Consumer: printout frame renderer | Result: consumed suppresses default rendering
	EventRenderItemInFrame

	// EventPlayAudioStream signals the host started a streaming sound on a channel
	// Consumer: audio.Registry | Result: none
	EventPlayAudioStream

	eventTypeCount
)

func (t EventType) String() string {
	return GetEventName(t)
}
