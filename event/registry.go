package event

var (
	nameToType = make(map[string]EventType, eventTypeCount)
	typeToName = make(map[EventType]string, eventTypeCount)
)

func init() {
	registerType("Tick", EventTick)
	registerType("RenderTick", EventRenderTick)
	registerType("WorldUnload", EventWorldUnload)
	registerType("ChatMessage", EventChatMessage)
	registerType("DrawHighlight", EventDrawHighlight)
	registerType("RenderHeldItem", EventRenderHeldItem)
	registerType("RenderItemInFrame", EventRenderItemInFrame)
	registerType("PlayAudioStream", EventPlayAudioStream)
}

// registerType maps a string name to an EventType
func registerType(name string, et EventType) {
	nameToType[name] = et
	typeToName[et] = name
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the string name for an EventType, "Unknown" if not registered
func GetEventName(et EventType) string {
	if name, ok := typeToName[et]; ok {
		return name
	}
	return "Unknown"
}

// Types returns every registered EventType in declaration order
func Types() []EventType {
	types := make([]EventType, 0, eventTypeCount)
	for et := EventType(0); et < eventTypeCount; et++ {
		types = append(types, et)
	}
	return types
}
