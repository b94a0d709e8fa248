package domain

// ActionType names an imperative step the host applies to the engine.
type ActionType string

// Standard Action Types
const (
	// ActionSetStructure replaces the displayed structure.
	// Payload: *Struct
	ActionSetStructure ActionType = "SET_STRUCTURE"

	// ActionSetTool activates a tool.
	// Payload: ToolChange
	ActionSetTool ActionType = "SET_TOOL"

	// ActionSetOptions replaces the engine settings.
	// Payload: *Options
	ActionSetOptions ActionType = "SET_OPTIONS"

	// ActionBroadcast dispatches a payload on an engine channel.
	// Payload: Broadcast
	ActionBroadcast ActionType = "BROADCAST"

	// ActionSubscribe adds a configuration callback to a channel.
	// Payload: Subscription
	ActionSubscribe ActionType = "SUBSCRIBE"

	// ActionUnsubscribe removes a configuration callback from a channel.
	// Payload: Subscription
	ActionUnsubscribe ActionType = "UNSUBSCRIBE"
)

// Action is a single imperative step produced by Diff.
type Action struct {
	Type    ActionType
	Payload any
}

// ToolChange is the payload of ActionSetTool.
type ToolChange struct {
	Name    string
	Options *ToolOptions
}

// Broadcast is the payload of ActionBroadcast.
type Broadcast struct {
	Channel ChannelName
	Payload Payload
}

// Subscription is the payload of ActionSubscribe and ActionUnsubscribe.
type Subscription struct {
	Channel ChannelName
	Slot    string
	Handler *Handler
}
