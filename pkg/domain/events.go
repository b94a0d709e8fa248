package domain

import (
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventAttach  EventType = "attach"
	EventDetach  EventType = "detach"
	EventAction  EventType = "action"
	EventCursor  EventType = "cursor"
	EventMessage EventType = "message"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp  time.Time `json:"timestamp"`
	Type       EventType `json:"type"`
	InstanceID string    `json:"instance_id"`
}

// MountEvent reports a host attaching to or detaching from an engine.
type MountEvent struct {
	EventBase
	Channels []ChannelName `json:"channels"`
	// Subscriptions is the number of registered callbacks after attach, or removed on detach.
	Subscriptions int `json:"subscriptions"`
}

// ActionEvent reports an applied Action.
type ActionEvent struct {
	EventBase
	Action Action `json:"-"`
	// Changed is false when a subscription action was a no-op.
	Changed bool `json:"changed"`
}

// CursorTransitionEvent reports a processed cursor event.
type CursorTransitionEvent struct {
	EventBase
	Status CursorStatus `json:"status"`
	From   bool         `json:"from"`
	To     bool         `json:"to"`
}

// MessageKind classifies how the measurement overlay rendered a message.
type MessageKind string

const (
	MessageRecord MessageKind = "record"
	MessageRaw    MessageKind = "raw"
	MessageHidden MessageKind = "hidden"
)

// MessageEvent reports a message rendered (or hidden) by the measurement overlay.
type MessageEvent struct {
	EventBase
	Kind MessageKind `json:"kind"`
	Text string      `json:"text,omitempty"`
}

// LifecycleHooks defines callbacks for host observability.
type LifecycleHooks struct {
	OnAttach  func(*MountEvent)
	OnDetach  func(*MountEvent)
	OnAction  func(*ActionEvent)
	OnCursor  func(*CursorTransitionEvent)
	OnMessage func(*MessageEvent)
}
