package ports

import "github.com/aretw0/molcanvas/pkg/domain"

// Channel is a named, engine-owned event stream.
// Add and Remove compare handlers by identity and are idempotent.
type Channel interface {
	Add(h *domain.Handler)
	Remove(h *domain.Handler)
	// Dispatch synchronously invokes every handler registered at call time.
	Dispatch(payload domain.Payload)
}

// ChannelSet is the enumerable set of channels an engine exposes.
// The set is fixed at construction time.
type ChannelSet interface {
	// Channels returns the channel names in enumeration order.
	Channels() []domain.ChannelName

	// Channel returns the named channel, or nil if the engine does not expose it.
	Channel(name domain.ChannelName) Channel
}

// Engine defines the imperative surface of the canvas engine consumed by the host.
type Engine interface {
	ChannelSet

	SetStructure(s *domain.Struct)
	SetTool(name string, opts *domain.ToolOptions)
	SetOptions(opts *domain.Options)
}

// EngineFactory constructs an engine against the root element with the initial settings.
type EngineFactory func(root Element, settings *domain.Options) (Engine, error)
