package registry

import (
	"slices"
	"sync"

	"github.com/aretw0/molcanvas/pkg/domain"
	"github.com/aretw0/molcanvas/pkg/ports"
)

// Registry tracks the callbacks one host instance registered on its engine's channels.
// It is owned by exactly one host mount; a new mount gets a new Registry.
type Registry struct {
	mu       sync.Mutex
	channels ports.ChannelSet
	handlers map[domain.ChannelName][]*domain.Handler
}

// New creates an empty registry over the engine's channels.
func New(channels ports.ChannelSet) *Registry {
	return &Registry{
		channels: channels,
		handlers: make(map[domain.ChannelName][]*domain.Handler),
	}
}

// Add registers h on the named channel.
// It is a no-op (returning false) if h is nil or already registered there.
// The name must be one the engine enumerates.
func (r *Registry) Add(name domain.ChannelName, h *domain.Handler) bool {
	if h == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if slices.Contains(r.handlers[name], h) {
		return false
	}
	r.channels.Channel(name).Add(h)
	r.handlers[name] = append(r.handlers[name], h)
	return true
}

// Remove unregisters h from the named channel.
// It is a no-op (returning false) if h is not registered there.
// Once Remove returns, h is not invoked for future dispatches on that channel.
func (r *Registry) Remove(name domain.ChannelName, h *domain.Handler) bool {
	if h == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := slices.Index(r.handlers[name], h)
	if i < 0 {
		return false
	}
	r.channels.Channel(name).Remove(h)
	r.handlers[name] = slices.Delete(r.handlers[name], i, i+1)
	if len(r.handlers[name]) == 0 {
		delete(r.handlers, name)
	}
	return true
}

// Registered returns the handlers currently registered on the named channel.
func (r *Registry) Registered(name domain.ChannelName) []*domain.Handler {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.handlers[name])
}

// Len returns the total number of registrations across all channels.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, hs := range r.handlers {
		n += len(hs)
	}
	return n
}

// RemoveAll unregisters every handler from every channel, in the engine's
// channel order, and returns how many were removed.
func (r *Registry) RemoveAll() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for _, name := range r.channels.Channels() {
		for _, h := range r.handlers[name] {
			r.channels.Channel(name).Remove(h)
			removed++
		}
		delete(r.handlers, name)
	}
	return removed
}
