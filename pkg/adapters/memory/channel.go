package memory

import (
	"slices"
	"sync"

	"github.com/aretw0/molcanvas/pkg/domain"
)

// Channel implements ports.Channel in memory.
// Safe for concurrent use. Handlers run outside the lock, so a handler may
// add or remove subscriptions while being dispatched.
type Channel struct {
	name       domain.ChannelName
	mu         sync.RWMutex
	handlers   []*domain.Handler
	dispatched int
}

// NewChannel creates an empty channel.
func NewChannel(name domain.ChannelName) *Channel {
	return &Channel{name: name}
}

// Name returns the channel name.
func (c *Channel) Name() domain.ChannelName {
	return c.name
}

// Add registers h unless it is already registered.
func (c *Channel) Add(h *domain.Handler) {
	if h == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !slices.Contains(c.handlers, h) {
		c.handlers = append(c.handlers, h)
	}
}

// Remove unregisters h if present.
func (c *Channel) Remove(h *domain.Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := slices.Index(c.handlers, h); i >= 0 {
		c.handlers = slices.Delete(c.handlers, i, i+1)
	}
}

// Dispatch invokes the handlers registered at call time, in registration order.
func (c *Channel) Dispatch(payload domain.Payload) {
	c.mu.Lock()
	snapshot := slices.Clone(c.handlers)
	c.dispatched++
	c.mu.Unlock()

	for _, h := range snapshot {
		h.Call(payload)
	}
}

// Len returns the number of registered handlers.
func (c *Channel) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.handlers)
}

// Dispatched returns how many payloads were dispatched.
func (c *Channel) Dispatched() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dispatched
}
