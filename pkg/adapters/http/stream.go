package http

import (
	"encoding/json"
	"log/slog"
	"slices"
	"sync"

	"github.com/aretw0/molcanvas/pkg/domain"
)

// StreamEvent is one server-sent event.
type StreamEvent struct {
	Type domain.EventType
	Data string
}

type subscriber struct {
	watch []domain.EventType
}

// StreamManager fans host events out to active SSE connections.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[chan StreamEvent]subscriber
	logger      *slog.Logger
}

// NewStreamManager returns a manager with no subscribers.
func NewStreamManager() *StreamManager {
	return &StreamManager{
		subscribers: make(map[chan StreamEvent]subscriber),
		logger:      slog.Default(),
	}
}

// Subscribe registers a listener for the given event types (all when empty).
// The returned func unsubscribes and closes the channel.
func (sm *StreamManager) Subscribe(watch ...domain.EventType) (<-chan StreamEvent, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan StreamEvent, 10)
	sm.subscribers[ch] = subscriber{watch: watch}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		if _, ok := sm.subscribers[ch]; ok {
			delete(sm.subscribers, ch)
			close(ch)
		}
	}
}

// Len returns the number of active subscribers.
func (sm *StreamManager) Len() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.subscribers)
}

// Broadcast sends ev to every subscriber watching its type.
func (sm *StreamManager) Broadcast(ev StreamEvent) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	for ch, sub := range sm.subscribers {
		if len(sub.watch) > 0 && !slices.Contains(sub.watch, ev.Type) {
			continue
		}
		select {
		case ch <- ev:
		default:
			// Drop message if channel is full (slow client)
			sm.logger.Warn("SSE: Client buffer full, dropping event", "type", ev.Type)
		}
	}
}

// Hooks returns lifecycle hooks that broadcast every host event as JSON.
func (sm *StreamManager) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnAttach: func(e *domain.MountEvent) { sm.publish(e.Type, e) },
		OnDetach: func(e *domain.MountEvent) { sm.publish(e.Type, e) },
		OnAction: func(e *domain.ActionEvent) {
			sm.publish(e.Type, struct {
				*domain.ActionEvent
				Action domain.ActionType `json:"action"`
			}{e, e.Action.Type})
		},
		OnCursor:  func(e *domain.CursorTransitionEvent) { sm.publish(e.Type, e) },
		OnMessage: func(e *domain.MessageEvent) { sm.publish(e.Type, e) },
	}
}

func (sm *StreamManager) publish(t domain.EventType, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		sm.logger.Error("SSE: event encode failed", "type", t, "error", err)
		return
	}
	sm.Broadcast(StreamEvent{Type: t, Data: string(b)})
}
