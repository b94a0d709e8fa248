// Package cursor derives the custom cursor overlay state from engine cursor events.
package cursor

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/molcanvas/internal/logging"
	"github.com/aretw0/molcanvas/pkg/domain"
	"github.com/aretw0/molcanvas/pkg/ports"
)

// MarkerClass is toggled on the canvas element while the custom cursor is shown.
const MarkerClass = "enable-cursor"

// State is the cursor overlay state.
type State int

const (
	Disabled State = iota
	Enabled
)

func (s State) String() string {
	if s == Enabled {
		return "enabled"
	}
	return "disabled"
}

// Effect is the presentation side effect of a transition.
type Effect int

const (
	EffectNone Effect = iota
	EffectApplyCue
	EffectRemoveCue
)

// Transition computes the next state and effect for evt, given the element's
// bounding box at event time. Unrecognized statuses leave the state unchanged.
func Transition(s State, evt domain.CursorEvent, box domain.BoundingBox) (State, Effect) {
	switch evt.Status {
	case domain.CursorEnable:
		if !box.Contains(evt.CursorPosition) {
			return s, EffectNone
		}
		return Enabled, EffectApplyCue
	case domain.CursorMove, domain.CursorMouseover:
		return Enabled, EffectApplyCue
	case domain.CursorDisable, domain.CursorLeave:
		return Disabled, EffectRemoveCue
	default:
		return s, EffectNone
	}
}

// Machine owns the cursor state of one host and applies transition effects to its element.
// Events are processed one at a time in arrival order, and observers and the
// hook see them in that same order. Observers must not call Handle.
type Machine struct {
	dispatch  sync.Mutex
	mu        sync.Mutex
	state     State
	el        ports.Element
	observers []func(bool)

	instanceID string
	logger     *slog.Logger
	onEvent    func(*domain.CursorTransitionEvent)
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithHook reports every processed event.
func WithHook(fn func(*domain.CursorTransitionEvent)) Option {
	return func(m *Machine) {
		m.onEvent = fn
	}
}

// WithInstanceID tags hook events with the owning host instance.
func WithInstanceID(id string) Option {
	return func(m *Machine) {
		m.instanceID = id
	}
}

// NewMachine creates a machine in the Disabled state bound to el.
func NewMachine(el ports.Element, opts ...Option) *Machine {
	m := &Machine{el: el, state: Disabled}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = logging.NewNop()
	}
	return m
}

// OnChange registers an observer called with the new visual state whenever it changes.
// This is what renders (or hides) the cursor icon overlay.
func (m *Machine) OnChange(fn func(enabled bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, fn)
}

// State returns the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Enabled reports whether the custom cursor is shown.
func (m *Machine) Enabled() bool {
	return m.State() == Enabled
}

// Handle processes one cursor event and returns the resulting state.
// The marker class and the visual state are updated together.
func (m *Machine) Handle(evt domain.CursorEvent) State {
	m.dispatch.Lock()
	defer m.dispatch.Unlock()

	m.mu.Lock()
	from := m.state
	to, effect := Transition(from, evt, m.el.BoundingBox())

	switch effect {
	case EffectApplyCue:
		m.el.AddClass(MarkerClass)
	case EffectRemoveCue:
		m.el.RemoveClass(MarkerClass)
	}
	m.state = to

	var notify []func(bool)
	if to != from {
		notify = append(notify, m.observers...)
	}
	m.mu.Unlock()

	if !evt.Status.Known() {
		m.logger.Debug("ignoring cursor event", "status", evt.Status)
	}
	for _, fn := range notify {
		fn(to == Enabled)
	}
	if m.onEvent != nil {
		m.onEvent(&domain.CursorTransitionEvent{
			EventBase: domain.EventBase{
				Timestamp:  time.Now(),
				Type:       domain.EventCursor,
				InstanceID: m.instanceID,
			},
			Status: evt.Status,
			From:   from == Enabled,
			To:     to == Enabled,
		})
	}
	return to
}

// Handler adapts the machine to the engine's cursor channel.
// Payloads other than CursorEvent (or a pointer to one) are ignored.
func (m *Machine) Handler() *domain.Handler {
	return domain.NewHandler(func(p domain.Payload) {
		switch evt := p.(type) {
		case domain.CursorEvent:
			m.Handle(evt)
		case *domain.CursorEvent:
			if evt != nil {
				m.Handle(*evt)
			}
		default:
			m.logger.Debug("ignoring cursor payload", "type", fmt.Sprintf("%T", p))
		}
	})
}
