package host

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/aretw0/molcanvas/internal/logging"
	"github.com/aretw0/molcanvas/pkg/cursor"
	"github.com/aretw0/molcanvas/pkg/domain"
	"github.com/aretw0/molcanvas/pkg/overlay"
	"github.com/aretw0/molcanvas/pkg/ports"
	"github.com/aretw0/molcanvas/pkg/registry"
	"github.com/google/uuid"
	"go.uber.org/multierr"
)

// Elements are the host-side elements a mount needs.
type Elements struct {
	// Canvas is the engine root. Its bounding box gates the cursor overlay and
	// it carries the cursor marker class.
	Canvas ports.Element
	// Log is the measurement overlay element.
	Log ports.Element
}

// mount is everything owned by one attach..detach span.
type mount struct {
	id       string
	engine   ports.Engine
	registry *registry.Registry
	cursor   *cursor.Machine
	overlay  *overlay.Updater
	logger   *slog.Logger
}

// Host embeds one engine and keeps it synchronized with configuration snapshots.
//
// Attach, Update and Detach must be called from a single goroutine (the UI
// loop). Engine channels may dispatch from anywhere; the read accessors are
// safe for concurrent use.
type Host struct {
	factory        ports.EngineFactory
	logger         *slog.Logger
	hooks          domain.LifecycleHooks
	onInit         func(ports.Engine)
	newID          func() string
	cursorObserver func(bool)

	config atomic.Pointer[domain.Configuration]
	mount  atomic.Pointer[mount]
}

// New creates a detached host that builds engines with factory.
func New(factory ports.EngineFactory, opts ...Option) *Host {
	h := &Host{factory: factory}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = logging.NewNop()
	}
	if h.newID == nil {
		h.newID = uuid.NewString
	}
	return h
}

// Attach constructs the engine on els.Canvas, applies cfg, and wires the
// cursor state machine and the measurement overlay.
// An engine lacking a required channel fails the attach before anything is registered.
func (h *Host) Attach(els Elements, cfg *domain.Configuration) error {
	if h.mount.Load() != nil {
		return domain.ErrAlreadyAttached
	}
	if els.Canvas == nil || els.Log == nil {
		return errors.New("canvas and log elements are required")
	}
	if cfg == nil {
		cfg = &domain.Configuration{}
	}

	eng, err := h.factory(els.Canvas, cfg.Options)
	if err != nil {
		return fmt.Errorf("failed to construct engine: %w", err)
	}
	if err := requireChannels(eng); err != nil {
		return err
	}

	id := h.newID()
	logger := h.logger.With("instance", id)
	m := &mount{
		id:       id,
		engine:   eng,
		registry: registry.New(eng),
		logger:   logger,
		overlay: overlay.NewUpdater(els.Log, h.showAttachmentPoints,
			overlay.WithLogger(logger),
			overlay.WithHook(h.hooks.OnMessage),
			overlay.WithInstanceID(id),
		),
		cursor: cursor.NewMachine(els.Canvas,
			cursor.WithLogger(logger),
			cursor.WithHook(h.hooks.OnCursor),
			cursor.WithInstanceID(id),
		),
	}
	if h.cursorObserver != nil {
		m.cursor.OnChange(h.cursorObserver)
	}
	h.config.Store(cfg)
	h.mount.Store(m)

	Apply(eng, m.registry, domain.Diff(nil, cfg, eng.Channels()), m.logger, h.actionHook(id))
	if h.onInit != nil {
		h.onInit(eng)
	}

	m.registry.Add(domain.ChannelMessage, m.overlay.Handler())
	m.registry.Add(domain.ChannelCursor, m.cursor.Handler())

	// Show the starting tool state before any user interaction.
	eng.Channel(domain.ChannelMessage).Dispatch(domain.ToolOptionsMessage(cfg.ToolOptions))

	if h.hooks.OnAttach != nil {
		h.hooks.OnAttach(&domain.MountEvent{
			EventBase:     domain.EventBase{Timestamp: time.Now(), Type: domain.EventAttach, InstanceID: id},
			Channels:      eng.Channels(),
			Subscriptions: m.registry.Len(),
		})
	}
	m.logger.Info("host attached", "channels", len(eng.Channels()), "subscriptions", m.registry.Len())
	return nil
}

// Update synchronizes the engine with next.
func (h *Host) Update(next *domain.Configuration) error {
	m := h.mount.Load()
	if m == nil {
		return domain.ErrNotAttached
	}
	if next == nil {
		next = &domain.Configuration{}
	}
	prev := h.config.Swap(next)

	actions := domain.Diff(prev, next, m.engine.Channels())
	Apply(m.engine, m.registry, actions, m.logger, h.actionHook(m.id))
	m.logger.Debug("configuration synchronized", "actions", len(actions))
	return nil
}

// Detach removes every callback this host registered on the engine. The
// configuration's callbacks are unsubscribed through the same action pass as
// Update; the overlay and cursor wiring goes last.
// Disposing of the engine itself is left to the caller.
func (h *Host) Detach() error {
	m := h.mount.Swap(nil)
	if m == nil {
		return domain.ErrNotAttached
	}
	removed := m.registry.Len()
	cfg := h.config.Swap(nil)

	Apply(m.engine, m.registry, domain.Teardown(cfg, m.engine.Channels()), m.logger, h.actionHook(m.id))
	if rest := m.registry.RemoveAll(); rest > 0 {
		m.logger.Debug("removed host wiring", "count", rest)
	}

	if h.hooks.OnDetach != nil {
		h.hooks.OnDetach(&domain.MountEvent{
			EventBase:     domain.EventBase{Timestamp: time.Now(), Type: domain.EventDetach, InstanceID: m.id},
			Channels:      m.engine.Channels(),
			Subscriptions: removed,
		})
	}
	m.logger.Info("host detached", "removed", removed)
	return nil
}

// Attached reports whether an engine is mounted.
func (h *Host) Attached() bool {
	return h.mount.Load() != nil
}

// Engine returns the mounted engine, or nil when detached.
func (h *Host) Engine() ports.Engine {
	if m := h.mount.Load(); m != nil {
		return m.engine
	}
	return nil
}

// InstanceID identifies the current mount; empty when detached.
func (h *Host) InstanceID() string {
	if m := h.mount.Load(); m != nil {
		return m.id
	}
	return ""
}

// Config returns the configuration last applied, or nil when detached.
func (h *Host) Config() *domain.Configuration {
	return h.config.Load()
}

// CursorEnabled reports whether the custom cursor overlay is shown.
func (h *Host) CursorEnabled() bool {
	if m := h.mount.Load(); m != nil {
		return m.cursor.Enabled()
	}
	return false
}

// Overlay returns the measurement overlay text and visibility.
func (h *Host) Overlay() (string, bool) {
	if m := h.mount.Load(); m != nil {
		return m.overlay.State()
	}
	return "", false
}

// Subscriptions returns the number of callbacks this host has registered.
func (h *Host) Subscriptions() int {
	if m := h.mount.Load(); m != nil {
		return m.registry.Len()
	}
	return 0
}

func (h *Host) showAttachmentPoints() bool {
	return h.config.Load().ShowAttachmentPoints()
}

func (h *Host) actionHook(id string) func(*domain.ActionEvent) {
	if h.hooks.OnAction == nil {
		return nil
	}
	return func(e *domain.ActionEvent) {
		e.InstanceID = id
		h.hooks.OnAction(e)
	}
}

func requireChannels(eng ports.ChannelSet) error {
	var err error
	for _, name := range domain.RequiredChannels {
		if eng.Channel(name) == nil {
			err = multierr.Append(err, fmt.Errorf("%w: %s", domain.ErrMissingChannel, name))
		}
	}
	return err
}
