package host

import (
	"log/slog"

	"github.com/aretw0/molcanvas/pkg/domain"
	"github.com/aretw0/molcanvas/pkg/ports"
)

// Option defines a functional option for configuring the Host.
type Option func(*Host)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Host) {
		h.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(h *Host) {
		h.hooks = hooks
	}
}

// WithInitHook is invoked once per attach, right after the engine is constructed
// and the initial configuration is applied.
func WithInitHook(fn func(ports.Engine)) Option {
	return func(h *Host) {
		h.onInit = fn
	}
}

// WithInstanceIDs overrides how mount instance IDs are generated.
func WithInstanceIDs(next func() string) Option {
	return func(h *Host) {
		h.newID = next
	}
}

// WithCursorObserver is called whenever the cursor overlay is shown or hidden.
func WithCursorObserver(fn func(enabled bool)) Option {
	return func(h *Host) {
		h.cursorObserver = fn
	}
}
