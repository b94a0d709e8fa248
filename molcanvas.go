package molcanvas

import (
	_ "embed"
	"log/slog"

	"github.com/aretw0/molcanvas/pkg/adapters/memory"
	"github.com/aretw0/molcanvas/pkg/domain"
	"github.com/aretw0/molcanvas/pkg/host"
	"github.com/aretw0/molcanvas/pkg/observability"
	"github.com/aretw0/molcanvas/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// Version is the release of this module.
//
//go:embed VERSION
var Version string

// Editor is a host plus the collaborators it was built with.
type Editor struct {
	*host.Host
	// Metrics is nil unless WithMetrics was given.
	Metrics *observability.Metrics
}

type settings struct {
	factory  ports.EngineFactory
	logger   *slog.Logger
	hooks    []domain.LifecycleHooks
	registry prometheus.Registerer
	hostOpts []host.Option
}

// Option defines a functional option for configuring the Editor.
type Option func(*settings)

// WithEngineFactory selects how engines are constructed (default: the in-memory engine).
func WithEngineFactory(f ports.EngineFactory) Option {
	return func(s *settings) {
		s.factory = f
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks. It may be given several times.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *settings) {
		s.hooks = append(s.hooks, hooks)
	}
}

// WithMetrics records host activity in Prometheus collectors registered with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(s *settings) {
		s.registry = reg
	}
}

// WithHostOptions passes extra options to the underlying host.
func WithHostOptions(opts ...host.Option) Option {
	return func(s *settings) {
		s.hostOpts = append(s.hostOpts, opts...)
	}
}

// New builds a detached Editor.
func New(opts ...Option) *Editor {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}
	if s.factory == nil {
		s.factory = memory.Factory()
	}

	ed := &Editor{}
	hooks := s.hooks
	if s.registry != nil {
		ed.Metrics = observability.NewMetrics(s.registry)
		hooks = append([]domain.LifecycleHooks{ed.Metrics.Hooks()}, hooks...)
	}

	hostOpts := []host.Option{host.WithLifecycleHooks(observability.Combine(hooks...))}
	if s.logger != nil {
		hostOpts = append(hostOpts, host.WithLogger(s.logger))
	}
	hostOpts = append(hostOpts, s.hostOpts...)

	ed.Host = host.New(s.factory, hostOpts...)
	return ed
}
