package observability

import (
	"github.com/aretw0/molcanvas/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records host activity as Prometheus collectors.
type Metrics struct {
	actions       *prometheus.CounterVec
	cursorEvents  *prometheus.CounterVec
	messages      *prometheus.CounterVec
	mounts        prometheus.Counter
	unmounts      prometheus.Counter
	cursorEnabled prometheus.Gauge
	subscriptions prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		actions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "molcanvas_actions_total",
				Help: "Total number of synchronization actions applied to the engine",
			},
			[]string{"type"},
		),
		cursorEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "molcanvas_cursor_events_total",
				Help: "Total number of cursor events handled",
			},
			[]string{"status"},
		),
		messages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "molcanvas_messages_total",
				Help: "Total number of messages rendered by the measurement overlay",
			},
			[]string{"kind"},
		),
		mounts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "molcanvas_mounts_total",
			Help: "Total number of host attaches",
		}),
		unmounts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "molcanvas_unmounts_total",
			Help: "Total number of host detaches",
		}),
		cursorEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "molcanvas_cursor_enabled",
			Help: "1 while the custom cursor overlay is shown",
		}),
		subscriptions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "molcanvas_subscriptions_active",
			Help: "Number of callbacks the host has registered on the engine",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.collectors()...)
	}
	return m
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.actions, m.cursorEvents, m.messages,
		m.mounts, m.unmounts, m.cursorEnabled, m.subscriptions,
	}
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnAttach: func(e *domain.MountEvent) {
			m.mounts.Inc()
			m.subscriptions.Set(float64(e.Subscriptions))
			m.cursorEnabled.Set(0)
		},
		OnDetach: func(*domain.MountEvent) {
			m.unmounts.Inc()
			m.subscriptions.Set(0)
			m.cursorEnabled.Set(0)
		},
		OnAction: func(e *domain.ActionEvent) {
			m.actions.WithLabelValues(string(e.Action.Type)).Inc()
			if !e.Changed {
				return
			}
			switch e.Action.Type {
			case domain.ActionSubscribe:
				m.subscriptions.Inc()
			case domain.ActionUnsubscribe:
				m.subscriptions.Dec()
			}
		},
		OnCursor: func(e *domain.CursorTransitionEvent) {
			m.cursorEvents.WithLabelValues(string(e.Status)).Inc()
			if e.To {
				m.cursorEnabled.Set(1)
			} else {
				m.cursorEnabled.Set(0)
			}
		},
		OnMessage: func(e *domain.MessageEvent) {
			m.messages.WithLabelValues(string(e.Kind)).Inc()
		},
	}
}
