// Package overlay renders engine messages into the measurement overlay element.
package overlay

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/molcanvas/internal/logging"
	"github.com/aretw0/molcanvas/pkg/domain"
	"github.com/aretw0/molcanvas/pkg/ports"
)

// VisibleClass marks the overlay element as shown.
const VisibleClass = "visible"

// Updater renders message payloads into the measurement overlay.
type Updater struct {
	el      ports.Element
	enabled func() bool

	instanceID string
	logger     *slog.Logger
	onMessage  func(*domain.MessageEvent)
}

// Option configures an Updater.
type Option func(*Updater)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(u *Updater) {
		u.logger = logger
	}
}

// WithHook reports every rendered message.
func WithHook(fn func(*domain.MessageEvent)) Option {
	return func(u *Updater) {
		u.onMessage = fn
	}
}

// WithInstanceID tags hook events with the owning host instance.
func WithInstanceID(id string) Option {
	return func(u *Updater) {
		u.instanceID = id
	}
}

// NewUpdater binds an updater to the overlay element.
// enabled is consulted on every message (the attachment points flag of the current configuration).
func NewUpdater(el ports.Element, enabled func() bool, opts ...Option) *Updater {
	u := &Updater{el: el, enabled: enabled}
	for _, opt := range opts {
		opt(u)
	}
	if u.logger == nil {
		u.logger = logging.NewNop()
	}
	if u.enabled == nil {
		u.enabled = func() bool { return true }
	}
	return u
}

// Render decides what the overlay shows for info.
// A structured record renders its ids; anything else renders verbatim.
func Render(info string) (string, domain.MessageKind) {
	rec, err := domain.ParseInfo(info)
	if err != nil {
		return info, domain.MessageRaw
	}
	return rec.String(), domain.MessageRecord
}

// Update renders msg, or hides the overlay when there is no info to show.
func (u *Updater) Update(msg domain.MessagePayload) {
	var (
		kind = domain.MessageHidden
		text string
	)
	if msg.Info != nil && u.enabled() {
		text, kind = Render(*msg.Info)
		u.el.SetText(text)
		u.el.AddClass(VisibleClass)
	} else {
		u.el.SetText("")
		u.el.RemoveClass(VisibleClass)
	}

	if u.onMessage != nil {
		u.onMessage(&domain.MessageEvent{
			EventBase: domain.EventBase{
				Timestamp:  time.Now(),
				Type:       domain.EventMessage,
				InstanceID: u.instanceID,
			},
			Kind: kind,
			Text: text,
		})
	}
}

// State returns the overlay text and visibility.
func (u *Updater) State() (string, bool) {
	return u.el.Text(), u.el.HasClass(VisibleClass)
}

// Handler adapts the updater to the engine's message channel.
// Payloads other than MessagePayload (or a pointer to one) are ignored.
func (u *Updater) Handler() *domain.Handler {
	return domain.NewHandler(func(p domain.Payload) {
		switch msg := p.(type) {
		case domain.MessagePayload:
			u.Update(msg)
		case *domain.MessagePayload:
			if msg != nil {
				u.Update(*msg)
			}
		default:
			u.logger.Debug("ignoring message payload", "type", fmt.Sprintf("%T", p))
		}
	})
}
