package host

import (
	"log/slog"
	"time"

	"github.com/aretw0/molcanvas/pkg/domain"
	"github.com/aretw0/molcanvas/pkg/ports"
	"github.com/aretw0/molcanvas/pkg/registry"
)

// Apply executes actions in order against the engine, wiring subscriptions
// through reg. Each applied action is reported to onAction when set.
func Apply(eng ports.Engine, reg *registry.Registry, actions []domain.Action, logger *slog.Logger, onAction func(*domain.ActionEvent)) {
	for _, act := range actions {
		changed := true

		switch act.Type {
		case domain.ActionSetStructure:
			s, _ := act.Payload.(*domain.Struct)
			eng.SetStructure(s)
		case domain.ActionSetTool:
			tc, _ := act.Payload.(domain.ToolChange)
			eng.SetTool(tc.Name, tc.Options)
		case domain.ActionSetOptions:
			opts, _ := act.Payload.(*domain.Options)
			eng.SetOptions(opts)
		case domain.ActionBroadcast:
			bc, ok := act.Payload.(domain.Broadcast)
			if !ok {
				logger.Warn("dropping malformed broadcast")
				continue
			}
			eng.Channel(bc.Channel).Dispatch(bc.Payload)
		case domain.ActionSubscribe, domain.ActionUnsubscribe:
			sub, ok := act.Payload.(domain.Subscription)
			if !ok {
				logger.Warn("dropping malformed subscription", "action", act.Type)
				continue
			}
			if act.Type == domain.ActionSubscribe {
				changed = reg.Add(sub.Channel, sub.Handler)
			} else {
				changed = reg.Remove(sub.Channel, sub.Handler)
			}
			logger.Debug("slot updated", "action", act.Type, "channel", sub.Channel, "slot", sub.Slot, "changed", changed)
		default:
			logger.Warn("dropping unknown action", "action", act.Type)
			continue
		}

		if onAction != nil {
			onAction(&domain.ActionEvent{
				EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventAction},
				Action:    act,
				Changed:   changed,
			})
		}
	}
}
