package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/molcanvas"
	"github.com/aretw0/molcanvas/internal/logging"
	"github.com/aretw0/molcanvas/internal/scenario"
	"github.com/aretw0/molcanvas/pkg/adapters/memory"
	"github.com/aretw0/molcanvas/pkg/domain"
	"github.com/aretw0/molcanvas/pkg/host"
	"github.com/aretw0/molcanvas/pkg/ports"
	"github.com/muesli/termenv"
)

// ReplayResult summarizes a replayed scenario.
type ReplayResult struct {
	Steps int
	// Callbacks counts configuration callback invocations per channel.
	Callbacks map[domain.ChannelName]int
	// Calls are the imperative calls received by the last engine.
	Calls []memory.Call
	View  host.View
}

type player struct {
	out     *termenv.Output
	catalog *scenario.Catalog
	editor  *molcanvas.Editor
	els     host.Elements
	canvas  *memory.Element
	engine  *memory.Engine
	config  *domain.Configuration
	result  *ReplayResult
}

// Replay drives a host through f against the in-memory engine and writes a
// step-by-step transcript to w.
func Replay(w io.Writer, f *scenario.File, logger *slog.Logger) (*ReplayResult, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	p := &player{
		out:    termenv.NewOutput(w),
		canvas: memory.NewElement(f.Box),
		result: &ReplayResult{Callbacks: make(map[domain.ChannelName]int)},
	}
	p.els = host.Elements{Canvas: p.canvas, Log: memory.NewElement(domain.BoundingBox{})}
	p.catalog = scenario.NewCatalog(f, p.onCallback)

	factory := func(root ports.Element, settings *domain.Options) (ports.Engine, error) {
		eng, err := memory.New(root, settings, f.Channels...)
		if err != nil {
			return nil, err
		}
		p.engine = eng
		return eng, nil
	}
	p.editor = molcanvas.New(
		molcanvas.WithEngineFactory(factory),
		molcanvas.WithLogger(logger),
		molcanvas.WithLifecycleHooks(debugHooks(logger)),
		molcanvas.WithLifecycleHooks(domain.LifecycleHooks{OnAction: p.onAction}),
	)

	if f.Name != "" {
		fmt.Fprintln(p.out, p.out.String("scenario "+f.Name).Bold().String())
	}
	for i, st := range f.Steps {
		kind := st.Kind()
		fmt.Fprintln(p.out, p.out.String(fmt.Sprintf("[%d] %s", i+1, kind)).Bold().String())
		if err := p.step(st); err != nil {
			p.finish()
			return p.result, fmt.Errorf("step %d (%s): %w", i+1, kind, err)
		}
		p.printState()
		p.result.Steps++
	}
	p.finish()
	return p.result, nil
}

func (p *player) step(st scenario.Step) error {
	switch st.Kind() {
	case "config":
		p.config = p.catalog.Configuration(st.Config)
		if !p.editor.Attached() {
			return p.editor.Attach(p.els, p.config)
		}
		return p.editor.Update(p.config)
	case "attach":
		return p.editor.Attach(p.els, p.config)
	case "detach":
		return p.editor.Detach()
	case "box":
		p.canvas.SetBoundingBox(*st.Box)
		return nil
	case "cursor":
		return p.dispatch(domain.ChannelCursor, st.Cursor.Event())
	case "message":
		return p.dispatch(domain.ChannelMessage, domain.MessagePayload{Info: st.Message.Info})
	}
	return scenario.ErrInvalidStep
}

func (p *player) dispatch(name domain.ChannelName, payload domain.Payload) error {
	eng := p.editor.Engine()
	if eng == nil {
		return domain.ErrNotAttached
	}
	ch := eng.Channel(name)
	if ch == nil {
		return fmt.Errorf("%w: %s", domain.ErrUnknownChannel, name)
	}
	ch.Dispatch(payload)
	return nil
}

func (p *player) onAction(e *domain.ActionEvent) {
	line := "  " + describe(e.Action)
	if !e.Changed {
		line += " (no-op)"
	}
	fmt.Fprintln(p.out, p.out.String(line).Foreground(p.out.Color("6")).String())
}

func (p *player) onCallback(name domain.ChannelName, _ domain.Payload) {
	p.result.Callbacks[name]++
	slot, _ := domain.SlotFor(name)
	fmt.Fprintln(p.out, p.out.String("  callback "+slot.Name).Foreground(p.out.Color("3")).String())
}

func (p *player) printState() {
	v := p.editor.View()
	if !v.Attached {
		fmt.Fprintln(p.out, p.out.String("  detached").Faint().String())
		return
	}
	cursor := "off"
	if v.CursorEnabled {
		cursor = "on"
	}
	overlay := "hidden"
	if v.Overlay.Visible {
		overlay = fmt.Sprintf("%q", v.Overlay.Text)
	}
	fmt.Fprintln(p.out, p.out.String(fmt.Sprintf("  cursor=%s overlay=%s subscriptions=%d", cursor, overlay, v.Subscriptions)).Faint().String())
}

func (p *player) finish() {
	p.result.View = p.editor.View()
	if p.engine != nil {
		p.result.Calls = p.engine.Calls()
	}
}

func describe(act domain.Action) string {
	switch pl := act.Payload.(type) {
	case *domain.Struct:
		if pl == nil {
			return fmt.Sprintf("%s <none>", act.Type)
		}
		return fmt.Sprintf("%s %s:%s", act.Type, pl.Format, pl.Data)
	case domain.ToolChange:
		if pl.Options == nil {
			return fmt.Sprintf("%s %s", act.Type, pl.Name)
		}
		return fmt.Sprintf("%s %s %s", act.Type, pl.Name, compact(pl.Options.Values))
	case *domain.Options:
		if pl == nil {
			return fmt.Sprintf("%s <none>", act.Type)
		}
		return fmt.Sprintf("%s %s", act.Type, compact(pl.Values))
	case domain.Broadcast:
		return fmt.Sprintf("%s %s", act.Type, pl.Channel)
	case domain.Subscription:
		return fmt.Sprintf("%s %s (%s)", act.Type, pl.Channel, pl.Slot)
	}
	return string(act.Type)
}

func compact(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
