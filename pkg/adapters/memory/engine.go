package memory

import (
	"fmt"
	"slices"
	"sync"

	"github.com/aretw0/molcanvas/pkg/domain"
	"github.com/aretw0/molcanvas/pkg/ports"
	"github.com/mitchellh/mapstructure"
)

// Settings is the typed view of the engine options the in-memory engine understands.
// Unknown keys are kept in Extra.
type Settings struct {
	ResetToSelect      string         `json:"resetToSelect" mapstructure:"resetToSelect"`
	ShowAtomIds        bool           `json:"showAtomIds" mapstructure:"showAtomIds"`
	ShowBondIds        bool           `json:"showBondIds" mapstructure:"showBondIds"`
	ShowHydrogenLabels string         `json:"showHydrogenLabels" mapstructure:"showHydrogenLabels"`
	Scale              int            `json:"scale" mapstructure:"scale"`
	Extra              map[string]any `json:"extra,omitempty" mapstructure:",remain"`
}

// DefaultScale is used when the settings do not set one.
const DefaultScale = 40

// DecodeSettings converts opaque options into Settings.
func DecodeSettings(opts *domain.Options) (Settings, error) {
	s := Settings{Scale: DefaultScale}
	if opts == nil || opts.Values == nil {
		return s, nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &s,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return s, err
	}
	if err := dec.Decode(opts.Values); err != nil {
		return s, fmt.Errorf("invalid engine settings: %w", err)
	}
	return s, nil
}

// Call records one imperative engine call.
type Call struct {
	Method string
	Arg    any
}

// Engine implements ports.Engine in memory.
// It records the calls it receives instead of rendering anything.
// Safe for concurrent use.
type Engine struct {
	root     ports.Element
	order    []domain.ChannelName
	channels map[domain.ChannelName]*Channel

	mu          sync.RWMutex
	settings    Settings
	structure   *domain.Struct
	tool        string
	toolOptions *domain.ToolOptions
	options     *domain.Options
	calls       []Call
	err         error
}

// Ensure Engine implements ports.Engine
var _ ports.Engine = (*Engine)(nil)

// New constructs an engine on root with the given channels.
// With no channels, the full editor channel set is used.
func New(root ports.Element, opts *domain.Options, channels ...domain.ChannelName) (*Engine, error) {
	settings, err := DecodeSettings(opts)
	if err != nil {
		return nil, err
	}
	if len(channels) == 0 {
		channels = domain.EditorChannels()
	}

	e := &Engine{
		root:     root,
		channels: make(map[domain.ChannelName]*Channel, len(channels)),
		settings: settings,
		options:  opts,
	}
	for _, name := range channels {
		if _, dup := e.channels[name]; dup {
			return nil, fmt.Errorf("duplicate channel: %s", name)
		}
		e.channels[name] = NewChannel(name)
		e.order = append(e.order, name)
	}
	return e, nil
}

// Factory returns an EngineFactory building in-memory engines with the given channels.
func Factory(channels ...domain.ChannelName) ports.EngineFactory {
	return func(root ports.Element, settings *domain.Options) (ports.Engine, error) {
		return New(root, settings, channels...)
	}
}

// Root returns the element the engine was constructed on.
func (e *Engine) Root() ports.Element {
	return e.root
}

// Channels returns the channel names in construction order.
func (e *Engine) Channels() []domain.ChannelName {
	return slices.Clone(e.order)
}

// Channel returns the named channel, or nil.
func (e *Engine) Channel(name domain.ChannelName) ports.Channel {
	ch, ok := e.channels[name]
	if !ok {
		return nil
	}
	return ch
}

// Dispatch sends a payload on the named channel.
func (e *Engine) Dispatch(name domain.ChannelName, payload domain.Payload) error {
	ch, ok := e.channels[name]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownChannel, name)
	}
	ch.Dispatch(payload)
	return nil
}

// Subscribers returns the number of handlers registered on the named channel.
func (e *Engine) Subscribers(name domain.ChannelName) int {
	ch, ok := e.channels[name]
	if !ok {
		return 0
	}
	return ch.Len()
}

// SetStructure replaces the displayed structure.
func (e *Engine) SetStructure(s *domain.Struct) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.structure = s
	e.calls = append(e.calls, Call{Method: "setStructure", Arg: s})
}

// SetTool activates a tool.
func (e *Engine) SetTool(name string, opts *domain.ToolOptions) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tool, e.toolOptions = name, opts
	e.calls = append(e.calls, Call{Method: "setTool", Arg: domain.ToolChange{Name: name, Options: opts}})
}

// SetOptions replaces the settings. Options that fail to decode are recorded
// (see Err) and leave the previous settings in place.
func (e *Engine) SetOptions(opts *domain.Options) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls = append(e.calls, Call{Method: "setOptions", Arg: opts})
	settings, err := DecodeSettings(opts)
	if err != nil {
		e.err = err
		return
	}
	e.settings, e.options, e.err = settings, opts, nil
}

// Structure returns the current structure.
func (e *Engine) Structure() *domain.Struct {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.structure
}

// Tool returns the active tool and its options.
func (e *Engine) Tool() (string, *domain.ToolOptions) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.tool, e.toolOptions
}

// Settings returns the decoded settings.
func (e *Engine) Settings() Settings {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.settings
}

// Err returns the last settings decoding error, if any.
func (e *Engine) Err() error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.err
}

// Calls returns the recorded imperative calls.
func (e *Engine) Calls() []Call {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.calls)
}
