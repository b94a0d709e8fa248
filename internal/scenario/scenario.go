// Package scenario loads scripted host sessions: a sequence of configuration
// snapshots and engine-side events replayed against an in-memory engine.
package scenario

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/molcanvas/pkg/domain"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// File is a scenario document.
type File struct {
	Name string `json:"name" yaml:"name"`
	// Box is the canvas bounding box at the start of the scenario.
	Box domain.BoundingBox `json:"box" yaml:"box"`
	// Channels restricts the engine's channel set. Empty means every editor channel.
	Channels []domain.ChannelName `json:"channels,omitempty" yaml:"channels,omitempty"`

	// Named values referenced by config steps. A name always resolves to the
	// same handle, so repeating it does not count as a change.
	Structures  map[string]StructSpec     `json:"structures,omitempty" yaml:"structures,omitempty"`
	ToolOptions map[string]map[string]any `json:"toolOptions,omitempty" yaml:"toolOptions,omitempty"`
	Options     map[string]map[string]any `json:"options,omitempty" yaml:"options,omitempty"`

	Steps []Step `json:"steps" yaml:"steps"`
}

// StructSpec describes a named structure.
type StructSpec struct {
	Format string `json:"format" yaml:"format"`
	Data   string `json:"data" yaml:"data"`
}

// Step is one scenario action. Exactly one field must be set.
type Step struct {
	Config  *ConfigStep         `json:"config,omitempty" yaml:"config,omitempty"`
	Cursor  *CursorStep         `json:"cursor,omitempty" yaml:"cursor,omitempty"`
	Message *MessageStep        `json:"message,omitempty" yaml:"message,omitempty"`
	Box     *domain.BoundingBox `json:"box,omitempty" yaml:"box,omitempty"`
	Attach  bool                `json:"attach,omitempty" yaml:"attach,omitempty"`
	Detach  bool                `json:"detach,omitempty" yaml:"detach,omitempty"`
}

// ConfigStep is a configuration snapshot expressed with names.
type ConfigStep struct {
	Structure               string               `json:"structure,omitempty" yaml:"structure,omitempty"`
	Tool                    string               `json:"tool,omitempty" yaml:"tool,omitempty"`
	ToolOptions             string               `json:"toolOptions,omitempty" yaml:"toolOptions,omitempty"`
	Options                 string               `json:"options,omitempty" yaml:"options,omitempty"`
	AttachmentPointsVisible *bool                `json:"attachmentPointsVisible,omitempty" yaml:"attachmentPointsVisible,omitempty"`
	ClassName               string               `json:"className,omitempty" yaml:"className,omitempty"`
	Tag                     string               `json:"tag,omitempty" yaml:"tag,omitempty"`
	Handlers                []domain.ChannelName `json:"handlers,omitempty" yaml:"handlers,omitempty"`
}

// CursorStep is a cursor event emitted by the engine.
type CursorStep struct {
	Status domain.CursorStatus `json:"status" yaml:"status"`
	X      float64             `json:"x" yaml:"x"`
	Y      float64             `json:"y" yaml:"y"`
}

// Event converts the step into the cursor channel payload.
func (c CursorStep) Event() domain.CursorEvent {
	return domain.CursorEvent{Status: c.Status, CursorPosition: domain.Point{X: c.X, Y: c.Y}}
}

// MessageStep is a message emitted by the engine. A missing info hides the overlay.
type MessageStep struct {
	Info *string `json:"info" yaml:"info"`
}

// Kind names the populated field of s, or "" when none or several are set.
func (s Step) Kind() string {
	var kinds []string
	if s.Config != nil {
		kinds = append(kinds, "config")
	}
	if s.Cursor != nil {
		kinds = append(kinds, "cursor")
	}
	if s.Message != nil {
		kinds = append(kinds, "message")
	}
	if s.Box != nil {
		kinds = append(kinds, "box")
	}
	if s.Attach {
		kinds = append(kinds, "attach")
	}
	if s.Detach {
		kinds = append(kinds, "detach")
	}
	if len(kinds) != 1 {
		return ""
	}
	return kinds[0]
}

// ErrInvalidStep marks a step that does not describe exactly one valid action.
var ErrInvalidStep = errors.New("invalid step")

// Load reads a scenario from path. Files ending in .json are parsed as JSON,
// anything else as YAML.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(data, strings.ToLower(filepath.Ext(path)))
}

// Parse decodes and validates a scenario. ext selects the format (".json" or YAML).
func Parse(data []byte, ext string) (*File, error) {
	var f File
	if ext == ".json" {
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse scenario json: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse scenario yaml: %w", err)
		}
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate reports every malformed step and dangling reference.
func (f *File) Validate() error {
	var err error
	for i, st := range f.Steps {
		kind := st.Kind()
		if kind == "" {
			err = multierr.Append(err, fmt.Errorf("step %d: %w: exactly one action is required", i+1, ErrInvalidStep))
			continue
		}
		switch kind {
		case "cursor":
			if !st.Cursor.Status.Known() {
				err = multierr.Append(err, fmt.Errorf("step %d: %w: unknown cursor status %q", i+1, ErrInvalidStep, st.Cursor.Status))
			}
		case "config":
			err = multierr.Append(err, f.validateConfig(i+1, st.Config))
		}
	}
	for _, name := range f.Channels {
		if _, ok := domain.SlotFor(name); !ok {
			err = multierr.Append(err, fmt.Errorf("%w: %s", domain.ErrUnknownChannel, name))
		}
	}
	return err
}

func (f *File) validateConfig(n int, c *ConfigStep) error {
	var err error
	if c.Structure != "" {
		if _, ok := f.Structures[c.Structure]; !ok {
			err = multierr.Append(err, fmt.Errorf("step %d: unknown structure %q", n, c.Structure))
		}
	}
	if c.ToolOptions != "" {
		if _, ok := f.ToolOptions[c.ToolOptions]; !ok {
			err = multierr.Append(err, fmt.Errorf("step %d: unknown tool options %q", n, c.ToolOptions))
		}
	}
	if c.Options != "" {
		if _, ok := f.Options[c.Options]; !ok {
			err = multierr.Append(err, fmt.Errorf("step %d: unknown options %q", n, c.Options))
		}
	}
	for _, ch := range c.Handlers {
		if _, ok := domain.SlotFor(ch); !ok {
			err = multierr.Append(err, fmt.Errorf("step %d: %w: %s", n, domain.ErrUnknownChannel, ch))
		}
	}
	return err
}
