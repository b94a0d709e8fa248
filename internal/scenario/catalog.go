package scenario

import (
	"sync"

	"github.com/aretw0/molcanvas/pkg/domain"
)

// Catalog interns the named values of a scenario and mints one recording
// handler per channel, so that configurations built from it keep stable identities.
type Catalog struct {
	file   *File
	onCall func(domain.ChannelName, domain.Payload)

	mu          sync.Mutex
	structures  map[string]*domain.Struct
	toolOptions map[string]*domain.ToolOptions
	options     map[string]*domain.Options
	handlers    map[domain.ChannelName]*domain.Handler
}

// NewCatalog creates a catalog for f. onCall receives every callback
// invocation of the handlers it hands out; it may be nil.
func NewCatalog(f *File, onCall func(domain.ChannelName, domain.Payload)) *Catalog {
	return &Catalog{
		file:        f,
		onCall:      onCall,
		structures:  make(map[string]*domain.Struct),
		toolOptions: make(map[string]*domain.ToolOptions),
		options:     make(map[string]*domain.Options),
		handlers:    make(map[domain.ChannelName]*domain.Handler),
	}
}

// Configuration builds the snapshot described by step. A nil step is the empty configuration.
func (c *Catalog) Configuration(step *ConfigStep) *domain.Configuration {
	if step == nil {
		return &domain.Configuration{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	cfg := &domain.Configuration{
		Structure:               c.structure(step.Structure),
		Tool:                    step.Tool,
		ToolOptions:             c.toolOpts(step.ToolOptions),
		Options:                 c.opts(step.Options),
		AttachmentPointsVisible: step.AttachmentPointsVisible,
		ClassName:               step.ClassName,
		Tag:                     step.Tag,
	}
	for _, name := range step.Handlers {
		if slot, ok := domain.SlotFor(name); ok {
			slot.Set(cfg, c.handler(name))
		}
	}
	return cfg
}

func (c *Catalog) structure(name string) *domain.Struct {
	if name == "" {
		return nil
	}
	if s, ok := c.structures[name]; ok {
		return s
	}
	spec, ok := c.file.Structures[name]
	if !ok {
		return nil
	}
	s := domain.NewStruct(spec.Format, spec.Data)
	c.structures[name] = s
	return s
}

func (c *Catalog) toolOpts(name string) *domain.ToolOptions {
	if name == "" {
		return nil
	}
	if t, ok := c.toolOptions[name]; ok {
		return t
	}
	values, ok := c.file.ToolOptions[name]
	if !ok {
		return nil
	}
	t := domain.NewToolOptions(values)
	c.toolOptions[name] = t
	return t
}

func (c *Catalog) opts(name string) *domain.Options {
	if name == "" {
		return nil
	}
	if o, ok := c.options[name]; ok {
		return o
	}
	values, ok := c.file.Options[name]
	if !ok {
		return nil
	}
	o := domain.NewOptions(values)
	c.options[name] = o
	return o
}

func (c *Catalog) handler(name domain.ChannelName) *domain.Handler {
	if h, ok := c.handlers[name]; ok {
		return h
	}
	h := domain.NewHandler(func(p domain.Payload) {
		if c.onCall != nil {
			c.onCall(name, p)
		}
	})
	c.handlers[name] = h
	return h
}
