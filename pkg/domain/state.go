package domain

import "strings"

// DefaultTag is the element tag used by a host when the configuration does not override it.
const DefaultTag = "div"

// CanvasClass is always present on the host container, in front of Configuration.ClassName.
const CanvasClass = "canvas"

// Struct is an opaque structure handle (a molecule or reaction).
// The host never looks inside; two snapshots refer to the same structure only
// when they hold the same pointer.
type Struct struct {
	Format string
	Data   string
}

// NewStruct creates a new structure handle.
func NewStruct(format, data string) *Struct {
	return &Struct{Format: format, Data: data}
}

// ToolOptions is the opaque payload of the active tool.
// It is compared by pointer identity and serialized as JSON for the message channel.
type ToolOptions struct {
	Values map[string]any
}

// NewToolOptions wraps the given values in a new identity.
func NewToolOptions(values map[string]any) *ToolOptions {
	return &ToolOptions{Values: values}
}

// Options holds opaque engine settings, compared by pointer identity.
type Options struct {
	Values map[string]any
}

// NewOptions wraps the given settings in a new identity.
func NewOptions(values map[string]any) *Options {
	return &Options{Values: values}
}

// Payload is the value carried by a channel dispatch.
type Payload = any

// Handler is a channel callback with identity.
// Go functions are not comparable, so the *Handler pointer is the identity:
// wrapping the same func twice yields two distinct handlers.
type Handler struct {
	fn func(Payload)
}

// NewHandler mints a new callback identity for fn.
func NewHandler(fn func(Payload)) *Handler {
	return &Handler{fn: fn}
}

// Call invokes the callback. A nil handler or nil func is a no-op.
func (h *Handler) Call(p Payload) {
	if h == nil || h.fn == nil {
		return
	}
	h.fn(p)
}

// Configuration is the declarative snapshot of desired engine state and callback wiring.
// A new snapshot is supplied on every render and is never mutated after being handed over.
type Configuration struct {
	Structure   *Struct
	Tool        string
	ToolOptions *ToolOptions
	Options     *Options

	// AttachmentPointsVisible gates the measurement overlay. Nil means true.
	AttachmentPointsVisible *bool

	ClassName string
	// Tag overrides the container element tag (DefaultTag when empty).
	Tag string

	// One optional callback per engine channel. See Slots.
	OnChange             *Handler
	OnSelectionChange    *Handler
	OnElementEdit        *Handler
	OnEnhancedStereoEdit *Handler
	OnQuickEdit          *Handler
	OnBondEdit           *Handler
	OnRgroupEdit         *Handler
	OnSgroupEdit         *Handler
	OnSdataEdit          *Handler
	OnRemoveFG           *Handler
	OnMessage            *Handler
	OnAromatizeStruct    *Handler
	OnDearomatizeStruct  *Handler
	OnAttachEdit         *Handler
	OnCipChange          *Handler
	OnConfirm            *Handler
	OnCursor             *Handler
}

// ShowAttachmentPoints reports the effective attachment points flag.
func (c *Configuration) ShowAttachmentPoints() bool {
	if c == nil || c.AttachmentPointsVisible == nil {
		return true
	}
	return *c.AttachmentPointsVisible
}

// ContainerTag returns the tag of the host container.
func (c *Configuration) ContainerTag() string {
	if c == nil || c.Tag == "" {
		return DefaultTag
	}
	return c.Tag
}

// ContainerClass returns the class list of the host container.
func (c *Configuration) ContainerClass() string {
	if c == nil || strings.TrimSpace(c.ClassName) == "" {
		return CanvasClass
	}
	return CanvasClass + " " + strings.TrimSpace(c.ClassName)
}
