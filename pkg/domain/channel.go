package domain

// ChannelName identifies an engine-owned event channel.
type ChannelName string

// Channels exposed by the structure editor engine.
const (
	ChannelChange             ChannelName = "change"
	ChannelSelectionChange    ChannelName = "selectionChange"
	ChannelElementEdit        ChannelName = "elementEdit"
	ChannelEnhancedStereoEdit ChannelName = "enhancedStereoEdit"
	ChannelQuickEdit          ChannelName = "quickEdit"
	ChannelBondEdit           ChannelName = "bondEdit"
	ChannelRgroupEdit         ChannelName = "rgroupEdit"
	ChannelSgroupEdit         ChannelName = "sgroupEdit"
	ChannelSdataEdit          ChannelName = "sdataEdit"
	ChannelRemoveFG           ChannelName = "removeFG"
	ChannelMessage            ChannelName = "message"
	ChannelAromatizeStruct    ChannelName = "aromatizeStruct"
	ChannelDearomatizeStruct  ChannelName = "dearomatizeStruct"
	ChannelAttachEdit         ChannelName = "attachEdit"
	ChannelCipChange          ChannelName = "cipChange"
	ChannelConfirm            ChannelName = "confirm"
	ChannelCursor             ChannelName = "cursor"
)

// RequiredChannels must be exposed by every engine; the host wires them directly.
var RequiredChannels = []ChannelName{ChannelMessage, ChannelCursor}

// Slot binds an engine channel to its callback field in Configuration.
type Slot struct {
	Channel ChannelName
	// Name is the configuration-facing name, e.g. "onCursor".
	Name  string
	field func(*Configuration) **Handler
}

// Handler returns the callback the configuration holds for this slot.
func (s Slot) Handler(c *Configuration) *Handler {
	if c == nil {
		return nil
	}
	return *s.field(c)
}

// Set stores h in the slot's field of c. c must not have been handed to a host yet.
func (s Slot) Set(c *Configuration, h *Handler) {
	*s.field(c) = h
}

// Slots is the static channel-to-slot table, in the editor's channel order.
var Slots = []Slot{
	{ChannelChange, "onChange", func(c *Configuration) **Handler { return &c.OnChange }},
	{ChannelSelectionChange, "onSelectionChange", func(c *Configuration) **Handler { return &c.OnSelectionChange }},
	{ChannelElementEdit, "onElementEdit", func(c *Configuration) **Handler { return &c.OnElementEdit }},
	{ChannelEnhancedStereoEdit, "onEnhancedStereoEdit", func(c *Configuration) **Handler { return &c.OnEnhancedStereoEdit }},
	{ChannelQuickEdit, "onQuickEdit", func(c *Configuration) **Handler { return &c.OnQuickEdit }},
	{ChannelBondEdit, "onBondEdit", func(c *Configuration) **Handler { return &c.OnBondEdit }},
	{ChannelRgroupEdit, "onRgroupEdit", func(c *Configuration) **Handler { return &c.OnRgroupEdit }},
	{ChannelSgroupEdit, "onSgroupEdit", func(c *Configuration) **Handler { return &c.OnSgroupEdit }},
	{ChannelSdataEdit, "onSdataEdit", func(c *Configuration) **Handler { return &c.OnSdataEdit }},
	{ChannelRemoveFG, "onRemoveFG", func(c *Configuration) **Handler { return &c.OnRemoveFG }},
	{ChannelMessage, "onMessage", func(c *Configuration) **Handler { return &c.OnMessage }},
	{ChannelAromatizeStruct, "onAromatizeStruct", func(c *Configuration) **Handler { return &c.OnAromatizeStruct }},
	{ChannelDearomatizeStruct, "onDearomatizeStruct", func(c *Configuration) **Handler { return &c.OnDearomatizeStruct }},
	{ChannelAttachEdit, "onAttachEdit", func(c *Configuration) **Handler { return &c.OnAttachEdit }},
	{ChannelCipChange, "onCipChange", func(c *Configuration) **Handler { return &c.OnCipChange }},
	{ChannelConfirm, "onConfirm", func(c *Configuration) **Handler { return &c.OnConfirm }},
	{ChannelCursor, "onCursor", func(c *Configuration) **Handler { return &c.OnCursor }},
}

var slotIndex = func() map[ChannelName]Slot {
	idx := make(map[ChannelName]Slot, len(Slots))
	for _, s := range Slots {
		idx[s.Channel] = s
	}
	return idx
}()

// SlotFor returns the callback slot of a channel.
// Channels without a slot never receive configuration callbacks.
func SlotFor(name ChannelName) (Slot, bool) {
	s, ok := slotIndex[name]
	return s, ok
}

// EditorChannels lists every channel in Slots, in table order.
func EditorChannels() []ChannelName {
	names := make([]ChannelName, 0, len(Slots))
	for _, s := range Slots {
		names = append(names, s.Channel)
	}
	return names
}
