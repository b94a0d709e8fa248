package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func actionTypes(actions []Action) []ActionType {
	var types []ActionType
	for _, a := range actions {
		types = append(types, a.Type)
	}
	return types
}

func count(actions []Action, t ActionType) int {
	n := 0
	for _, a := range actions {
		if a.Type == t {
			n++
		}
	}
	return n
}

func TestDiff(t *testing.T) {
	benzene := NewStruct("smiles", "c1ccccc1")
	ethanol := NewStruct("smiles", "CCO")
	bondOpts := NewToolOptions(map[string]any{"type": "single"})
	settings := NewOptions(map[string]any{"showAtomIds": true})
	onChange := NewHandler(func(Payload) {})
	onCursor := NewHandler(func(Payload) {})
	channels := EditorChannels()

	tests := []struct {
		name string
		prev *Configuration
		next *Configuration
		want []ActionType
	}{
		{
			name: "Initial Load (Prev is Nil)",
			prev: nil,
			next: &Configuration{
				Structure:   benzene,
				Tool:        "bond",
				ToolOptions: bondOpts,
				Options:     settings,
				OnChange:    onChange,
			},
			want: []ActionType{ActionSetStructure, ActionSetTool, ActionBroadcast, ActionSubscribe},
		},
		{
			name: "Initial Load of Empty Configuration",
			prev: nil,
			next: &Configuration{},
			want: nil,
		},
		{
			name: "No Changes",
			prev: &Configuration{Structure: benzene, Tool: "bond", ToolOptions: bondOpts, OnChange: onChange},
			next: &Configuration{Structure: benzene, Tool: "bond", ToolOptions: bondOpts, OnChange: onChange},
			want: nil,
		},
		{
			name: "Structure Only",
			prev: &Configuration{Structure: benzene, Tool: "select", Options: settings},
			next: &Configuration{Structure: ethanol, Tool: "select", Options: settings},
			want: []ActionType{ActionSetStructure},
		},
		{
			name: "Equal Content With New Identity Counts As Change",
			prev: &Configuration{Structure: benzene},
			next: &Configuration{Structure: NewStruct("smiles", "c1ccccc1")},
			want: []ActionType{ActionSetStructure},
		},
		{
			name: "Tool Name Only Does Not Broadcast",
			prev: &Configuration{Tool: "select", ToolOptions: bondOpts},
			next: &Configuration{Tool: "eraser", ToolOptions: bondOpts},
			want: []ActionType{ActionSetTool},
		},
		{
			name: "Tool Options Identity Broadcasts",
			prev: &Configuration{Tool: "bond", ToolOptions: bondOpts},
			next: &Configuration{Tool: "bond", ToolOptions: NewToolOptions(map[string]any{"type": "double"})},
			want: []ActionType{ActionSetTool, ActionBroadcast},
		},
		{
			name: "Options Ignored Without Previous Options",
			prev: &Configuration{},
			next: &Configuration{Options: settings},
			want: nil,
		},
		{
			name: "Options Replaced",
			prev: &Configuration{Options: settings},
			next: &Configuration{Options: NewOptions(nil)},
			want: []ActionType{ActionSetOptions},
		},
		{
			name: "Handler Swapped",
			prev: &Configuration{OnChange: onChange},
			next: &Configuration{OnChange: NewHandler(func(Payload) {})},
			want: []ActionType{ActionUnsubscribe, ActionSubscribe},
		},
		{
			name: "Handler Dropped",
			prev: &Configuration{OnChange: onChange, OnCursor: onCursor},
			next: &Configuration{OnCursor: onCursor},
			want: []ActionType{ActionUnsubscribe},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.prev, tt.next, channels)
			assert.Equal(t, tt.want, actionTypes(got))
		})
	}
}

func TestDiff_NilNext(t *testing.T) {
	assert.Nil(t, Diff(&Configuration{Tool: "select"}, nil, EditorChannels()))
}

func TestDiff_StructureOnlyEmitsSingleSetStructure(t *testing.T) {
	h := NewHandler(func(Payload) {})
	opts := NewOptions(nil)
	tool := NewToolOptions(nil)
	prev := &Configuration{Structure: NewStruct("mol", "a"), Tool: "select", ToolOptions: tool, Options: opts, OnMessage: h}
	for i := 0; i < 10; i++ {
		next := *prev
		next.Structure = NewStruct("mol", "b")

		got := Diff(prev, &next, EditorChannels())

		require.Len(t, got, 1)
		assert.Equal(t, ActionSetStructure, got[0].Type)
		assert.Same(t, next.Structure, got[0].Payload)
		assert.Zero(t, count(got, ActionSetTool))
		assert.Zero(t, count(got, ActionSetOptions))
		prev = &next
	}
}

func TestDiff_Payloads(t *testing.T) {
	bondOpts := NewToolOptions(map[string]any{"type": "single"})
	oldCursor := NewHandler(func(Payload) {})
	newCursor := NewHandler(func(Payload) {})

	got := Diff(
		&Configuration{Tool: "select", OnCursor: oldCursor},
		&Configuration{Tool: "bond", ToolOptions: bondOpts, OnCursor: newCursor},
		EditorChannels(),
	)
	require.Equal(t, []ActionType{ActionSetTool, ActionBroadcast, ActionUnsubscribe, ActionSubscribe}, actionTypes(got))

	assert.Equal(t, ToolChange{Name: "bond", Options: bondOpts}, got[0].Payload)

	bc, ok := got[1].Payload.(Broadcast)
	require.True(t, ok)
	assert.Equal(t, ChannelMessage, bc.Channel)
	msg, ok := bc.Payload.(MessagePayload)
	require.True(t, ok)
	require.NotNil(t, msg.Info)
	assert.JSONEq(t, `{"type":"single"}`, *msg.Info)

	unsub := got[2].Payload.(Subscription)
	assert.Equal(t, ChannelCursor, unsub.Channel)
	assert.Equal(t, "onCursor", unsub.Slot)
	assert.Same(t, oldCursor, unsub.Handler)

	sub := got[3].Payload.(Subscription)
	assert.Same(t, newCursor, sub.Handler)
}

func TestDiff_ClearedToolOptionsBroadcastsNoInfo(t *testing.T) {
	got := Diff(
		&Configuration{Tool: "bond", ToolOptions: NewToolOptions(map[string]any{"type": "single"})},
		&Configuration{Tool: "bond"},
		EditorChannels(),
	)
	require.Equal(t, []ActionType{ActionSetTool, ActionBroadcast}, actionTypes(got))
	msg := got[1].Payload.(Broadcast).Payload.(MessagePayload)
	assert.Nil(t, msg.Info)
}

func TestDiff_OnlyEnumeratedChannels(t *testing.T) {
	h := NewHandler(func(Payload) {})
	next := &Configuration{OnChange: h, OnCursor: h}

	got := Diff(nil, next, []ChannelName{ChannelCursor, "custom"})

	require.Len(t, got, 1)
	sub := got[0].Payload.(Subscription)
	assert.Equal(t, ChannelCursor, sub.Channel)
}

func TestDiff_ChannelOrderFollowsEngine(t *testing.T) {
	a := NewHandler(func(Payload) {})
	b := NewHandler(func(Payload) {})
	next := &Configuration{OnChange: a, OnCursor: b}

	got := Diff(nil, next, []ChannelName{ChannelCursor, ChannelChange})

	require.Len(t, got, 2)
	assert.Equal(t, ChannelCursor, got[0].Payload.(Subscription).Channel)
	assert.Equal(t, ChannelChange, got[1].Payload.(Subscription).Channel)
}

func TestTeardown(t *testing.T) {
	a := NewHandler(func(Payload) {})
	b := NewHandler(func(Payload) {})
	current := &Configuration{OnChange: a, OnMessage: b, Tool: "select"}

	got := Teardown(current, EditorChannels())

	require.Len(t, got, 2)
	for _, act := range got {
		assert.Equal(t, ActionUnsubscribe, act.Type)
	}
	assert.Same(t, a, got[0].Payload.(Subscription).Handler)
	assert.Same(t, b, got[1].Payload.(Subscription).Handler)

	assert.Empty(t, Teardown(nil, EditorChannels()))
}
