package memory_test

import (
	"testing"

	"github.com/aretw0/molcanvas/pkg/adapters/memory"
	"github.com/aretw0/molcanvas/pkg/domain"
	"github.com/aretw0/molcanvas/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryEngine_Contract(t *testing.T) {
	root := memory.NewElement(domain.BoundingBox{Right: 100, Bottom: 100})
	ports.RunEngineContract(t, memory.Factory(), root)
}

func TestMemoryEngine_DefaultChannels(t *testing.T) {
	eng, err := memory.New(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.EditorChannels(), eng.Channels())
	assert.Equal(t, memory.DefaultScale, eng.Settings().Scale)
}

func TestMemoryEngine_CustomChannels(t *testing.T) {
	eng, err := memory.New(nil, nil, domain.ChannelCursor, domain.ChannelMessage, "custom")
	require.NoError(t, err)
	assert.Equal(t, []domain.ChannelName{domain.ChannelCursor, domain.ChannelMessage, "custom"}, eng.Channels())
	assert.Nil(t, eng.Channel(domain.ChannelChange))

	_, err = memory.New(nil, nil, domain.ChannelCursor, domain.ChannelCursor)
	assert.Error(t, err)
}

func TestMemoryEngine_Dispatch(t *testing.T) {
	eng, err := memory.New(nil, nil)
	require.NoError(t, err)

	var got []domain.Payload
	eng.Channel(domain.ChannelChange).Add(domain.NewHandler(func(p domain.Payload) { got = append(got, p) }))

	require.NoError(t, eng.Dispatch(domain.ChannelChange, "edited"))
	assert.Equal(t, []domain.Payload{"edited"}, got)
	assert.Equal(t, 1, eng.Subscribers(domain.ChannelChange))

	err = eng.Dispatch("custom", nil)
	assert.ErrorIs(t, err, domain.ErrUnknownChannel)
	assert.Zero(t, eng.Subscribers("custom"))
}

func TestMemoryEngine_HandlerMayUnsubscribeDuringDispatch(t *testing.T) {
	ch := memory.NewChannel(domain.ChannelMessage)
	calls := 0
	var self *domain.Handler
	self = domain.NewHandler(func(domain.Payload) {
		calls++
		ch.Remove(self)
	})
	ch.Add(self)

	ch.Dispatch(nil)
	ch.Dispatch(nil)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, ch.Dispatched())
	assert.Zero(t, ch.Len())
}

func TestMemoryEngine_RecordsCalls(t *testing.T) {
	eng, err := memory.New(nil, nil)
	require.NoError(t, err)

	s := domain.NewStruct("smiles", "CCO")
	opts := domain.NewToolOptions(map[string]any{"type": "single"})
	eng.SetStructure(s)
	eng.SetTool("bond", opts)
	eng.SetOptions(domain.NewOptions(map[string]any{"showAtomIds": true}))

	calls := eng.Calls()
	require.Len(t, calls, 3)
	assert.Equal(t, "setStructure", calls[0].Method)
	assert.Equal(t, "setTool", calls[1].Method)
	assert.Equal(t, "setOptions", calls[2].Method)

	assert.Same(t, s, eng.Structure())
	tool, got := eng.Tool()
	assert.Equal(t, "bond", tool)
	assert.Same(t, opts, got)
	assert.True(t, eng.Settings().ShowAtomIds)
}

func TestDecodeSettings(t *testing.T) {
	s, err := memory.DecodeSettings(domain.NewOptions(map[string]any{
		"showBondIds":   true,
		"scale":         float64(55),
		"resetToSelect": "paste",
		"zoom":          1.5,
	}))
	require.NoError(t, err)
	assert.True(t, s.ShowBondIds)
	assert.Equal(t, 55, s.Scale)
	assert.Equal(t, "paste", s.ResetToSelect)
	assert.Equal(t, 1.5, s.Extra["zoom"])

	_, err = memory.DecodeSettings(domain.NewOptions(map[string]any{"scale": "big"}))
	assert.Error(t, err)
}

func TestMemoryEngine_InvalidSettings(t *testing.T) {
	_, err := memory.New(nil, domain.NewOptions(map[string]any{"scale": []int{1}}))
	assert.Error(t, err)

	eng, err := memory.New(nil, nil)
	require.NoError(t, err)
	eng.SetOptions(domain.NewOptions(map[string]any{"scale": "big"}))
	assert.Error(t, eng.Err())
	assert.Equal(t, memory.DefaultScale, eng.Settings().Scale)
}

func TestElement(t *testing.T) {
	el := memory.NewElement(domain.BoundingBox{Right: 10, Bottom: 10})
	el.AddClass("a")
	el.AddClass("a")
	el.AddClass("b")
	el.RemoveClass("a")
	el.RemoveClass("missing")
	el.SetText("hello")
	el.SetBoundingBox(domain.BoundingBox{Right: 20, Bottom: 20})

	assert.Equal(t, []string{"b"}, el.Classes())
	assert.True(t, el.HasClass("b"))
	assert.Equal(t, "hello", el.Text())
	assert.Equal(t, 20.0, el.BoundingBox().Right)
}
