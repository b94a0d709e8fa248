package ports

import (
	"testing"

	"github.com/aretw0/molcanvas/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunEngineContract runs a suite of tests to verify that an Engine implementation
// adheres to the defined interface contract.
func RunEngineContract(t *testing.T, factory EngineFactory, root Element) {
	t.Run("Required Channels", func(t *testing.T) {
		eng, err := factory(root, nil)
		require.NoError(t, err)

		names := eng.Channels()
		for _, required := range domain.RequiredChannels {
			assert.Contains(t, names, required)
			assert.NotNil(t, eng.Channel(required), "channel %s", required)
		}
		assert.Nil(t, eng.Channel("no-such-channel"))
	})

	t.Run("Enumeration Is Stable", func(t *testing.T) {
		eng, err := factory(root, nil)
		require.NoError(t, err)
		assert.Equal(t, eng.Channels(), eng.Channels())
	})

	t.Run("Add Is Idempotent", func(t *testing.T) {
		eng, err := factory(root, nil)
		require.NoError(t, err)
		ch := eng.Channel(domain.ChannelMessage)

		calls := 0
		h := domain.NewHandler(func(domain.Payload) { calls++ })
		ch.Add(h)
		ch.Add(h)
		ch.Dispatch(domain.NewMessage("x"))

		assert.Equal(t, 1, calls)
	})

	t.Run("Remove Stops Delivery", func(t *testing.T) {
		eng, err := factory(root, nil)
		require.NoError(t, err)
		ch := eng.Channel(domain.ChannelCursor)

		calls := 0
		h := domain.NewHandler(func(domain.Payload) { calls++ })
		ch.Add(h)
		ch.Dispatch(domain.CursorEvent{Status: domain.CursorMove})
		ch.Remove(h)
		ch.Remove(h)
		ch.Dispatch(domain.CursorEvent{Status: domain.CursorMove})

		assert.Equal(t, 1, calls)
	})

	t.Run("Dispatch Order Follows Registration", func(t *testing.T) {
		eng, err := factory(root, nil)
		require.NoError(t, err)
		ch := eng.Channel(domain.ChannelMessage)

		var order []string
		ch.Add(domain.NewHandler(func(domain.Payload) { order = append(order, "first") }))
		ch.Add(domain.NewHandler(func(domain.Payload) { order = append(order, "second") }))
		ch.Dispatch(domain.MessagePayload{})

		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("Instances Are Independent", func(t *testing.T) {
		a, err := factory(root, nil)
		require.NoError(t, err)
		b, err := factory(root, nil)
		require.NoError(t, err)

		calls := 0
		a.Channel(domain.ChannelMessage).Add(domain.NewHandler(func(domain.Payload) { calls++ }))
		b.Channel(domain.ChannelMessage).Dispatch(domain.NewMessage("x"))

		assert.Zero(t, calls)
	})
}
