package registry_test

import (
	"testing"

	"github.com/aretw0/molcanvas/pkg/adapters/memory"
	"github.com/aretw0/molcanvas/pkg/domain"
	"github.com/aretw0/molcanvas/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *memory.Engine {
	t.Helper()
	eng, err := memory.New(nil, nil)
	require.NoError(t, err)
	return eng
}

func TestRegistry_AddIsIdempotent(t *testing.T) {
	eng := newEngine(t)
	reg := registry.New(eng)

	calls := 0
	h := domain.NewHandler(func(domain.Payload) { calls++ })

	assert.True(t, reg.Add(domain.ChannelChange, h))
	assert.False(t, reg.Add(domain.ChannelChange, h))
	require.NoError(t, eng.Dispatch(domain.ChannelChange, nil))

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, reg.Len())
	assert.Equal(t, 1, eng.Subscribers(domain.ChannelChange))
}

func TestRegistry_SameHandlerOnTwoChannels(t *testing.T) {
	eng := newEngine(t)
	reg := registry.New(eng)
	h := domain.NewHandler(func(domain.Payload) {})

	assert.True(t, reg.Add(domain.ChannelChange, h))
	assert.True(t, reg.Add(domain.ChannelConfirm, h))
	assert.Equal(t, 2, reg.Len())
}

func TestRegistry_RemoveStopsDelivery(t *testing.T) {
	eng := newEngine(t)
	reg := registry.New(eng)

	calls := 0
	h := domain.NewHandler(func(domain.Payload) { calls++ })
	reg.Add(domain.ChannelMessage, h)

	assert.True(t, reg.Remove(domain.ChannelMessage, h))
	assert.False(t, reg.Remove(domain.ChannelMessage, h))
	require.NoError(t, eng.Dispatch(domain.ChannelMessage, domain.MessagePayload{}))

	assert.Zero(t, calls)
	assert.Zero(t, reg.Len())
	assert.Empty(t, reg.Registered(domain.ChannelMessage))
}

func TestRegistry_RemoveAbsentIsNoop(t *testing.T) {
	eng := newEngine(t)
	reg := registry.New(eng)

	// Registered directly on the engine, not through this registry.
	foreign := domain.NewHandler(func(domain.Payload) {})
	eng.Channel(domain.ChannelCursor).Add(foreign)

	assert.False(t, reg.Remove(domain.ChannelCursor, foreign))
	assert.False(t, reg.Remove(domain.ChannelCursor, nil))
	assert.False(t, reg.Add(domain.ChannelCursor, nil))
	assert.Equal(t, 1, eng.Subscribers(domain.ChannelCursor))
}

func TestRegistry_RemoveAll(t *testing.T) {
	eng := newEngine(t)
	reg := registry.New(eng)

	a := domain.NewHandler(func(domain.Payload) {})
	b := domain.NewHandler(func(domain.Payload) {})
	reg.Add(domain.ChannelCursor, a)
	reg.Add(domain.ChannelCursor, b)
	reg.Add(domain.ChannelChange, a)

	assert.Equal(t, []*domain.Handler{a, b}, reg.Registered(domain.ChannelCursor))
	assert.Equal(t, 3, reg.RemoveAll())
	assert.Zero(t, reg.Len())
	for _, name := range eng.Channels() {
		assert.Zero(t, eng.Subscribers(name), name)
	}
	assert.Zero(t, reg.RemoveAll())
}

func TestRegistry_InstancesAreIndependent(t *testing.T) {
	eng := newEngine(t)
	first := registry.New(eng)
	second := registry.New(eng)

	h := domain.NewHandler(func(domain.Payload) {})
	first.Add(domain.ChannelChange, h)

	assert.Zero(t, second.Len())
	assert.Zero(t, second.RemoveAll())
	assert.Equal(t, 1, eng.Subscribers(domain.ChannelChange))
}
