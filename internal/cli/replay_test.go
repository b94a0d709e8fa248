package cli

import (
	"bytes"
	"testing"

	"github.com/aretw0/molcanvas/internal/logging"
	"github.com/aretw0/molcanvas/internal/scenario"
	"github.com/aretw0/molcanvas/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const measureScenario = `
name: measure
box: {left: 0, top: 0, right: 200, bottom: 100}
structures:
  benzene: {format: smiles, data: c1ccccc1}
  ethanol: {format: smiles, data: CCO}
toolOptions:
  pick: {atomId: 3, bondId: 7}
options:
  ids: {showAtomIds: true}
steps:
  - config: {structure: benzene, tool: select, options: ids, handlers: [change, cursor]}
  - cursor: {status: enable, x: 50, y: 50}
  - message: {info: '{"atomId":5,"bondId":12}'}
  - config: {structure: ethanol, tool: select, toolOptions: pick, options: ids, handlers: [change, cursor]}
  - box: {left: 300, top: 0, right: 400, bottom: 100}
  - cursor: {status: leave}
  - cursor: {status: enable, x: 50, y: 50}
  - detach: true
`

func parse(t *testing.T, src string) *scenario.File {
	t.Helper()
	f, err := scenario.Parse([]byte(src), ".yaml")
	require.NoError(t, err)
	return f
}

func TestReplay_Transcript(t *testing.T) {
	var out bytes.Buffer
	res, err := Replay(&out, parse(t, measureScenario), logging.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 8, res.Steps)
	assert.Equal(t, 3, res.Callbacks[domain.ChannelCursor])
	assert.Zero(t, res.Callbacks[domain.ChannelChange])
	assert.False(t, res.View.Attached)

	methods := make([]string, len(res.Calls))
	for i, c := range res.Calls {
		methods[i] = c.Method
	}
	assert.Equal(t, []string{"setStructure", "setTool", "setStructure", "setTool"}, methods)

	text := out.String()
	assert.Contains(t, text, "scenario measure")
	assert.Contains(t, text, "[1] config")
	assert.Contains(t, text, "SET_STRUCTURE smiles:c1ccccc1")
	assert.Contains(t, text, "SUBSCRIBE cursor (onCursor)")
	assert.Contains(t, text, `SET_TOOL select {"atomId":3,"bondId":7}`)
	assert.Contains(t, text, "BROADCAST message")
	assert.Contains(t, text, `overlay="Atom Id: 5, Bond Id: 12"`)
	assert.Contains(t, text, `overlay="Atom Id: 3, Bond Id: 7"`)
	assert.Contains(t, text, "cursor=on")
	assert.Contains(t, text, "callback onCursor")
	assert.Contains(t, text, "detached")
	assert.NotContains(t, text, "\x1b[", "no escape codes when not writing to a terminal")
}

func TestReplay_EnableOutsideMovedCanvas(t *testing.T) {
	src := `
box: {left: 0, top: 0, right: 100, bottom: 100}
steps:
  - config: {tool: select}
  - box: {left: 500, top: 500, right: 600, bottom: 600}
  - cursor: {status: enable, x: 50, y: 50}
`
	var out bytes.Buffer
	res, err := Replay(&out, parse(t, src), nil)
	require.NoError(t, err)
	assert.False(t, res.View.CursorEnabled)
}

func TestReplay_Remount(t *testing.T) {
	src := `
steps:
  - config: {handlers: [message]}
  - detach: true
  - attach: true
  - message: {info: hello}
`
	var out bytes.Buffer
	res, err := Replay(&out, parse(t, src), nil)
	require.NoError(t, err)

	assert.True(t, res.View.Attached)
	assert.Equal(t, "hello", res.View.Overlay.Text)
	// initial broadcast on each attach, plus the scripted message
	assert.Equal(t, 3, res.Callbacks[domain.ChannelMessage])
}

func TestReplay_StepErrors(t *testing.T) {
	var out bytes.Buffer

	res, err := Replay(&out, parse(t, "steps:\n  - cursor: {status: move}\n"), nil)
	assert.ErrorIs(t, err, domain.ErrNotAttached)
	assert.ErrorContains(t, err, "step 1 (cursor)")
	assert.Zero(t, res.Steps)

	_, err = Replay(&out, parse(t, "steps:\n  - attach: true\n  - attach: true\n"), nil)
	assert.ErrorIs(t, err, domain.ErrAlreadyAttached)

	_, err = Replay(&out, parse(t, "channels: [change]\nsteps:\n  - attach: true\n"), nil)
	assert.ErrorIs(t, err, domain.ErrMissingChannel)
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		act  domain.Action
		want string
	}{
		{domain.Action{Type: domain.ActionSetStructure, Payload: (*domain.Struct)(nil)}, "SET_STRUCTURE <none>"},
		{domain.Action{Type: domain.ActionSetTool, Payload: domain.ToolChange{Name: "bond"}}, "SET_TOOL bond"},
		{domain.Action{Type: domain.ActionSetOptions, Payload: domain.NewOptions(map[string]any{"scale": 2})}, `SET_OPTIONS {"scale":2}`},
		{domain.Action{Type: domain.ActionUnsubscribe, Payload: domain.Subscription{Channel: domain.ChannelChange, Slot: "onChange"}}, "UNSUBSCRIBE change (onChange)"},
		{domain.Action{Type: "OTHER"}, "OTHER"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, describe(tt.act))
	}
}
