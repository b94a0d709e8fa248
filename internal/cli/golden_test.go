package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

const goldenScenario = `
name: golden
box: {left: 0, top: 0, right: 100, bottom: 100}
structures:
  water: {format: smiles, data: O}
toolOptions:
  pick: {atomId: 1}
steps:
  - config: {structure: water, tool: select, handlers: [change]}
  - cursor: {status: enable, x: 10, y: 20}
  - config: {structure: water, tool: select, toolOptions: pick}
  - message: {info: '{"bondId":4}'}
  - detach: true
`

func TestReplay_Golden(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var out bytes.Buffer
	_, err := Replay(&out, parse(t, goldenScenario), nil)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "replay", out.Bytes())
}
