package scenario_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/katalvlaran/dyntree/dyncon"
	"github.com/katalvlaran/dyntree/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Reference decodes the shipped reference scenario.
func TestLoad_Reference(t *testing.T) {
	s, err := scenario.Load("testdata/reference.toml")
	require.NoError(t, err)

	assert.True(t, s.Check)
	assert.False(t, s.Shallow)
	assert.Len(t, s.Edges, 9)
	assert.Len(t, s.Steps, 14)
	assert.Equal(t, dyncon.Edge{ID: "5", From: "3", To: "4"}, s.Edges[4].Edge())
	require.NotNil(t, s.Steps[3].Expect)
	assert.False(t, *s.Steps[3].Expect)
}

// TestRun_Reference replays the reference scenario and checks every expectation.
func TestRun_Reference(t *testing.T) {
	s, err := scenario.Load("testdata/reference.toml")
	require.NoError(t, err)

	var out bytes.Buffer
	r := scenario.Runner{Out: &out}
	rep, err := r.Run(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, 14, rep.Steps)
	assert.Equal(t, 11, rep.Checked)
	assert.Empty(t, rep.Failures)
	assert.Equal(t, 2, rep.Components)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 14)
	assert.Equal(t, "connected 1 4 true", lines[0])
	assert.Equal(t, "add 1 6 10", lines[5])
	assert.Equal(t, "delete 10", lines[8])
	assert.Equal(t, "components 2 [[1 2 3 4 5] [6 7 8 9]]", lines[13])
}

// TestRun_ExpectationFailure collects mismatches without aborting.
func TestRun_ExpectationFailure(t *testing.T) {
	s, err := scenario.Decode(strings.NewReader(`
[[edge]]
id = "ab"
from = "a"
to = "b"

[[step]]
op = "connected"
from = "a"
to = "b"
expect = false

[[step]]
op = "delete"
id = "ab"

[[step]]
op = "components"
expect_count = 1
`))
	require.NoError(t, err)

	var r scenario.Runner
	rep, err := r.Run(context.Background(), s)
	require.ErrorIs(t, err, scenario.ErrExpectation)
	assert.Equal(t, 3, rep.Steps)
	require.Len(t, rep.Failures, 2)
	assert.Equal(t, "step 0 (connected a b): want false, got true", rep.Failures[0].String())
	assert.Equal(t, 2, rep.Failures[1].Step)
}

// TestRun_ForestError aborts on a contract violation.
func TestRun_ForestError(t *testing.T) {
	s, err := scenario.Decode(strings.NewReader(`
[[edge]]
id = "ab"
from = "a"
to = "b"

[[step]]
op = "connected"
from = "a"
to = "zz"
`))
	require.NoError(t, err)

	var r scenario.Runner
	_, err = r.Run(context.Background(), s)
	assert.ErrorIs(t, err, dyncon.ErrVertexNotFound)

	dup := &scenario.Scenario{Edges: []scenario.EdgeSpec{
		{ID: "x", From: "a", To: "b"},
		{ID: "x", From: "b", To: "c"},
	}}
	_, err = r.Run(context.Background(), dup)
	assert.ErrorIs(t, err, dyncon.ErrDuplicateEdge)
}

// TestRun_Cancelled stops before the first step.
func TestRun_Cancelled(t *testing.T) {
	s, err := scenario.Load("testdata/reference.toml")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var r scenario.Runner
	rep, err := r.Run(ctx, s)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, rep.Steps)
}

// TestDecode_Errors rejects malformed files.
func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"UnknownKey", "colour = \"red\"\n", scenario.ErrUnknownKey},
		{"UnknownOp", "[[step]]\nop = \"merge\"\n", scenario.ErrBadStep},
		{"AddMissingID", "[[step]]\nop = \"add\"\nfrom = \"a\"\nto = \"b\"\n", scenario.ErrBadStep},
		{"DeleteMissingID", "[[step]]\nop = \"delete\"\n", scenario.ErrBadStep},
		{"ExpectOnAdd", "[[step]]\nop = \"add\"\nfrom = \"a\"\nto = \"b\"\nid = \"x\"\nexpect = true\n", scenario.ErrBadStep},
		{"CountOnConnected", "[[step]]\nop = \"connected\"\nfrom = \"a\"\nto = \"b\"\nexpect_count = 1\n", scenario.ErrBadStep},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Decode(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := scenario.Decode(strings.NewReader("check = "))
	assert.Error(t, err, "syntax errors surface from the decoder")

	_, err = scenario.Load("testdata/missing.toml")
	assert.Error(t, err)
}
