package dyncon

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangle builds a–b–c–a. The BFS from "a" makes b and c its children
// through ab and ca; bc stays a non-tree edge.
func triangle(t *testing.T, opts ...Option) *Forest {
	t.Helper()
	f, err := New([]Edge{
		{ID: "ab", From: "a", To: "b"},
		{ID: "bc", From: "b", To: "c"},
		{ID: "ca", From: "c", To: "a"},
	}, opts...)
	require.NoError(t, err)
	require.NoError(t, f.validate())
	require.True(t, f.vertices["b"].parent == "a" && f.vertices["c"].parent == "a")

	return f
}

// TestValidate_DetectsCorruption breaks one invariant at a time and expects
// ErrCorrupted each time.
func TestValidate_DetectsCorruption(t *testing.T) {
	cases := []struct {
		name  string
		build func(t *testing.T) *Forest
	}{
		{"MissingAdjacencyMirror", func(t *testing.T) *Forest {
			f := triangle(t)
			delete(f.vertices["b"].adjacency, "c")
			return f
		}},
		{"EmptyAdjacencySet", func(t *testing.T) *Forest {
			f := triangle(t)
			f.vertices["a"].adjacency["zz"] = map[string]struct{}{}
			return f
		}},
		{"AdjacencyNamesUnknownEdge", func(t *testing.T) *Forest {
			f := triangle(t)
			f.vertices["a"].addNeighbor("b", "ghost")
			return f
		}},
		{"TreeEdgeNotRegistered", func(t *testing.T) *Forest {
			f := triangle(t)
			f.treeEdges["ghost"] = Edge{ID: "ghost", From: "a", To: "b"}
			return f
		}},
		{"ParentDoesNotListChild", func(t *testing.T) *Forest {
			f := triangle(t)
			delete(f.vertices["a"].treeChild, "b")
			return f
		}},
		{"ChildDoesNotPointBack", func(t *testing.T) *Forest {
			f := triangle(t)
			f.vertices["b"].deleteParent()
			return f
		}},
		{"ParentEdgeNotTree", func(t *testing.T) *Forest {
			f := triangle(t)
			delete(f.treeEdges, "ab")
			return f
		}},
		{"ParentChainCycle", func(t *testing.T) *Forest {
			// Every record is locally consistent, but a→b→c→a never reaches a root.
			f := triangle(t)
			for _, id := range []string{"a", "b", "c"} {
				f.vertices[id].treeChild = make(map[string]string)
			}
			for _, l := range []struct{ child, parent, eid string }{
				{"a", "b", "ab"}, {"b", "c", "bc"}, {"c", "a", "ca"},
			} {
				f.vertices[l.child].setParent(l.parent, l.eid)
				f.vertices[l.parent].selectTreeChild(l.child, l.eid)
				f.treeEdges[l.eid] = f.edges[l.eid]
			}
			return f
		}},
		{"RootsDisagreeWithReachability", func(t *testing.T) *Forest {
			// The edge joins two trees without any tree surgery.
			f, err := New([]Edge{
				{ID: "ab", From: "a", To: "b"},
				{ID: "cd", From: "c", To: "d"},
			})
			require.NoError(t, err)
			f.register(Edge{ID: "bc", From: "b", To: "c"})
			return f
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := tc.build(t)
			err := f.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrCorrupted), "got %v", err)
		})
	}
}

// TestConsistencyChecks_ReportCorruption checks that mutations surface a
// broken forest when checks are enabled, and stay silent when they are not.
func TestConsistencyChecks_ReportCorruption(t *testing.T) {
	f := triangle(t, WithConsistencyChecks())
	delete(f.vertices["a"].treeChild, "b")

	assert.ErrorIs(t, f.AddEdge("x", "y", "xy"), ErrCorrupted)
	assert.ErrorIs(t, f.DeleteEdge("xy"), ErrCorrupted)

	g := triangle(t)
	delete(g.vertices["a"].treeChild, "b")
	assert.NoError(t, g.AddEdge("x", "y", "xy"))
	assert.ErrorIs(t, g.Validate(), ErrCorrupted)
}
