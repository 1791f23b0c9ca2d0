package dyncon

import "fmt"

// AddEdge inserts the edge (from, to) under id.
//
// The edge is always recorded in the registry and in both adjacency maps, so
// it stays available as a replacement candidate. If the endpoints are already
// connected nothing else changes. Otherwise one endpoint's tree is re-rooted
// at that endpoint and hung below the other one through this edge.
//
// Errors: ErrEmptyEdgeID, ErrEmptyVertexID, ErrDuplicateEdge, and ErrCorrupted
// when consistency checks are enabled.
//
// Complexity: O(depth(from) + depth(to)).
func (f *Forest) AddEdge(from, to, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	e := Edge{ID: id, From: from, To: to}
	if err := checkEdge(e); err != nil {
		return err
	}
	if _, dup := f.edges[id]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateEdge, id)
	}
	f.register(e)

	if from == to {
		return f.check()
	}

	rootFrom, depthFrom := f.root(from)
	rootTo, depthTo := f.root(to)
	if rootFrom == rootTo {
		f.opts.Logger.Debug("non-tree edge added", "edge", id, "from", from, "to", to)
		return f.check()
	}

	// Default: "to" becomes the root of its tree and the child of "from".
	parent, child := from, to
	if f.opts.ShallowLinking && depthFrom < depthTo {
		parent, child = to, from
	}
	f.reRoot(child)
	f.attach(parent, child, id)
	f.opts.Logger.Debug("trees merged", "edge", id, "parent", parent, "child", child)

	return f.check()
}
