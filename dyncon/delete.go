// File: delete.go
// Role: DeleteEdge: bookkeeping removal, tree cut, replacement-edge search
//       and post-unlock hook dispatch.
// Determinism:
//   - The replacement search visits neighbors in ascending ID, so the chosen
//     replacement is stable for a given forest.
// Concurrency:
//   - Mutation under mu write lock; OnReplace/OnSplit run after unlock.

package dyncon

import "fmt"

// DeleteEdge removes the edge id.
//
// Removing a non-tree edge only updates bookkeeping. Removing a tree edge cuts
// its tree in two; the detached side is then searched breadth-first over every
// remaining edge for one that reaches back into the other side. If found, the
// detached side is re-rooted at the near endpoint and hung below the far one
// through that edge, and OnReplace fires. Otherwise the component has split
// and OnSplit fires.
//
// Errors: ErrEmptyEdgeID, ErrEdgeNotFound, and ErrCorrupted when consistency
// checks are enabled.
//
// Complexity: O(1) for non-tree edges; O(V_c·depth + E_c) for tree edges.
func (f *Forest) DeleteEdge(id string) error {
	if id == "" {
		return ErrEmptyEdgeID
	}

	f.mu.Lock()
	d, err := f.deleteEdge(id)
	if err == nil {
		err = f.check()
	}
	f.mu.Unlock()
	if err != nil {
		return err
	}

	f.notify(d)

	return nil
}

// deleteEdge performs the deletion. Caller holds f.mu.
func (f *Forest) deleteEdge(id string) (deletion, error) {
	e, ok := f.edges[id]
	if !ok {
		return deletion{}, fmt.Errorf("%w: %q", ErrEdgeNotFound, id)
	}
	d := deletion{removed: e}

	// Which endpoint hangs below the other through this edge, if any.
	_, tree := f.treeEdges[id]
	v := e.To
	if from := f.vertices[e.From]; tree && !from.isRoot && from.parentEdge == id {
		v = e.From
	}
	u := e.Other(v)

	f.vertices[u].removeEdge(v, id)
	f.vertices[v].removeEdge(u, id)
	delete(f.edges, id)

	if !tree {
		f.opts.Logger.Debug("non-tree edge deleted", "edge", id)
		return d, nil
	}
	d.tree = true
	delete(f.treeEdges, id)

	// v is now the root of the detached subtree; u keeps the old root.
	uRoot, _ := f.root(u)
	if r, ok := f.replace(v, uRoot); ok {
		d.replaced = true
		d.replacement = r
		f.opts.Logger.Debug("tree edge replaced", "edge", id, "replacement", r.ID)
	} else {
		f.opts.Logger.Debug("component split", "edge", id, "roots", []string{uRoot, v})
	}

	return d, nil
}

// replace searches breadth-first from v, over all adjacency, for an edge whose
// far endpoint roots at uRoot. On success the near endpoint becomes the root
// of its tree and is attached below the far endpoint.
//
// Roots are memoized per vertex for the duration of the search: nothing moves
// until a crossing edge is found, and the search stops right after.
func (f *Forest) replace(v, uRoot string) (Edge, bool) {
	roots := make(map[string]string)
	rootOf := func(x string) string {
		if r, ok := roots[x]; ok {
			return r
		}
		r, _ := f.root(x)
		roots[x] = r

		return r
	}

	visited := map[string]bool{v: true}
	queue := []string{v}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, nbr := range f.vertices[curr].neighbors() {
			if rootOf(nbr) == uRoot {
				f.reRoot(curr)
				eid := f.attachAny(nbr, curr)

				return f.edges[eid], true
			}
			if !visited[nbr] {
				visited[nbr] = true
				queue = append(queue, nbr)
			}
		}
	}

	return Edge{}, false
}

// notify runs hooks for a completed deletion. Called without f.mu held.
func (f *Forest) notify(d deletion) {
	if !d.tree {
		return
	}
	if d.replaced {
		if f.opts.OnReplace != nil {
			f.opts.OnReplace(d.removed, d.replacement)
		}
		return
	}
	if f.opts.OnSplit != nil {
		f.opts.OnSplit(d.removed)
	}
}
