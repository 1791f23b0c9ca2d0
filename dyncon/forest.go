// File: forest.go
// Role: Construction (New), root lookup, Connected/Root queries, re-rooting and
//       tree-edge attachment shared by insert.go and delete.go.
// Determinism:
//   - New seeds BFS from vertices in ascending ID and visits neighbors in
//     ascending ID; parallel edges resolve to the smallest edge ID.
// Concurrency:
//   - Connected/Root under mu read lock; unexported helpers assume mu is held.

package dyncon

import (
	"fmt"
	"maps"
	"slices"
)

// link is a pending (parent, child) discovery in the construction BFS.
type link struct {
	parent string
	child  string
}

// New builds a Forest from an initial batch of edges.
//
// Steps:
//  1. Apply options.
//  2. Register every edge and its mutual adjacency; reject empty or duplicate IDs.
//  3. For every vertex not yet visited (ascending ID), run a BFS seeded at it:
//     each newly reached vertex becomes the tree-child of the vertex it was
//     discovered from, through the smallest connecting edge ID.
//
// The result has exactly one tree per connected component. Tree shape is
// deterministic for a given input but callers must not rely on it.
//
// Complexity: O(V + E) plus neighbor sorting. Memory: O(V + E).
func New(edges []Edge, opts ...Option) (*Forest, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f := &Forest{
		opts:      o,
		vertices:  make(map[string]*vertex),
		edges:     make(map[string]Edge, len(edges)),
		treeEdges: make(map[string]Edge),
	}

	// 2) registry + adjacency
	for _, e := range edges {
		if err := checkEdge(e); err != nil {
			return nil, err
		}
		if _, dup := f.edges[e.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateEdge, e.ID)
		}
		f.register(e)
	}

	// 3) multi-source BFS
	visited := make(map[string]bool, len(f.vertices))
	var queue []link
	for _, id := range slices.Sorted(maps.Keys(f.vertices)) {
		if visited[id] {
			continue
		}
		visited[id] = true
		for _, nbr := range f.vertices[id].neighbors() {
			queue = append(queue, link{parent: id, child: nbr})
		}

		for len(queue) > 0 {
			l := queue[0]
			queue = queue[1:]
			if visited[l.child] {
				continue
			}
			visited[l.child] = true
			f.attachAny(l.parent, l.child)

			for _, nbr := range f.vertices[l.child].neighbors() {
				if !visited[nbr] {
					queue = append(queue, link{parent: l.child, child: nbr})
				}
			}
		}
	}

	f.opts.Logger.Debug("forest built",
		"vertices", len(f.vertices), "edges", len(f.edges), "treeEdges", len(f.treeEdges))
	if err := f.check(); err != nil {
		return nil, err
	}

	return f, nil
}

// Connected reports whether u and v lie in the same component.
// Both vertices must have been introduced by some edge.
//
// Complexity: O(depth(u) + depth(v)).
func (f *Forest) Connected(u, v string) (bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	ru, err := f.lookupRoot(u)
	if err != nil {
		return false, err
	}
	rv, err := f.lookupRoot(v)
	if err != nil {
		return false, err
	}

	return ru == rv, nil
}

// Root returns the root of the tree currently containing v.
// The root of a component changes as edges are added and removed.
func (f *Forest) Root(v string) (string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.lookupRoot(v)
}

// lookupRoot validates v and returns its root. Caller holds f.mu.
func (f *Forest) lookupRoot(v string) (string, error) {
	if v == "" {
		return "", ErrEmptyVertexID
	}
	if _, ok := f.vertices[v]; !ok {
		return "", fmt.Errorf("%w: %q", ErrVertexNotFound, v)
	}
	r, _ := f.root(v)

	return r, nil
}

// root follows parent pointers from v and returns the root and the depth of v.
// v must exist.
func (f *Forest) root(v string) (string, int) {
	depth := 0
	for x := f.vertices[v]; !x.isRoot; x = f.vertices[v] {
		v = x.parent
		depth++
	}

	return v, depth
}

// reRoot makes newRoot the root of its tree by reversing every parent/child
// relation on the path to the current root. Tree edges are unchanged, only
// their orientation flips.
//
// Complexity: O(depth(newRoot)).
func (f *Forest) reRoot(newRoot string) {
	nr := f.vertices[newRoot]
	if nr.isRoot {
		return
	}

	prev, curr := newRoot, nr.parent
	nr.deleteParent()
	steps := 0
	for {
		c := f.vertices[curr]
		wasRoot := c.isRoot
		next := c.parent
		eid := c.treeChild[prev]

		// prev adopts its former parent through the same edge.
		f.vertices[prev].selectTreeChild(curr, eid)
		c.releaseTreeChild(prev)
		c.setParent(prev, eid)
		steps++

		if wasRoot {
			break
		}
		prev, curr = curr, next
	}

	f.opts.Logger.Debug("re-rooted", "root", newRoot, "steps", steps)
}

// attach makes parent the tree-parent of child through eid and records eid
// as a tree edge. child must currently be a root.
func (f *Forest) attach(parent, child, eid string) {
	f.vertices[parent].selectTreeChild(child, eid)
	f.vertices[child].setParent(parent, eid)
	f.treeEdges[eid] = f.edges[eid]
}

// attachAny is attach through the smallest edge ID joining parent and child.
func (f *Forest) attachAny(parent, child string) string {
	eid, _ := f.vertices[parent].anyEdgeTo(child)
	f.attach(parent, child, eid)

	return eid
}

// register stores e in the edge registry and in both endpoint records,
// creating the records when needed.
func (f *Forest) register(e Edge) {
	f.edges[e.ID] = e
	f.vertexFor(e.From).addNeighbor(e.To, e.ID)
	f.vertexFor(e.To).addNeighbor(e.From, e.ID)
}

func (f *Forest) vertexFor(id string) *vertex {
	x, ok := f.vertices[id]
	if !ok {
		x = newVertex()
		f.vertices[id] = x
	}

	return x
}

// check runs Validate when consistency checks are enabled. Caller holds f.mu
// or owns f exclusively.
func (f *Forest) check() error {
	if !f.opts.Check {
		return nil
	}

	return f.validate()
}

func checkEdge(e Edge) error {
	if e.ID == "" {
		return ErrEmptyEdgeID
	}
	if e.From == "" || e.To == "" {
		return fmt.Errorf("%w: edge %q", ErrEmptyVertexID, e.ID)
	}

	return nil
}
