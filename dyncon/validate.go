package dyncon

import (
	"fmt"
	"maps"
	"slices"
)

// Validate checks every structural invariant of the forest and returns an
// error wrapping ErrCorrupted for the first violation found.
//
// Checked:
//  1. Every edge in the registry appears in both endpoint records, and every
//     adjacency entry names a registered edge joining those two vertices.
//     No adjacency set is empty.
//  2. Tree edges are registered edges.
//  3. Each non-root vertex's parent exists, lists it as a tree-child through
//     the same edge, and that edge is a tree edge joining the two.
//  4. Each tree-child entry is mirrored by the child's parent pointer.
//  5. Parent chains are acyclic, and the number of tree edges equals the
//     number of non-root vertices.
//  6. Grouping by root equals grouping by reachability over all edges.
//
// Complexity: O(V·depth + E).
func (f *Forest) Validate() error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.validate()
}

func (f *Forest) validate() error {
	// 1) registry <-> adjacency
	for id, e := range f.edges {
		for _, end := range [2][2]string{{e.From, e.To}, {e.To, e.From}} {
			x, ok := f.vertices[end[0]]
			if !ok {
				return corrupt("edge %q: endpoint %q has no record", id, end[0])
			}
			if _, ok := x.adjacency[end[1]][id]; !ok {
				return corrupt("edge %q missing from adjacency of %q", id, end[0])
			}
		}
	}
	for vid, x := range f.vertices {
		for nbr, set := range x.adjacency {
			if len(set) == 0 {
				return corrupt("vertex %q: empty adjacency set for %q", vid, nbr)
			}
			for eid := range set {
				e, ok := f.edges[eid]
				if !ok {
					return corrupt("vertex %q: adjacency names unknown edge %q", vid, eid)
				}
				if !joins(e, vid, nbr) {
					return corrupt("vertex %q: edge %q does not join it to %q", vid, eid, nbr)
				}
			}
		}
	}

	// 2) tree edges are registered
	for id, e := range f.treeEdges {
		if r, ok := f.edges[id]; !ok || r != e {
			return corrupt("tree edge %q not in registry", id)
		}
	}

	// 3) parent side
	nonRoots := 0
	for vid, x := range f.vertices {
		if x.isRoot {
			continue
		}
		nonRoots++
		p, ok := f.vertices[x.parent]
		if !ok {
			return corrupt("vertex %q: parent %q has no record", vid, x.parent)
		}
		if got, ok := p.treeChild[vid]; !ok || got != x.parentEdge {
			return corrupt("vertex %q: parent %q does not list it through %q", vid, x.parent, x.parentEdge)
		}
		e, ok := f.treeEdges[x.parentEdge]
		if !ok {
			return corrupt("vertex %q: parent edge %q is not a tree edge", vid, x.parentEdge)
		}
		if !joins(e, vid, x.parent) {
			return corrupt("vertex %q: parent edge %q does not join it to %q", vid, e.ID, x.parent)
		}
	}

	// 4) child side
	for vid, x := range f.vertices {
		for c, eid := range x.treeChild {
			cx, ok := f.vertices[c]
			if !ok || cx.isRoot || cx.parent != vid || cx.parentEdge != eid {
				return corrupt("vertex %q: tree-child %q does not point back through %q", vid, c, eid)
			}
		}
	}

	// 5) acyclic chains, one tree edge per non-root
	if nonRoots != len(f.treeEdges) {
		return corrupt("%d non-root vertices but %d tree edges", nonRoots, len(f.treeEdges))
	}
	roots := make(map[string]string, len(f.vertices))
	sizes := make(map[string]int)
	for vid := range f.vertices {
		v, steps := vid, 0
		for x := f.vertices[v]; !x.isRoot; x = f.vertices[v] {
			v = x.parent
			if steps++; steps > len(f.vertices) {
				return corrupt("vertex %q: parent chain has a cycle", vid)
			}
		}
		roots[vid] = v
		sizes[v]++
	}

	// 6) root partition equals reachability partition
	seen := make(map[string]bool, len(f.vertices))
	for _, start := range slices.Sorted(maps.Keys(f.vertices)) {
		if seen[start] {
			continue
		}
		want := roots[start]
		seen[start] = true
		queue := []string{start}
		size := 0
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			size++
			if roots[cur] != want {
				return corrupt("vertices %q and %q are joined by edges but have roots %q and %q",
					start, cur, want, roots[cur])
			}
			for nbr := range f.vertices[cur].adjacency {
				if !seen[nbr] {
					seen[nbr] = true
					queue = append(queue, nbr)
				}
			}
		}
		if sizes[want] != size {
			return corrupt("root %q covers %d vertices but its component has %d", want, sizes[want], size)
		}
	}

	return nil
}

func joins(e Edge, a, b string) bool {
	return (e.From == a && e.To == b) || (e.From == b && e.To == a)
}

func corrupt(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrCorrupted}, args...)...)
}
