// File: query.go
// Role: Read-only views: HasVertex/HasEdge/IsTreeEdge/Edge, sorted listings,
//       counts and Components.
// Determinism:
//   - Vertices() ascending; Edges()/TreeEdges() by Edge.ID asc; Components()
//     sorted inside and ordered by smallest member.
// Concurrency:
//   - Every view under mu read lock.

package dyncon

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
)

// HasVertex reports whether some edge has introduced id.
// Vertices stay known after their last edge is deleted.
func (f *Forest) HasVertex(id string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	_, ok := f.vertices[id]

	return ok
}

// HasEdge reports whether edge id is currently present.
func (f *Forest) HasEdge(id string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	_, ok := f.edges[id]

	return ok
}

// IsTreeEdge reports whether edge id is currently a spanning-tree edge.
func (f *Forest) IsTreeEdge(id string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	_, ok := f.treeEdges[id]

	return ok
}

// Edge returns the present edge with the given id.
func (f *Forest) Edge(id string) (Edge, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	e, ok := f.edges[id]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %q", ErrEdgeNotFound, id)
	}

	return e, nil
}

// Vertices returns every known vertex ID in ascending order.
func (f *Forest) Vertices() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return slices.Sorted(maps.Keys(f.vertices))
}

// Edges returns every present edge sorted by ID.
func (f *Forest) Edges() []Edge {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return sortedEdges(f.edges)
}

// TreeEdges returns the current spanning-forest edges sorted by ID.
func (f *Forest) TreeEdges() []Edge {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return sortedEdges(f.treeEdges)
}

// VertexCount returns the number of known vertices.
func (f *Forest) VertexCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return len(f.vertices)
}

// EdgeCount returns the number of present edges.
func (f *Forest) EdgeCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return len(f.edges)
}

// TreeEdgeCount returns the number of spanning-forest edges.
// It always equals VertexCount() - ComponentCount().
func (f *Forest) TreeEdgeCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return len(f.treeEdges)
}

// Components groups vertices by root. Each component is sorted, and
// components are ordered by their smallest member.
//
// Complexity: O(V·depth + V·log V).
func (f *Forest) Components() [][]string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	byRoot := make(map[string][]string)
	for id := range f.vertices {
		r, _ := f.root(id)
		byRoot[r] = append(byRoot[r], id)
	}

	comps := make([][]string, 0, len(byRoot))
	for _, c := range byRoot {
		slices.Sort(c)
		comps = append(comps, c)
	}
	slices.SortFunc(comps, func(a, b []string) int { return cmp.Compare(a[0], b[0]) })

	return comps
}

// ComponentCount returns the number of trees in the forest.
func (f *Forest) ComponentCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	n := 0
	for _, x := range f.vertices {
		if x.isRoot {
			n++
		}
	}

	return n
}

func sortedEdges(m map[string]Edge) []Edge {
	out := slices.Collect(maps.Values(m))
	slices.SortFunc(out, func(a, b Edge) int { return cmp.Compare(a.ID, b.ID) })

	return out
}
