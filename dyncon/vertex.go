package dyncon

import (
	"maps"
	"slices"
)

// vertex is the per-vertex bookkeeping record.
//
// Records reference each other only by ID. adjacency holds, per neighbor, the
// set of edge IDs joining the two; empty sets are never stored. treeChild maps
// each tree-child to the edge ID chosen as their tree edge. parent and
// parentEdge are meaningful only when isRoot is false.
type vertex struct {
	parent     string
	parentEdge string
	isRoot     bool

	adjacency map[string]map[string]struct{}
	treeChild map[string]string
}

func newVertex() *vertex {
	return &vertex{
		isRoot:    true,
		adjacency: make(map[string]map[string]struct{}),
		treeChild: make(map[string]string),
	}
}

// setParent makes p the tree-parent of this vertex through edge eid.
func (x *vertex) setParent(p, eid string) {
	x.parent = p
	x.parentEdge = eid
	x.isRoot = false
}

// deleteParent severs the tree relation only; adjacency is untouched.
func (x *vertex) deleteParent() {
	x.isRoot = true
}

func (x *vertex) addNeighbor(n, eid string) {
	set, ok := x.adjacency[n]
	if !ok {
		set = make(map[string]struct{}, 1)
		x.adjacency[n] = set
	}
	set[eid] = struct{}{}
}

func (x *vertex) selectTreeChild(c, eid string) {
	x.treeChild[c] = eid
}

// selectAnyTreeChild picks an edge currently joining x and c as the tree edge
// to c. Among parallel edges the smallest ID wins. Returns false when c is not
// adjacent.
func (x *vertex) selectAnyTreeChild(c string) (string, bool) {
	eid, ok := x.anyEdgeTo(c)
	if !ok {
		return "", false
	}
	x.treeChild[c] = eid

	return eid, true
}

func (x *vertex) releaseTreeChild(c string) {
	delete(x.treeChild, c)
}

// removeEdge drops eid from the bookkeeping towards n. If eid is the tree edge
// to the parent the vertex becomes a root; if it is the tree edge to child n
// that child relation is released. A neighbor left without edges is removed.
func (x *vertex) removeEdge(n, eid string) {
	if !x.isRoot && x.parent == n && x.parentEdge == eid {
		x.deleteParent()
	}
	if cur, ok := x.treeChild[n]; ok && cur == eid {
		x.releaseTreeChild(n)
	}

	set, ok := x.adjacency[n]
	if !ok {
		return
	}
	delete(set, eid)
	if len(set) == 0 {
		delete(x.adjacency, n)
	}
}

// anyEdgeTo returns the smallest edge ID joining x and n.
func (x *vertex) anyEdgeTo(n string) (string, bool) {
	set := x.adjacency[n]
	if len(set) == 0 {
		return "", false
	}
	var best string
	first := true
	for eid := range set {
		if first || eid < best {
			best, first = eid, false
		}
	}

	return best, true
}

// neighbors returns adjacent vertex IDs in ascending order.
func (x *vertex) neighbors() []string {
	return slices.Sorted(maps.Keys(x.adjacency))
}
