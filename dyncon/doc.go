// Package dyncon answers dynamic connectivity queries over an undirected
// multigraph whose edge set changes over time.
//
// What:
//
//   - Forest keeps one spanning tree per connected component as parent
//     pointers plus, on each parent, the edge ID used to reach every tree-child.
//   - Connected(u, v) walks both parent chains and compares roots.
//   - AddEdge merges two trees by re-rooting one side and hanging it under the
//     other endpoint; an edge inside a component is stored as a non-tree edge.
//   - DeleteEdge of a non-tree edge is pure bookkeeping. Deleting a tree edge
//     cuts the tree and runs a BFS from the detached side looking for any
//     remaining edge back into the other side (a replacement edge).
//
// Why:
//
//   - Incremental connectivity without recomputing components after every
//     change.
//   - Small, auditable state: vertices reference each other only by ID.
//
// Complexity:
//
//   - New:        O(V + E) plus O(d·log d) per vertex for deterministic order.
//   - Connected:  O(depth(u) + depth(v)), worst case O(V) per component.
//   - AddEdge:    O(depth) for the root check and the re-root.
//   - DeleteEdge: O(1) for a non-tree edge; O(V_c + E_c) for a tree edge,
//     where V_c, E_c bound the component being repaired.
//
// Trees are not balanced. WithShallowLinking re-roots the shallower endpoint
// on merges, which keeps chains shorter on typical workloads but gives no
// worst-case guarantee.
//
// Options:
//
//   - WithConsistencyChecks: run Validate after every mutation.
//   - WithShallowLinking:    re-root the shallower endpoint on merges.
//   - WithLogger:            Debug-level structured events via log/slog.
//   - WithOnReplace, WithOnSplit: hooks fired after a tree-edge deletion.
//
// Errors:
//
//   - ErrEmptyVertexID, ErrEmptyEdgeID: empty identifiers.
//   - ErrVertexNotFound: vertex never introduced by an edge.
//   - ErrEdgeNotFound:   DeleteEdge/Edge on an unknown ID.
//   - ErrDuplicateEdge:  AddEdge/New with an ID already present.
//   - ErrCorrupted:      Validate found a broken invariant.
//
// Concurrency: Forest guards its state with a sync.RWMutex. Queries may run
// in parallel with each other; mutations are exclusive.
package dyncon
