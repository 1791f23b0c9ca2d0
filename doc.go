// Package dyntree is an in-memory toolkit for answering "are these two
// vertices connected?" while the graph keeps changing.
//
// What is inside?
//
//	dyncon/     — spanning-forest maintenance: New, Connected, AddEdge, DeleteEdge
//	scenario/   — TOML scenario files (initial edges + scripted operations) and a runner
//	cmd/dyncon/ — command-line replay of scenario files
//
// How it works, in one picture:
//
//	    1───2          delete 1─2:   1   2
//	    │   │          BFS from 2    │   │
//	    3───4          finds 4─3     3───4   (4─3 becomes a tree edge)
//
// Each component keeps one spanning tree of parent pointers. Queries compare
// roots; insertions re-root one tree and hang it under the other; deletions
// of tree edges search the detached side for a replacement edge.
//
// Trade-offs:
//
//   - Trees are not balanced, so a query or update may walk a whole component.
//   - No persistence; the forest lives in memory only.
//
//	go get github.com/katalvlaran/dyntree
package dyntree
