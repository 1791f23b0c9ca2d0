package dyncon

import (
	"errors"
	"io"
	"log/slog"
	"sync"
)

// Sentinel errors for forest operations.
var (
	// ErrEmptyVertexID indicates an edge endpoint or query used the empty string.
	ErrEmptyVertexID = errors.New("dyncon: vertex ID is empty")

	// ErrEmptyEdgeID indicates an edge was supplied with an empty ID.
	ErrEmptyEdgeID = errors.New("dyncon: edge ID is empty")

	// ErrVertexNotFound indicates a query referenced a vertex that no edge
	// ever introduced.
	ErrVertexNotFound = errors.New("dyncon: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced an absent edge ID.
	ErrEdgeNotFound = errors.New("dyncon: edge not found")

	// ErrDuplicateEdge indicates an edge ID is already present.
	ErrDuplicateEdge = errors.New("dyncon: duplicate edge ID")

	// ErrCorrupted is wrapped by every Validate failure.
	ErrCorrupted = errors.New("dyncon: forest invariant violated")
)

// Edge is an undirected connection between From and To.
// ID is caller-assigned and unique among the edges currently present.
type Edge struct {
	// ID uniquely identifies this edge in the Forest.
	ID string

	// From is one endpoint.
	From string

	// To is the other endpoint.
	To string
}

// Other returns the endpoint of e opposite to id.
func (e Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// Option configures a Forest at construction time.
type Option func(*Options)

// Options holds the configurable behavior of a Forest.
type Options struct {
	// Check runs Validate after every mutation and reports failures as errors.
	Check bool

	// ShallowLinking re-roots the shallower endpoint when AddEdge merges two
	// trees. When false the "to" endpoint is always re-rooted.
	ShallowLinking bool

	// Logger receives Debug-level structure events. Never nil after
	// DefaultOptions.
	Logger *slog.Logger

	// OnReplace is called after a deleted tree edge was replaced.
	OnReplace func(removed, replacement Edge)

	// OnSplit is called after a deleted tree edge split its component.
	OnSplit func(removed Edge)
}

// DefaultOptions returns Options with checks off, default linking, a
// discarding logger and no hooks.
func DefaultOptions() Options {
	return Options{
		Check:          false,
		ShallowLinking: false,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnReplace:      nil,
		OnSplit:        nil,
	}
}

// WithConsistencyChecks returns an Option that validates the whole forest
// after every mutation. Cost is O(V + E) per call; meant for tests.
func WithConsistencyChecks() Option {
	return func(o *Options) { o.Check = true }
}

// WithShallowLinking returns an Option that, on a merging AddEdge, re-roots
// whichever endpoint sits closer to its root.
func WithShallowLinking() Option {
	return func(o *Options) { o.ShallowLinking = true }
}

// WithLogger returns an Option that routes structure events to l.
// Passing nil has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnReplace installs fn as the replacement hook.
func WithOnReplace(fn func(removed, replacement Edge)) Option {
	return func(o *Options) { o.OnReplace = fn }
}

// WithOnSplit installs fn as the split hook.
func WithOnSplit(fn func(removed Edge)) Option {
	return func(o *Options) { o.OnSplit = fn }
}

// Forest maintains a spanning forest of an undirected multigraph.
//
// mu guards every field below it. vertices holds one record per vertex ID ever
// introduced by an edge; edges is the registry of present edges; treeEdges is
// the subset currently selected as spanning-tree edges.
type Forest struct {
	mu sync.RWMutex

	opts Options

	vertices  map[string]*vertex
	edges     map[string]Edge
	treeEdges map[string]Edge
}

// deletion describes the outcome of a tree-edge deletion so that hooks can run
// after the lock is released.
type deletion struct {
	removed     Edge
	replacement Edge
	replaced    bool
	tree        bool
}
