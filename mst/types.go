// SPDX-License-Identifier: MIT

package mst

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrInvalidGraph indicates that the solver requires a non-nil, undirected graph.
	ErrInvalidGraph = errors.New("mst: spanning tree requires an undirected graph")

	// ErrEmptyCollection indicates RemoveFront on a Collection with no queued partitions.
	ErrEmptyCollection = errors.New("mst: partition collection is empty")

	// ErrNoSuchPartition indicates that no queued partition owns the requested vertex.
	ErrNoSuchPartition = errors.New("mst: no partition contains vertex")

	// ErrIsolatedPartition indicates a partition with no arc leaving it.
	ErrIsolatedPartition = errors.New("mst: partition has no usable arc")

	// ErrDisconnected indicates that the result is a spanning forest, not a tree.
	ErrDisconnected = errors.New("mst: graph is disconnected")

	// ErrNilPartition indicates a nil *PartialTree passed to the Collection.
	ErrNilPartition = errors.New("mst: nil partition")

	// ErrAlreadyQueued indicates Append of a partition that is already queued.
	ErrAlreadyQueued = errors.New("mst: partition already queued")

	// ErrRetiredPartition indicates use of a partition that was merged away or dropped.
	ErrRetiredPartition = errors.New("mst: partition retired")

	// ErrVertexOwned indicates Append of a new partition whose vertex another partition owns.
	ErrVertexOwned = errors.New("mst: vertex already owned by another partition")

	// ErrCycle indicates that a set of arcs contains a cycle.
	ErrCycle = errors.New("mst: arcs contain a cycle")

	// ErrUnknownVertex indicates an arc endpoint missing from the graph.
	ErrUnknownVertex = errors.New("mst: arc endpoint not in graph")

	// ErrForeignArc indicates an arc that matches no edge of the graph.
	ErrForeignArc = errors.New("mst: arc does not match a graph edge")
)

// Arc is one orientation of a weighted undirected edge, as seen from the
// partition that owns From. Arcs are copied by value and never alias the graph.
type Arc struct {
	From   string
	To     string
	Weight float64
}

// Undirected returns the endpoints in lexicographic order, which identifies the
// undirected edge regardless of orientation.
func (a Arc) Undirected() (string, string) {
	if a.To < a.From {
		return a.To, a.From
	}

	return a.From, a.To
}

// Reverse returns the arc with swapped endpoints.
func (a Arc) Reverse() Arc {
	return Arc{From: a.To, To: a.From, Weight: a.Weight}
}

func (a Arc) String() string {
	return fmt.Sprintf("%s-%s(%g)", a.From, a.To, a.Weight)
}

// DiagnosticKind classifies non-fatal findings reported by Execute.
type DiagnosticKind int

const (
	// IsolatedPartition marks a partition that could not be joined to the rest.
	IsolatedPartition DiagnosticKind = iota + 1
)

func (k DiagnosticKind) String() string {
	switch k {
	case IsolatedPartition:
		return "isolated-partition"
	default:
		return fmt.Sprintf("diagnostic(%d)", int(k))
	}
}

// Diagnostic describes a partition excluded from the spanning tree.
type Diagnostic struct {
	Kind      DiagnosticKind
	Partition int      // partition id
	Root      string   // seed vertex of the partition
	Vertices  []string // every vertex the partition held
}

// Err wraps ErrIsolatedPartition with the partition details.
func (d Diagnostic) Err() error {
	return fmt.Errorf("%w: partition %d (root %s, %d vertices)",
		ErrIsolatedPartition, d.Partition, d.Root, len(d.Vertices))
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: partition %d root=%s vertices=%v", d.Kind, d.Partition, d.Root, d.Vertices)
}

// Result is the outcome of Execute.
type Result struct {
	// Arcs holds the accepted arcs in acceptance order.
	Arcs []Arc

	// TotalWeight is the sum of accepted arc weights.
	TotalWeight float64

	// Diagnostics lists the partitions excluded from the tree.
	Diagnostics []Diagnostic

	// Vertices is the number of vertices the collection held when Execute began.
	Vertices int

	// Remaining lists the vertices of the surviving partition, if any.
	Remaining []string
}

// Spanning reports whether the arcs connect every vertex.
func (r *Result) Spanning() bool {
	return r.Vertices > 0 && len(r.Arcs) == r.Vertices-1
}

func (r *Result) accept(a Arc) {
	r.Arcs = append(r.Arcs, a)
	r.TotalWeight += a.Weight
}

// Options configures Execute and Solve. Use Option functions to modify it.
type Options struct {
	// Logger receives merge (Debug) and isolation (Warn) records.
	Logger *slog.Logger

	// Strict makes Execute return ErrDisconnected when the result is not spanning.
	Strict bool

	// OnAccept is invoked for every accepted arc.
	OnAccept func(Arc)

	// OnIsolated is invoked for every diagnostic.
	OnIsolated func(Diagnostic)
}

// Option configures Options.
type Option func(*Options)

// WithLogger routes solver records to l. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithStrict turns a non-spanning result into ErrDisconnected. The partial
// Result is still returned.
func WithStrict() Option {
	return func(o *Options) { o.Strict = true }
}

// WithOnAccept registers a hook called for every accepted arc.
func WithOnAccept(fn func(Arc)) Option {
	return func(o *Options) { o.OnAccept = fn }
}

// WithOnIsolated registers a hook called for every isolated partition.
func WithOnIsolated(fn func(Diagnostic)) Option {
	return func(o *Options) { o.OnIsolated = fn }
}

// DefaultOptions returns Options with a discarding logger and no hooks.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.DiscardHandler),
	}
}
