// Package graph implements the validating builder that turns a candidate
// edge list into a symmetric AdjacencyList, reporting every decision.
package graph

import (
	"fmt"

	"github.com/katalvlaran/primtrace/trace"
)

// BuildOptions configures edge validation in Build.
// Use DefaultOptions() for the historical behavior (self-loops accepted).
type BuildOptions struct {
	// RejectSelfLoops rejects edges with From == To instead of inserting
	// the vertex into its own slot twice.
	RejectSelfLoops bool
}

// Option configures BuildOptions. All Option functions modify the pointed
// BuildOptions.
type Option func(*BuildOptions)

// WithRejectSelfLoops returns an Option that makes Build reject edges whose
// endpoints coincide. Off by default: historically a self-loop (v,v,w) is
// accepted and slot v receives the arc twice.
func WithRejectSelfLoops() Option {
	return func(opts *BuildOptions) {
		opts.RejectSelfLoops = true
	}
}

// DefaultOptions returns BuildOptions with the historical defaults:
//
//	– RejectSelfLoops = false (self-loops accepted, quirk preserved).
//
// Complexity: O(1) to construct.
func DefaultOptions() BuildOptions {
	return BuildOptions{
		RejectSelfLoops: false,
	}
}

// Build validates edges against numVertices and the positive-weight policy
// and assembles the surviving edges into a symmetric AdjacencyList.
//
// Per edge, in input order (first matching rule wins; a rejected edge never
// stops processing of later edges):
//
//  1. numVertices == 0       → "empty graph" diagnostic, skip.
//  2. endpoint ∉ [0, n)      → "invalid source or destination vertex", skip.
//  3. weight ≤ 0             → "invalid weight", skip.
//  4. From == To, when WithRejectSelfLoops is set → "self-loop", skip.
//  5. otherwise              → insert both directions, one "Edge Added"
//     line per direction (two lines total).
//
// A negative numVertices behaves as zero. Build never fails; every
// rejection is a trace line, not an error. The sink may be nil.
//
// Complexity: O(V + E) time, O(V + E) memory.
func Build(numVertices int, edges []Edge, sink trace.Sink, opts ...Option) *AdjacencyList {
	// Resolve the sink once so a nil sink is safe everywhere below.
	sink = trace.Resolve(sink)

	// Apply functional options on top of the defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// A negative declared count cannot index any slot: clamp to the empty
	// graph so every edge takes the empty-graph branch.
	if numVertices < 0 {
		numVertices = 0
	}

	adj := NewAdjacencyList(numVertices)

	for _, e := range edges {
		// Rule 1: nothing can be added to a graph with no vertices.
		if numVertices == 0 {
			sink.Append(fmt.Sprintf("This is an empty graph - Cannot add edge: %d, %d, %d", e.From, e.To, e.Weight))
			continue
		}
		// Rule 2: both endpoints must be valid vertex indices.
		if e.From < 0 || e.To < 0 || e.From >= numVertices || e.To >= numVertices {
			sink.Append(fmt.Sprintf("This is an invalid source or destination vertex - Cannot add edge: %d, %d, %d - Request ignored", e.From, e.To, e.Weight))
			continue
		}
		// Rule 3: only positive weights are meaningful.
		if e.Weight <= 0 {
			sink.Append(fmt.Sprintf("This is an invalid weight - Cannot add edge: %d, %d, %d - Request ignored", e.From, e.To, e.Weight))
			continue
		}
		// Rule 4: optional self-loop rejection.
		if cfg.RejectSelfLoops && e.From == e.To {
			sink.Append(fmt.Sprintf("This is a self-loop - Cannot add edge: %d, %d, %d - Request ignored", e.From, e.To, e.Weight))
			continue
		}

		// Rule 5: accept — mirror into both slots, one line per direction.
		adj.AddUndirected(e.From, e.To, e.Weight)
		sink.Append(fmt.Sprintf("Edge Added: %d, %d, %d", e.From, e.To, e.Weight))
		sink.Append(fmt.Sprintf("Edge Added: %d, %d, %d", e.To, e.From, e.Weight))
	}

	return adj
}
