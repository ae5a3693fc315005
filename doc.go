// Package primtrace builds undirected weighted graphs from integer edge
// lists and computes Minimum Spanning Trees with a fully auditable trace.
//
// 🚀 What is primtrace?
//
//	A small, deterministic library (plus a demo CLI) that brings together:
//		• Edge validation: vertex-range and positive-weight policy, with a
//		  per-decision diagnostic line for every accepted or rejected edge
//		• Adjacency lists: insertion-ordered, parallel-edge-friendly,
//		  symmetric by construction
//		• Prim's MST: lazy-deletion min-heap with a deterministic
//		  (weight, vertex, parent) tie-break
//		• Trace sinks: append-only ordered line recorders (buffer, writer,
//		  tee, discard) injected into every component
//
// ✨ Why choose primtrace?
//
//   - Auditable – every decision the algorithms make lands on the trace,
//     in order, byte-for-byte reproducible
//   - Never panics, never errors – degenerate inputs (empty graph,
//     disconnected graph, out-of-range endpoints) produce degenerate
//     results and diagnostics, not failures
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under four subpackages:
//
//	trace/    — the append-only Sink interface and its implementations
//	graph/    — Edge, Arc, AdjacencyList and the validating builder
//	prim/     — Prim's algorithm and its Result type
//	edgelist/ — parser for the "V E" header + "from to weight" text format
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	a square with four vertices; Prim keeps the three cheapest sides.
//
// Dive into the per-package docs for the exact trace-line formats and the
// deterministic tie-break contract.
//
//	go get github.com/katalvlaran/primtrace
package primtrace
