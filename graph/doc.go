// Package graph defines the Edge, Arc, and AdjacencyList types and the
// validating Build constructor that turns a raw candidate edge list into a
// symmetric undirected adjacency structure.
//
// The model is deliberately minimal: vertices are integer indices in
// [0, NumVertices()), edges are (from, to, weight) triples with positive
// integer weights, and the adjacency structure is a slice of slots, each an
// insertion-ordered list of (neighbor, weight) arcs. Parallel edges are kept
// as-is; nothing is deduplicated.
//
// Validation policy (Build, applied per edge in input order; first match
// wins; processing always continues):
//
//  1. zero declared vertices      → "empty graph" diagnostic, edge skipped
//  2. endpoint outside [0, n)     → "invalid source or destination vertex"
//  3. weight ≤ 0                  → "invalid weight"
//  4. self-loop, when rejection is enabled via WithRejectSelfLoops
//  5. otherwise                   → accepted, mirrored into both slots
//
// Build never fails: every rejection is a diagnostic line on the injected
// trace.Sink, not an error. By default a self-loop (v,v,w) is accepted and
// slot v receives the arc twice; this mirrors long-standing behavior that
// downstream trace consumers may rely on, so it is opt-out rather than
// fixed silently.
//
// Symmetry invariant: AddUndirected is the only mutator, so whenever (v,w)
// appears in slot u, (u,w) appears in slot v.
//
// Complexity: Build is O(V + E) time and memory.
package graph
