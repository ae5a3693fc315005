// Package prim computes a Minimum Spanning Tree of the component reachable
// from vertex 0, tracing every accepted edge and the final tree listing.
package prim

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/primtrace/graph"
	"github.com/katalvlaran/primtrace/trace"
)

// Compute runs Prim's algorithm over adj, growing the tree from vertex 0
// with a lazy-deletion min-heap, and returns the selected edges, their
// total cost, and the number of vertices reached.
//
// Steps:
//  1. Resolve the sink; treat a nil adj as an empty graph.
//  2. Zero vertices: emit the "No MST" diagnostic and return an empty
//     Result. Nothing else is traced.
//  3. Seed the heap with (weight 0, vertex 0, no parent) and emit the
//     "Minimum Spanning Tree" header.
//  4. While the heap is non-empty and unvisited vertices remain:
//     a. Pop the minimal (weight, vertex, parent) tuple.
//     b. Already-visited vertex: stale entry, discard (lazy deletion).
//     c. Mark the vertex visited.
//     d. A real parent means a newly selected tree edge: trace it, add its
//     weight to the total, mirror it into the result tree.
//     e. Push (cost, neighbor, vertex) for every arc to an unvisited
//     neighbor. Re-pushes at different costs are expected; only the
//     cheapest surviving entry is ever accepted.
//  5. Emit the total-cost line, then the full tree listing.
//
// Disconnected input drains the heap before every vertex is visited; the
// unreached vertices are absent from the tree and Reached reports how far
// the algorithm got. Compute never fails and never panics on degenerate
// input, and it is deterministic: the tuple order of the heap fixes every
// tie, so identical inputs reproduce identical traces and Results.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func Compute(adj *graph.AdjacencyList, sink trace.Sink) *Result {
	// 1. Normalize collaborators.
	sink = trace.Resolve(sink)
	numVertices := 0
	if adj != nil {
		numVertices = adj.NumVertices()
	}

	// 2. Degenerate case: nothing to span.
	if numVertices == 0 {
		sink.Append("This is an empty graph - No MST")

		return &Result{Tree: graph.NewAdjacencyList(0)}
	}

	// 3. Seed the heap with the start vertex and announce the run.
	visited := make([]bool, numVertices)
	reached := 0
	tree := graph.NewAdjacencyList(numVertices)
	var totalCost int64

	pq := &candidateHeap{{Weight: 0, Vertex: 0, Parent: noParent}}
	heap.Init(pq)

	sink.Append("Minimum Spanning Tree")

	// 4. Greedy growth with lazy deletion.
	for pq.Len() > 0 && reached < numVertices {
		c := heap.Pop(pq).(candidate)

		// 4b. Stale entry: the vertex was reached more cheaply earlier.
		if visited[c.Vertex] {
			continue
		}

		// 4c. First (and therefore cheapest) arrival at this vertex.
		visited[c.Vertex] = true
		reached++

		// 4d. The seed has no parent and selects no edge; everything else
		// is a tree edge.
		if c.Parent != noParent {
			sink.Append(fmt.Sprintf("Edge: %d - %d weight: %d", c.Vertex, c.Parent, c.Weight))
			totalCost += c.Weight
			tree.AddUndirected(c.Parent, c.Vertex, c.Weight)
		}

		// 4e. Offer every arc to a still-unvisited neighbor.
		for _, arc := range adj.Arcs(c.Vertex) {
			if !visited[arc.To] {
				heap.Push(pq, candidate{Weight: arc.Weight, Vertex: arc.To, Parent: c.Vertex})
			}
		}
	}

	// 5. Close the trace with the cost and the tree listing.
	sink.Append(fmt.Sprintf("Total cost of MST: %d", totalCost))
	tree.DumpTo(sink, "MST Graph - Adjacency List")

	return &Result{Tree: tree, TotalCost: totalCost, Reached: reached}
}
