// Package prim declares the Result type and the internal candidate heap
// for Prim's MST engine.
package prim

import (
	"github.com/katalvlaran/primtrace/graph"
)

// noParent marks the seed entry for the start vertex: it is reached "from
// nowhere" at cost zero, so accepting it selects no edge.
const noParent = -1

// Result is the terminal artifact of one Compute run. It is never nil and
// is not mutated after Compute returns.
type Result struct {
	// Tree holds exactly the selected MST edges, mirrored like any
	// adjacency structure. Unreached vertices keep empty slots.
	Tree *graph.AdjacencyList

	// TotalCost is the sum of the selected edge weights.
	TotalCost int64

	// Reached counts the vertices visited by the algorithm. For a graph
	// connected from vertex 0 it equals Tree.NumVertices(); anything less
	// means the input was disconnected and the tree is partial.
	Reached int
}

// candidate is one heap entry: reach Vertex from Parent at cost Weight.
type candidate struct {
	Weight int64
	Vertex int
	Parent int
}

// candidateHeap implements heap.Interface as a min-heap of candidates
// ordered by the full (Weight, Vertex, Parent) tuple. The tuple order is
// the engine's deterministic tie-break and must not be relaxed to
// weight-only.
type candidateHeap []candidate

// Len returns the number of candidates in the heap.
// Complexity: O(1).
func (h candidateHeap) Len() int { return len(h) }

// Less orders candidates by Weight, then Vertex, then Parent.
// Complexity: O(1).
func (h candidateHeap) Less(i, j int) bool {
	if h[i].Weight != h[j].Weight {
		return h[i].Weight < h[j].Weight
	}
	if h[i].Vertex != h[j].Vertex {
		return h[i].Vertex < h[j].Vertex
	}

	return h[i].Parent < h[j].Parent
}

// Swap swaps elements at indices i and j.
// Complexity: O(1).
func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends a new candidate. Called by heap.Push.
// Complexity: O(log N) amortized.
func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(candidate)) }

// Pop removes and returns the minimal candidate. Called by heap.Pop.
// Complexity: O(log N) amortized.
func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	c := old[n-1] // minimal element after heap adjustments
	*h = old[:n-1]

	return c
}
