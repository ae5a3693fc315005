// Package prim implements Prim's Minimum Spanning Tree algorithm over a
// graph.AdjacencyList, reporting every decision to a trace.Sink.
//
// The engine grows the tree from vertex 0 using a min-heap of candidate
// entries with "lazy deletion": a vertex may be pushed several times at
// different costs, and stale entries are discarded when popped rather than
// removed eagerly. Heap order is the full (weight, vertex, parent) tuple —
// equal weights break toward the lower vertex index, then the lower parent.
// The tie-break is algorithmically incidental but contractual: identical
// inputs must reproduce identical traces and results.
//
// Compute never fails. Abnormal inputs degrade instead:
//
//   - zero vertices   → "no MST" diagnostic, empty Result
//   - disconnection   → the heap drains before every vertex is visited;
//     unreached vertices are simply absent from the tree and
//     Result.Reached < NumVertices (no error, no extra line)
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is accepted off the heap exactly once: V acceptances.
//   - Each adjacency arc may push one heap entry: up to E pushes.
//   - Each heap operation costs O(log N), N ≤ V + E, simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for the visited set and the result tree slots.
//   - O(E) worst case live in the heap under lazy deletion.
package prim
