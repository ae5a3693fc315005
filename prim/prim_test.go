package prim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primtrace/graph"
	"github.com/katalvlaran/primtrace/prim"
	"github.com/katalvlaran/primtrace/trace"
)

// buildFrom runs the validating builder silently and returns the structure.
func buildFrom(numVertices int, edges []graph.Edge) *graph.AdjacencyList {
	return graph.Build(numVertices, edges, nil)
}

// TestCompute_PathGraph covers the connected four-vertex chain with one
// redundant heavier edge: the chain wins, the (0,3,4) chord is never taken.
func TestCompute_PathGraph(t *testing.T) {
	adj := buildFrom(4, []graph.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2},
		{From: 2, To: 3, Weight: 3},
		{From: 0, To: 3, Weight: 4},
	})

	var sink trace.Buffer
	res := prim.Compute(adj, &sink)

	// Exactly V-1 edges, summed cost 1+2+3.
	assert.Equal(t, 3, res.Tree.EdgeCount())
	assert.Equal(t, int64(6), res.TotalCost)
	assert.Equal(t, 4, res.Reached)

	// Byte-exact trace: selections in discovery order, then cost, then listing.
	assert.Equal(t, []string{
		"Minimum Spanning Tree",
		"Edge: 1 - 0 weight: 1",
		"Edge: 2 - 1 weight: 2",
		"Edge: 3 - 2 weight: 3",
		"Total cost of MST: 6",
		"MST Graph - Adjacency List",
		"Adj[0] -> (1, 1)",
		"Adj[1] -> (0, 1) (2, 2)",
		"Adj[2] -> (1, 2) (3, 3)",
		"Adj[3] -> (2, 3)",
	}, sink.Lines())
}

// TestCompute_ParallelEdgesLazyDeletion covers parallel edges: the cheaper
// of two (0,1) edges wins via lazy deletion, and the isolated vertex 2
// leaves the result partial with no error.
func TestCompute_ParallelEdgesLazyDeletion(t *testing.T) {
	adj := buildFrom(3, []graph.Edge{
		{From: 0, To: 1, Weight: 5},
		{From: 0, To: 1, Weight: 2},
	})

	var sink trace.Buffer
	res := prim.Compute(adj, &sink)

	// One edge, not two: the weight-5 entry is popped stale and discarded.
	assert.Equal(t, 1, res.Tree.EdgeCount())
	assert.Equal(t, int64(2), res.TotalCost)
	// Vertex 2 is unreached; the engine reports it only through Reached.
	assert.Equal(t, 2, res.Reached)
	assert.Empty(t, res.Tree.Arcs(2))

	assert.Equal(t, []string{
		"Minimum Spanning Tree",
		"Edge: 1 - 0 weight: 2",
		"Total cost of MST: 2",
		"MST Graph - Adjacency List",
		"Adj[0] -> (1, 2)",
		"Adj[1] -> (0, 2)",
		"Adj[2] -> ",
	}, sink.Lines())
}

// TestCompute_AllEdgesRejectedUpstream covers an adjacency left empty by
// the builder (its only edge had an out-of-range endpoint).
func TestCompute_AllEdgesRejectedUpstream(t *testing.T) {
	var buildSink trace.Buffer
	adj := graph.Build(2, []graph.Edge{{From: 0, To: 5, Weight: 1}}, &buildSink)
	require.Equal(t, []string{
		"This is an invalid source or destination vertex - Cannot add edge: 0, 5, 1 - Request ignored",
	}, buildSink.Lines())
	require.Zero(t, adj.EdgeCount())

	res := prim.Compute(adj, nil)

	assert.Zero(t, res.Tree.EdgeCount())
	assert.Zero(t, res.TotalCost)
	// Only the start vertex is ever reached.
	assert.Equal(t, 1, res.Reached)
}

// TestCompute_EmptyGraph covers the zero-vertex terminal case.
func TestCompute_EmptyGraph(t *testing.T) {
	var sink trace.Buffer
	res := prim.Compute(graph.NewAdjacencyList(0), &sink)

	assert.Zero(t, res.Tree.NumVertices())
	assert.Zero(t, res.TotalCost)
	assert.Zero(t, res.Reached)
	// The diagnostic is the only line: no header, no cost, no listing.
	assert.Equal(t, []string{"This is an empty graph - No MST"}, sink.Lines())
}

// TestCompute_NilAdjacency verifies nil input takes the empty-graph path.
func TestCompute_NilAdjacency(t *testing.T) {
	var sink trace.Buffer
	res := prim.Compute(nil, &sink)

	assert.Zero(t, res.Tree.NumVertices())
	assert.Equal(t, []string{"This is an empty graph - No MST"}, sink.Lines())
}

// TestCompute_SpanningTreeSize verifies the V-1 edge count and total cost
// on a denser connected graph.
func TestCompute_SpanningTreeSize(t *testing.T) {
	adj := buildFrom(5, []graph.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 0, To: 3, Weight: 6},
		{From: 1, To: 2, Weight: 3},
		{From: 1, To: 3, Weight: 8},
		{From: 1, To: 4, Weight: 5},
		{From: 2, To: 4, Weight: 7},
		{From: 3, To: 4, Weight: 9},
	})

	res := prim.Compute(adj, nil)

	assert.Equal(t, 4, res.Tree.EdgeCount())
	assert.Equal(t, int64(16), res.TotalCost) // 2 + 3 + 5 + 6
	assert.Equal(t, 5, res.Reached)
}

// TestCompute_TieBreakIsDeterministic verifies the (weight, vertex, parent)
// tuple order: among equal weights the lower vertex goes first, and among
// equal (weight, vertex) the lower parent supplies the edge.
func TestCompute_TieBreakIsDeterministic(t *testing.T) {
	// A square where both chains to vertex 3 cost the same.
	adj := buildFrom(4, []graph.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 2, Weight: 1},
		{From: 1, To: 3, Weight: 2},
		{From: 2, To: 3, Weight: 2},
	})

	var sink trace.Buffer
	prim.Compute(adj, &sink)

	assert.Equal(t, []string{
		"Minimum Spanning Tree",
		"Edge: 1 - 0 weight: 1", // vertex 1 before vertex 2 at weight 1
		"Edge: 2 - 0 weight: 1",
		"Edge: 3 - 1 weight: 2", // parent 1 before parent 2 at (2, 3)
		"Total cost of MST: 4",
		"MST Graph - Adjacency List",
		"Adj[0] -> (1, 1) (2, 1)",
		"Adj[1] -> (0, 1) (3, 2)",
		"Adj[2] -> (0, 1)",
		"Adj[3] -> (1, 2)",
	}, sink.Lines())
}

// TestCompute_Idempotent verifies that two runs over the same immutable
// structure yield identical traces and identical results.
func TestCompute_Idempotent(t *testing.T) {
	adj := buildFrom(4, []graph.Edge{
		{From: 0, To: 1, Weight: 3},
		{From: 0, To: 2, Weight: 3},
		{From: 1, To: 2, Weight: 3},
		{From: 2, To: 3, Weight: 1},
	})

	var first, second trace.Buffer
	res1 := prim.Compute(adj, &first)
	res2 := prim.Compute(adj, &second)

	assert.Equal(t, first.Lines(), second.Lines())
	assert.Equal(t, res1.TotalCost, res2.TotalCost)
	assert.Equal(t, res1.Reached, res2.Reached)
	for v := 0; v < res1.Tree.NumVertices(); v++ {
		assert.Equal(t, res1.Tree.Arcs(v), res2.Tree.Arcs(v))
	}
}

// TestCompute_SelfLoopNeverSelected verifies that a self-loop admitted by
// the builder's historical quirk cannot enter the tree: by the time the
// vertex's own arcs are scanned, the vertex is already visited.
func TestCompute_SelfLoopNeverSelected(t *testing.T) {
	adj := buildFrom(2, []graph.Edge{
		{From: 0, To: 0, Weight: 1},
		{From: 0, To: 1, Weight: 3},
	})
	// The quirk put two copies of (0,1) into slot 0.
	require.Len(t, adj.Arcs(0), 3)

	res := prim.Compute(adj, nil)

	assert.Equal(t, 1, res.Tree.EdgeCount())
	assert.Equal(t, int64(3), res.TotalCost)
	assert.Equal(t, []graph.Arc{{To: 1, Weight: 3}}, res.Tree.Arcs(0))
}

// TestBuildThenCompute_FullTrace drives both components against one shared
// sink and checks the complete ordered transcript.
func TestBuildThenCompute_FullTrace(t *testing.T) {
	var sink trace.Buffer

	adj := graph.Build(3, []graph.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 1, To: 2, Weight: 0}, // rejected: weight
		{From: 1, To: 2, Weight: 4},
	}, &sink)
	adj.DumpTo(&sink, "Full Graph - Adjacency List")
	prim.Compute(adj, &sink)

	assert.Equal(t, []string{
		"Edge Added: 0, 1, 2",
		"Edge Added: 1, 0, 2",
		"This is an invalid weight - Cannot add edge: 1, 2, 0 - Request ignored",
		"Edge Added: 1, 2, 4",
		"Edge Added: 2, 1, 4",
		"Full Graph - Adjacency List",
		"Adj[0] -> (1, 2)",
		"Adj[1] -> (0, 2) (2, 4)",
		"Adj[2] -> (1, 4)",
		"Minimum Spanning Tree",
		"Edge: 1 - 0 weight: 2",
		"Edge: 2 - 1 weight: 4",
		"Total cost of MST: 6",
		"MST Graph - Adjacency List",
		"Adj[0] -> (1, 2)",
		"Adj[1] -> (0, 2) (2, 4)",
		"Adj[2] -> (1, 4)",
	}, sink.Lines())
}
