// Package graph declares the core value types for primtrace:
// Edge (candidate input), Arc (one adjacency entry), and AdjacencyList.
package graph

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/primtrace/trace"
)

// Edge is one candidate input triple (From, To, Weight).
//
// Edges are undirected: an accepted Edge contributes the arc (To, Weight)
// to slot From and the mirror arc (From, Weight) to slot To.
type Edge struct {
	// From is the source vertex index.
	From int

	// To is the destination vertex index.
	To int

	// Weight is the edge cost; only positive weights are valid.
	Weight int64
}

// Arc is a single directed adjacency entry: the neighbor reached and the
// weight of the connecting edge.
type Arc struct {
	// To is the neighbor vertex index.
	To int

	// Weight is the cost of the arc.
	Weight int64
}

// AdjacencyList is a fixed-size undirected adjacency structure.
//
// Slot v holds the arcs leaving vertex v in insertion order; duplicates are
// permitted (parallel edges are preserved). The structure is symmetric:
// AddUndirected is the only mutator and always inserts both directions.
type AdjacencyList struct {
	slots [][]Arc
}

// NewAdjacencyList returns an AdjacencyList with n empty slots.
// A negative n is treated as zero.
// Complexity: O(n)
func NewAdjacencyList(n int) *AdjacencyList {
	if n < 0 {
		n = 0
	}

	return &AdjacencyList{slots: make([][]Arc, n)}
}

// NumVertices returns the number of slots.
// Complexity: O(1)
func (a *AdjacencyList) NumVertices() int { return len(a.slots) }

// Arcs returns a copy of slot v's arcs in insertion order.
// Out-of-range v yields nil. The copy keeps the structure immutable to
// callers once construction is done.
// Complexity: O(deg(v))
func (a *AdjacencyList) Arcs(v int) []Arc {
	if v < 0 || v >= len(a.slots) {
		return nil
	}
	out := make([]Arc, len(a.slots[v]))
	copy(out, a.slots[v])

	return out
}

// AddUndirected appends the arc (to, weight) to slot from and the mirror
// arc (from, weight) to slot to. Both indices must be in range; callers
// (Build, prim) validate before inserting.
//
// A self-loop (from == to) appends to the same slot twice.
// Complexity: O(1) amortized.
func (a *AdjacencyList) AddUndirected(from, to int, weight int64) {
	a.slots[from] = append(a.slots[from], Arc{To: to, Weight: weight})
	a.slots[to] = append(a.slots[to], Arc{To: from, Weight: weight})
}

// ArcCount returns the total number of arcs across all slots.
// Every accepted edge contributes two arcs (a self-loop contributes two
// arcs to the same slot).
// Complexity: O(V)
func (a *AdjacencyList) ArcCount() int {
	var n int
	for _, slot := range a.slots {
		n += len(slot)
	}

	return n
}

// EdgeCount returns the number of undirected edges, i.e. ArcCount()/2.
// Complexity: O(V)
func (a *AdjacencyList) EdgeCount() int { return a.ArcCount() / 2 }

// DumpTo writes the title line and then one listing line per slot to sink:
//
//	Adj[v] -> (to, weight) (to, weight) ...
//
// Slots are listed in index order; arcs in insertion order. An empty slot
// produces "Adj[v] -> " with nothing after the arrow.
// Complexity: O(V + E)
func (a *AdjacencyList) DumpTo(sink trace.Sink, title string) {
	sink = trace.Resolve(sink)
	sink.Append(title)

	var sb strings.Builder
	for v, slot := range a.slots {
		sb.Reset()
		fmt.Fprintf(&sb, "Adj[%d] -> ", v)
		for i, arc := range slot {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "(%d, %d)", arc.To, arc.Weight)
		}
		sink.Append(sb.String())
	}
}
