// Package edgelist parses the two-column-header-plus-triples text format
// that feeds the graph builder:
//
//	numVertices numEdges
//	from to weight
//	from to weight
//	...
//
// Blank lines are ignored wherever they appear. The header line must hold
// exactly two integers; after it, every line with exactly three integer
// fields becomes a candidate edge and every malformed line is silently
// skipped — validation of the triples themselves (ranges, weights) belongs
// to graph.Build, not to the parser.
//
// The declared counts are reported verbatim, including negative or
// inconsistent values; deciding what to do with them is the caller's job.
//
// Errors (sentinel):
//
//	– ErrNoData    if the input contains no non-blank lines.
//	– ErrBadHeader if the first non-blank line is not two integers.
package edgelist
