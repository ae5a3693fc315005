// Package edgelist implements the reader for the header+triples edge-list
// text format consumed by the primtrace driver.
package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/primtrace/graph"
)

// Sentinel errors for edge-list parsing. Branch with errors.Is.
var (
	// ErrNoData indicates the input had no non-blank lines at all.
	ErrNoData = errors.New("edgelist: no data")

	// ErrBadHeader indicates the first non-blank line was not two integers.
	ErrBadHeader = errors.New("edgelist: first line must contain two integers")
)

// Header carries the declared sizes from the first line of the input.
// Both values are reported as written; they may be negative or disagree
// with the number of triples that follow.
type Header struct {
	// NumVertices is the declared vertex count.
	NumVertices int

	// NumEdges is the declared edge count.
	NumEdges int
}

// Parse reads the edge-list format from r.
//
// Steps:
//  1. Collect non-blank lines; none at all → ErrNoData.
//  2. The first line must split into exactly two integers → Header;
//     anything else → ErrBadHeader (wrapping the offending line).
//  3. Every following line with exactly three integer fields becomes an
//     Edge; lines with any other shape or non-integer fields are skipped.
//
// Read failures from r are returned wrapped.
//
// Complexity: O(total input length).
func Parse(r io.Reader) (Header, []graph.Edge, error) {
	var (
		hdr       Header
		edges     []graph.Edge
		sawHeader bool
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		// 2. First non-blank line is the header.
		if !sawHeader {
			if len(fields) != 2 {
				return Header{}, nil, fmt.Errorf("%w: %q", ErrBadHeader, line)
			}
			v, errV := strconv.Atoi(fields[0])
			e, errE := strconv.Atoi(fields[1])
			if errV != nil || errE != nil {
				return Header{}, nil, fmt.Errorf("%w: %q", ErrBadHeader, line)
			}
			hdr = Header{NumVertices: v, NumEdges: e}
			sawHeader = true

			continue
		}

		// 3. Triples: exactly three integer fields, or the line is skipped.
		if len(fields) != 3 {
			continue
		}
		from, errF := strconv.Atoi(fields[0])
		to, errT := strconv.Atoi(fields[1])
		weight, errW := strconv.ParseInt(fields[2], 10, 64)
		if errF != nil || errT != nil || errW != nil {
			continue
		}
		edges = append(edges, graph.Edge{From: from, To: to, Weight: weight})
	}
	if err := scanner.Err(); err != nil {
		return Header{}, nil, fmt.Errorf("edgelist: read: %w", err)
	}

	// 1. An entirely blank input has no header to report.
	if !sawHeader {
		return Header{}, nil, ErrNoData
	}

	return hdr, edges, nil
}
