// Command primtrace reads a graph from an edge-list file, runs the traced
// Prim MST engine, and tees every report line to stdout and an output file.
//
// Usage:
//
//	primtrace [-i graph.dat] [-o results.out]
//
// Missing file names are prompted for interactively; a failing open or an
// unreadable input file loops back to the prompt instead of aborting.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/primtrace/edgelist"
	"github.com/katalvlaran/primtrace/graph"
	"github.com/katalvlaran/primtrace/prim"
	"github.com/katalvlaran/primtrace/trace"
)

func main() {
	var inputName, outputName string
	flag.StringVar(&inputName, "i", "", "input graph file (.dat)")
	flag.StringVar(&inputName, "input", "", "input graph file (.dat)")
	flag.StringVar(&outputName, "o", "", "output results file (.out)")
	flag.StringVar(&outputName, "output", "", "output results file (.out)")
	flag.Parse()

	stdin := bufio.NewScanner(os.Stdin)

	fmt.Println("Welcome to the MST Test Program")

	// Resolve and open the output file, re-prompting on failure.
	if outputName == "" {
		defaultOut := fmt.Sprintf("MST_%s.out", time.Now().Format("20060102_150405"))
		outputName = promptLine(stdin, fmt.Sprintf("Enter an output file name or press enter for default '%s': ", defaultOut))
		if outputName == "" {
			outputName = defaultOut
		}
	}
	outFile := openOutput(stdin, &outputName)
	defer outFile.Close()

	// Every report line goes to stdout and the output file, in order.
	fileSink := trace.NewWriter(outFile)
	sink := trace.Tee(trace.NewWriter(os.Stdout), fileSink)

	sink.Append("Welcome to the MST Test Program")

	// The default scenario exercises the empty-graph path up front.
	sink.Append("Testing the Default Scenario")
	prim.Compute(graph.NewAdjacencyList(0), sink)

	// Read and parse the graph data, re-prompting on failure.
	if inputName == "" {
		inputName = promptLine(stdin, "Enter a file name for the graph data: ")
	}
	hdr, edges := readInput(stdin, &inputName)

	sink.Append("Testing the file data")
	sink.Append(fmt.Sprintf("The file name for the graph data: %s", inputName))

	switch {
	case hdr.NumVertices < 0:
		sink.Append(fmt.Sprintf("Error: number of vertices: %d is less than zero", hdr.NumVertices))
		sink.Append("An empty graph will be created")
		prim.Compute(graph.NewAdjacencyList(0), sink)
	case hdr.NumVertices == 0 || hdr.NumEdges < hdr.NumVertices-1:
		// Too few declared edges can never connect the declared vertices.
		sink.Append(fmt.Sprintf("Error: %d edges invalid to create a connected graph", hdr.NumEdges))
		sink.Append("An empty graph will be created")
		prim.Compute(graph.NewAdjacencyList(0), sink)
	default:
		sink.Append(fmt.Sprintf("A graph with %d and %d will be created", hdr.NumVertices, hdr.NumEdges))
		sink.Append(fmt.Sprintf("The number of input edges to process is: %d", hdr.NumEdges))
		adj := graph.Build(hdr.NumVertices, edges, sink)
		adj.DumpTo(sink, "Full Graph - Adjacency List")
		prim.Compute(adj, sink)
	}

	sink.Append("Thank you for running the MST Test Program!")

	if err := fileSink.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "primtrace: writing %s: %v\n", outputName, err)
		os.Exit(1)
	}
}

// promptLine prints msg and returns the next stdin line, trimmed.
// EOF yields the empty string.
func promptLine(stdin *bufio.Scanner, msg string) string {
	fmt.Print(msg)
	if !stdin.Scan() {
		return ""
	}

	return strings.TrimSpace(stdin.Text())
}

// openOutput creates the results file named *name, re-prompting for a new
// name until a create succeeds. The chosen name is written back to *name.
func openOutput(stdin *bufio.Scanner, name *string) *os.File {
	for {
		f, err := os.Create(*name)
		if err == nil {
			return f
		}
		fmt.Printf("file %s cant be opened - %v. Please try again.\n", *name, err)
		*name = promptLine(stdin, "Enter another output file name: ")
	}
}

// readInput opens and parses the edge-list file named *name, re-prompting
// until a file both opens and parses. The chosen name is written back.
func readInput(stdin *bufio.Scanner, name *string) (edgelist.Header, []graph.Edge) {
	for {
		f, err := os.Open(*name)
		if err != nil {
			fmt.Printf("The file %s cant be opened or does not exist - please try again\n", *name)
			*name = promptLine(stdin, "Enter a file name for the graph data: ")

			continue
		}
		hdr, edges, perr := edgelist.Parse(f)
		f.Close()
		if perr == nil {
			return hdr, edges
		}
		if errors.Is(perr, edgelist.ErrNoData) {
			fmt.Printf("file %s has no data, please try again\n", *name)
		} else {
			fmt.Printf("%v, please try again\n", perr)
		}
		*name = promptLine(stdin, "Enter a file name for the graph data: ")
	}
}
