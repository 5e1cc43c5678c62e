// Package main implements the spmdbench CLI tool.
//
// spmdbench exercises the Pure-Go SPMD coordination library end to end: it
// runs the library's exemplar collectives (vector addition and dot product)
// on a chosen thread-launching backend, and times them across backends for
// comparison.
//
// Usage:
//
//	spmdbench demo -backend goroutines -workers 4    # Run the demo workload
//	spmdbench bench -n 1000000 -workers 8 -json      # Time VectorDot per backend
//	spmdbench version                                # Show version information
//
// This is the CLI entry point for the standalone benchmark tool.
package main

import (
	"fmt"
	"os"

	"github.com/kolkov/spmdlib/spmd"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "demo":
		demoCommand(os.Args[2:])
	case "bench":
		benchCommand(os.Args[2:])
	case "version", "--version", "-v":
		versionCommand(os.Args[2:])
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func versionCommand(args []string) {
	info := spmd.GetInfo()
	fmt.Printf("spmdbench %s (%s)\n", info.Version, info.Model)

	// Optional gate: exit nonzero when the library is older than required.
	if len(args) == 2 && args[0] == "-min" {
		if !spmd.AtLeast(args[1]) {
			fmt.Fprintf(os.Stderr, "library version %s is older than required %s\n", info.Version, args[1])
			os.Exit(1)
		}
	}
}

func printUsage() {
	fmt.Print(`spmdbench - Pure-Go SPMD Coordination Library benchmark tool

USAGE:
    spmdbench <command> [arguments]

COMMANDS:
    demo       Run the demo workload (vector add + dot product)
    bench      Time the dot-product collective across backends
    version    Show version information
    help       Show this help message

EXAMPLES:
    # Run the demo on 4 goroutine workers
    spmdbench demo -backend goroutines -workers 4

    # Run the demo on the worker-pool backend
    spmdbench demo -backend pool -workers 8 -n 1000

    # Time VectorDot on all backends, JSON output
    spmdbench bench -n 1000000 -workers 8 -json

    # Fail if the library is older than v0.1.0
    spmdbench version -min v0.1.0

ABOUT:
    spmdbench drives the spmdlib coordination core: a pluggable-barrier
    abstraction that lets SPMD numeric kernels run unchanged under raw
    goroutines, a persistent worker pool, or single-threaded fallback.
`)
}
