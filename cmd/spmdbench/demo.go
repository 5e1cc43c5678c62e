package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kolkov/spmdlib/backend"
	"github.com/kolkov/spmdlib/barrier"
	"github.com/kolkov/spmdlib/kernels"
	"github.com/kolkov/spmdlib/spmd"
)

// demoCommand runs the canonical demo workload (v1[i] = i, v2[i] = N-i,
// elementwise add then dot product) on the selected backend and prints
// both results.
func demoCommand(args []string) {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	backendName := fs.String("backend", "goroutines", "backend to run on: goroutines, pool, serial")
	workers := fs.Int("workers", 4, "number of SPMD workers in the region")
	n := fs.Int("n", 10, "vector length")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	v1 := make([]float64, *n)
	v2 := make([]float64, *n)
	sum := make([]float64, *n)
	for i := range v1 {
		v1[i] = float64(i)
		v2[i] = float64(*n - i)
	}

	run, cleanup, err := regionRunner(*backendName, *workers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spmdbench demo: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	err = run(func(c *spmd.Control) error {
		return kernels.VectorAdd(c, v1, v2, sum)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "spmdbench demo: vector add: %v\n", err)
		os.Exit(1)
	}

	fmt.Print("Result of vector addition:")
	for _, x := range sum {
		fmt.Printf(" %g", x)
	}
	fmt.Println()

	var dot float64
	err = run(func(c *spmd.Control) error {
		return kernels.VectorDot(c, v1, v2, &dot)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "spmdbench demo: vector dot: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Result of dot product: %g\n", dot)
}

// regionRunner wires a factory and barrier for the named backend and
// returns a function that runs one parallel region, plus a cleanup for
// backends holding resources.
func regionRunner(name string, workers int) (run func(backend.Body) error, cleanup func(), err error) {
	cleanup = func() {}

	switch name {
	case "goroutines":
		f := spmd.NewFactory()
		f.Sync = barrier.NewCyclic(workers).Sync
		run = func(body backend.Body) error {
			return backend.Goroutines(f, workers, body)
		}
	case "pool":
		f := spmd.NewFactory()
		f.Sync = barrier.NewCyclic(workers).Sync
		pool := backend.NewPool(workers)
		cleanup = pool.Close
		run = func(body backend.Body) error {
			return pool.Run(f, workers, body)
		}
	case "serial":
		f := spmd.NewFactory()
		f.Sync = barrier.Serial
		run = func(body backend.Body) error {
			return backend.Serial(f, body)
		}
	default:
		return nil, nil, fmt.Errorf("unknown backend %q (want goroutines, pool, or serial)", name)
	}
	return run, cleanup, nil
}
