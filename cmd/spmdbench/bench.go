package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sugawarayuuta/sonnet"

	"github.com/kolkov/spmdlib/kernels"
	"github.com/kolkov/spmdlib/spmd"
)

// benchResult is one timed backend run, serialized as JSON with -json.
type benchResult struct {
	Backend string  `json:"backend"`
	Workers int     `json:"workers"`
	Size    int     `json:"size"`
	Iters   int     `json:"iterations"`
	NsPerOp int64   `json:"ns_per_op"`
	Dot     float64 `json:"dot"`
}

// benchCommand times the dot-product collective on every backend for the
// same vectors and reports nanoseconds per full collective call. The serial
// backend always runs with one worker; it is the sequential baseline.
func benchCommand(args []string) {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	workers := fs.Int("workers", 4, "number of SPMD workers for parallel backends")
	n := fs.Int("n", 1_000_000, "vector length")
	iters := fs.Int("iters", 50, "timed iterations per backend")
	asJSON := fs.Bool("json", false, "emit results as JSON")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	v1 := make([]float64, *n)
	v2 := make([]float64, *n)
	for i := range v1 {
		v1[i] = float64(i % 1000)
		v2[i] = float64((i + 1) % 1000)
	}

	var results []benchResult
	for _, name := range []string{"serial", "goroutines", "pool"} {
		w := *workers
		if name == "serial" {
			w = 1
		}

		res, err := benchBackend(name, w, *iters, v1, v2)
		if err != nil {
			fmt.Fprintf(os.Stderr, "spmdbench bench: %s: %v\n", name, err)
			os.Exit(1)
		}
		results = append(results, res)
	}

	if *asJSON {
		out, err := sonnet.Marshal(results)
		if err != nil {
			fmt.Fprintf(os.Stderr, "spmdbench bench: encode results: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s\n", out)
		return
	}

	fmt.Printf("VectorDot, n=%d, %d iterations\n", *n, *iters)
	for _, r := range results {
		fmt.Printf("  %-10s workers=%-3d %12d ns/op  (dot=%g)\n",
			r.Backend, r.Workers, r.NsPerOp, r.Dot)
	}
}

// benchBackend times iters full dot-product collectives on one backend
// after a single warm-up run.
func benchBackend(name string, workers, iters int, v1, v2 []float64) (benchResult, error) {
	run, cleanup, err := regionRunner(name, workers)
	if err != nil {
		return benchResult{}, err
	}
	defer cleanup()

	var dot float64
	runDot := func() error {
		return run(func(c *spmd.Control) error {
			return kernels.VectorDot(c, v1, v2, &dot)
		})
	}

	// Warm-up: faults in the vectors and spins up pool workers.
	if err := runDot(); err != nil {
		return benchResult{}, err
	}

	start := time.Now()
	for i := 0; i < iters; i++ {
		if err := runDot(); err != nil {
			return benchResult{}, err
		}
	}
	elapsed := time.Since(start)

	return benchResult{
		Backend: name,
		Workers: workers,
		Size:    len(v1),
		Iters:   iters,
		NsPerOp: elapsed.Nanoseconds() / int64(iters),
		Dot:     dot,
	}, nil
}
