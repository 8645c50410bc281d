// Command ringbench benchmarks bounded SPSC queue implementations.
//
// Usage:
//
//	go run ./cmd/ringbench -n 10000000 -size 1024
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/randomizedcoder/go-ring-deque/internal/ring"
)

func main() {
	iterations := flag.Int("n", 10_000_000, "number of iterations")
	size := flag.Int("size", 1024, "queue size")
	flag.Parse()

	fmt.Printf("Benchmarking bounded SPSC queue (%d iterations, size=%d)\n", *iterations, *size)
	fmt.Println("─────────────────────────────────────────────────")

	// Benchmark channel queue
	ch, err := ring.NewChan[int](*size)
	if err != nil {
		fmt.Println("bad -size:", err)
		return
	}
	start := time.Now()
	for i := 0; i < *iterations; i++ {
		ch.Push(i)
		ch.Pop()
	}
	chDur := time.Since(start)

	// Benchmark lock-free ring
	r, err := ring.New[int](*size)
	if err != nil {
		fmt.Println("bad -size:", err)
		return
	}
	start = time.Now()
	for i := 0; i < *iterations; i++ {
		r.Push(i)
		r.Pop()
	}
	ringDur := time.Since(start)

	// Results
	chPerOp := float64(chDur.Nanoseconds()) / float64(*iterations)
	ringPerOp := float64(ringDur.Nanoseconds()) / float64(*iterations)

	fmt.Printf("\nResults (push + pop per iteration):\n")
	fmt.Printf("  Chan:  %v (%.2f ns/op)\n", chDur, chPerOp)
	fmt.Printf("  Ring:  %v (%.2f ns/op)\n", ringDur, ringPerOp)

	if ringPerOp < chPerOp {
		fmt.Printf("\n  Speedup:  %.2fx (Ring faster)\n", chPerOp/ringPerOp)
	} else {
		fmt.Printf("\n  Speedup:  %.2fx (Chan faster)\n", ringPerOp/chPerOp)
	}

	// Extrapolate to ops/second
	fmt.Printf("\nThroughput (theoretical max):\n")
	fmt.Printf("  Chan:  %.2f M ops/sec\n", 1000/chPerOp)
	fmt.Printf("  Ring:  %.2f M ops/sec\n", 1000/ringPerOp)
}
