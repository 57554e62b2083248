// SPDX-License-Identifier: MIT

// Command strassenbench times the naive product against Strassen on a
// generated n×n operand multiplied by itself.
//
// Usage:
//
//	strassenbench -n 1000 -kind int                # a[i][j] = (i+j) % 300
//	strassenbench -n 2000 -kind float -naive=false # a[i][j] = i+j
//	strassenbench -n 1024 -variant sequential -min 128
//
// For every run it prints the elapsed time and a checksum (sum of all result
// cells), so the two kernels can be compared for agreement as well as speed.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/strassen"
)

var (
	size      = flag.Int("n", 1000, "Side of the square operand")
	kind      = flag.String("kind", "int", "Element kind: int or float")
	variant   = flag.String("variant", "auto", "Strassen variant: auto, parallel or sequential")
	minRows   = flag.Int("min", strassen.DefaultMinRows, "Base-case side (MinRows)")
	maxRows   = flag.Int("max", strassen.DefaultMaxRows, "Padded side from which auto picks sequential (MaxRows)")
	depth     = flag.Int("depth", strassen.DefaultParallelDepth, "Recursion levels that fork product tasks")
	workers   = flag.Int("workers", strassen.DefaultMaxWorkers(), "Goroutines running product tasks, caller included")
	withNaive = flag.Bool("naive", true, "Also time the naive triple loop")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("strassenbench: ")

	if *size < 1 {
		fmt.Fprintf(os.Stderr, "Error: -n must be >= 1\n\n")
		flag.Usage()
		os.Exit(1)
	}
	v, err := parseVariant(*variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}
	opts := []strassen.Option{
		strassen.WithVariant(v),
		strassen.WithMinRows(*minRows),
		strassen.WithMaxRows(*maxRows),
		strassen.WithParallelDepth(*depth),
		strassen.WithMaxWorkers(*workers),
	}
	log.Printf("n=%d kind=%s variant=%v (runs %v)", *size, *kind, v,
		strassen.Select(matrix.NextPowerOfTwo(*size), opts...))

	switch *kind {
	case "int":
		err = run(*size, func(i, j int) int64 { return int64((i + j) % 300) }, opts)
	case "float":
		err = run(*size, func(i, j int) float64 { return float64(i + j) }, opts)
	default:
		err = fmt.Errorf("unknown -kind %q", *kind)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// parseVariant maps a flag value to a strassen.Variant.
func parseVariant(s string) (strassen.Variant, error) {
	for _, v := range []strassen.Variant{strassen.Auto, strassen.Parallel, strassen.Sequential} {
		if v.String() == s {
			return v, nil
		}
	}

	return strassen.Auto, fmt.Errorf("unknown -variant %q", s)
}

// run builds the n×n operand from gen, then times a·a with each kernel.
func run[T matrix.Number](n int, gen func(i, j int) T, opts []strassen.Option) error {
	a, err := matrix.NewDense[T](n, n)
	if err != nil {
		return err
	}
	a.Apply(func(i, j int, _ T) T { return gen(i, j) })

	if *withNaive {
		start := time.Now()
		p, err := strassen.Naive(a, a)
		if err != nil {
			return err
		}
		log.Printf("naive:    %8d ms  checksum=%v", time.Since(start).Milliseconds(), checksum(p))
	}

	start := time.Now()
	p, err := strassen.Multiply(a, a, opts...)
	if err != nil {
		return err
	}
	log.Printf("strassen: %8d ms  checksum=%v", time.Since(start).Milliseconds(), checksum(p))

	return nil
}

// checksum sums every cell of m.
func checksum[T matrix.Number](m *matrix.Dense[T]) T {
	var s T
	m.Do(func(_, _ int, v T) bool {
		s += v
		return true
	})

	return s
}
