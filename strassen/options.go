// SPDX-License-Identifier: MIT

// Package strassen: functional configuration for the multiplication engine.
// This file defines:
//   - Variant (recursion strategy selector),
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state; the variant is chosen once per call.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package strassen

import (
	"fmt"
	"runtime"
)

// Variant selects the Strassen recursion strategy.
type Variant int

const (
	// Auto picks Sequential when the padded side is ≥ MaxRows, else Parallel.
	Auto Variant = iota

	// Parallel derives all seven operand pairs per level, then forks one task
	// per product and joins before recombining. Fast, memory-heavy.
	Parallel

	// Sequential derives and recurses one operand pair at a time, depth-first.
	// Single goroutine, memory-light.
	Sequential
)

// String returns the lowercase variant name.
func (v Variant) String() string {
	switch v {
	case Auto:
		return "auto"
	case Parallel:
		return "parallel"
	case Sequential:
		return "sequential"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMinRows is the side at or below which recursion hands over to the
	// naive kernel. Below it, the 18 extra additions per level cost more than
	// the multiplication they save.
	DefaultMinRows = 64

	// DefaultMaxRows is the padded side at or above which Auto selects the
	// Sequential variant: the Parallel variant keeps seven operand pairs per
	// level alive at once, which stops fitting in memory around this size.
	DefaultMaxRows = 2048

	// DefaultParallelDepth is the number of recursion levels that fork tasks
	// (7 per level, so up to 49 tasks). Deeper levels recurse sequentially.
	DefaultParallelDepth = 2

	// DefaultVariant lets the padded side decide.
	DefaultVariant = Auto
)

// DefaultMaxWorkers returns the default bound on goroutines running product
// tasks, including the caller: GOMAXPROCS at the time of the call.
func DefaultMaxWorkers() int { return runtime.GOMAXPROCS(0) }

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMinRowsInvalid       = "strassen: WithMinRows: n must be >= 1"
	panicMaxRowsInvalid       = "strassen: WithMaxRows: n must be >= 1"
	panicVariantInvalid       = "strassen: WithVariant: unknown variant"
	panicParallelDepthInvalid = "strassen: WithParallelDepth: depth must be >= 0"
	panicMaxWorkersInvalid    = "strassen: WithMaxWorkers: workers must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions. Use the accessors to inspect a resolved value.
type Options struct {
	minRows       int     // side ≤ minRows ⇒ naive base case
	maxRows       int     // padded side ≥ maxRows ⇒ Sequential under Auto
	variant       Variant // forced variant or Auto
	parallelDepth int     // levels that fork tasks in the Parallel variant
	maxWorkers    int     // goroutines running tasks, caller included

	onBaseCase func(side int) // test hook; nil in production
}

// ---------- Constructors (WithX) ----------

// WithMinRows sets the base-case side: recursion on a side ≤ n runs the naive kernel.
// Panics when n < 1.
func WithMinRows(n int) Option {
	if n < 1 {
		panic(panicMinRowsInvalid)
	}

	return func(o *Options) { o.minRows = n }
}

// WithMaxRows sets the padded side from which Auto selects the Sequential variant.
// Panics when n < 1.
func WithMaxRows(n int) Option {
	if n < 1 {
		panic(panicMaxRowsInvalid)
	}

	return func(o *Options) { o.maxRows = n }
}

// WithVariant forces a recursion variant (Auto restores size-based selection).
// Implementation:
//   - Stage 1: validate v ∈ {Auto, Parallel, Sequential}.
//   - Stage 2: return a setter that writes v into Options.
//
// Behavior highlights:
//   - A forced variant ignores MaxRows entirely.
//
// AI-Hints:
//   - Force Sequential to get a single-goroutine, deterministic execution order.
func WithVariant(v Variant) Option {
	switch v {
	case Auto, Parallel, Sequential:
	default:
		panic(panicVariantInvalid)
	}

	return func(o *Options) { o.variant = v }
}

// WithParallelDepth sets how many recursion levels fork product tasks.
// 0 makes the Parallel variant run every product inline. Panics when depth < 0.
func WithParallelDepth(depth int) Option {
	if depth < 0 {
		panic(panicParallelDepthInvalid)
	}

	return func(o *Options) { o.parallelDepth = depth }
}

// WithMaxWorkers bounds the goroutines running product tasks, the caller
// included. With 1 every task runs inline on the caller. Panics when w < 1.
func WithMaxWorkers(w int) Option {
	if w < 1 {
		panic(panicMaxWorkersInvalid)
	}

	return func(o *Options) { o.maxWorkers = w }
}

// --------------------------- Option Resolution ---------------------------

// NewOptions resolves option setters against documented defaults.
// Pure function; stable for a given sequence of opts.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Implementation:
//   - Stage 1: start from Default* constants.
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		minRows:       DefaultMinRows,
		maxRows:       DefaultMaxRows,
		variant:       DefaultVariant,
		parallelDepth: DefaultParallelDepth,
		maxWorkers:    DefaultMaxWorkers(),
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// MinRows returns the resolved base-case side.
func (o Options) MinRows() int { return o.minRows }

// MaxRows returns the resolved Sequential switch side.
func (o Options) MaxRows() int { return o.maxRows }

// Variant returns the configured variant (possibly Auto).
func (o Options) Variant() Variant { return o.variant }

// ParallelDepth returns the resolved number of forking levels.
func (o Options) ParallelDepth() int { return o.parallelDepth }

// MaxWorkers returns the resolved goroutine bound.
func (o Options) MaxWorkers() int { return o.maxWorkers }

// resolve maps Auto to a concrete variant for the padded side n.
func (o Options) resolve(n int) Variant {
	if o.variant != Auto {
		return o.variant
	}
	if n >= o.maxRows {
		return Sequential
	}

	return Parallel
}

// Select reports which variant Multiply would run for padded side n.
// Complexity: O(k) for k options.
func Select(n int, opts ...Option) Variant {
	return gatherOptions(opts...).resolve(n)
}
