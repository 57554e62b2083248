// SPDX-License-Identifier: MIT

// Package strassen - in-place recursion.
//
// Both variants compute a ← a·b for square power-of-two operands, writing the
// four result quadrants back through views of a. b is only ever read.
//
// Recurrence (quadrants X11 X12 / X21 X22):
//
//	F1 = A11+A22   G1 = B11+B22      C11 = P1+P4-P5+P7
//	F2 = A21+A22   G2 = B11          C12 = P3+P5
//	F3 = A11       G3 = B12-B22      C21 = P2+P4
//	F4 = A22       G4 = B21-B11      C22 = P1-P2+P3+P6
//	F5 = A11+A12   G5 = B22
//	F6 = A21-A11   G6 = B11+B12
//	F7 = A12-A22   G7 = B21+B22      Pi = Fi·Gi, computed in place on Fi
package strassen

import (
	"fmt"

	"github.com/katalvlaran/strassen/matrix"
)

// quadrant indexes one of the four views returned by Dense.Quadrants.
type quadrant struct{ r, c int }

var (
	q11 = quadrant{0, 0}
	q12 = quadrant{0, 1}
	q21 = quadrant{1, 0}
	q22 = quadrant{1, 1}
)

// combOp is how a factor is derived from its quadrants.
type combOp int

const (
	opCopy combOp = iota // lhs alone
	opPlus               // lhs + rhs
	opMinus              // lhs - rhs
)

// factor describes one Fi or Gi as a combination of quadrants.
type factor struct {
	lhs, rhs quadrant
	op       combOp
}

// leftFactors and rightFactors hold F1..F7 and G1..G7 in product order.
var (
	leftFactors = [7]factor{
		{q11, q22, opPlus},
		{q21, q22, opPlus},
		{q11, q11, opCopy},
		{q22, q22, opCopy},
		{q11, q12, opPlus},
		{q21, q11, opMinus},
		{q12, q22, opMinus},
	}
	rightFactors = [7]factor{
		{q11, q22, opPlus},
		{q11, q11, opCopy},
		{q12, q22, opMinus},
		{q21, q11, opMinus},
		{q22, q22, opCopy},
		{q11, q12, opPlus},
		{q21, q22, opPlus},
	}
)

// term is one signed product in a result quadrant.
type term struct {
	p   int // product index, 0-based (P1 is 0)
	neg bool
}

// recombination lists, per result quadrant, the products to sum. The first
// term of each row is always positive and seeds the quadrant via CopyFrom.
var recombination = [4]struct {
	dst   quadrant
	terms []term
}{
	{q11, []term{{0, false}, {3, false}, {4, true}, {6, false}}},
	{q12, []term{{2, false}, {4, false}}},
	{q21, []term{{1, false}, {3, false}}},
	{q22, []term{{0, false}, {1, true}, {2, false}, {5, false}}},
}

// engine carries the per-call configuration through the recursion.
type engine[T matrix.Number] struct {
	minRows       int
	parallelDepth int
	fj            *forkJoin
	onBaseCase    func(side int)
}

func newEngine[T matrix.Number](o Options) *engine[T] {
	return &engine[T]{
		minRows:       o.minRows,
		parallelDepth: o.parallelDepth,
		fj:            newForkJoin(o.maxWorkers),
		onBaseCase:    o.onBaseCase,
	}
}

// run dispatches to the chosen variant once; it is never re-decided below.
func (e *engine[T]) run(a, b *matrix.Dense[T], v Variant) error {
	switch v {
	case Parallel:
		return e.parallel(a, b, 0)
	case Sequential:
		return e.sequential(a, b)
	default:
		return fmt.Errorf("strassen: unresolved variant %v", v)
	}
}

// baseCase reports whether a is small enough for the naive kernel and, if so,
// overwrites a with a·b.
func (e *engine[T]) baseCase(a, b *matrix.Dense[T]) (bool, error) {
	if a.Rows() > e.minRows {
		return false, nil
	}
	if e.onBaseCase != nil {
		e.onBaseCase(a.Rows())
	}
	p, err := matrix.Mul(a, b)
	if err != nil {
		return true, err
	}

	return true, a.CopyFrom(p)
}

// sequential computes a ← a·b one product at a time, depth-first, P1..P7.
// Only one Fi/Gi subtree is alive at a time; the seven finished Pi are kept
// for recombination.
func (e *engine[T]) sequential(a, b *matrix.Dense[T]) error {
	if done, err := e.baseCase(a, b); done {
		return err
	}
	qa, qb, err := split(a, b)
	if err != nil {
		return err
	}

	var p [7]*matrix.Dense[T]
	for i := range p {
		f, err := derive(qa, leftFactors[i], true)
		if err != nil {
			return err
		}
		// Gi is read-only below this point, so plain quadrants stay views.
		g, err := derive(qb, rightFactors[i], false)
		if err != nil {
			return err
		}
		if err = e.sequential(f, g); err != nil {
			return err
		}
		p[i] = f
	}

	return recombine(qa, &p)
}

// parallel computes a ← a·b by deriving all seven operand pairs as owned
// matrices, forking one task per product and joining before recombination.
// Levels at or beyond parallelDepth fall back to the sequential recursion.
func (e *engine[T]) parallel(a, b *matrix.Dense[T], depth int) error {
	if depth >= e.parallelDepth {
		return e.sequential(a, b)
	}
	if done, err := e.baseCase(a, b); done {
		return err
	}
	qa, qb, err := split(a, b)
	if err != nil {
		return err
	}

	var f, g [7]*matrix.Dense[T]
	for i := range f {
		if f[i], err = derive(qa, leftFactors[i], true); err != nil {
			return err
		}
		if g[i], err = derive(qb, rightFactors[i], true); err != nil {
			return err
		}
	}

	tasks := make([]func() error, len(f))
	for i := range tasks {
		tasks[i] = func() error { return e.parallel(f[i], g[i], depth+1) }
	}
	if err = e.fj.run(tasks); err != nil {
		return err
	}

	return recombine(qa, &f)
}

// split returns the quadrant views of both operands.
func split[T matrix.Number](a, b *matrix.Dense[T]) (qa, qb [2][2]*matrix.Dense[T], err error) {
	if qa, err = a.Quadrants(); err != nil {
		return qa, qb, err
	}
	qb, err = b.Quadrants()

	return qa, qb, err
}

// derive materializes one factor. Sums and differences are always fresh;
// a single quadrant is cloned when owned is set and returned as a view otherwise.
func derive[T matrix.Number](q [2][2]*matrix.Dense[T], f factor, owned bool) (*matrix.Dense[T], error) {
	x, y := q[f.lhs.r][f.lhs.c], q[f.rhs.r][f.rhs.c]
	switch f.op {
	case opPlus:
		return matrix.Add(x, y)
	case opMinus:
		return matrix.Sub(x, y)
	default:
		if owned {
			return x.Clone(), nil
		}
		return x, nil
	}
}

// recombine writes C11..C22 into the quadrant views of a, mutating a.
func recombine[T matrix.Number](qa [2][2]*matrix.Dense[T], p *[7]*matrix.Dense[T]) error {
	for _, rc := range recombination {
		dst := qa[rc.dst.r][rc.dst.c]
		if err := dst.CopyFrom(p[rc.terms[0].p]); err != nil {
			return err
		}
		for _, t := range rc.terms[1:] {
			var err error
			if t.neg {
				err = dst.SubInPlace(p[t.p])
			} else {
				err = dst.AddInPlace(p[t.p])
			}
			if err != nil {
				return err
			}
		}
	}

	return nil
}
