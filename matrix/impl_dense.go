// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major, strided) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula off + i*stride + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Support no-copy views (View, Quadrants) and copy-based extraction (Clone, Crop).
//   - Keep algorithmic determinism (fixed loop orders, row-by-row copies).
//
// AI-Hints:
//   - Owned matrices have stride == cols and off == 0; views inherit the parent's stride.
//   - Use View(r0,c0,h,w) to avoid copies for windows; mutations reflect in the parent.
//   - Use Clone/Crop to materialize an independent copy.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/CopyFrom/Fill: O(r*c); View/Quadrants: O(1).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"        // method tag used in error wrappers
	ctxSet      = "Set"       // method tag used in error wrappers
	ctxRow      = "Row"       // method tag used in error wrappers
	ctxFill     = "Fill"      // method tag used in error wrappers
	ctxCopyFrom = "CopyFrom"  // method tag used in error wrappers
	ctxView     = "View"      // ctor tag for Dense.View
	ctxQuad     = "Quadrants" // ctor tag for Dense.Quadrants
	ctxCrop     = "Crop"      // ctor tag for Dense.Crop
	ctxNew      = "NewDense"  // ctor tag for NewDense/NewDenseFrom
)

// ---------- Formatting literals  ----------
const (
	_fmtSep      = " "
	_fmtRowClose = "\n"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; the sentinel stays reachable via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over the element kind T.
//   - r,c hold dimensions (rows, cols).
//   - data is the flat backing buffer shared by the owner and all of its views.
//   - element (i,j) lives at data[off + i*stride + j].
//   - view reports whether this value aliases a region of another Dense.
//
// A view keeps the backing array reachable through its own slice header, so it
// can never outlive its storage; writes through a view are visible in the
// parent and in every other view over the same cells.
type Dense[T Number] struct {
	r, c   int  // row and column counts (>= 0)
	stride int  // distance between the starts of consecutive rows in data
	off    int  // position of element (0,0) in data
	data   []T  // row-major storage, possibly shared with a parent
	view   bool // true when created by View/Quadrants
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[float64])(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for an owned Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer of length rows*cols.
//
// Behavior highlights:
//   - 0×N and N×0 shapes are legal; they hold no elements.
//   - No panics on user errors; returns sentinel errors.
//
// Inputs:
//   - rows: non-negative number of rows
//   - cols: non-negative number of columns
//
// Returns:
//   - *Dense[T]: newly allocated matrix filled with T(0).
//
// Errors:
//   - ErrInvalidDimensions (negative dimension).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Prefer this ctor for public creation. For windows, use View().
func NewDense[T Number](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, ErrInvalidDimensions)
	}
	// make() zero-fills deterministically with T(0).
	buf := make([]T, rows*cols)

	return &Dense[T]{r: rows, c: cols, stride: cols, data: buf}, nil
}

// NewDenseFrom creates an r×c matrix and fills it row-major from values.
// Errors: ErrInvalidDimensions, ErrDimensionMismatch when len(values) != rows*cols.
// Complexity: O(r*c).
func NewDenseFrom[T Number](rows, cols int, values []T) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if err = m.Fill(values); err != nil {
		return nil, err
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// IsView reports whether m aliases storage owned by another Dense.
func (m *Dense[T]) IsView() bool { return m.view }

// indexOf computes the strided offset or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Bounds-check (row,col) and compute the flat offset.
//
// Implementation:
//   - Stage 1: validate 0 ≤ row < m.r and 0 ≤ col < m.c.
//   - Stage 2: compute off + row*stride + col.
//
// Behavior highlights:
//   - Returns the bare sentinel; public methods wrap it with coordinates.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return m.off + row*m.stride + col, nil
}

// row returns the live slice of row i (no bounds check; internal hot paths only).
func (m *Dense[T]) row(i int) []T {
	start := m.off + i*m.stride

	return m.data[start : start+m.c : start+m.c]
}

// contiguous reports whether the r*c elements occupy one unbroken run of data.
func (m *Dense[T]) contiguous() bool { return m.stride == m.c || m.r <= 1 }

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from the backing buffer.
//
// Errors:
//   - ErrOutOfRange when out of bounds, wrapped with "Dense.At(row,col)".
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Only the addressed cell changes; through a view that cell belongs to the parent.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange.
// Complexity: O(c).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.row(i))

	return out, nil
}

// Fill assigns values row-major: m(i,j) = values[i*cols+j].
// MAIN DESCRIPTION:
//   - Bulk population from a flat sequence; works through views as well.
//
// Implementation:
//   - Stage 1: require len(values) == rows*cols.
//   - Stage 2: copy one row at a time into the strided buffer.
//
// Errors:
//   - ErrDimensionMismatch when the length does not match; m is left untouched.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense[T]) Fill(values []T) error {
	if len(values) != m.r*m.c {
		return fmt.Errorf("Dense.%s: len %d for %dx%d: %w", ctxFill, len(values), m.r, m.c, ErrDimensionMismatch)
	}
	for i := 0; i < m.r; i++ {
		copy(m.row(i), values[i*m.c:(i+1)*m.c])
	}

	return nil
}

// Clone returns a deep, owned copy with identical shape and contents.
// The result never aliases m, even when m is a view.
// Complexity: O(r*c) time and memory.
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, m.r*m.c)
	if m.contiguous() {
		copy(cp, m.data[m.off:m.off+m.r*m.c])
	} else {
		for i := 0; i < m.r; i++ {
			copy(cp[i*m.c:(i+1)*m.c], m.row(i))
		}
	}

	return &Dense[T]{r: m.r, c: m.c, stride: m.c, data: cp}
}

// CopyFrom overwrites m's cells with src's values, element by element.
// MAIN DESCRIPTION:
//   - Write-back primitive: when m is a quadrant view, the parent changes in place.
//
// Implementation:
//   - Stage 1: ValidateNotNil(src), ValidateSameShape(m, src).
//   - Stage 2: row-by-row copy in ascending i.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (nothing is written).
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// Notes:
//   - Overlapping src/dst regions are copied row by row; callers never pass
//     overlapping windows.
func (m *Dense[T]) CopyFrom(src *Dense[T]) error {
	if err := ValidateNotNil(src); err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxCopyFrom, err)
	}
	if err := ValidateSameShape(m, src); err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxCopyFrom, err)
	}
	for i := 0; i < m.r; i++ {
		copy(m.row(i), src.row(i))
	}

	return nil
}

// String HUMAN-READABLE dump of rows for diagnostics: one row per line,
// values separated by a single space.
// Not for hot paths; intended for logs and debugging.
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		line := m.row(i)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprint(&b, line[j])
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// View creates a no-copy window [r0:r0+rows, c0:c0+cols) over the same storage.
// MAIN DESCRIPTION:
//   - Lightweight submatrix referencing the parent buffer (shared storage).
//
// Implementation:
//   - Stage 1: validate a non-empty window fully inside m.
//   - Stage 2: return a Dense sharing data, with the parent's stride and a shifted offset.
//
// Behavior highlights:
//   - Writes via the view reflect in m (and in every view of m covering the cell).
//   - Views of views compose: offsets add up, the stride stays the owner's.
//
// Inputs:
//   - r0,c0: top-left offsets; rows, cols: window size (≥1).
//
// Errors:
//   - ErrBadShape when the window is empty or leaves m.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Use Clone on the view when the window needs an independent lifetime.
func (m *Dense[T]) View(r0, c0, rows, cols int) (*Dense[T], error) {
	if r0 < 0 || c0 < 0 || rows <= 0 || cols <= 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrBadShape)
	}

	return m.view4(r0, c0, rows, cols), nil
}

// view4 builds a window without validation (callers guarantee bounds).
func (m *Dense[T]) view4(r0, c0, rows, cols int) *Dense[T] {
	return &Dense[T]{
		r:      rows,
		c:      cols,
		stride: m.stride,
		off:    m.off + r0*m.stride + c0,
		data:   m.data,
		view:   true,
	}
}

// Quadrants splits an even square matrix into its four views:
// q[0][0]=top-left, q[0][1]=top-right, q[1][0]=bottom-left, q[1][1]=bottom-right.
// Errors: ErrNonSquare; ErrBadShape for an odd or zero side.
// Complexity: O(1).
func (m *Dense[T]) Quadrants() ([2][2]*Dense[T], error) {
	var q [2][2]*Dense[T]
	if err := ValidateSquare(m); err != nil {
		return q, fmt.Errorf("Dense.%s: %w", ctxQuad, err)
	}
	if m.r == 0 || m.r%2 != 0 {
		return q, fmt.Errorf("Dense.%s: side %d: %w", ctxQuad, m.r, ErrBadShape)
	}
	h := m.r / 2
	q[0][0] = m.view4(0, 0, h, h)
	q[0][1] = m.view4(0, h, h, h)
	q[1][0] = m.view4(h, 0, h, h)
	q[1][1] = m.view4(h, h, h, h)

	return q, nil
}

// Crop returns an owned copy of the top-left rows×cols block.
// Errors: ErrBadShape when the block does not fit.
// Complexity: O(rows*cols).
func (m *Dense[T]) Crop(rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 || rows > m.r || cols > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d): %w", ctxCrop, rows, cols, ErrBadShape)
	}
	res := &Dense[T]{r: rows, c: cols, stride: cols, data: make([]T, rows*cols)}
	for i := 0; i < rows; i++ {
		copy(res.row(i), m.row(i)[:cols])
	}

	return res, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only; stops early when f returns false.
// Complexity: O(r*c).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j int
	for i = 0; i < m.r; i++ {
		line := m.row(i)
		for j = 0; j < m.c; j++ {
			if !f(i, j, line[j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, in row-major order.
// Through a view, only the window's cells of the parent change.
// Complexity: O(r*c).
func (m *Dense[T]) Apply(f func(i, j int, v T) T) {
	var i, j int
	for i = 0; i < m.r; i++ {
		line := m.row(i)
		for j = 0; j < m.c; j++ {
			line[j] = f(i, j, line[j])
		}
	}
}
