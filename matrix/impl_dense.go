// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Leading: O(n²).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Inf is the "no known path" sentinel of a distance matrix.
//
// It is a quarter of the int64 range: Inf+Inf still does not wrap, and it
// stays more than ten times above the longest route a road map accepts
// (see roadmap.WithMaxRoadWeight, which enforces the margin).
const Inf int64 = math.MaxInt64 / 4

// NoHop is the "no first hop" sentinel of a successor matrix.
const NoHop int64 = -1

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxLeading = "Leading" // ctor tag for Dense.Leading
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtInf      = "∞"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of int64 cells.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int     // row and column counts (>0)
	data []int64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions if rows <= 0 or cols <= 0.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]int64, rows*cols)}, nil
}

// NewDistance creates an n×n distance matrix with a zero diagonal and Inf
// everywhere else: the state of a map with locations but no roads.
func NewDistance(n int) (*Dense, error) {
	d, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	d.fillDistance()

	return d, nil
}

// NewSuccessor creates an n×n successor matrix filled with NoHop.
func NewSuccessor(n int) (*Dense, error) {
	d, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	d.Fill(NoHop)

	return d, nil
}

// fillDistance rewrites the buffer as diag = 0, off-diagonal = Inf.
func (m *Dense) fillDistance() {
	var i, j int
	for i = 0; i < m.r; i++ {
		base := i * m.c
		for j = 0; j < m.c; j++ {
			if i == j {
				m.data[base+j] = 0
			} else {
				m.data[base+j] = Inf
			}
		}
	}
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel error.
//
// Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Fill sets every cell to v.
func (m *Dense) Fill(v int64) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Leading copies the top-left n×n block into a fresh matrix.
//
// Road maps grow their tables ahead of use; Leading extracts the part
// covering the locations registered so far.
//
// Errors:
//   - ErrInvalidDimensions if n <= 0.
//   - ErrOutOfRange if n exceeds either dimension.
func (m *Dense) Leading(n int) (*Dense, error) {
	if n <= 0 {
		return nil, denseErrorf(ctxLeading, n, n, ErrInvalidDimensions)
	}
	if n > m.Rows() || n > m.Cols() {
		return nil, denseErrorf(ctxLeading, n, n, ErrOutOfRange)
	}

	out := &Dense{r: n, c: n, data: make([]int64, n*n)}
	for i := 0; i < n; i++ {
		copy(out.data[i*n:(i+1)*n], m.data[i*m.c:i*m.c+n])
	}

	return out, nil
}

// SetLeading copies src into the top-left block of m. The rest of m is left
// untouched; it is the counterpart of Leading used when tables grow.
//
// Errors:
//   - ErrNilMatrix if src is nil.
//   - ErrDimensionMismatch if src does not fit into m.
func (m *Dense) SetLeading(src *Dense) error {
	if src == nil {
		return fmt.Errorf("Dense.SetLeading: %w", ErrNilMatrix)
	}
	if src.r > m.r || src.c > m.c {
		return fmt.Errorf("Dense.SetLeading: %dx%d into %dx%d: %w", src.r, src.c, m.r, m.c, ErrDimensionMismatch)
	}
	for i := 0; i < src.r; i++ {
		copy(m.data[i*m.c:i*m.c+src.c], src.data[i*src.c:(i+1)*src.c])
	}

	return nil
}

// Row returns a copy of row i, or ErrOutOfRange.
func (m *Dense) Row(i int) ([]int64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]int64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// String renders rows as bracketed, comma-separated lines for diagnostics.
// Inf cells are rendered as ∞.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			v := m.data[i*m.c+j]
			if v == Inf {
				sb.WriteString(_fmtInf)
			} else {
				sb.WriteString(strconv.FormatInt(v, 10))
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
