// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep the Floyd–Warshall kernel minimal by delegating shape/nil/symmetry checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil.
func ValidateSameShape(a, b *Dense) error {
	ar, ac := a.Shape()
	br, bc := b.Shape()
	if ar != br || ac != bc {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric checks m[i][j] == m[j][i] for every pair, scanning the
// upper triangle only.
func ValidateSymmetric(m *Dense) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	n := m.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.data[i*n+j] != m.data[j*n+i] {
				return fmt.Errorf("ValidateSymmetric: (%d,%d): %w", i, j, ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateDistance checks the preconditions of a distance matrix: square,
// zero diagonal, no negative entries.
func ValidateDistance(m *Dense) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateDistance", err)
	}
	n := m.r
	var i, j int
	for i = 0; i < n; i++ {
		if m.data[i*n+i] != 0 {
			return fmt.Errorf("ValidateDistance: (%d,%d): %w", i, i, ErrNonZeroDiagonal)
		}
		for j = 0; j < n; j++ {
			if m.data[i*n+j] < 0 {
				return fmt.Errorf("ValidateDistance: (%d,%d): %w", i, j, ErrNegativeEntry)
			}
		}
	}

	return nil
}
