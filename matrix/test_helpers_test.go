// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for the kernels.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvroute/matrix"
)

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustTables allocates an n×n distance matrix (0 diag, Inf elsewhere) and a
// NoHop-filled successor matrix.
func MustTables(t *testing.T, n int) (dist, next *matrix.Dense) {
	t.Helper()
	var err error
	if dist, err = matrix.NewDistance(n); err != nil {
		t.Fatalf("NewDistance(%d): %v", n, err)
	}
	if next, err = matrix.NewSuccessor(n); err != nil {
		t.Fatalf("NewSuccessor(%d): %v", n, err)
	}

	return dist, next
}

// Copy returns an independent copy of m built through the public accessors.
func Copy(t *testing.T, m *matrix.Dense) *matrix.Dense {
	t.Helper()
	r, c := m.Shape()
	cp := MustDense(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			MustSet(t, cp, i, j, MustAt(t, m, i, j))
		}
	}

	return cp
}

// MustSet sets m[i,j] = v or fails the test.
func MustSet(t *testing.T, m *matrix.Dense, i, j int, v int64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%d): %v", i, j, v, err)
	}
}

// MustAt returns m[i,j] or fails the test.
func MustAt(t *testing.T, m *matrix.Dense, i, j int) int64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// Edge adds an undirected edge u-v of weight w to the tables, the way a road
// map registers a road.
func Edge(t *testing.T, dist, next *matrix.Dense, u, v int, w int64) {
	t.Helper()
	MustSet(t, dist, u, v, w)
	MustSet(t, dist, v, u, w)
	MustSet(t, next, u, v, int64(v))
	MustSet(t, next, v, u, int64(u))
}

// Walk follows next from i to j and returns the visited indices, or nil when
// no hop exists. Fails the test on a chain longer than n.
func Walk(t *testing.T, next *matrix.Dense, i, j int) []int {
	t.Helper()
	path := []int{i}
	cur := i
	for cur != j {
		hop := MustAt(t, next, cur, j)
		if hop == matrix.NoHop {
			return nil
		}
		cur = int(hop)
		path = append(path, cur)
		if len(path) > next.Rows()+1 {
			t.Fatalf("successor chain %d→%d does not terminate: %v", i, j, path)
		}
	}

	return path
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("expected error %v, got %v", target, err)
	}
}
