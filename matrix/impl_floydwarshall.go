// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) with a successor table for route rebuilding.
//   - In-place, O(n³) time, O(1) extra space, deterministic loop order.
//
// Contract:
//   - dist and next are square and of the same order.
//   - dist: Inf means "no path"; diagonal 0; no negative entries.
//   - next: next[i][j] is the first hop i→j or NoHop.

package matrix

import "fmt"

// Operation name constant for unified error wrapping.
const opFloydWarshall = "FloydWarshall"

// floydWarshallInPlace runs the APSP closure on dist/next in-place and
// returns the number of relaxations performed.
//
// Loop order is fixed (k → i → j). Relaxation is strict (<): on ties the route
// found earlier is kept, so the result depends only on the input tables.
// On improvement the first hop toward j becomes the first hop toward k
// (next[i][j] = next[i][k]), never k itself.
func floydWarshallInPlace(dist, next *Dense) int {
	n := dist.r

	var (
		k, i, j      int   // loop indices
		baseK, baseI int   // row base offsets for K and I in the flat buffer
		ik, kj, cand int64 // d[i,k], d[k,j], candidate d[i,k] + d[k,j]
		relaxed      int   // number of successful relaxations
	)

	d := dist.data
	nx := next.data

	for k = 0; k < n; k++ { // outer: intermediate vertex k
		baseK = k * n

		for i = 0; i < n; i++ { // middle: source vertex i
			baseI = i * n
			ik = d[baseI+k] // current shortest distance i→k
			if ik == Inf {  // i cannot reach k: nothing to gain via k
				continue
			}

			for j = 0; j < n; j++ { // inner: destination vertex j
				kj = d[baseK+j] // current shortest distance k→j
				if kj == Inf {
					continue
				}
				cand = ik + kj
				if cand < d[baseI+j] { // strict improvement only
					d[baseI+j] = cand
					nx[baseI+j] = nx[baseI+k]
					relaxed++
				}
			}
		}
	}

	return relaxed
}

// FloydWarshall computes all-pairs shortest paths in-place on dist and
// rewrites next so that following next[cur][j] from i reaches j along a
// shortest route.
//
// Contract:
//   - dist and next are n×n; dist has a zero diagonal and no negative entries.
//   - Inf marks missing edges in dist; next holds direct first hops or NoHop.
//
// Returns the number of relaxations performed (0 on an already-closed table,
// which makes a second call a no-op).
//
// Complexity: Time O(n³), Extra space O(1).
func FloydWarshall(dist, next *Dense) (int, error) {
	if err := ValidateDistance(dist); err != nil {
		return 0, fmt.Errorf("%s: dist: %w", opFloydWarshall, err)
	}
	if err := ValidateSquare(next); err != nil {
		return 0, fmt.Errorf("%s: next: %w", opFloydWarshall, err)
	}
	if err := ValidateSameShape(dist, next); err != nil {
		return 0, fmt.Errorf("%s: %w", opFloydWarshall, err)
	}

	return floydWarshallInPlace(dist, next), nil
}
