// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major int64 tables used by lvroute:
// the distance matrix and the successor (next-hop) matrix of a road map, plus
// the Floyd–Warshall kernel that turns direct-road tables into all-pairs
// shortest-path tables.
//
// Conventions:
//
//   - Inf marks "no known path" in a distance matrix. It is far above any real
//     route length and two Inf values summed still fit in an int64.
//   - NoHop marks "no first hop" in a successor matrix (diagonal or no path).
//   - Public accessors (At/Set) never panic on user input; they return
//     sentinel errors wrapped with the method name and coordinates.
//   - All loops run in a fixed order, so results are deterministic.
//
// Matrices are meant for small, dense graphs where O(n²) memory and an O(n³)
// closure are acceptable (a few hundred locations at most).
package matrix
