// SPDX-License-Identifier: MIT

// Package apsp implements the Shortest-Path Engine of lvroute: an all-pairs
// shortest-path computation (Floyd–Warshall with a next-hop table) over a
// roadmap.Map, and the route queries answered from its result.
//
// Overview:
//
//   - Compute copies the map's direct-road tables and closes them with
//     matrix.FloydWarshall. The loop order is fixed (k, then i, then j, all
//     ascending) and relaxation is strict, so equal-cost alternatives resolve
//     to the route discovered first.
//   - Query rebuilds a route by following next[cur][to] from the source until
//     the destination is reached; the number of hops is bounded by the number
//     of locations.
//   - The engine is either Dirty (never computed, or the map changed since the
//     last Compute) or Computed. Queries in the Dirty state fail with
//     ErrNotComputed instead of reading stale tables.
//
// Complexity:
//
//   - Compute: Time O(n³), Space O(n²) for each table.
//   - Query:   Time O(n).
//
// Example usage:
//
//	eng, _ := apsp.New(m)
//	if err := eng.Compute(); err != nil {
//	    log.Fatal(err)
//	}
//	route, err := eng.QueryByName("Sao_Paulo", "Recife")
//	switch {
//	case errors.Is(err, apsp.ErrNoPath):
//	    fmt.Println("no route")
//	case err == nil:
//	    fmt.Println(route)
//	}
package apsp
