// Package lvroute computes all shortest routes of a small road map of named
// locations once, then answers route and distance queries from the result.
//
// What is inside?
//
//	matrix/   dense int64 distance/successor tables, Inf and NoHop sentinels,
//	          validators, and the Floyd–Warshall kernel with next-hop tracking
//	roadmap/  the Graph Store: locations, undirected roads, name lookup
//	apsp/     the Shortest-Path Engine: Compute, Query, distance table
//	dataset/  YAML road maps and a built-in sample map
//	dot/      Graphviz rendering of a map and a highlighted route
//	cmd/lvroute  interactive menu and one-shot subcommands
//
// Quick ASCII example:
//
//	A──10──B
//	 \     │
//	 100   5
//	   \   │
//	     C─┘
//
// The shortest route A→C is A→B→C with distance 15; the direct road is never
// chosen.
//
// Typical flow:
//
//	m, _ := roadmap.NewMap()
//	a, _ := m.AddLocation("A", 0, 0)
//	b, _ := m.AddLocation("B", 0, 0)
//	_ = m.AddRoad(a, b, 10)
//	eng, _ := apsp.New(m)
//	_ = eng.Compute()
//	route, err := eng.Query(a, b)
package lvroute
