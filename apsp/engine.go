// SPDX-License-Identifier: MIT

package apsp

import (
	"fmt"
	"time"

	"github.com/safing/portbase/log"
	"github.com/tevino/abool"

	"github.com/katalvlaran/lvroute/matrix"
	"github.com/katalvlaran/lvroute/roadmap"
)

// Engine answers shortest-route queries over a roadmap.Map.
//
// The engine owns its tables; the map keeps only direct roads. After any
// change to the map, Compute must run again before queries succeed.
type Engine struct {
	m *roadmap.Map

	dist  *matrix.Dense // shortest distances, nil for an empty map
	next  *matrix.Dense // first hops, nil for an empty map
	names []string      // location names at compute time

	computed *abool.AtomicBool
	version  uint64 // map version the tables were computed from
}

// New creates a Dirty engine over m.
func New(m *roadmap.Map) (*Engine, error) {
	if m == nil {
		return nil, ErrNilMap
	}

	return &Engine{
		m:        m,
		computed: abool.New(),
	}, nil
}

// Compute runs the all-pairs shortest-path pass over the current map and
// moves the engine to StateComputed. Running it again on an unchanged map
// yields identical tables.
//
// The engine reports StateDirty while Compute runs, so no query can observe
// half-closed tables.
func (e *Engine) Compute() error {
	e.computed.UnSet()

	n := e.m.Len()
	version := e.m.Version()
	if n == 0 {
		e.dist, e.next, e.names = nil, nil, nil
		e.version = version
		e.computed.Set()
		log.Debugf("apsp: computed empty map")

		return nil
	}

	dist, next, err := e.m.Direct()
	if err != nil {
		return fmt.Errorf("apsp: compute: %w", err)
	}
	// Roads are undirected; route reversal relies on a symmetric table.
	if err = matrix.ValidateSymmetric(dist); err != nil {
		return fmt.Errorf("apsp: compute: %w", err)
	}

	start := time.Now()
	relaxed, err := matrix.FloydWarshall(dist, next)
	if err != nil {
		return fmt.Errorf("apsp: compute: %w", err)
	}

	e.dist, e.next = dist, next
	e.names = e.m.Names()
	e.version = version
	e.computed.Set()
	log.Debugf("apsp: computed %d locations, %d relaxations in %s", n, relaxed, time.Since(start))
	log.Tracef("apsp: distances:\n%s", dist)

	return nil
}

// State reports whether the tables reflect the current map.
func (e *Engine) State() State {
	if !e.computed.IsSet() || e.version != e.m.Version() {
		return StateDirty
	}

	return StateComputed
}

// Len returns the number of locations covered by the last Compute.
func (e *Engine) Len() int { return len(e.names) }

// checkPair ensures the engine is Computed and both indices are covered.
func (e *Engine) checkPair(from, to int) error {
	if e.State() != StateComputed {
		return ErrNotComputed
	}
	n := len(e.names)
	if from < 0 || from >= n {
		return fmt.Errorf("%w: %d (have %d locations)", ErrInvalidIndex, from, n)
	}
	if to < 0 || to >= n {
		return fmt.Errorf("%w: %d (have %d locations)", ErrInvalidIndex, to, n)
	}

	return nil
}

// Distance returns the shortest distance between from and to.
//
// Errors: ErrNotComputed, ErrInvalidIndex, ErrNoPath.
func (e *Engine) Distance(from, to int) (int64, error) {
	if err := e.checkPair(from, to); err != nil {
		return 0, err
	}
	d, _ := e.dist.At(from, to)
	if d == matrix.Inf {
		return 0, fmt.Errorf("%w: %q → %q", ErrNoPath, e.names[from], e.names[to])
	}

	return d, nil
}

// NextHop returns the first location to visit on the shortest route from
// from to to, or -1 when from == to or no route exists.
//
// Errors: ErrNotComputed, ErrInvalidIndex.
func (e *Engine) NextHop(from, to int) (int, error) {
	if err := e.checkPair(from, to); err != nil {
		return -1, err
	}
	hop, _ := e.next.At(from, to)

	return int(hop), nil
}

// Query returns the shortest route from from to to.
//
// The route is rebuilt by following next[cur][to] until cur == to. The walk
// is bounded by the number of locations.
//
// Errors: ErrNotComputed, ErrInvalidIndex, ErrNoPath, ErrBrokenChain.
func (e *Engine) Query(from, to int) (Route, error) {
	d, err := e.Distance(from, to)
	if err != nil {
		return Route{}, err
	}

	var (
		n       = len(e.names)
		indices = make([]int, 1, n)
		cur     = from
		hop     int64
	)
	indices[0] = from
	for cur != to {
		if len(indices) >= n {
			return Route{}, fmt.Errorf("%w: %d → %d", ErrBrokenChain, from, to)
		}
		hop, _ = e.next.At(cur, to)
		if hop == matrix.NoHop {
			return Route{}, fmt.Errorf("%w: %d → %d stops at %d", ErrBrokenChain, from, to, cur)
		}
		cur = int(hop)
		indices = append(indices, cur)
	}

	names := make([]string, len(indices))
	for i, idx := range indices {
		names[i] = e.names[idx]
	}

	return Route{Indices: indices, Names: names, Distance: d}, nil
}

// QueryByName resolves both names with roadmap.Map.FindByName and returns
// the shortest route between them.
//
// Errors: roadmap.ErrNotFound plus those of Query.
func (e *Engine) QueryByName(from, to string) (Route, error) {
	i, err := e.m.FindByName(from)
	if err != nil {
		return Route{}, fmt.Errorf("origin: %w", err)
	}
	j, err := e.m.FindByName(to)
	if err != nil {
		return Route{}, fmt.Errorf("destination: %w", err)
	}

	return e.Query(i, j)
}

// Table returns a snapshot of the distance table labelled by location name.
//
// Errors: ErrNotComputed.
func (e *Engine) Table() (Table, error) {
	if e.State() != StateComputed {
		return Table{}, ErrNotComputed
	}

	n := len(e.names)
	t := Table{
		Names: append([]string(nil), e.names...),
		Cells: make([][]Cell, n),
	}
	for i := 0; i < n; i++ {
		row, _ := e.dist.Row(i)
		t.Cells[i] = make([]Cell, n)
		for j, v := range row {
			if v == matrix.Inf {
				continue
			}
			t.Cells[i][j] = Cell{Value: v, Reachable: true}
		}
	}

	return t, nil
}
