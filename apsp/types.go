// SPDX-License-Identifier: MIT

package apsp

import (
	"errors"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvroute/roadmap"
)

// Sentinel errors returned by the Engine.
var (
	// ErrNilMap indicates that New was called without a map.
	ErrNilMap = errors.New("apsp: road map is nil")

	// ErrNotComputed indicates a query on a Dirty engine: Compute has not run,
	// or the map was modified after the last Compute.
	ErrNotComputed = errors.New("apsp: shortest paths not computed for the current map")

	// ErrNoPath indicates that the two locations are not connected. It is an
	// expected result on a disconnected map, not a failure.
	ErrNoPath = errors.New("apsp: no path between locations")

	// ErrBrokenChain indicates a successor chain that does not reach its
	// destination within n hops. It cannot occur on tables built by Compute.
	ErrBrokenChain = errors.New("apsp: successor chain does not terminate")

	// ErrInvalidIndex is the roadmap sentinel, so errors.Is matches it on both
	// store and engine errors.
	ErrInvalidIndex = roadmap.ErrInvalidIndex
)

// State is the lifecycle state of an Engine.
type State int

const (
	// StateDirty: tables are missing or older than the map.
	StateDirty State = iota
	// StateComputed: Compute ran to completion over the current map.
	StateComputed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateDirty:
		return "dirty"
	case StateComputed:
		return "computed"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

// Route is a shortest route between two locations.
//
// Indices[0] is the source, Indices[len-1] the destination; Names holds the
// matching location names. A route from a location to itself has a single
// entry and Distance 0.
type Route struct {
	Indices  []int
	Names    []string
	Distance int64
}

// Hops returns the number of roads travelled.
func (r Route) Hops() int {
	if len(r.Indices) == 0 {
		return 0
	}

	return len(r.Indices) - 1
}

// String renders the route as "A → B → C (15)".
func (r Route) String() string {
	return strings.Join(r.Names, " → ") + " (" + strconv.FormatInt(r.Distance, 10) + ")"
}
