// SPDX-License-Identifier: MIT

// Package roadmap defines the Graph Store of lvroute: a fixed-capacity set of
// named locations and the symmetric direct-road tables built from them.
//
// Sentinel errors:
//
//	– ErrCapacityExceeded  if a location is added to a full map.
//	– ErrInvalidIndex      if a road references an unregistered location index.
//	– ErrNotFound          if a name lookup finds no location.
//	– ErrEmptyName         if a location is registered without a name.
//	– ErrNegativeWeight    if a road weight is below zero.
//	– ErrWeightTooLarge    if a road weight exceeds the configured maximum.
//	– ErrSelfLoop          if a road connects a location to itself.
//	– ErrBadConfig         if options break the numeric safety margin.
package roadmap

import (
	"errors"

	"github.com/katalvlaran/lvroute/matrix"
)

// Sentinel errors returned by Map operations.
var (
	// ErrCapacityExceeded indicates that the map already holds its configured
	// maximum number of locations. The map is left unchanged.
	ErrCapacityExceeded = errors.New("roadmap: location capacity exceeded")

	// ErrInvalidIndex indicates a location index outside [0, Len()).
	ErrInvalidIndex = errors.New("roadmap: invalid location index")

	// ErrNotFound indicates that no location matches the requested name.
	ErrNotFound = errors.New("roadmap: location not found")

	// ErrEmptyName indicates an empty location name.
	ErrEmptyName = errors.New("roadmap: location name is empty")

	// ErrNegativeWeight indicates a negative road weight.
	ErrNegativeWeight = errors.New("roadmap: negative road weight")

	// ErrWeightTooLarge indicates a road weight above the configured maximum.
	ErrWeightTooLarge = errors.New("roadmap: road weight too large")

	// ErrSelfLoop indicates a road from a location to itself.
	ErrSelfLoop = errors.New("roadmap: road connects a location to itself")

	// ErrBadConfig indicates invalid construction options.
	ErrBadConfig = errors.New("roadmap: invalid configuration")
)

const (
	// DefaultCapacity is the maximum number of locations of a map built
	// without WithCapacity.
	DefaultCapacity = 100

	// DefaultMaxNameLength is the number of runes kept from a location name.
	// Longer names are truncated, never rejected.
	DefaultMaxNameLength = 49

	// DefaultMaxRoadWeight is the largest accepted road weight.
	DefaultMaxRoadWeight int64 = 1_000_000

	// safetyFactor is the required ratio between matrix.Inf and the longest
	// possible route (capacity × max road weight).
	safetyFactor = 10
)

// Location is a registered, named point of the map.
// Latitude and Longitude are carried for display only.
type Location struct {
	Index     int     // dense zero-based id, assigned at registration
	Name      string  // display name, possibly truncated
	Latitude  float64 // degrees
	Longitude float64 // degrees
}

// Road is a direct, undirected connection between two locations.
// From < To always holds for roads returned by Map.Roads.
type Road struct {
	From   int
	To     int
	Weight int64
}

// Options configures a Map.
//
// Capacity       – maximum number of locations (≥ 1). Default DefaultCapacity.
// MaxNameLength  – runes kept from a name (≥ 1). Default DefaultMaxNameLength.
// MaxRoadWeight  – largest accepted road weight (≥ 0). Default DefaultMaxRoadWeight.
type Options struct {
	Capacity      int
	MaxNameLength int
	MaxRoadWeight int64
}

// Option represents a functional option for configuring a Map.
type Option func(*Options)

// WithCapacity sets the maximum number of locations.
func WithCapacity(n int) Option {
	return func(o *Options) {
		o.Capacity = n
	}
}

// WithMaxNameLength sets how many runes of a location name are kept.
func WithMaxNameLength(n int) Option {
	return func(o *Options) {
		o.MaxNameLength = n
	}
}

// WithMaxRoadWeight sets the largest accepted road weight.
func WithMaxRoadWeight(w int64) Option {
	return func(o *Options) {
		o.MaxRoadWeight = w
	}
}

// DefaultOptions returns the options used when no Option is passed.
func DefaultOptions() Options {
	return Options{
		Capacity:      DefaultCapacity,
		MaxNameLength: DefaultMaxNameLength,
		MaxRoadWeight: DefaultMaxRoadWeight,
	}
}

// validate checks option ranges and the numeric margin between matrix.Inf
// and the longest representable route.
func (o Options) validate() error {
	if o.Capacity < 1 || o.MaxNameLength < 1 || o.MaxRoadWeight < 0 {
		return ErrBadConfig
	}
	// capacity × maxWeight × safetyFactor must stay below Inf; checked by
	// division to avoid overflowing the product itself.
	if o.MaxRoadWeight > 0 && int64(o.Capacity) > matrix.Inf/safetyFactor/o.MaxRoadWeight {
		return ErrBadConfig
	}

	return nil
}
