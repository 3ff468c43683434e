// SPDX-License-Identifier: MIT

package roadmap

import (
	"fmt"
	"strings"

	"github.com/safing/portbase/log"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/lvroute/matrix"
)

// initialReserve is the table order allocated by NewMap; tables double on
// demand up to the configured capacity.
const initialReserve = 8

// Map is the Graph Store: registered locations plus the direct-road distance
// and successor tables.
//
// Invariants:
//   - dist is symmetric, dist[i][i] == 0, dist[i][j] == matrix.Inf without a road.
//   - next[i][j] == j when a road i-j exists, matrix.NoHop otherwise.
//   - A failed operation leaves locations and both tables unchanged.
//
// The tables only ever describe direct roads; shortest-path closure is done by
// the apsp engine on copies (see Direct).
//
// A Map is not safe for concurrent mutation.
type Map struct {
	opts      Options
	locations []Location
	dist      *matrix.Dense // reserve×reserve, direct road weights
	next      *matrix.Dense // reserve×reserve, direct first hops
	version   uint64        // bumped on every successful mutation
	rejected  uint64        // failed AddLocation/AddRoad calls
}

// NewMap builds an empty map.
//
// Errors:
//   - ErrBadConfig if an option is out of range, or if capacity × max road
//     weight leaves less than a tenfold margin below matrix.Inf.
func NewMap(opts ...Option) (*Map, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%w: capacity=%d maxNameLength=%d maxRoadWeight=%d",
			err, cfg.Capacity, cfg.MaxNameLength, cfg.MaxRoadWeight)
	}

	m := &Map{opts: cfg}
	if err := m.reserve(min(initialReserve, cfg.Capacity)); err != nil {
		return nil, err
	}

	return m, nil
}

// reserve grows the tables to at least n×n, keeping every registered entry.
func (m *Map) reserve(n int) error {
	if m.dist != nil && m.dist.Rows() >= n {
		return nil
	}
	size := n
	if m.dist != nil {
		size = max(n, 2*m.dist.Rows())
	}
	size = min(size, m.opts.Capacity)

	dist, err := matrix.NewDistance(size)
	if err != nil {
		return fmt.Errorf("roadmap: reserve %d: %w", size, err)
	}
	next, err := matrix.NewSuccessor(size)
	if err != nil {
		return fmt.Errorf("roadmap: reserve %d: %w", size, err)
	}
	if m.dist != nil {
		if err = dist.SetLeading(m.dist); err != nil {
			return fmt.Errorf("roadmap: reserve %d: %w", size, err)
		}
		if err = next.SetLeading(m.next); err != nil {
			return fmt.Errorf("roadmap: reserve %d: %w", size, err)
		}
	}
	m.dist, m.next = dist, next

	return nil
}

// Options returns the effective configuration.
func (m *Map) Options() Options { return m.opts }

// Len returns the number of registered locations.
func (m *Map) Len() int { return len(m.locations) }

// Capacity returns the maximum number of locations.
func (m *Map) Capacity() int { return m.opts.Capacity }

// Version returns a counter bumped by every successful AddLocation/AddRoad.
// Consumers compare it to detect a map changed after they read it.
func (m *Map) Version() uint64 { return m.version }

// Rejections returns the number of AddLocation/AddRoad calls that failed.
func (m *Map) Rejections() uint64 { return m.rejected }

// reject logs a refused registration, counts it and returns err unchanged.
func (m *Map) reject(what string, err error) error {
	m.rejected++
	log.Debugf("roadmap: rejected %s: %s", what, err)

	return err
}

// truncateName keeps at most MaxNameLength runes of name.
func (m *Map) truncateName(name string) string {
	if r := []rune(name); len(r) > m.opts.MaxNameLength {
		return string(r[:m.opts.MaxNameLength])
	}

	return name
}

// AddLocation registers a location and returns its index, which is the
// previous Len(). Names longer than MaxNameLength runes are truncated.
//
// Errors:
//   - ErrEmptyName for an empty name.
//   - ErrCapacityExceeded when Len() == Capacity(); the map is unchanged.
func (m *Map) AddLocation(name string, lat, lon float64) (int, error) {
	if name == "" {
		return -1, m.reject("location \"\"", ErrEmptyName)
	}
	idx := len(m.locations)
	if idx >= m.opts.Capacity {
		return -1, m.reject(fmt.Sprintf("location %q", name), fmt.Errorf("%w: capacity %d", ErrCapacityExceeded, m.opts.Capacity))
	}
	if err := m.reserve(idx + 1); err != nil {
		return -1, m.reject(fmt.Sprintf("location %q", name), err)
	}

	m.locations = append(m.locations, Location{
		Index:     idx,
		Name:      m.truncateName(name),
		Latitude:  lat,
		Longitude: lon,
	})
	m.version++

	return idx, nil
}

// checkIndex returns ErrInvalidIndex unless 0 <= i < Len().
func (m *Map) checkIndex(i int) error {
	if i < 0 || i >= len(m.locations) {
		return fmt.Errorf("%w: %d (have %d locations)", ErrInvalidIndex, i, len(m.locations))
	}

	return nil
}

// AddRoad registers an undirected road from-to with the given weight,
// overwriting any previous road between the same pair:
//
//	dist[from][to] = dist[to][from] = weight
//	next[from][to] = to, next[to][from] = from
//
// Errors (the map is left unchanged on any of them):
//   - ErrInvalidIndex if either index is not registered.
//   - ErrSelfLoop if from == to.
//   - ErrNegativeWeight / ErrWeightTooLarge for weights outside [0, MaxRoadWeight].
func (m *Map) AddRoad(from, to int, weight int64) error {
	if err := m.validateRoad(from, to, weight); err != nil {
		return m.reject(fmt.Sprintf("road %d-%d", from, to), err)
	}

	// Indices are validated against a table of order >= Len(); Set cannot fail.
	_ = m.dist.Set(from, to, weight)
	_ = m.dist.Set(to, from, weight)
	_ = m.next.Set(from, to, int64(to))
	_ = m.next.Set(to, from, int64(from))
	m.version++

	return nil
}

// validateRoad reports why a road cannot be registered, or nil.
func (m *Map) validateRoad(from, to int, weight int64) error {
	if err := m.checkIndex(from); err != nil {
		return err
	}
	if err := m.checkIndex(to); err != nil {
		return err
	}
	if from == to {
		return fmt.Errorf("%w: %d", ErrSelfLoop, from)
	}
	if weight < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeWeight, weight)
	}
	if weight > m.opts.MaxRoadWeight {
		return fmt.Errorf("%w: %d > %d", ErrWeightTooLarge, weight, m.opts.MaxRoadWeight)
	}

	return nil
}

// FindByName returns the index of the first registered location whose name
// equals name case-insensitively. The lookup name is truncated the same way
// registered names are.
//
// Errors:
//   - ErrNotFound if no location matches.
func (m *Map) FindByName(name string) (int, error) {
	name = m.truncateName(name)
	idx := slices.IndexFunc(m.locations, func(l Location) bool {
		return strings.EqualFold(l.Name, name)
	})
	if idx < 0 {
		return -1, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	return idx, nil
}

// Location returns the location at index i.
func (m *Map) Location(i int) (Location, error) {
	if err := m.checkIndex(i); err != nil {
		return Location{}, err
	}

	return m.locations[i], nil
}

// Locations returns a copy of all locations in index order.
func (m *Map) Locations() []Location {
	return slices.Clone(m.locations)
}

// Names returns the location names in index order.
func (m *Map) Names() []string {
	names := make([]string, len(m.locations))
	for i, l := range m.locations {
		names[i] = l.Name
	}

	return names
}

// Road returns the direct road weight between i and j; ok is false when no
// road exists (the diagonal counts as no road).
func (m *Map) Road(i, j int) (weight int64, ok bool, err error) {
	if err = m.checkIndex(i); err != nil {
		return 0, false, err
	}
	if err = m.checkIndex(j); err != nil {
		return 0, false, err
	}
	if i == j {
		return 0, false, nil
	}
	weight, _ = m.dist.At(i, j)
	if weight == matrix.Inf {
		return 0, false, nil
	}

	return weight, true, nil
}

// Roads lists every road once with From < To, ordered by (From, To).
func (m *Map) Roads() []Road {
	var (
		n     = len(m.locations)
		roads []Road
		i, j  int
		w     int64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w, _ = m.dist.At(i, j)
			if w != matrix.Inf {
				roads = append(roads, Road{From: i, To: j, Weight: w})
			}
		}
	}

	return roads
}

// Direct returns independent Len()×Len() copies of the direct-road distance
// and successor tables, the input of an all-pairs computation.
//
// Errors:
//   - matrix.ErrInvalidDimensions (wrapped) when the map has no locations.
func (m *Map) Direct() (dist, next *matrix.Dense, err error) {
	n := len(m.locations)
	if dist, err = m.dist.Leading(n); err != nil {
		return nil, nil, fmt.Errorf("roadmap: direct tables: %w", err)
	}
	if next, err = m.next.Leading(n); err != nil {
		return nil, nil, fmt.Errorf("roadmap: direct tables: %w", err)
	}

	return dist, next, nil
}
