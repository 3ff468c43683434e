// SPDX-License-Identifier: MIT

// Package dataset reads road maps from YAML files:
//
//	capacity: 100            # optional, roadmap.DefaultCapacity when omitted
//	locations:
//	  - {name: Sao_Paulo, lat: -23.5505, lon: -46.6333}
//	roads:
//	  - {from: Sao_Paulo, to: Rio_de_Janeiro, distance: 430}
//
// Road endpoints are location names, resolved case-insensitively in
// registration order. A built-in sample map is available through Default.
package dataset

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/ghodss/yaml"

	"github.com/katalvlaran/lvroute/roadmap"
)

var (
	// ErrEmptyDataset indicates a dataset without locations.
	ErrEmptyDataset = errors.New("dataset: no locations")

	// ErrUnknownLocation indicates a road endpoint that names no location.
	ErrUnknownLocation = errors.New("dataset: road references unknown location")
)

//go:embed default.yaml
var defaultYAML []byte

// LocationSpec is one entry of the locations list.
type LocationSpec struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// RoadSpec is one entry of the roads list.
type RoadSpec struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Distance int64  `json:"distance"`
}

// File is the decoded form of a dataset file.
type File struct {
	Capacity      int            `json:"capacity,omitempty"`
	MaxRoadWeight int64          `json:"maxRoadWeight,omitempty"`
	Locations     []LocationSpec `json:"locations"`
	Roads         []RoadSpec     `json:"roads"`
}

// Parse decodes a YAML (or JSON) dataset.
func Parse(data []byte) (*File, error) {
	f := new(File)
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("dataset: parse: %w", err)
	}
	if len(f.Locations) == 0 {
		return nil, ErrEmptyDataset
	}

	return f, nil
}

// Load reads and decodes the dataset file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}

	return Parse(data)
}

// Default returns the built-in sample dataset.
func Default() *File {
	f, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("dataset: built-in sample is invalid: %s", err))
	}

	return f
}

// Build registers the dataset's locations and roads on a new map.
//
// Errors:
//   - roadmap.ErrBadConfig for an invalid capacity or weight limit.
//   - roadmap.ErrCapacityExceeded when there are more locations than capacity.
//   - ErrUnknownLocation for a road endpoint that names no location.
//   - any roadmap.Map.AddRoad error, wrapped with the road's position.
func Build(f *File) (*roadmap.Map, error) {
	var opts []roadmap.Option
	if f.Capacity != 0 {
		opts = append(opts, roadmap.WithCapacity(f.Capacity))
	}
	if f.MaxRoadWeight != 0 {
		opts = append(opts, roadmap.WithMaxRoadWeight(f.MaxRoadWeight))
	}
	m, err := roadmap.NewMap(opts...)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}

	for i, l := range f.Locations {
		if _, err = m.AddLocation(l.Name, l.Lat, l.Lon); err != nil {
			return nil, fmt.Errorf("dataset: location #%d %q: %w", i+1, l.Name, err)
		}
	}

	var from, to int
	for i, r := range f.Roads {
		if from, err = m.FindByName(r.From); err != nil {
			return nil, fmt.Errorf("dataset: road #%d: %w: %q", i+1, ErrUnknownLocation, r.From)
		}
		if to, err = m.FindByName(r.To); err != nil {
			return nil, fmt.Errorf("dataset: road #%d: %w: %q", i+1, ErrUnknownLocation, r.To)
		}
		if err = m.AddRoad(from, to, r.Distance); err != nil {
			return nil, fmt.Errorf("dataset: road #%d %s-%s: %w", i+1, r.From, r.To, err)
		}
	}

	return m, nil
}
