// SPDX-License-Identifier: MIT

// Package dot renders a road map as a Graphviz DOT graph, optionally
// highlighting one route on it.
package dot

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/lvroute/apsp"
	"github.com/katalvlaran/lvroute/roadmap"
)

// ErrNilMap indicates that Render was called without a map.
var ErrNilMap = errors.New("dot: road map is nil")

const graphName = "lvroute"

const (
	colorDefaultNode = "seashell2"
	colorRouteNode   = "steelblue2"
	colorEndpoint    = "seagreen2"
	colorDefaultEdge = "black"
	colorRouteEdge   = "steelblue2"
)

// nodeID returns the DOT identifier of location i.
func nodeID(i int) string { return "n" + strconv.Itoa(i) }

// Render returns m as an undirected DOT graph. Nodes are labelled with the
// location name, edges with the road weight. When route is non-nil its
// locations and roads are highlighted.
func Render(m *roadmap.Map, route *apsp.Route) (string, error) {
	if m == nil {
		return "", ErrNilMap
	}

	onRoute := make(map[int]bool)
	routeEdge := make(map[[2]int]bool)
	if route != nil {
		for h, idx := range route.Indices {
			onRoute[idx] = true
			if h > 0 {
				routeEdge[edgeKey(route.Indices[h-1], idx)] = true
			}
		}
	}

	graph := gographviz.NewGraph()
	if err := graph.SetName(graphName); err != nil {
		return "", fmt.Errorf("dot: %w", err)
	}
	if err := graph.SetDir(false); err != nil {
		return "", fmt.Errorf("dot: %w", err)
	}
	for field, value := range map[string]string{
		"rankdir": "LR",
		"nodesep": "0.5",
		"center":  "true",
	} {
		if err := graph.AddAttr(graphName, field, value); err != nil {
			return "", fmt.Errorf("dot: graph attribute %s: %w", field, err)
		}
	}

	for _, loc := range m.Locations() {
		if err := graph.AddNode(graphName, nodeID(loc.Index), map[string]string{
			"label":     strconv.Quote(loc.Name),
			"tooltip":   strconv.Quote(fmt.Sprintf("%.4f, %.4f", loc.Latitude, loc.Longitude)),
			"fillcolor": nodeColor(loc.Index, route, onRoute),
			"style":     "filled",
			"shape":     "ellipse",
		}); err != nil {
			return "", fmt.Errorf("dot: node %q: %w", loc.Name, err)
		}
	}

	for _, r := range m.Roads() {
		attrs := map[string]string{
			"label": strconv.Quote(strconv.FormatInt(r.Weight, 10)),
			"color": colorDefaultEdge,
		}
		if routeEdge[edgeKey(r.From, r.To)] {
			attrs["color"] = colorRouteEdge
			attrs["penwidth"] = "3"
		}
		if err := graph.AddEdge(nodeID(r.From), nodeID(r.To), false, attrs); err != nil {
			return "", fmt.Errorf("dot: road %d-%d: %w", r.From, r.To, err)
		}
	}

	return graph.String(), nil
}

// edgeKey normalizes an undirected pair.
func edgeKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}

	return [2]int{a, b}
}

func nodeColor(idx int, route *apsp.Route, onRoute map[int]bool) string {
	switch {
	case route == nil || !onRoute[idx]:
		return colorDefaultNode
	case idx == route.Indices[0] || idx == route.Indices[len(route.Indices)-1]:
		return colorEndpoint
	default:
		return colorRouteNode
	}
}
