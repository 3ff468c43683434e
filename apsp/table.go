// SPDX-License-Identifier: MIT

package apsp

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
)

// InfSymbol renders an unreachable cell.
const InfSymbol = "∞"

// Cell is one entry of a distance table.
type Cell struct {
	Value     int64 // shortest distance, meaningful only when Reachable
	Reachable bool
}

// String renders the distance or InfSymbol.
func (c Cell) String() string {
	if !c.Reachable {
		return InfSymbol
	}

	return strconv.FormatInt(c.Value, 10)
}

// Table is a snapshot of all shortest distances; Cells[i][j] is the
// distance from Names[i] to Names[j].
type Table struct {
	Names []string
	Cells [][]Cell
}

// String renders the table as a grid with names as row and column labels.
func (t Table) String() string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	// Header: empty corner, then column labels.
	for _, name := range t.Names {
		fmt.Fprint(tw, "\t", name)
	}
	fmt.Fprintln(tw)

	for i, row := range t.Cells {
		fmt.Fprint(tw, t.Names[i])
		for _, c := range row {
			fmt.Fprint(tw, "\t", c)
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()

	return sb.String()
}
