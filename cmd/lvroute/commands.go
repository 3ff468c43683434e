package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/apsp"
	"github.com/katalvlaran/lvroute/dot"
)

func newRouteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "route FROM TO",
		Short: "Print the shortest route between two locations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			route, err := a.eng.QueryByName(args[0], args[1])
			if err != nil {
				return err
			}
			printRoute(cmd.OutOrStdout(), route)

			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all locations",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printLocations(cmd.OutOrStdout(), a)
		},
	}
}

func newTableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the shortest-distance table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printTable(cmd.OutOrStdout(), a.eng)
		},
	}
}

func newDotCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dot [FROM TO]",
		Short: "Print the map as a Graphviz graph, optionally highlighting a route",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 args, received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var route *apsp.Route
			if len(args) == 2 {
				r, err := a.eng.QueryByName(args[0], args[1])
				if err != nil {
					return err
				}
				route = &r
			}
			out, err := dot.Render(a.m, route)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)

			return err
		},
	}
}

func printRoute(w io.Writer, route apsp.Route) {
	fmt.Fprintln(w, "=== ROUTE ===")
	fmt.Fprintf(w, "From: %s\n", route.Names[0])
	fmt.Fprintf(w, "To: %s\n", route.Names[len(route.Names)-1])
	fmt.Fprintf(w, "Total distance: %d\n\n", route.Distance)
	fmt.Fprintln(w, "Steps:")
	for i, name := range route.Names {
		fmt.Fprintf(w, "%d. %s\n", i+1, name)
	}
	fmt.Fprintln(w)
}

func printLocations(w io.Writer, a *app) {
	fmt.Fprintln(w, "=== LOCATIONS ===")
	for _, loc := range a.m.Locations() {
		fmt.Fprintf(w, "%d. %s (%.2f, %.2f)\n", loc.Index+1, loc.Name, loc.Latitude, loc.Longitude)
	}
	fmt.Fprintln(w)
}

func printTable(w io.Writer, eng *apsp.Engine) error {
	tbl, err := eng.Table()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "=== DISTANCE TABLE ===")
	fmt.Fprintln(w, tbl.String())

	return nil
}
