// Command lvroute answers shortest-route queries over a small road map.
//
// Without a subcommand it starts an interactive menu. The map is read from
// --data (YAML, see package dataset) or defaults to a built-in sample.
package main

import (
	"fmt"
	"os"

	"github.com/safing/portbase/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/apsp"
	"github.com/katalvlaran/lvroute/dataset"
	"github.com/katalvlaran/lvroute/roadmap"
)

// app holds the loaded map and its computed engine for all subcommands.
type app struct {
	dataPath string
	logLevel string

	m   *roadmap.Map
	eng *apsp.Engine
}

func main() {
	if err := newRootCmd(new(app)).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "lvroute",
		Short: "Shortest routes between named locations",
		Long: "lvroute computes all shortest routes of a road map once, then answers\n" +
			"route, listing and distance-table queries. Without a subcommand it\n" +
			"starts an interactive menu.",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { log.Shutdown() },
		RunE: func(cmd *cobra.Command, _ []string) error {
			return newShell(a, cmd.InOrStdin(), cmd.OutOrStdout()).run()
		},
	}
	root.PersistentFlags().StringVarP(&a.dataPath, "data", "d", "", "road map dataset (YAML); built-in sample when empty")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warning", "log level: trace, debug, info, warning, error, critical")

	root.AddCommand(
		newRouteCmd(a),
		newListCmd(a),
		newTableCmd(a),
		newDotCmd(a),
	)

	return root
}

// setup starts logging, loads the dataset and runs the shortest-path pass.
func (a *app) setup(*cobra.Command, []string) error {
	level := log.ParseLevel(a.logLevel)
	if level == 0 {
		return fmt.Errorf("invalid log level %q", a.logLevel)
	}
	if err := log.Start(); err != nil {
		return fmt.Errorf("failed to start logging: %w", err)
	}
	log.SetLogLevel(level)

	return a.load()
}

// load builds the map and computes the engine without touching logging.
func (a *app) load() error {
	f := dataset.Default()
	if a.dataPath != "" {
		var err error
		if f, err = dataset.Load(a.dataPath); err != nil {
			return err
		}
	}

	m, err := dataset.Build(f)
	if err != nil {
		return err
	}
	eng, err := apsp.New(m)
	if err != nil {
		return err
	}
	log.Infof("lvroute: computing routes for %d locations", m.Len())
	if err = eng.Compute(); err != nil {
		return err
	}

	a.m, a.eng = m, eng

	return nil
}
