package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/transit-sim/transit-sim/sim"
)

var (
	// CLI flags for the simulation run
	scenarioPath string // Path to the YAML scenario file
	ticks        int64  // Simulation horizon override (0 = use the scenario's)
	logLevel     string // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "transit-sim",
	Short: "Discrete-event simulator for public-transport networks",
}

// runCmd executes a scenario using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a transit simulation scenario",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if scenarioPath == "" {
			logrus.Fatalf("Scenario file not provided. Exiting simulation.")
		}
		scenario, err := sim.LoadScenario(scenarioPath)
		if err != nil {
			logrus.Fatalf("Unable to load scenario: %v", err)
		}

		horizon := scenario.Ticks
		if ticks > 0 {
			horizon = ticks
		}
		if horizon <= 0 {
			logrus.Fatalf("Simulation horizon must be positive, got %d", horizon)
		}

		s, err := scenario.Build()
		if err != nil {
			logrus.Fatalf("Unable to build scenario: %v", err)
		}

		logrus.Infof("Starting simulation with %d cities, %d buses, horizon=%d ticks",
			s.Network.NumCities(), len(s.Buses), horizon)

		for _, ev := range s.Execute(horizon) {
			fmt.Printf("At %d, %d people got off and %d people got on at %s\n",
				ev.Tick, ev.Alighted, ev.Boarded, s.Network.CityName(ev.City))
		}
		s.Metrics.Print()

		logrus.Info("Simulation complete.")
	},
}

func init() {
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to the YAML scenario file")
	runCmd.Flags().Int64Var(&ticks, "ticks", 0, "Number of ticks to simulate (overrides the scenario horizon)")
	runCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.AddCommand(runCmd)
}

// Execute runs the root command; called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
