package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/harborlab/portsim/cargo"
	"github.com/harborlab/portsim/codec"
	"github.com/harborlab/portsim/port"
	"github.com/harborlab/portsim/recording"
	"github.com/harborlab/portsim/ship"
	"github.com/harborlab/portsim/stats"
)

var (
	snapshotPath string
	minutes      int
	outPath      string
	recordPath   string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Load a snapshot, advance the simulation, and report the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSimulation()
	},
}

func init() {
	runCmd.Flags().StringVar(&snapshotPath, "snapshot",
		getEnv("PORTSIM_SNAPSHOT", ""),
		"path of the port snapshot file to load")
	runCmd.Flags().IntVar(&minutes, "minutes",
		getEnvInt("PORTSIM_MINUTES", 60),
		"number of minutes to simulate")
	runCmd.Flags().StringVar(&outPath, "out", "",
		"path to write the resulting snapshot to, - for stdout")
	runCmd.Flags().StringVar(&recordPath, "record", "",
		"record movements and tick counters into <path>.sqlite3")

	rootCmd.AddCommand(runCmd)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("%s must be a number, got %q", key, value)
	}

	return parsed
}

func runSimulation() error {
	if snapshotPath == "" {
		return fmt.Errorf("a snapshot file is required, use --snapshot")
	}
	if minutes < 0 {
		return fmt.Errorf("minutes must be non-negative, got %d", minutes)
	}

	file, err := os.Open(snapshotPath)
	if err != nil {
		return err
	}
	defer file.Close()

	ships := ship.NewRegistry()
	cargoes := cargo.NewRegistry()

	p, err := codec.DecodePort(file, ships, cargoes)
	if err != nil {
		return fmt.Errorf("cannot load snapshot %s: %w", snapshotPath, err)
	}

	if recordPath != "" {
		recorder := recording.New(recordPath)
		p.AcceptHook(recording.NewMovementLogger(recorder))
		defer recorder.Flush()
	}

	for i := 0; i < minutes; i++ {
		p.AdvanceOneMinute()
	}

	printSummary(p)

	if outPath != "" {
		return writeSnapshot(p, ships, cargoes)
	}

	return nil
}

func printSummary(p *port.Port) {
	fmt.Printf("Port %s at minute %d\n", p.Name(), p.Time())
	fmt.Printf("  quays occupied:    %d/%d\n", p.OccupiedQuays(), len(p.Quays()))
	fmt.Printf("  ships waiting:     %d\n", p.ShipQueue().Len())
	fmt.Printf("  cargo stored:      %d\n", len(p.Cargo()))
	fmt.Printf("  pending movements: %d\n", len(p.PendingMovements()))

	for _, evaluator := range p.Evaluators() {
		printEvaluator(evaluator)
	}
}

func printEvaluator(evaluator stats.StatisticsEvaluator) {
	switch e := evaluator.(type) {
	case *stats.ShipThroughputEvaluator:
		fmt.Printf("  ships per hour:    %d\n", e.ThroughputPerHour())

	case *stats.QuayOccupancyEvaluator:
		fmt.Printf("  quays in use:      %d\n", e.QuaysOccupied())

	case *stats.CargoDecompositionEvaluator:
		fmt.Printf("  cargo seen:        %v\n", e.CargoDistribution())

	case *stats.ShipFlagEvaluator:
		fmt.Printf("  flags seen:        %v\n", e.FlagDistribution())
	}
}

func writeSnapshot(
	p *port.Port,
	ships *ship.Registry,
	cargoes *cargo.Registry,
) error {
	if outPath == "-" {
		return codec.EncodePort(os.Stdout, p, ships, cargoes)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	return codec.EncodePort(out, p, ships, cargoes)
}
