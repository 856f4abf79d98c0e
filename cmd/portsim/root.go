package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "portsim",
	Short: "Portsim runs discrete-tick simulations of a maritime port.",
	Long: `Portsim runs discrete-tick simulations of a maritime port. It ` +
		`loads a port snapshot, advances the simulation minute by minute, ` +
		`and reports what the statistics evaluators observed.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
