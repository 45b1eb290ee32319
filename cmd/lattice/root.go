package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lattice",
	Short: "Lattice is a value-iteration policy engine for finite MDPs",
	Long: `Lattice computes optimal policies for finite Markov Decision Processes
described in a flat text file, one state per line:

    state_name reward (action1 dest1 prob1) (action2 dest2 prob2) ...`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
