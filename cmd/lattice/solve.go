package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lattice-engine/lattice/internal/cli"
	"github.com/lattice-engine/lattice/internal/logging"
	"github.com/lattice-engine/lattice/pkg/domain"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve <input_file> <discount_factor>",
	Short: "Compute optimal policies for a model file",
	Long: `Runs finite-horizon value iteration over the model file and prints one
line per iteration with each state's best action and expected value.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println("Please enter exactly two arguments:",
				"<input_file>",
				"<discount_factor>")
			os.Exit(1)
		}

		iterations, _ := cmd.Flags().GetInt("iterations")
		color, _ := cmd.Flags().GetBool("color")
		debug, _ := cmd.Flags().GetBool("debug")

		var logger *slog.Logger
		if debug {
			logger = logging.New(slog.LevelDebug)
		}

		err := cli.RunSolve(os.Stdout, args[0], args[1], cli.SolveOptions{
			Iterations: iterations,
			Color:      color,
			Logger:     logger,
		})
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().IntP("iterations", "n", domain.DefaultHorizon, "Number of iterations to compute")
	solveCmd.Flags().Bool("color", false, "Colorize chosen actions in the output")
	solveCmd.Flags().Bool("debug", false, "Enable debug logging on stderr")

	// Make 'solve' the default so 'lattice <input_file> <discount_factor>' works.
	rootCmd.Run = solveCmd.Run
	rootCmd.Args = cobra.ArbitraryArgs
}
