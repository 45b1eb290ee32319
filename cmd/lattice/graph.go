package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lattice-engine/lattice/internal/cli"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <input_file>",
	Short: "Export the MDP as a Mermaid diagram",
	Long: `Outputs a Mermaid diagram (graph TD) of the states and transitions.
With --discount, the computed policy is overlaid: each state's chosen
action is drawn with a thick arrow.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		discount, _ := cmd.Flags().GetString("discount")
		iterations, _ := cmd.Flags().GetInt("iterations")

		err := cli.RunGraph(os.Stdout, args[0], cli.GraphOptions{
			Discount:   discount,
			Iterations: iterations,
		})
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().String("discount", "", "Overlay the policy computed at this discount factor")
	graphCmd.Flags().IntP("iterations", "n", 0, "Horizon for the policy overlay (default 20)")
}
