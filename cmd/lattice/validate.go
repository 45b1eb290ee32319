package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lattice-engine/lattice/internal/cli"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <input_file>",
	Short: "Check a model file for structural problems",
	Long: `Parses the model file and reports unknown destination states and actions
whose outcome probabilities do not sum to 1.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.RunValidate(os.Stdout, args[0]); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
