package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	scenarioPath string
	yamlScenario bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dvsim",
	Short: "Distance Vector routing simulator",
	Long: `dvsim simulates the Distance Vector routing algorithm over a static topology.
It converges the network, applies a batch of link updates, re-converges, and
prints the per-round distance tables along with the final routing tables.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&scenarioPath, "file", "f", "", "read the scenario from a file instead of stdin")
	rootCmd.PersistentFlags().BoolVarP(&yamlScenario, "yaml", "y", false, "parse the scenario as YAML")
}
