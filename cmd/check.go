package cmd

import (
	"fmt"

	"github.com/routelab/dvsim/core"
	"github.com/spf13/cobra"
)

// checkCmd validates a scenario without running it
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a scenario",
	Long:  `Parses and validates a scenario, then prints a short summary without running the simulation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		nodes, topo, updates, err := core.LoadScenario(scenarioPath, yamlScenario)
		if err != nil {
			return err
		}
		fmt.Printf("scenario ok: %d routers, %d links, %d queued updates\n", len(nodes), topo.EdgeCount(), len(updates))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
