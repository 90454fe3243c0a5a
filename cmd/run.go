package cmd

import (
	"log/slog"
	"os"

	"github.com/routelab/dvsim/core"
	"github.com/routelab/dvsim/state"
	"github.com/spf13/cobra"
)

var logPath string

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation",
	Long: `Reads a scenario (routers, links, queued updates) and runs the Distance
Vector algorithm to convergence, printing tables to stdout along the way.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if ok, _ := cmd.Flags().GetBool("verbose"); ok {
			level = slog.LevelDebug
		}
		return core.Start(core.Options{
			ScenarioPath: scenarioPath,
			Yaml:         yamlScenario,
			LogPath:      logPath,
			LogLevel:     level,
		}, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("verbose", "v", false, "Verbose output")
	runCmd.Flags().StringVarP(&logPath, "log", "l", "", "also write logs to this file")
	runCmd.Flags().BoolVarP(&state.DBG_log_rounds, "lrounds", "r", false, "Log per-round change counts")
}
