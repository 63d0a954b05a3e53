package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/survey-sim/survey-sim/sched/skyarea"
)

// baselineCmd assembles the standard ten-year baseline survey configuration.
var baselineCmd = &cobra.Command{
	Use:   "baseline",
	Short: "Assemble the baseline survey configuration",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		sky := skyarea.NewGenerator(nside, 4, 6)
		maps, labels := sky.ReturnMaps()

		if err := composeAndRun("baseline", maps, labels); err != nil {
			logrus.Fatalf("baseline: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(baselineCmd)
}
