package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/survey-sim/survey-sim/sched/skyarea"
)

// euclidCmd assembles the baseline variant with the Euclid wide-survey
// overlap folded into the footprint.
var euclidCmd = &cobra.Command{
	Use:   "euclid",
	Short: "Assemble the survey configuration with Euclid overlap footprint",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		var contour []skyarea.Point
		if euclidContour != "" {
			var err error
			contour, err = skyarea.LoadContour(euclidContour)
			if err != nil {
				logrus.Fatalf("euclid contour: %v", err)
			}
		}

		sky := skyarea.NewEuclidOverlapFootprint(skyarea.NewGenerator(nside, 4, 6), contour)
		maps, labels := sky.ReturnMaps()

		if err := composeAndRun("euclid", maps, labels); err != nil {
			logrus.Fatalf("euclid: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(euclidCmd)
}
