package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/survey-sim/survey-sim/sched/plotmap"
	"github.com/survey-sim/survey-sim/sched/skyarea"
)

var (
	footprintFilter string // Filter map to render
	footprintOut    string // Output image path
	footprintEuclid bool   // Use the Euclid overlap footprint
)

// footprintCmd renders one filter's footprint map to an image for a quick
// visual check before launching a run.
var footprintCmd = &cobra.Command{
	Use:   "footprint",
	Short: "Render a filter's footprint map to an image",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		var maps map[string][]float64
		gen := skyarea.NewGenerator(nside, 4, 6)
		if footprintEuclid {
			var contour []skyarea.Point
			if euclidContour != "" {
				var err error
				contour, err = skyarea.LoadContour(euclidContour)
				if err != nil {
					logrus.Fatalf("euclid contour: %v", err)
				}
			}
			maps, _ = skyarea.NewEuclidOverlapFootprint(gen, contour).ReturnMaps()
		} else {
			maps, _ = gen.ReturnMaps()
		}

		values, ok := maps[footprintFilter]
		if !ok {
			logrus.Fatalf("Unknown filter %q (want one of ugrizy)", footprintFilter)
		}

		ra, dec := skyarea.PixRADec(nside)
		if err := plotmap.SavePNG(ra, dec, values, "Footprint "+footprintFilter, footprintOut); err != nil {
			logrus.Fatalf("footprint plot: %v", err)
		}
		logrus.Infof("Wrote footprint map to %s", footprintOut)
	},
}

func init() {
	footprintCmd.Flags().StringVar(&footprintFilter, "filter", "r", "Filter map to render")
	footprintCmd.Flags().StringVar(&footprintOut, "out", "footprint.png", "Output image path")
	footprintCmd.Flags().BoolVar(&footprintEuclid, "euclid", false, "Fold in the Euclid overlap footprint")

	rootCmd.AddCommand(footprintCmd)
}
