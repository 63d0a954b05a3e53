package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// CLI flags shared by the scheduler configuration commands
	verbose         bool    // Chatty driver output
	surveyLength    float64 // Total survey length (days)
	outDir          string  // Output directory for the manifest/database
	maxDither       float64 // Dither size for DDFs (degrees)
	moonIllumLimit  float64 // Moon illumination limit to unload u-band (percent)
	nexp            int     // Exposures per visit
	rollingNslice   int     // Number of declination slices in the rolling cadence
	rollingStrength float64 // Rolling cadence scale (0-1)
	dbroot          string  // Output filename root; empty = command name
	gsw             float64 // Good-seeing template weight
	ddfSeasonFrac   float64 // Fraction of each DDF season to schedule
	nightsOff       int     // Nights between long-gaps nights
	nightsDelayed   int     // Delay long-gaps activation (nights, -1 = none)
	neoNightPattern int     // NEO on/off night pattern preset (1-7)
	neoFilters      string  // Filters for the NEO twilight surveys
	neoRepeat       int     // Repeat visits per NEO pointing
	logLevel        string  // Log verbosity level
	driverPath      string  // External simulation driver executable
	euclidContour   string  // Euclid wide-survey contour file (RA/Dec columns)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "survey-sim",
	Short: "Assemble and launch telescope survey scheduler simulations",
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging applies the --log flag before any command work.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// init sets up the shared CLI flags
func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&verbose, "verbose", false, "Chatty driver output")
	pf.Float64Var(&surveyLength, "survey-length", 365.25*10, "Survey length (days)")
	pf.StringVar(&outDir, "out-dir", "", "Output directory")
	pf.Float64Var(&maxDither, "max-dither", 0.7, "Dither size for DDFs (deg)")
	pf.Float64Var(&moonIllumLimit, "moon-illum-limit", 40, "Illumination limit to remove u-band (percent)")
	pf.IntVar(&nexp, "nexp", 2, "Exposures per visit")
	pf.IntVar(&rollingNslice, "rolling-nslice", 2, "Number of rolling declination slices")
	pf.Float64Var(&rollingStrength, "rolling-strength", 0.9, "Rolling cadence scale")
	pf.StringVar(&dbroot, "dbroot", "", "Output filename root (default: command name)")
	pf.Float64Var(&gsw, "gsw", 3.0, "Good seeing weight")
	pf.Float64Var(&ddfSeasonFrac, "ddf-season-frac", 0.2, "Fraction of each DDF season to schedule")
	pf.IntVar(&nightsOff, "nights-off", 6, "Nights off between long-gaps nights")
	pf.IntVar(&nightsDelayed, "nights-delayed", -1, "Delay long-gaps activation (nights)")
	pf.IntVar(&neoNightPattern, "neo-night-pattern", 4, "NEO night pattern preset (1-7)")
	pf.StringVar(&neoFilters, "neo-filters", "riz", "Filters for NEO twilight surveys")
	pf.IntVar(&neoRepeat, "neo-repeat", 4, "Repeat visits per NEO pointing")
	pf.StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	pf.StringVar(&driverPath, "driver", "", "External simulation driver executable (empty = manifest only)")
	pf.StringVar(&euclidContour, "euclid-contour", "", "Euclid contour file (RA/Dec columns); empty = built-in outline")
}
