package cmd

import (
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/survey-sim/survey-sim/sched"
	"github.com/survey-sim/survey-sim/sched/ddf"
	"github.com/survey-sim/survey-sim/sched/skyarea"
)

// fileEnd tags the output filename with the configuration version.
const fileEnd = "v2.99_"

const nside = 32

// nightPatterns holds the NEO hunt on/off night presets selected by
// --neo-night-pattern.
var nightPatterns = map[int][]bool{
	1: {true},
	2: {true, false},
	3: {true, false, false},
	4: {true, false, false, false},
	// 4 on, 4 off
	5: {true, true, true, true, false, false, false, false},
	// 3 on 4 off
	6: {true, true, true, false, false, false, false},
	7: {true, true, false, false, false, false},
}

// reversePattern flips an on/off night pattern.
func reversePattern(pattern []bool) []bool {
	out := make([]bool, len(pattern))
	for i, on := range pattern {
		out[i] = !on
	}
	return out
}

// asSurveys widens a concrete survey slice into a scheduler tier.
func asSurveys[S sched.Survey](in []S) []sched.Survey {
	out := make([]sched.Survey, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}

// composeAndRun is the shared body of the baseline and euclid commands:
// derive the footprint products from the sky maps, assemble every survey
// tier, and hand the result to the driver.
func composeAndRun(name string, maps map[string][]float64, labels []string) error {
	start := time.Now()

	neoPattern, ok := nightPatterns[neoNightPattern]
	if !ok {
		logrus.Fatalf("Unknown NEO night pattern %d (want 1-7)", neoNightPattern)
	}

	fileroot := dbroot
	if fileroot == "" {
		fileroot = name
	}
	fileroot += "_"

	wfdIndx := skyarea.WFDIndices(labels)
	wfdFootprint := skyarea.WFDFootprint(len(labels), wfdIndx)
	footprintMask := skyarea.FootprintMask(maps["r"])

	observatory := sched.NewModelObservatory(nside)
	conditions := observatory.ReturnConditions()

	footprints := sched.MakeRollingFootprints(maps, conditions.MJDStart, conditions.SunRAStart,
		rollingNslice, rollingStrength, nside, wfdIndx, 1, 4)

	gapsNightPattern := make([]bool, 1+nightsOff)
	gapsNightPattern[0] = true

	longGapsParams := sched.DefaultLongGapsParams()
	longGapsParams.Nside = nside
	longGapsParams.Footprints = footprints
	longGapsParams.NightPattern = gapsNightPattern
	longGapsParams.NightsDelayed = nightsDelayed
	longGaps, err := sched.GenLongGapsSurvey(longGapsParams)
	if err != nil {
		return err
	}

	// Set up the DDF surveys to dither
	const cameraDDFRotLimit = 75.0
	uDetailer := sched.FilterNexpDetailer{FilterName: "u", Nexp: 1}
	ditherDetailer := sched.DitherDetailer{PerNight: true, MaxDither: maxDither}
	details := []sched.Detailer{
		sched.CameraRotDetailer{MinRot: -cameraDDFRotLimit, MaxRot: cameraDDFRotLimit},
		ditherDetailer,
		uDetailer,
		sched.Rottep2RotspDesiredDetailer{},
	}
	euclidDetailers := []sched.Detailer{
		sched.CameraRotDetailer{MinRot: -cameraDDFRotLimit, MaxRot: cameraDDFRotLimit},
		sched.EuclidDitherDetailer{},
		uDetailer,
		sched.Rottep2RotspDesiredDetailer{},
	}

	ddfParams := ddf.DefaultParams()
	ddfParams.MJDStart = conditions.MJDStart
	ddfParams.SunRAStart = conditions.SunRAStart
	ddfParams.SurveyLengthDays = surveyLength
	ddfParams.SeasonFrac = ddfSeasonFrac
	ddfs := sched.DDFSurveys(details, ddfParams, euclidDetailers)

	greedyParams := sched.DefaultGreedyParams()
	greedyParams.Nside = nside
	greedyParams.Nexp = nexp
	greedyParams.Footprints = footprints
	greedy := sched.GenGreedySurveys(greedyParams)

	neoParams := sched.DefaultTwilightNEOParams()
	neoParams.Nside = nside
	neoParams.NightPattern = neoPattern
	neoParams.Filters = neoFilters
	neoParams.NRepeat = neoRepeat
	neoParams.FootprintMask = footprintMask
	neo := sched.GenerateTwilightNEO(neoParams)

	blobParams := sched.DefaultBlobParams()
	blobParams.Nside = nside
	blobParams.Nexp = nexp
	blobParams.Footprints = footprints
	blobParams.MJDStart = conditions.MJDStart
	blobParams.GoodSeeingWeight = gsw
	blobs, err := sched.GenerateBlobs(blobParams)
	if err != nil {
		return err
	}

	twiParams := sched.DefaultTwiBlobParams()
	twiParams.Nside = nside
	twiParams.Nexp = nexp
	twiParams.Footprints = footprints
	twiParams.WFDFootprint = wfdFootprint
	twiParams.NightPattern = reversePattern(neoPattern)
	twiBlobs, err := sched.GenerateTwiBlobs(twiParams)
	if err != nil {
		return err
	}

	tiers := [][]sched.Survey{
		asSurveys(ddfs),
		asSurveys(longGaps),
		asSurveys(blobs),
		asSurveys(twiBlobs),
		asSurveys(neo),
		asSurveys(greedy),
	}

	manifestPath, err := sched.RunSched(tiers, sched.RunParams{
		SurveyLength: surveyLength,
		Nside:        nside,
		FileRoot:     filepath.Join(outDir, fileroot+fileEnd),
		Verbose:      verbose,
		ExtraInfo:    sched.ExtraInfo(),
		IllumLimit:   moonIllumLimit,
		DriverPath:   driverPath,
	})
	if err != nil {
		return err
	}

	logrus.Infof("Assembled %s configuration in %v: %s", name, time.Since(start), manifestPath)
	return nil
}
