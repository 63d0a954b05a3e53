package sched

import (
	"fmt"

	"github.com/survey-sim/survey-sim/sched/skyarea"
)

// GenerateTwiBlobs builds the evening/morning twilight pair blobs. They run
// on the nights the NEO hunt is off, so NightPattern is usually the reverse
// of the NEO night pattern.
func GenerateTwiBlobs(p BlobParams) ([]*BlobSurvey, error) {
	timesNeeded := [2]float64{p.PairTime, p.PairTime * 2}

	surveys := make([]*BlobSurvey, 0, len(p.Filter1s))
	for i, filtername := range p.Filter1s {
		filtername2 := p.Filter2s[i]
		paired := filtername2 != ""

		detailerList := []Detailer{
			CameraRotDetailer{MinRot: p.CameraRotLimits[0], MaxRot: p.CameraRotLimits[1]},
			Rottep2RotspDesiredDetailer{},
			CloseAltDetailer{},
			FlushForSchedDetailer{},
		}

		var bfs []BasisWeight
		if paired {
			bfs = append(bfs, BasisWeight{M5DiffBasisFunction{FilterName: filtername, Nside: p.Nside}, p.M5Weight / 2})
			bfs = append(bfs, BasisWeight{M5DiffBasisFunction{FilterName: filtername2, Nside: p.Nside}, p.M5Weight / 2})
			bfs = append(bfs, BasisWeight{footprintBF(filtername, p.Footprints, p.Nside), p.FootprintWeight / 2})
			bfs = append(bfs, BasisWeight{footprintBF(filtername2, p.Footprints, p.Nside), p.FootprintWeight / 2})
		} else {
			bfs = append(bfs, BasisWeight{M5DiffBasisFunction{FilterName: filtername, Nside: p.Nside}, p.M5Weight})
			bfs = append(bfs, BasisWeight{footprintBF(filtername, p.Footprints, p.Nside), p.FootprintWeight})
		}

		bfs = append(bfs, BasisWeight{SlewtimeBasisFunction{FilterName: filtername, Nside: p.Nside}, p.SlewtimeWeight})
		bfs = append(bfs, BasisWeight{StrictFilterBasisFunction{FilterName: filtername}, p.StayFilterWeight})
		bfs = append(bfs, BasisWeight{VisitRepeatBasisFunction{
			GapMin: 0, GapMax: 2 * 60, Nside: p.Nside, NPairs: 20,
		}, p.RepeatWeight})

		templates, err := p.templateBFs(filtername, filtername2)
		if err != nil {
			return nil, err
		}
		bfs = append(bfs, templates...)

		if p.RepeatNightWeight != nil {
			bfs = append(bfs, BasisWeight{AvoidLongGapsBasisFunction{
				Nside: p.Nside, MinGap: 0, MaxGap: 10.0 / 24, HALimit: 3.5,
				Footprint: p.WFDFootprint,
			}, *p.RepeatNightWeight})
		}

		// Make sure we respect scheduled observations
		bfs = append(bfs, BasisWeight{TimeToScheduledBasisFunction{TimeNeeded: p.ScheduledRespect}, 0})
		// Masks, give these 0 weight
		bfs = append(bfs, BasisWeight{ZenithShadowMaskBasisFunction{
			Nside: p.Nside, ShadowMinutes: p.ShadowMinutes, MaxAlt: p.MaxAlt,
			PenaltyNaN: true, Site: "LSST",
		}, 0})
		bfs = append(bfs, BasisWeight{MoonAvoidanceBasisFunction{Nside: p.Nside, MoonDistance: p.MoonDistance}, 0})
		bfs = append(bfs, BasisWeight{FilterLoadedBasisFunction{FilterNames: pairFilters(filtername, filtername2)}, 0})

		timeNeeded := timesNeeded[0]
		if paired {
			timeNeeded = timesNeeded[1]
		}
		bfs = append(bfs, BasisWeight{TimeToTwilightBasisFunction{TimeNeeded: timeNeeded, AltLimit: 12}, 0})
		bfs = append(bfs, BasisWeight{PlanetMaskBasisFunction{Nside: p.Nside}, 0})

		// Turn off twilight blobs on the nights the NEO hunt runs.
		bfs = append(bfs, BasisWeight{NightModuloBasisFunction{Pattern: p.NightPattern}, 0})

		var surveyName, surveyNote string
		if paired {
			surveyName = fmt.Sprintf("Twilight pair blob %s_%s", filtername, filtername2)
			surveyNote = fmt.Sprintf("blob_twi, %s%s", filtername, filtername2)
			detailerList = append(detailerList, TakeAsPairsDetailer{FilterName: filtername2})
		} else {
			surveyName = fmt.Sprintf("Twilight pair blob %s", filtername)
			surveyNote = fmt.Sprintf("blob_twi, %s", filtername)
		}

		surveys = append(surveys, &BlobSurvey{
			SurveyName:    surveyName,
			SurveyNote:    surveyNote,
			FilterName1:   filtername,
			FilterName2:   filtername2,
			Basis:         bfs,
			Detailers:     detailerList,
			ExpTime:       p.ExpTime,
			Nexp:          p.Nexp,
			IdealPairTime: p.PairTime,
			IgnoreObs:     p.IgnoreObs,

			SlewApprox:         7.5,
			FilterChangeApprox: 140,
			ReadApprox:         2,
			MinPairTime:        10,
			SearchRadius:       30,
			AltMax:             85,
			AzRange:            90,
			FlushTime:          30,
			Nside:              p.Nside,
			Seed:               42,
			Dither:             true,
			TwilightScale:      false,
			InTwilight:         true,
		})
	}
	return surveys, nil
}

// GenerateTwilightNEO builds the near-sun twilight NEO hunt surveys over the
// ecliptic target band, one per filter rune.
func GenerateTwilightNEO(p TwilightNEOParams) []*BlobSurvey {
	const slewEstimate = 4.5

	footprint := skyarea.EclipticTarget(p.Nside, 40, 30, p.FootprintMask)
	constantFP := NewConstantFootprint()
	for _, r := range p.Filters {
		constantFP.SetFootprint(string(r), footprint)
	}

	surveys := make([]*BlobSurvey, 0, len(p.Filters))
	for _, r := range p.Filters {
		filtername := string(r)
		detailerList := []Detailer{
			CameraRotDetailer{MinRot: p.CameraRotLimits[0], MaxRot: p.CameraRotLimits[1]},
			CloseAltDetailer{},
			TwilightTripleDetailer{SlewEstimate: slewEstimate, NRepeat: p.NRepeat},
		}

		var bfs []BasisWeight
		bfs = append(bfs, BasisWeight{footprintBF(filtername, constantFP, p.Nside), p.FootprintWeight})
		bfs = append(bfs, BasisWeight{SlewtimeBasisFunction{FilterName: filtername, Nside: p.Nside}, p.SlewtimeWeight})
		bfs = append(bfs, BasisWeight{StrictFilterBasisFunction{FilterName: filtername}, p.StayFilterWeight})
		// Reward high airmass toward the sun, with an airmass cutoff.
		bfs = append(bfs, BasisWeight{NearSunTwilightBasisFunction{Nside: p.Nside, MaxAirmass: p.MaxAirmass}, 0})
		bfs = append(bfs, BasisWeight{ZenithShadowMaskBasisFunction{Nside: p.Nside, ShadowMinutes: 60, MaxAlt: 76}, 0})
		bfs = append(bfs, BasisWeight{MoonAvoidanceBasisFunction{Nside: p.Nside, MoonDistance: 30}, 0})
		bfs = append(bfs, BasisWeight{FilterLoadedBasisFunction{FilterNames: []string{filtername}}, 0})
		bfs = append(bfs, BasisWeight{PlanetMaskBasisFunction{Nside: p.Nside}, 0})
		bfs = append(bfs, BasisWeight{SolarElongationMaskBasisFunction{MinElong: 0, MaxElong: 60, Nside: p.Nside}, 0})
		bfs = append(bfs, BasisWeight{NightModuloBasisFunction{Pattern: p.NightPattern}, 0})
		// Do not attempt unless the sun is getting high.
		bfs = append(bfs, BasisWeight{SunAltHighLimitBasisFunction{AltLimit: p.SunAltLimit}, 0})

		surveys = append(surveys, &BlobSurvey{
			SurveyName:    fmt.Sprintf("Near Sun twilight survey %s", filtername),
			SurveyNote:    "twilight_neo",
			FilterName1:   filtername,
			Basis:         bfs,
			Detailers:     detailerList,
			ExpTime:       p.ExpTime,
			Nexp:          p.Nexp,
			IdealPairTime: p.IdealPairTime,
			IgnoreObs:     []string{"DD", "greedy", "blob"},

			Nside:         p.Nside,
			Seed:          42,
			Dither:        true,
			AzRange:       180,
			TwilightScale: false,
			AreaRequired:  p.AreaRequired,
		})
	}
	return surveys
}
