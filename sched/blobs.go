package sched

import "fmt"

// templateWeight returns the per-filter template weight; u-band gets its own
// higher weight since u visits are scarce.
func (p *BlobParams) templateWeight(filtername string) float64 {
	if filtername == "u" {
		return p.UTemplateWeight
	}
	return p.TemplateWeight
}

// GenerateBlobs builds the standard night-time pair-blob surveys, one per
// (filter1, filter2) combination. A paired blob carries two half-weight
// M5-difference, footprint and template terms, one per filter; an unpaired
// blob carries one full-weight term each.
func GenerateBlobs(p BlobParams) ([]*BlobSurvey, error) {
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
		} else {
			bfs = append(bfs, BasisWeight{M5DiffBasisFunction{FilterName: filtername, Nside: p.Nside}, p.M5Weight})
		}

		if paired {
			bfs = append(bfs, BasisWeight{footprintBF(filtername, p.Footprints, p.Nside), p.FootprintWeight / 2})
			bfs = append(bfs, BasisWeight{footprintBF(filtername2, p.Footprints, p.Nside), p.FootprintWeight / 2})
		} else {
			bfs = append(bfs, BasisWeight{footprintBF(filtername, p.Footprints, p.Nside), p.FootprintWeight})
		}

		bfs = append(bfs, BasisWeight{SlewtimeBasisFunction{FilterName: filtername, Nside: p.Nside}, p.SlewtimeWeight})
		bfs = append(bfs, BasisWeight{StrictFilterBasisFunction{FilterName: filtername}, p.StayFilterWeight})
		bfs = append(bfs, BasisWeight{VisitRepeatBasisFunction{
			GapMin: 0, GapMax: 3 * 60, Nside: p.Nside, NPairs: 20,
		}, p.RepeatWeight})

		templates, err := p.templateBFs(filtername, filtername2)
		if err != nil {
			return nil, err
		}
		bfs = append(bfs, templates...)

		goodSeeing, err := p.goodSeeingBFs(filtername, filtername2)
		if err != nil {
			return nil, err
		}
		bfs = append(bfs, goodSeeing...)

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
		bfs = append(bfs, BasisWeight{TimeToTwilightBasisFunction{TimeNeeded: timeNeeded}, 0})
		bfs = append(bfs, BasisWeight{NotTwilightBasisFunction{}, 0})
		bfs = append(bfs, BasisWeight{PlanetMaskBasisFunction{Nside: p.Nside}, 0})

		if paired {
			detailerList = append(detailerList, TakeAsPairsDetailer{FilterName: filtername2})
		}
		if p.UNexp1 {
			detailerList = append(detailerList, FilterNexpDetailer{FilterName: "u", Nexp: 1})
		}

		surveyName := fmt.Sprintf("Standard pair blobs %s_%s", filtername, filtername2)
		surveys = append(surveys, &BlobSurvey{
			SurveyName:    surveyName,
			SurveyNote:    surveyName,
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
			MinPairTime:        15,
			SearchRadius:       30,
			AltMax:             85,
			AzRange:            90,
			FlushTime:          30,
			Nside:              p.Nside,
			Seed:               42,
			Dither:             true,
			TwilightScale:      false,
		})
	}
	return surveys, nil
}

// footprintBF is shared by every blob and greedy construction.
func footprintBF(filtername string, footprints FootprintSource, nside int) FootprintBasisFunction {
	return FootprintBasisFunction{
		FilterName:     filtername,
		Footprint:      footprints,
		OutOfBoundsNaN: true,
		Nside:          nside,
	}
}

// pairFilters drops the empty second filter of an unpaired blob.
func pairFilters(filtername, filtername2 string) []string {
	if filtername2 == "" {
		return []string{filtername}
	}
	return []string{filtername, filtername2}
}

// templateBFs builds the per-season template terms, half weight per filter
// when paired.
func (p *BlobParams) templateBFs(filtername, filtername2 string) ([]BasisWeight, error) {
	newTerm := func(fn string, weight float64) (BasisWeight, error) {
		fp, err := p.Footprints.GetFootprint(fn)
		if err != nil {
			return BasisWeight{}, fmt.Errorf("template basis function: %w", err)
		}
		return BasisWeight{NObsPerYearBasisFunction{
			FilterName:      fn,
			Nside:           p.Nside,
			Footprint:       fp,
			NObs:            p.NObsTemplate,
			Season:          p.Season,
			SeasonStartHour: p.SeasonStartHour,
			SeasonEndHour:   p.SeasonEndHour,
		}, weight}, nil
	}

	if filtername2 == "" {
		bw, err := newTerm(filtername, p.templateWeight(filtername))
		if err != nil {
			return nil, err
		}
		return []BasisWeight{bw}, nil
	}
	first, err := newTerm(filtername, p.templateWeight(filtername)/2)
	if err != nil {
		return nil, err
	}
	second, err := newTerm(filtername2, p.templateWeight(filtername2)/2)
	if err != nil {
		return nil, err
	}
	return []BasisWeight{first, second}, nil
}

// goodSeeingBFs inserts good-seeing template terms for filters named in the
// GoodSeeing map.
func (p *BlobParams) goodSeeingBFs(filtername, filtername2 string) ([]BasisWeight, error) {
	var out []BasisWeight
	for _, fn := range pairFilters(filtername, filtername2) {
		nObs, ok := p.GoodSeeing[fn]
		if !ok {
			continue
		}
		fp, err := p.Footprints.GetFootprint(fn)
		if err != nil {
			return nil, fmt.Errorf("good seeing basis function: %w", err)
		}
		out = append(out, BasisWeight{NGoodSeeingBasisFunction{
			FilterName:  fn,
			Nside:       p.Nside,
			MJDStart:    p.MJDStart,
			Footprint:   fp,
			NObsDesired: nObs,
		}, p.GoodSeeingWeight})
	}
	return out, nil
}
