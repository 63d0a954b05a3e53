package sched

import "fmt"

// GenGreedySurveys makes the quick set of single-visit greedy surveys, one
// per filter. These mop up twilight time the blob surveys can't use.
func GenGreedySurveys(p GreedyParams) []*GreedySurvey {
	detailerList := []Detailer{
		CameraRotDetailer{MinRot: p.CameraRotLimits[0], MaxRot: p.CameraRotLimits[1]},
		Rottep2RotspDesiredDetailer{},
	}

	surveys := make([]*GreedySurvey, 0, len(p.Filters))
	for _, filtername := range p.Filters {
		var bfs []BasisWeight
		bfs = append(bfs, BasisWeight{M5DiffBasisFunction{FilterName: filtername, Nside: p.Nside}, p.M5Weight})
		bfs = append(bfs, BasisWeight{FootprintBasisFunction{
			FilterName:     filtername,
			Footprint:      p.Footprints,
			OutOfBoundsNaN: true,
			Nside:          p.Nside,
		}, p.FootprintWeight})
		bfs = append(bfs, BasisWeight{SlewtimeBasisFunction{FilterName: filtername, Nside: p.Nside}, p.SlewtimeWeight})
		bfs = append(bfs, BasisWeight{StrictFilterBasisFunction{FilterName: filtername}, p.StayFilterWeight})
		bfs = append(bfs, BasisWeight{VisitRepeatBasisFunction{
			GapMin: 0, GapMax: 2 * 60, Nside: p.Nside, NPairs: 20,
		}, p.RepeatWeight})
		// Masks, give these 0 weight
		bfs = append(bfs, BasisWeight{ZenithShadowMaskBasisFunction{
			Nside: p.Nside, ShadowMinutes: p.ShadowMinutes, MaxAlt: p.MaxAlt,
		}, 0})
		bfs = append(bfs, BasisWeight{MoonAvoidanceBasisFunction{Nside: p.Nside, MoonDistance: p.MoonDistance}, 0})
		bfs = append(bfs, BasisWeight{FilterLoadedBasisFunction{FilterNames: []string{filtername}}, 0})
		bfs = append(bfs, BasisWeight{PlanetMaskBasisFunction{Nside: p.Nside}, 0})

		surveys = append(surveys, &GreedySurvey{
			SurveyName: fmt.Sprintf("Twilight greedy survey %s", filtername),
			FilterName: filtername,
			Basis:      bfs,
			Detailers:  detailerList,
			ExpTime:    p.ExpTime,
			Nexp:       p.Nexp,
			Nside:      p.Nside,
			IgnoreObs:  p.IgnoreObs,
			BlockSize:  1,
			Seed:       42,
			Camera:     "LSST",
			Dither:     true,
		})
	}
	return surveys
}
