package sched

import "fmt"

// GenLongGapsSurvey builds the long-gap (AGN cadence) surveys: a pair blob
// plus a scripted follow-up that revisits the blob area after a gap of a few
// hours, coupled so the driver can arm the follow-up when the blob executes.
func GenLongGapsSurvey(p LongGapsParams) ([]*LongGapSurvey, error) {
	surveys := make([]*LongGapSurvey, 0, len(p.Filter1s))
	for i, filtername := range p.Filter1s {
		filtername2 := p.Filter2s[i]

		blobParams := DefaultBlobParams()
		blobParams.Nside = p.Nside
		blobParams.Footprints = p.Footprints
		blobParams.Filter1s = []string{filtername}
		blobParams.Filter2s = []string{filtername2}
		blobs, err := GenerateBlobs(blobParams)
		if err != nil {
			return nil, fmt.Errorf("long gaps blob %s%s: %w", filtername, filtername2, err)
		}
		blob := blobs[0]
		blob.SurveyName = fmt.Sprintf("Long gap blob %s_%s", filtername, filtername2)
		blob.SurveyNote = fmt.Sprintf("long_gap, %s%s", filtername, filtername2)
		// Only arm on the pattern nights.
		blob.Basis = append(blob.Basis, BasisWeight{NightModuloBasisFunction{Pattern: p.NightPattern}, 0})

		scripted := &ScriptedSurvey{
			SurveyName: fmt.Sprintf("Long gap follow-up %s_%s", filtername, filtername2),
			Detailers:  []Detailer{CloseAltDetailer{}},
		}

		surveys = append(surveys, &LongGapSurvey{
			Blob:          blob,
			Scripted:      scripted,
			GapRange:      p.GapRange,
			AvoidZenith:   true,
			NightsDelayed: p.NightsDelayed,
		})
	}
	return surveys, nil
}
