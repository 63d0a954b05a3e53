package sched

import (
	"strings"

	"github.com/survey-sim/survey-sim/sched/ddf"
)

// DDFSurveys wraps the pre-computed deep-drilling schedule into two scripted
// surveys: the Euclid double field gets its own detailer stack (Euclid dither
// geometry), everything else shares the standard DDF detailers.
func DDFSurveys(detailerList []Detailer, ddfParams ddf.Params, euclidDetailers []Detailer) []*ScriptedSurvey {
	obsArray := ddf.GenerateDDFScheduledObs(ddfParams)

	var euclidObs, allOther []ddf.ScheduledObservation
	for _, o := range obsArray {
		if strings.HasPrefix(o.Note, "DD:EDFS") {
			euclidObs = append(euclidObs, o)
		} else {
			allOther = append(allOther, o)
		}
	}

	survey1 := &ScriptedSurvey{SurveyName: "deep drilling", Detailers: detailerList}
	survey1.SetScript(allOther)

	survey2 := &ScriptedSurvey{SurveyName: "deep drilling, euclid", Detailers: euclidDetailers}
	survey2.SetScript(euclidObs)

	return []*ScriptedSurvey{survey1, survey2}
}
