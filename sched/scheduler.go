package sched

// CoreScheduler groups surveys into priority tiers. The external scheduler
// asks tiers in order and takes the best-rewarded feasible survey, so tier
// order encodes priority (scheduled DDF observations first, greedy fill
// last).
type CoreScheduler struct {
	Tiers [][]Survey
	Nside int
}

func NewCoreScheduler(tiers [][]Survey, nside int) *CoreScheduler {
	return &CoreScheduler{Tiers: tiers, Nside: nside}
}

// NumSurveys counts the surveys across all tiers.
func (c *CoreScheduler) NumSurveys() int {
	n := 0
	for _, tier := range c.Tiers {
		n += len(tier)
	}
	return n
}

// FilterScheduler swaps the filter carousel with the lunar cycle: u-band is
// unloaded when the moon is brighter than the illumination limit.
type FilterScheduler struct {
	IllumLimit float64 // percent moon illumination
}

// Conditions is the slice of the observatory state the configuration needs:
// everything else the conditions provider produces is consumed inside the
// driver.
type Conditions struct {
	MJDStart   float64
	SunRAStart float64 // degrees
}

// ModelObservatory names the external model-observatory configuration.
type ModelObservatory struct {
	Nside int
}

func NewModelObservatory(nside int) *ModelObservatory {
	return &ModelObservatory{Nside: nside}
}

// ReturnConditions reports the fixed model start conditions the footprint
// builders key off. The values match the external model observatory's
// default survey start.
func (o *ModelObservatory) ReturnConditions() Conditions {
	return Conditions{MJDStart: 60218, SunRAStart: 188.3}
}
