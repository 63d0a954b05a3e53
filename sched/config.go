package sched

// Default filter sets for each generator. The second-filter list may contain
// empty strings for unpaired blobs.
var (
	GreedyFilters   = []string{"r", "i", "z", "y"}
	BlobFilter1s    = []string{"u", "u", "g", "r", "i", "z", "y"}
	BlobFilter2s    = []string{"g", "r", "r", "i", "z", "y", "y"}
	TwiBlobFilter1s = []string{"r", "i", "z", "y"}
	TwiBlobFilter2s = []string{"i", "z", "y", "y"}
)

// GreedyParams groups the knobs for GenGreedySurveys.
type GreedyParams struct {
	Nside           int
	Nexp            int      // exposures per visit
	ExpTime         float64  // seconds
	Filters         []string // filters to generate surveys for
	CameraRotLimits [2]float64
	ShadowMinutes   float64 // zenith shadow mask size (minutes)
	MaxAlt          float64 // max altitude for zenith mask (degrees)
	MoonDistance    float64 // moon avoidance radius (degrees)
	IgnoreObs       []string

	M5Weight         float64
	FootprintWeight  float64
	SlewtimeWeight   float64
	StayFilterWeight float64
	RepeatWeight     float64

	Footprints FootprintSource
}

// DefaultGreedyParams returns the standard greedy survey knobs.
func DefaultGreedyParams() GreedyParams {
	return GreedyParams{
		Nside:            32,
		Nexp:             2,
		ExpTime:          30,
		Filters:          GreedyFilters,
		CameraRotLimits:  [2]float64{-80, 80},
		ShadowMinutes:    60,
		MaxAlt:           76,
		MoonDistance:     30,
		IgnoreObs:        []string{"DD", "twilight_neo"},
		M5Weight:         3,
		FootprintWeight:  0.75,
		SlewtimeWeight:   3,
		StayFilterWeight: 3,
		RepeatWeight:     -1,
	}
}

// BlobParams groups the knobs for GenerateBlobs and GenerateTwiBlobs.
type BlobParams struct {
	Nside           int
	Nexp            int
	ExpTime         float64
	Filter1s        []string
	Filter2s        []string // "" = unpaired
	PairTime        float64  // ideal minutes between pair visits
	CameraRotLimits [2]float64
	NObsTemplate    int     // template observations per season per filter
	Season          float64 // days before templates expire
	SeasonStartHour float64
	SeasonEndHour   float64
	ShadowMinutes   float64
	MaxAlt          float64
	MoonDistance    float64
	IgnoreObs       []string

	M5Weight         float64
	FootprintWeight  float64
	SlewtimeWeight   float64
	StayFilterWeight float64
	TemplateWeight   float64
	UTemplateWeight  float64 // u-band template weight, usually higher
	RepeatWeight     float64

	// Good-seeing template terms, only for filters present in the map.
	GoodSeeing       map[string]int
	GoodSeeingWeight float64
	MJDStart         float64

	ScheduledRespect float64 // minutes of clearance before scheduled obs
	UNexp1           bool    // force single exposures in u

	// Twilight-variant knobs (GenerateTwiBlobs only).
	RepeatNightWeight *float64
	WFDFootprint      []float64
	NightPattern      []bool

	Footprints FootprintSource
}

// DefaultBlobParams returns the standard night-time pair blob knobs.
func DefaultBlobParams() BlobParams {
	return BlobParams{
		Nside:            32,
		Nexp:             2,
		ExpTime:          30,
		Filter1s:         BlobFilter1s,
		Filter2s:         BlobFilter2s,
		PairTime:         33,
		CameraRotLimits:  [2]float64{-80, 80},
		NObsTemplate:     3,
		Season:           300,
		SeasonStartHour:  -4,
		SeasonEndHour:    2,
		ShadowMinutes:    60,
		MaxAlt:           76,
		MoonDistance:     30,
		IgnoreObs:        []string{"DD", "twilight_neo"},
		M5Weight:         6,
		FootprintWeight:  1.5,
		SlewtimeWeight:   3,
		StayFilterWeight: 3,
		TemplateWeight:   12,
		UTemplateWeight:  24,
		RepeatWeight:     -20,
		GoodSeeing:       map[string]int{"g": 3, "r": 3, "i": 3},
		GoodSeeingWeight: 3,
		MJDStart:         1,
		ScheduledRespect: 45,
		UNexp1:           true,
	}
}

// DefaultTwiBlobParams returns the twilight pair blob knobs.
func DefaultTwiBlobParams() BlobParams {
	p := DefaultBlobParams()
	p.Filter1s = TwiBlobFilter1s
	p.Filter2s = TwiBlobFilter2s
	p.PairTime = 15
	p.RepeatWeight = -1
	p.ScheduledRespect = 15
	p.GoodSeeing = nil
	p.UNexp1 = false
	return p
}

// TwilightNEOParams groups the knobs for GenerateTwilightNEO.
type TwilightNEOParams struct {
	Nside           int
	NightPattern    []bool
	Nexp            int
	ExpTime         float64
	IdealPairTime   float64
	MaxAirmass      float64
	CameraRotLimits [2]float64
	FootprintMask   []float64

	FootprintWeight  float64
	SlewtimeWeight   float64
	StayFilterWeight float64

	AreaRequired float64
	Filters      string // one survey per rune, e.g. "riz"
	NRepeat      int
	SunAltLimit  float64 // degrees, attempt only when sun is above this
}

// DefaultTwilightNEOParams returns the near-sun twilight NEO knobs.
func DefaultTwilightNEOParams() TwilightNEOParams {
	return TwilightNEOParams{
		Nside:            32,
		Nexp:             1,
		ExpTime:          15,
		IdealPairTime:    5,
		MaxAirmass:       2,
		CameraRotLimits:  [2]float64{-80, 80},
		FootprintWeight:  0.1,
		SlewtimeWeight:   3,
		StayFilterWeight: 3,
		Filters:          "riz",
		NRepeat:          3,
		SunAltLimit:      -14.8,
	}
}

// LongGapsParams groups the knobs for GenLongGapsSurvey.
type LongGapsParams struct {
	Nside         int
	Footprints    FootprintSource
	NightPattern  []bool
	GapRange      [2]float64 // hours between first visit and follow-up
	Filter1s      []string
	Filter2s      []string
	NightsDelayed int // delay activation this many nights (-1 = no delay)
}

// DefaultLongGapsParams returns the long-gap (AGN cadence) knobs.
func DefaultLongGapsParams() LongGapsParams {
	return LongGapsParams{
		Nside:         32,
		GapRange:      [2]float64{2, 7},
		Filter1s:      []string{"g", "r", "i"},
		Filter2s:      []string{"r", "i", "z"},
		NightsDelayed: -1,
	}
}
