package sched

import "fmt"

// BasisFunction is a scoring term over sky position evaluated by the external
// scheduler to rank candidate pointings. Implementations here are pure
// parameter records; the score computation itself is owned by the driver.
type BasisFunction interface {
	// Label identifies the term in survey summaries and the run manifest.
	Label() string
}

// MaskBasisFunction marks terms that veto pointings rather than score them.
// Masks are always attached to a survey with zero weight.
type MaskBasisFunction interface {
	BasisFunction
	MaskOnly() bool
}

// BasisWeight pairs a basis function with its weight in a survey's reward sum.
type BasisWeight struct {
	BF     BasisFunction
	Weight float64
}

// MarshalYAML flattens the pair into a manifest-friendly record.
func (bw BasisWeight) MarshalYAML() (any, error) {
	return struct {
		Label  string        `yaml:"label"`
		Weight float64       `yaml:"weight"`
		Params BasisFunction `yaml:"params"`
	}{bw.BF.Label(), bw.Weight, bw.BF}, nil
}

// M5DiffBasisFunction rewards pointings by their 5-sigma depth difference
// from the best achievable depth.
type M5DiffBasisFunction struct {
	FilterName string `yaml:"filter"`
	Nside      int    `yaml:"nside"`
}

func (b M5DiffBasisFunction) Label() string { return "m5_diff " + b.FilterName }

// FootprintBasisFunction rewards pointings that bring per-filter coverage
// toward the target footprint.
type FootprintBasisFunction struct {
	FilterName     string          `yaml:"filter"`
	Footprint      FootprintSource `yaml:"-"`
	OutOfBoundsNaN bool            `yaml:"out_of_bounds_nan"`
	Nside          int             `yaml:"nside"`
}

func (b FootprintBasisFunction) Label() string { return "footprint " + b.FilterName }

// SlewtimeBasisFunction penalizes long slews from the current pointing.
type SlewtimeBasisFunction struct {
	FilterName string `yaml:"filter"`
	Nside      int    `yaml:"nside"`
}

func (b SlewtimeBasisFunction) Label() string { return "slewtime " + b.FilterName }

// StrictFilterBasisFunction rewards staying in the currently loaded filter.
type StrictFilterBasisFunction struct {
	FilterName string `yaml:"filter"`
}

func (b StrictFilterBasisFunction) Label() string { return "strict_filter " + b.FilterName }

// VisitRepeatBasisFunction rewards revisits inside a time gap window.
// A negative weight turns it into a same-night repeat penalty.
type VisitRepeatBasisFunction struct {
	GapMin     float64 `yaml:"gap_min"`     // minutes
	GapMax     float64 `yaml:"gap_max"`     // minutes
	FilterName string  `yaml:"filter,omitempty"` // empty = any filter
	Nside      int     `yaml:"nside"`
	NPairs     int     `yaml:"npairs"`
}

func (b VisitRepeatBasisFunction) Label() string { return "visit_repeat" }

// NObsPerYearBasisFunction pushes for template images every season.
type NObsPerYearBasisFunction struct {
	FilterName      string    `yaml:"filter"`
	Nside           int       `yaml:"nside"`
	Footprint       []float64 `yaml:"-"`
	NObs            int       `yaml:"n_obs"`
	Season          float64   `yaml:"season"`      // days
	SeasonStartHour float64   `yaml:"season_start_hour"`
	SeasonEndHour   float64   `yaml:"season_end_hour"`
}

func (b NObsPerYearBasisFunction) Label() string { return "n_obs_per_year " + b.FilterName }

// NGoodSeeingBasisFunction pushes for good-seeing template images.
type NGoodSeeingBasisFunction struct {
	FilterName  string    `yaml:"filter"`
	Nside       int       `yaml:"nside"`
	MJDStart    float64   `yaml:"mjd_start"`
	Footprint   []float64 `yaml:"-"`
	NObsDesired int       `yaml:"n_obs_desired"`
}

func (b NGoodSeeingBasisFunction) Label() string { return "n_good_seeing " + b.FilterName }

// AvoidLongGapsBasisFunction discourages per-night gaps outside a window
// over the given footprint.
type AvoidLongGapsBasisFunction struct {
	FilterName string    `yaml:"filter,omitempty"`
	Nside      int       `yaml:"nside"`
	MinGap     float64   `yaml:"min_gap"` // days
	MaxGap     float64   `yaml:"max_gap"` // days
	HALimit    float64   `yaml:"ha_limit"`
	Footprint  []float64 `yaml:"-"`
}

func (b AvoidLongGapsBasisFunction) Label() string { return "avoid_long_gaps" }

// TimeToScheduledBasisFunction masks out blob starts that would collide with
// an upcoming pre-scheduled observation.
type TimeToScheduledBasisFunction struct {
	TimeNeeded float64 `yaml:"time_needed"` // minutes
}

func (b TimeToScheduledBasisFunction) Label() string { return "time_to_scheduled" }
func (b TimeToScheduledBasisFunction) MaskOnly() bool { return true }

// TimeToTwilightBasisFunction masks out blob starts too close to twilight.
type TimeToTwilightBasisFunction struct {
	TimeNeeded float64 `yaml:"time_needed"` // minutes
	AltLimit   float64 `yaml:"alt_limit,omitempty"` // sun altitude defining twilight (degrees)
}

func (b TimeToTwilightBasisFunction) Label() string { return "time_to_twilight" }
func (b TimeToTwilightBasisFunction) MaskOnly() bool { return true }

// NotTwilightBasisFunction masks everything during twilight.
type NotTwilightBasisFunction struct{}

func (b NotTwilightBasisFunction) Label() string { return "not_twilight" }
func (b NotTwilightBasisFunction) MaskOnly() bool { return true }

// ZenithShadowMaskBasisFunction masks the region the telescope would track
// through zenith, plus everything above MaxAlt.
type ZenithShadowMaskBasisFunction struct {
	Nside         int     `yaml:"nside"`
	ShadowMinutes float64 `yaml:"shadow_minutes"`
	MaxAlt        float64 `yaml:"max_alt"` // degrees
	PenaltyNaN    bool    `yaml:"penalty_nan,omitempty"`
	Site          string  `yaml:"site,omitempty"`
}

func (b ZenithShadowMaskBasisFunction) Label() string { return "zenith_shadow_mask" }
func (b ZenithShadowMaskBasisFunction) MaskOnly() bool { return true }

// MoonAvoidanceBasisFunction masks a radius around the moon.
type MoonAvoidanceBasisFunction struct {
	Nside        int     `yaml:"nside"`
	MoonDistance float64 `yaml:"moon_distance"` // degrees
}

func (b MoonAvoidanceBasisFunction) Label() string { return "moon_avoidance" }
func (b MoonAvoidanceBasisFunction) MaskOnly() bool { return true }

// FilterLoadedBasisFunction masks filters not currently in the carousel.
type FilterLoadedBasisFunction struct {
	FilterNames []string `yaml:"filters"`
}

func (b FilterLoadedBasisFunction) Label() string { return fmt.Sprintf("filter_loaded %v", b.FilterNames) }
func (b FilterLoadedBasisFunction) MaskOnly() bool { return true }

// PlanetMaskBasisFunction masks a small radius around bright planets.
type PlanetMaskBasisFunction struct {
	Nside int `yaml:"nside"`
}

func (b PlanetMaskBasisFunction) Label() string { return "planet_mask" }
func (b PlanetMaskBasisFunction) MaskOnly() bool { return true }

// NearSunTwilightBasisFunction restricts pointings to the high-airmass region
// toward the sun during twilight.
type NearSunTwilightBasisFunction struct {
	Nside      int     `yaml:"nside"`
	MaxAirmass float64 `yaml:"max_airmass"`
}

func (b NearSunTwilightBasisFunction) Label() string { return "near_sun_twilight" }
func (b NearSunTwilightBasisFunction) MaskOnly() bool { return true }

// SolarElongationMaskBasisFunction masks by solar elongation range.
type SolarElongationMaskBasisFunction struct {
	MinElong float64 `yaml:"min_elong"` // degrees
	MaxElong float64 `yaml:"max_elong"` // degrees
	Nside    int     `yaml:"nside"`
}

func (b SolarElongationMaskBasisFunction) Label() string { return "solar_elongation_mask" }
func (b SolarElongationMaskBasisFunction) MaskOnly() bool { return true }

// SunAltHighLimitBasisFunction masks everything until the sun rises past the
// given altitude.
type SunAltHighLimitBasisFunction struct {
	AltLimit float64 `yaml:"alt_limit"` // degrees, negative = below horizon
}

func (b SunAltHighLimitBasisFunction) Label() string { return "sun_alt_high_limit" }
func (b SunAltHighLimitBasisFunction) MaskOnly() bool { return true }

// NightModuloBasisFunction masks nights where the repeating on/off pattern
// is off.
type NightModuloBasisFunction struct {
	Pattern []bool `yaml:"pattern"`
}

func (b NightModuloBasisFunction) Label() string { return "night_modulo" }
func (b NightModuloBasisFunction) MaskOnly() bool { return true }

// IsMask reports whether bf is a veto-style mask term.
func IsMask(bf BasisFunction) bool {
	m, ok := bf.(MaskBasisFunction)
	return ok && m.MaskOnly()
}
